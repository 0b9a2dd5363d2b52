// Package filter decides which console records the terminal stream
// shows. Filters are display-only: they never alter stored state, and
// the dashboard always sees the full snapshot.
package filter

import (
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yixuqiu/page-spy-web/internal/model"
)

// Filter combines a level set and message glob patterns. A record is
// shown when it passes both; an empty filter shows everything. Filters
// are replaceable at runtime (config hot reload), so reads are guarded.
type Filter struct {
	mu       sync.RWMutex
	levels   map[string]bool
	patterns []string
}

// New builds a Filter from a comma-separated level list ("warn,error")
// and doublestar glob patterns matched against the message ("api/**").
// Invalid patterns are dropped.
func New(levels string, patterns []string) *Filter {
	f := &Filter{}
	f.Update(levels, patterns)
	return f
}

// Update replaces the filter criteria in place.
func (f *Filter) Update(levels string, patterns []string) {
	set := make(map[string]bool)
	if levels != "" {
		for _, l := range strings.Split(levels, ",") {
			set[strings.ToUpper(strings.TrimSpace(l))] = true
		}
	}

	valid := patterns[:0:0]
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}

	f.mu.Lock()
	f.levels = set
	f.patterns = valid
	f.mu.Unlock()
}

// Show reports whether the record passes the filter.
func (f *Filter) Show(rec model.ConsoleRecord) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if len(f.levels) > 0 && !f.levels[rec.Level] {
		return false
	}
	if len(f.patterns) == 0 {
		return true
	}
	for _, p := range f.patterns {
		if ok, _ := doublestar.Match(p, rec.Message); ok {
			return true
		}
	}
	return false
}
