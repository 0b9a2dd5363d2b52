package store

import (
	"time"

	"github.com/yixuqiu/page-spy-web/internal/model"
)

// Readers hand out copies. The rendering layer must never mutate a live
// slice; all writes go through Apply.

// Console returns the console channel in arrival order.
func (s *Store) Console() []model.ConsoleRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ConsoleRecord, len(s.console))
	copy(out, s.console)
	return out
}

// System returns the system-info channel in arrival order.
func (s *Store) System() []model.SystemRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.SystemRecord, len(s.system))
	copy(out, s.system)
	return out
}

// Connect returns the connection-lifecycle log.
func (s *Store) Connect() []model.ConnectMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ConnectMessage, len(s.connect))
	copy(out, s.connect)
	return out
}

// Network returns the request records sorted by start time.
func (s *Store) Network() []model.NetworkRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.NetworkRecord, len(s.network))
	copy(out, s.network)
	return out
}

// Page returns the current page snapshot, or nil before the first commit.
func (s *Store) Page() *model.PageSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.page == nil {
		return nil
	}
	snap := *s.page
	return &snap
}

// Storage returns one storage area's entries in sequence order.
func (s *Store) Storage(kind model.StorageKind) []model.StorageEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.StorageEntry, len(s.storage[kind]))
	copy(out, s.storage[kind])
	return out
}

// StorageAll returns every storage area keyed by kind.
func (s *Store) StorageAll() map[model.StorageKind][]model.StorageEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[model.StorageKind][]model.StorageEntry, len(s.storage))
	for kind, seq := range s.storage {
		cp := make([]model.StorageEntry, len(seq))
		copy(cp, seq)
		out[kind] = cp
	}
	return out
}

// Database returns the database listing and held detail view.
func (s *Store) Database() model.DatabaseState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := model.DatabaseState{Infos: make([]model.DatabaseInfo, len(s.database.Infos))}
	copy(st.Infos, s.database.Infos)
	if s.database.Detail != nil {
		d := *s.database.Detail
		st.Detail = &d
	}
	return st
}

// Stats is a point-in-time view of session activity.
type Stats struct {
	Uptime        string           `json:"uptime"`
	TotalEvents   int64            `json:"total_events"`
	ChannelCounts map[string]int64 `json:"channel_counts"`
	DroppedNotes  int64            `json:"dropped_notes"`
	ActiveSession bool             `json:"active_session"`
}

// Stats returns current session counters.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	counts := make(map[string]int64, len(s.counts))
	var total int64
	for ch, n := range s.counts {
		counts[string(ch)] = n
		total += n
	}
	uptime := time.Since(s.startTime).Truncate(time.Second).String()
	s.mu.RUnlock()

	return Stats{
		Uptime:        uptime,
		TotalEvents:   total,
		ChannelCounts: counts,
		DroppedNotes:  s.Dropped(),
		ActiveSession: s.opts.Sender != nil && s.opts.Sender.Active(),
	}
}
