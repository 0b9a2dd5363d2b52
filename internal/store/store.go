// Package store owns the session snapshot: one slice per telemetry
// channel, mutated only through the reconcile-then-commit-then-notify
// path. Subscribers receive a change note only when a commit actually
// changed a slice.
package store

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/net/html"

	"github.com/yixuqiu/page-spy-web/internal/model"
	"github.com/yixuqiu/page-spy-web/internal/reconcile"
)

const subscriberBuffer = 256

// Change is one committed-change note delivered to subscribers. Stale is
// set when a database "update" event targeted the held detail view: the
// stored rows are unchanged but downstream should refetch them.
type Change struct {
	Channel model.Channel    `json:"channel"`
	Stale   *model.DetailKey `json:"stale,omitempty"`
}

// Sender is the reverse channel to the remote target. The transport
// implements it; the store only ever borrows it.
type Sender interface {
	Active() bool
	SendToTarget(model.ControlMessage) error
}

// NormalizeFunc turns raw page markup into a renderable tree plus the
// normalized markup, resolving URLs against the page location.
type NormalizeFunc func(raw, baseHref string) (*html.Node, string, error)

// Options configures a Store. All fields are optional.
type Options struct {
	Sender     Sender
	Normalize  NormalizeFunc
	ConsoleTap func(model.ConsoleRecord) // called after each committed console record
}

// Store holds the current value of every channel's slice. Events are
// applied one at a time in arrival order; readers get copies, never the
// live slices.
type Store struct {
	mu       sync.RWMutex
	console  []model.ConsoleRecord
	system   []model.SystemRecord
	connect  []model.ConnectMessage
	network  []model.NetworkRecord
	page     *model.PageSnapshot
	storage  map[model.StorageKind][]model.StorageEntry
	database model.DatabaseState

	subMu   sync.RWMutex
	subs    []chan Change
	dropped atomic.Int64

	startTime time.Time
	counts    map[model.Channel]int64

	opts Options
}

// New creates an empty snapshot store for one session.
func New(opts Options) *Store {
	return &Store{
		storage:   make(map[model.StorageKind][]model.StorageEntry),
		startTime: time.Now(),
		counts:    make(map[model.Channel]int64),
		opts:      opts,
	}
}

// Subscribe returns a buffered channel receiving a note for every
// committed change. Slow consumers drop notes rather than blocking
// reconciliation.
func (s *Store) Subscribe() <-chan Change {
	ch := make(chan Change, subscriberBuffer)
	s.subMu.Lock()
	s.subs = append(s.subs, ch)
	s.subMu.Unlock()
	return ch
}

// Dropped returns the total number of change notes dropped due to slow
// consumers.
func (s *Store) Dropped() int64 {
	return s.dropped.Load()
}

// Close closes all subscriber channels. The store must not be applied to
// after Close.
func (s *Store) Close() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
}

// Apply folds one event into the snapshot: dispatch by channel tag, run
// the channel's reconciler, commit the result, notify on real change.
// Events are expected to arrive from a single goroutine; Apply is still
// safe under the store's lock because page normalization completes
// asynchronously.
func (s *Store) Apply(ev model.Event) {
	s.count(ev.Channel())

	switch e := ev.(type) {
	case model.ConsoleRecord:
		s.mu.Lock()
		s.console = reconcile.Console(s.console, e)
		s.mu.Unlock()
		s.notify(Change{Channel: model.ChannelConsole})
		if s.opts.ConsoleTap != nil {
			s.opts.ConsoleTap(e)
		}

	case model.SystemRecord:
		s.mu.Lock()
		s.system = reconcile.System(s.system, e)
		s.mu.Unlock()
		s.notify(Change{Channel: model.ChannelSystem})

	case model.ConnectMessage:
		s.mu.Lock()
		s.connect = reconcile.Connect(s.connect, e)
		s.mu.Unlock()
		s.notify(Change{Channel: model.ChannelConnect})

	case model.NetworkRecord:
		s.mu.Lock()
		s.network = reconcile.Network(s.network, e)
		s.mu.Unlock()
		s.notify(Change{Channel: model.ChannelNetwork})

	case model.PageEvent:
		s.applyPage(e)

	case model.StorageEvent:
		s.mu.Lock()
		seq, changed := reconcile.Storage(s.storage[e.Kind], e)
		if changed {
			s.storage[e.Kind] = seq
		}
		s.mu.Unlock()
		if changed {
			s.notify(Change{Channel: model.ChannelStorage})
		}

	case model.DatabaseEvent:
		s.mu.Lock()
		st, changed := reconcile.Database(s.database, e, s.signalStale)
		if changed {
			s.database = st
		}
		s.mu.Unlock()
		if changed {
			s.notify(Change{Channel: model.ChannelDatabase})
		}
	}
}

// applyPage kicks off asynchronous normalization and commits the full
// snapshot when it completes. New page events can arrive before a prior
// normalization finishes; results apply in completion order, so the
// committed snapshot is whichever normalization finished most recently.
// A failed normalization never commits, leaving the prior snapshot.
func (s *Store) applyPage(e model.PageEvent) {
	if s.opts.Normalize == nil {
		s.commitPage(model.PageSnapshot{Raw: e.HTML, Markup: e.HTML, Location: e.Location})
		return
	}
	go func() {
		tree, markup, err := s.opts.Normalize(e.HTML, e.Location.Href)
		if err != nil {
			log.Printf("page normalization failed for %s: %v", e.Location.Href, err)
			return
		}
		s.commitPage(model.PageSnapshot{Raw: e.HTML, Markup: markup, Tree: tree, Location: e.Location})
	}()
}

func (s *Store) commitPage(snap model.PageSnapshot) {
	s.mu.Lock()
	s.page = &snap
	s.mu.Unlock()
	s.notify(Change{Channel: model.ChannelPage})
}

// signalStale broadcasts the database stale-detail signal. It is handed
// to the database reconciler as its notification sink.
func (s *Store) signalStale(key model.DetailKey) {
	k := key
	s.notify(Change{Channel: model.ChannelDatabase, Stale: &k})
}

// notify sends a change note to every subscriber, dropping for any whose
// buffer is full.
func (s *Store) notify(c Change) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- c:
		default:
			n := s.dropped.Add(1)
			log.Printf("store: dropped change note for slow consumer (total dropped: %d)", n)
		}
	}
}

func (s *Store) count(ch model.Channel) {
	s.mu.Lock()
	s.counts[ch]++
	s.mu.Unlock()
}
