package store

import "github.com/yixuqiu/page-spy-web/internal/model"

// The command surface is the snapshot's only external-facing mutation
// API. Both operations are no-ops without an active session.

// ClearHistory empties one channel's accumulated sequence. Only the
// console and network channels support explicit clearing; other channels
// are left untouched.
func (s *Store) ClearHistory(ch model.Channel) {
	if !s.active() {
		return
	}

	s.mu.Lock()
	var changed bool
	switch ch {
	case model.ChannelConsole:
		changed = len(s.console) > 0
		s.console = nil
	case model.ChannelNetwork:
		changed = len(s.network) > 0
		s.network = nil
	default:
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	if changed {
		s.notify(Change{Channel: ch})
	}
}

// RequestRefresh asks the remote target to resend its state for one
// channel.
func (s *Store) RequestRefresh(ch model.Channel) {
	if !s.active() || !ch.Known() {
		return
	}
	// A failed send leaves the snapshot as-is; the remote simply never resends.
	_ = s.opts.Sender.SendToTarget(model.ControlMessage{Type: "refresh", Data: string(ch)})
}

func (s *Store) active() bool {
	return s.opts.Sender != nil && s.opts.Sender.Active()
}
