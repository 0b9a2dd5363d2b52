package reconcile

import "github.com/yixuqiu/page-spy-web/internal/model"

// Storage folds one storage event into the sequence for its kind. The
// returned flag reports whether the sequence actually changed; callers
// suppress notification when it is false.
//
// Actions:
//   - get: bulk replace of the whole sequence.
//   - set: insert-or-update by name. A set whose payload deep-equals the
//     existing entry is skipped entirely — storage values are polled and
//     resent unchanged, and redundant change notifications are noise.
//   - remove: delete the first entry with a matching name.
//   - clear: empty the sequence.
//
// A set without a name, a remove for an absent name, and unrecognized
// actions are all silent no-ops.
func Storage(seq []model.StorageEntry, ev model.StorageEvent) ([]model.StorageEntry, bool) {
	switch ev.Action {
	case model.StorageGet:
		out := make([]model.StorageEntry, len(ev.Entries))
		copy(out, ev.Entries)
		return out, true

	case model.StorageSet:
		name := StorageName(ev)
		if name == "" {
			return seq, false
		}
		for i := range seq {
			if seq[i].Name != name {
				continue
			}
			if entryEqual(seq[i], ev.Entry) {
				return seq, false
			}
			out := make([]model.StorageEntry, len(seq))
			copy(out, seq)
			out[i] = ev.Entry
			return out, true
		}
		out := make([]model.StorageEntry, len(seq), len(seq)+1)
		copy(out, seq)
		return append(out, ev.Entry), true

	case model.StorageRemove:
		name := StorageName(ev)
		if name == "" {
			return seq, false
		}
		for i := range seq {
			if seq[i].Name == name {
				out := make([]model.StorageEntry, 0, len(seq)-1)
				out = append(out, seq[:i]...)
				out = append(out, seq[i+1:]...)
				return out, true
			}
		}
		return seq, false

	case model.StorageClear:
		if len(seq) == 0 {
			return seq, false
		}
		return []model.StorageEntry{}, true
	}

	return seq, false
}

// entryEqual compares the payload fields of two entries, excluding the
// name identity (the caller already matched it).
func entryEqual(a, b model.StorageEntry) bool {
	return a.Value == b.Value &&
		a.Domain == b.Domain &&
		a.Path == b.Path &&
		a.Expires == b.Expires &&
		a.Secure == b.Secure &&
		a.HTTPOnly == b.HTTPOnly &&
		a.SameSite == b.SameSite
}
