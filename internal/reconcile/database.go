package reconcile

import "github.com/yixuqiu/page-spy-web/internal/model"

// Database folds one database event into the (listing, detail) state.
// The stale sink is called — at most once, with the detail identity —
// when an "update" event targets the currently held detail view: the
// stored rows are not touched, but downstream should refetch them. The
// returned flag reports whether stored state changed.
//
// Actions:
//   - basic: replace the basic-info listing wholesale.
//   - get: replace the detail view wholesale.
//   - update: read-only; signal the sink on identity match, else no-op.
//   - clear: drop the detail view when its identity matches, else no-op.
//   - drop: remove the named database from the listing, and drop the
//     detail view if it referenced that database. Both sub-effects are
//     independent.
func Database(st model.DatabaseState, ev model.DatabaseEvent, stale func(model.DetailKey)) (model.DatabaseState, bool) {
	switch ev.Action {
	case model.DatabaseBasic:
		infos := make([]model.DatabaseInfo, len(ev.BasicInfo))
		copy(infos, ev.BasicInfo)
		st.Infos = infos
		return st, true

	case model.DatabaseGet:
		if ev.Detail == nil {
			return st, false
		}
		d := *ev.Detail
		st.Detail = &d
		return st, true

	case model.DatabaseUpdate:
		if key, ok := DetailKeyOf(st.Detail); ok && key == DatabaseKey(ev) {
			if stale != nil {
				stale(key)
			}
		}
		return st, false

	case model.DatabaseClear:
		if key, ok := DetailKeyOf(st.Detail); ok && key == DatabaseKey(ev) {
			st.Detail = nil
			return st, true
		}
		return st, false

	case model.DatabaseDrop:
		changed := false
		out := make([]model.DatabaseInfo, 0, len(st.Infos))
		for _, info := range st.Infos {
			if info.Name == ev.Database {
				changed = true
				continue
			}
			out = append(out, info)
		}
		if changed {
			st.Infos = out
		}
		if st.Detail != nil && st.Detail.Database == ev.Database {
			st.Detail = nil
			changed = true
		}
		return st, changed
	}

	return st, false
}
