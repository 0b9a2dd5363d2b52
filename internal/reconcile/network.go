package reconcile

import (
	"sort"

	"github.com/yixuqiu/page-spy-web/internal/model"
)

// Network folds one network event into the slice of request records.
//
// A record with the same request id is replaced in place: headers, body
// and timing for one exchange arrive as separate events under the same
// id, and the record's position reflects its original start time, which
// is immutable after creation. A new id is inserted and the whole slice
// re-sorted ascending by start time — start times are not guaranteed to
// arrive in order, and the UI displays requests chronologically.
//
// Invariant: at most one record per request id, slice always sorted by
// start time.
func Network(slice []model.NetworkRecord, rec model.NetworkRecord) []model.NetworkRecord {
	out := make([]model.NetworkRecord, len(slice), len(slice)+1)
	copy(out, slice)

	for i := range out {
		if NetworkID(out[i]) == NetworkID(rec) {
			out[i] = rec
			return out
		}
	}

	out = append(out, rec)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartAt.Before(out[j].StartAt)
	})
	return out
}
