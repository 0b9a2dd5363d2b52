// Package reconcile holds the per-channel reconcilers: pure functions
// that fold one incoming telemetry event into a channel's current slice.
// Reconcilers never mutate their inputs; the caller commits the returned
// value atomically and notifies subscribers only when it reports change.
package reconcile

import "github.com/yixuqiu/page-spy-web/internal/model"

// NetworkID returns the identity key used to match a network event to an
// existing in-flight record.
func NetworkID(r model.NetworkRecord) string { return r.ID }

// StorageName returns the entry name a storage event targets. Empty for
// bulk actions (get, clear).
func StorageName(ev model.StorageEvent) string {
	switch ev.Action {
	case model.StorageSet:
		return ev.Entry.Name
	case model.StorageRemove:
		return ev.Name
	}
	return ""
}

// DatabaseKey returns the (database, store) identity a database event
// targets.
func DatabaseKey(ev model.DatabaseEvent) model.DetailKey {
	return model.DetailKey{Database: ev.Database, Store: ev.Store}
}

// DetailKeyOf returns the identity of a held detail view, or false when
// no view is held.
func DetailKeyOf(d *model.DatabaseDetail) (model.DetailKey, bool) {
	if d == nil {
		return model.DetailKey{}, false
	}
	return model.DetailKey{Database: d.Database, Store: d.Store}, true
}
