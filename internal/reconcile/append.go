package reconcile

import "github.com/yixuqiu/page-spy-web/internal/model"

// Console appends one log record. Records have no identity: no dedup, no
// reordering, arrival order is display order.
func Console(slice []model.ConsoleRecord, rec model.ConsoleRecord) []model.ConsoleRecord {
	out := make([]model.ConsoleRecord, len(slice), len(slice)+1)
	copy(out, slice)
	return append(out, rec)
}

// System appends one system-info record. Same append-only contract as
// the console channel.
func System(slice []model.SystemRecord, rec model.SystemRecord) []model.SystemRecord {
	out := make([]model.SystemRecord, len(slice), len(slice)+1)
	copy(out, slice)
	return append(out, rec)
}

// Connect appends one connection-lifecycle message, stored verbatim.
func Connect(slice []model.ConnectMessage, msg model.ConnectMessage) []model.ConnectMessage {
	out := make([]model.ConnectMessage, len(slice), len(slice)+1)
	copy(out, slice)
	return append(out, msg)
}
