package model

import "encoding/json"

// DatabaseAction is the mutation a database event applies.
type DatabaseAction string

const (
	DatabaseBasic  DatabaseAction = "basic"  // replace the basic-info listing
	DatabaseGet    DatabaseAction = "get"    // replace the detail view
	DatabaseUpdate DatabaseAction = "update" // signal a stale detail view
	DatabaseClear  DatabaseAction = "clear"  // drop the detail view on identity match
	DatabaseDrop   DatabaseAction = "drop"   // remove a database entirely
)

// DatabaseInfo is one entry of the basic-info listing of known databases.
type DatabaseInfo struct {
	Name    string   `json:"name"`
	Version int      `json:"version"`
	Stores  []string `json:"stores,omitempty"`
}

// DatabaseDetail is the row view of the one currently-inspected
// (database, store) pair.
type DatabaseDetail struct {
	Database string            `json:"database"`
	Store    string            `json:"store"`
	Page     int               `json:"page"`
	Total    int               `json:"total"`
	Rows     []json.RawMessage `json:"rows,omitempty"`
}

// DetailKey identifies the (database, store) pair a detail view or a
// mutation refers to.
type DetailKey struct {
	Database string `json:"database"`
	Store    string `json:"store"`
}

// DatabaseState is the full database channel state: the listing plus at
// most one held detail view.
type DatabaseState struct {
	Infos  []DatabaseInfo  `json:"infos"`
	Detail *DatabaseDetail `json:"detail,omitempty"`
}

// DatabaseEvent is one database mutation from the remote target.
// BasicInfo is populated for "basic", Detail for "get"; Database and
// Store carry the target identity for "update", "clear" and "drop".
type DatabaseEvent struct {
	Action    DatabaseAction  `json:"action"`
	BasicInfo []DatabaseInfo  `json:"data,omitempty"`
	Detail    *DatabaseDetail `json:"detail,omitempty"`
	Database  string          `json:"database,omitempty"`
	Store     string          `json:"store,omitempty"`
}

func (DatabaseEvent) Channel() Channel { return ChannelDatabase }
