package model

// StorageKind is one of the fixed storage areas the remote target reports.
type StorageKind string

const (
	LocalStorage   StorageKind = "localStorage"
	SessionStorage StorageKind = "sessionStorage"
	CookieStorage  StorageKind = "cookie"
)

// StorageKinds lists every storage area, in display order.
var StorageKinds = []StorageKind{LocalStorage, SessionStorage, CookieStorage}

// StorageAction is the mutation a storage event applies to its kind.
type StorageAction string

const (
	StorageGet    StorageAction = "get"    // bulk replace of the whole area
	StorageSet    StorageAction = "set"    // insert-or-update one entry by name
	StorageRemove StorageAction = "remove" // delete one entry by name
	StorageClear  StorageAction = "clear"  // empty the area
)

// StorageEntry is one named entry within a storage area. Name is the
// identity key; the remaining fields are the compared payload.
type StorageEntry struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Domain   string `json:"domain,omitempty"`
	Path     string `json:"path,omitempty"`
	Expires  string `json:"expires,omitempty"`
	Secure   bool   `json:"secure,omitempty"`
	HTTPOnly bool   `json:"httpOnly,omitempty"`
	SameSite string `json:"sameSite,omitempty"`
}

// StorageEvent is one storage mutation from the remote target. Entries
// is populated for "get", Entry for "set", Name for "remove".
type StorageEvent struct {
	Kind    StorageKind    `json:"type"`
	Action  StorageAction  `json:"action"`
	Entries []StorageEntry `json:"data,omitempty"`
	Entry   StorageEntry   `json:"entry,omitzero"`
	Name    string         `json:"name,omitempty"`
}

func (StorageEvent) Channel() Channel { return ChannelStorage }
