package model

// Channel identifies one category of telemetry delivered by the remote
// target. Every channel has its own reconciliation policy.
type Channel string

const (
	ChannelConsole  Channel = "console"
	ChannelSystem   Channel = "system"
	ChannelNetwork  Channel = "network"
	ChannelConnect  Channel = "connect"
	ChannelPage     Channel = "page"
	ChannelStorage  Channel = "storage"
	ChannelDatabase Channel = "database"
)

// Channels lists every channel the session subscribes to, in display order.
var Channels = []Channel{
	ChannelConsole,
	ChannelSystem,
	ChannelNetwork,
	ChannelConnect,
	ChannelPage,
	ChannelStorage,
	ChannelDatabase,
}

// Known reports whether c is one of the channels this session handles.
func (c Channel) Known() bool {
	for _, ch := range Channels {
		if c == ch {
			return true
		}
	}
	return false
}

// Event is one typed telemetry event from the remote target. Concrete
// event types carry the payload for exactly one channel; dispatch is
// keyed by the channel tag.
type Event interface {
	Channel() Channel
}

// ControlMessage is a command sent back to the remote target over the
// reverse channel, e.g. {type: "refresh", data: "network"}.
type ControlMessage struct {
	Type string `json:"type"`
	Data string `json:"data"`
}
