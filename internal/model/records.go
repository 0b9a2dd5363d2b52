package model

import (
	"strings"
	"time"
)

// ConsoleRecord is a single log entry reported by the remote console.
// Records are append-only and kept in arrival order.
type ConsoleRecord struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`   // DEBUG, INFO, WARN, ERROR, FATAL
	Message string    `json:"message"` // rendered log payload
	Source  string    `json:"source"`  // originating file:line, if reported
}

func (ConsoleRecord) Channel() Channel { return ChannelConsole }

// SystemRecord is one system-info entry (user agent, feature support,
// device details). Append-only, no identity matching.
type SystemRecord struct {
	Time  time.Time `json:"time"`
	Name  string    `json:"name"`
	Value string    `json:"value"`
}

func (SystemRecord) Channel() Channel { return ChannelSystem }

// ConnectMessage is one connection-lifecycle string from the transport,
// stored verbatim.
type ConnectMessage struct {
	Time time.Time `json:"time"`
	Text string    `json:"text"`
}

func (ConnectMessage) Channel() Channel { return ChannelConnect }

// NetworkRecord represents one request/response exchange. Events sharing
// a request id update the same record as the exchange progresses.
type NetworkRecord struct {
	ID              string            `json:"id"`
	URL             string            `json:"url"`
	Method          string            `json:"method"`
	Status          int               `json:"status"`
	RequestHeaders  map[string]string `json:"requestHeaders,omitempty"`
	ResponseHeaders map[string]string `json:"responseHeaders,omitempty"`
	RequestBody     string            `json:"requestBody,omitempty"`
	ResponseBody    string            `json:"responseBody,omitempty"`
	StartAt         time.Time         `json:"startAt"` // immutable after creation
	EndAt           time.Time         `json:"endAt,omitzero"`
}

func (NetworkRecord) Channel() Channel { return ChannelNetwork }

// NormalizeLevel maps the level strings remote consoles actually report
// onto the fixed set used for rendering and filtering.
func NormalizeLevel(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FATAL", "CRITICAL", "CRIT":
		return "FATAL"
	case "ERROR", "ERR":
		return "ERROR"
	case "WARN", "WARNING":
		return "WARN"
	case "DEBUG", "TRACE", "VERBOSE":
		return "DEBUG"
	default:
		return "INFO"
	}
}
