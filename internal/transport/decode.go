package transport

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/yixuqiu/page-spy-web/internal/model"
)

// envelope is the wire frame for every event: a channel tag plus the
// channel-specific payload.
type envelope struct {
	Channel model.Channel   `json:"channel"`
	Data    json.RawMessage `json:"data"`
}

// DecodeEvent turns one wire frame into a typed event for its channel.
// Console levels are normalized here so the store only ever sees the
// fixed level set; records without a timestamp get the arrival time.
func DecodeEvent(data []byte) (model.Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	switch env.Channel {
	case model.ChannelConsole:
		var rec model.ConsoleRecord
		if err := json.Unmarshal(env.Data, &rec); err != nil {
			return nil, fmt.Errorf("decode console event: %w", err)
		}
		rec.Level = model.NormalizeLevel(rec.Level)
		if rec.Time.IsZero() {
			rec.Time = time.Now()
		}
		return rec, nil

	case model.ChannelSystem:
		var rec model.SystemRecord
		if err := json.Unmarshal(env.Data, &rec); err != nil {
			return nil, fmt.Errorf("decode system event: %w", err)
		}
		if rec.Time.IsZero() {
			rec.Time = time.Now()
		}
		return rec, nil

	case model.ChannelConnect:
		var msg model.ConnectMessage
		if err := json.Unmarshal(env.Data, &msg); err != nil {
			return nil, fmt.Errorf("decode connect event: %w", err)
		}
		if msg.Time.IsZero() {
			msg.Time = time.Now()
		}
		return msg, nil

	case model.ChannelNetwork:
		var rec model.NetworkRecord
		if err := json.Unmarshal(env.Data, &rec); err != nil {
			return nil, fmt.Errorf("decode network event: %w", err)
		}
		return rec, nil

	case model.ChannelPage:
		var ev model.PageEvent
		if err := json.Unmarshal(env.Data, &ev); err != nil {
			return nil, fmt.Errorf("decode page event: %w", err)
		}
		return ev, nil

	case model.ChannelStorage:
		var ev model.StorageEvent
		if err := json.Unmarshal(env.Data, &ev); err != nil {
			return nil, fmt.Errorf("decode storage event: %w", err)
		}
		return ev, nil

	case model.ChannelDatabase:
		var ev model.DatabaseEvent
		if err := json.Unmarshal(env.Data, &ev); err != nil {
			return nil, fmt.Errorf("decode database event: %w", err)
		}
		return ev, nil
	}

	return nil, fmt.Errorf("unknown channel %q", env.Channel)
}
