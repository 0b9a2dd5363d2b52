// Package transport maintains the persistent connection to the remote
// instrumented target: it dials the debug room, decodes the typed event
// envelopes arriving per channel, dispatches them to registered
// listeners, and carries control messages back to the target.
package transport

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/yixuqiu/page-spy-web/internal/model"
)

// Handler receives one decoded event for a channel it was registered on.
type Handler func(model.Event)

// Client is the websocket connection to one debug session. The zero
// value is unusable; create with NewClient.
type Client struct {
	endpoint string

	mu       sync.RWMutex
	conn     *websocket.Conn
	handlers map[model.Channel][]Handler
	active   bool
}

// NewClient creates a client that will dial the given websocket endpoint
// (e.g. "wss://debug.example.com/ws").
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		handlers: make(map[model.Channel][]Handler),
	}
}

// AddListener registers a handler for one channel. Handlers run on the
// read-loop goroutine, one event at a time, in delivery order.
func (c *Client) AddListener(ch model.Channel, h Handler) {
	c.mu.Lock()
	c.handlers[ch] = append(c.handlers[ch], h)
	c.mu.Unlock()
}

// Active reports whether a session is currently established.
func (c *Client) Active() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Connect establishes the session for the given raw address and secret.
// It is a silent no-op when the address is empty, the derived room
// identifier is empty, or a session is already active. A dial failure is
// returned as an error.
func (c *Client) Connect(ctx context.Context, address, secret string) error {
	room := DeriveRoom(address)
	if room == "" {
		return nil
	}

	c.mu.Lock()
	if c.active {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	u := fmt.Sprintf("%s?room=%s&secret=%s", c.endpoint, url.QueryEscape(room), url.QueryEscape(secret))
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.endpoint, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.active = true
	c.mu.Unlock()
	return nil
}

// Start runs the read loop: decode each envelope and dispatch to the
// channel's listeners. Blocks until the context is cancelled, the
// connection drops, or the peer closes.
func (c *Client) Start(ctx context.Context) {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return
	}

	go func() {
		<-ctx.Done()
		conn.Close()
	}()
	defer c.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("transport: read failed: %v", err)
			}
			return
		}
		ev, err := DecodeEvent(data)
		if err != nil {
			log.Printf("transport: dropping malformed event: %v", err)
			continue
		}
		c.dispatch(ev)
	}
}

// SendToTarget writes one control message on the reverse channel.
func (c *Client) SendToTarget(msg model.ControlMessage) error {
	c.mu.RLock()
	conn, active := c.conn, c.active
	c.mu.RUnlock()
	if !active || conn == nil {
		return fmt.Errorf("no active session")
	}
	return conn.WriteJSON(msg)
}

// Close tears down the connection. Further events are not delivered.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.active = false
}

func (c *Client) dispatch(ev model.Event) {
	c.mu.RLock()
	hs := c.handlers[ev.Channel()]
	c.mu.RUnlock()
	for _, h := range hs {
		h(ev)
	}
}
