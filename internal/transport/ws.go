package transport

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/coder/websocket"
	"github.com/tidwall/gjson"

	"github.com/parley-sh/parley/internal/errors"
	"github.com/parley-sh/parley/internal/logger"
	"github.com/parley-sh/parley/internal/transcript"
)

// Client is a websocket-backed Sender. Incoming frames are dispatched to
// the Events callbacks from a single read goroutine.
type Client struct {
	conn   *websocket.Conn
	events Events

	mu     sync.Mutex
	closed bool

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// Dial connects to the backend at the given ws:// or wss:// URL and starts
// the read loop. The context bounds the handshake only.
func Dial(ctx context.Context, url string, events Events) (*Client, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, errors.TransportDialFailed(url, err)
	}

	clientCtx, cancel := context.WithCancel(context.Background())
	c := &Client{
		conn:   conn,
		events: events,
		ctx:    clientCtx,
		cancel: cancel,
	}

	logger.Info("Transport: connected to %s", url)
	go c.receiveLoop()

	return c, nil
}

// SendText sends a plain text message.
func (c *Client) SendText(text string) error {
	return c.writeJSON(frame{Type: frameText, Text: text})
}

// SendImage sends an image data URI with an optional caption.
func (c *Client) SendImage(dataURI, caption string) error {
	return c.writeJSON(frame{Type: frameImage, Image: dataURI, Caption: caption})
}

// Close shuts down the connection and stops the read loop.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()

		c.cancel()
		c.conn.Close(websocket.StatusNormalClosure, "client closing")
		logger.Info("Transport: closed")
	})
	return nil
}

// writeJSON marshals v and writes it as a text websocket message.
func (c *Client) writeJSON(v any) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return errors.TransportSendFailed(errors.E(errors.Op("transport.writeJSON"), "connection closed"))
	}
	c.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return errors.TransportSendFailed(err)
	}
	if err := c.conn.Write(c.ctx, websocket.MessageText, data); err != nil {
		logger.Warn("Transport: write failed: %v", err)
		return errors.TransportSendFailed(err)
	}
	return nil
}

// receiveLoop reads frames until the connection ends and dispatches them.
func (c *Client) receiveLoop() {
	for {
		_, data, err := c.conn.Read(c.ctx)
		if err != nil {
			if c.ctx.Err() == nil {
				logger.Warn("Transport: read failed: %v", err)
			}
			if c.events.OnClosed != nil {
				c.events.OnClosed(err)
			}
			return
		}
		c.dispatch(data)
	}
}

// dispatch routes one incoming frame. Unknown frame types are logged and
// dropped so a newer backend does not wedge an older client.
func (c *Client) dispatch(data []byte) {
	doc := gjson.ParseBytes(data)

	switch doc.Get("type").String() {
	case "entry":
		raw := doc.Get("entry")
		if !raw.Exists() {
			logger.Warn("Transport: entry frame without entry body")
			return
		}
		e, err := transcript.ParseEntry([]byte(raw.Raw))
		if err != nil {
			logger.Warn("Transport: dropping malformed entry: %v", err)
			return
		}
		if c.events.OnEntry != nil {
			c.events.OnEntry(e)
		}

	case "permit":
		if c.events.OnPermitted != nil {
			c.events.OnPermitted(doc.Get("allowed").Bool())
		}

	default:
		logger.Debug("Transport: ignoring frame type %q", doc.Get("type").String())
	}
}
