// Package remote serves the foreign signer callbacks over a WebSocket owned by
// the host. The bridge sends one request per operation and waits for the
// reply carrying the same id. Replies can arrive in any order.
package remote

import (
	"chat-bridge/contract"
	"chat-bridge/errors"
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Op string

const (
	OpSignEvent    Op = "sign_event"
	OpNip04Encrypt Op = "nip04_encrypt"
	OpNip04Decrypt Op = "nip04_decrypt"
	OpNip44Encrypt Op = "nip44_encrypt"
	OpNip44Decrypt Op = "nip44_decrypt"
)

// Request is written by the bridge. Pubkey is empty for sign_event.
type Request struct {
	ID      string `json:"id"`
	Op      Op     `json:"op"`
	Content string `json:"content"`
	Pubkey  string `json:"pubkey,omitempty"`
}

// Reply is written by the host. A non empty Error fails the call.
type Reply struct {
	ID     string `json:"id"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

const (
	maxCloseReason = 123
	closeGrace     = time.Second
)

type Callbacks struct {
	log     *slog.Logger
	conn    *websocket.Conn
	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan Reply
	closed  bool
	done    chan struct{}
}

var _ contract.IForeignSigner = (*Callbacks)(nil)

func NewCallbacks(log *slog.Logger, conn *websocket.Conn) *Callbacks {
	return &Callbacks{
		log:     log,
		conn:    conn,
		pending: make(map[string]chan Reply),
		done:    make(chan struct{}),
	}
}

// Run reads replies until the socket closes or ctx is done.
// Every pending and future call then fails with ErrSignerDisconnected.
func (c *Callbacks) Run(ctx context.Context) error {
	defer c.shutdown()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = c.conn.Close()
		case <-stop:
		}
	}()

	for {
		var reply Reply
		if err := c.conn.ReadJSON(&reply); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Debug("Signer socket closed by host")
				return nil
			}
			if _, ok := err.(*websocket.CloseError); ok {
				return fmt.Errorf("%w: %v", errors.ErrSignerDisconnected, err)
			}
			if isDecodeError(err) {
				c.log.Warn("Dropping malformed signer reply", "error", err)
				continue
			}
			return fmt.Errorf("%w: %v", errors.ErrSignerDisconnected, err)
		}
		c.deliver(reply)
	}
}

// Done is closed once the socket is gone.
func (c *Callbacks) Done() <-chan struct{} {
	return c.done
}

// Close ends the session with a close frame, then drops the socket.
// Reasons longer than a control frame allows are cut.
func (c *Callbacks) Close(code int, reason string) {
	if len(reason) > maxCloseReason {
		reason = reason[:maxCloseReason]
	}
	_ = c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason),
		time.Now().Add(closeGrace))
	_ = c.conn.Close()
}

func (c *Callbacks) SignEvent(ctx context.Context, unsignedJSON string) (string, error) {
	return c.call(ctx, OpSignEvent, unsignedJSON, "")
}

func (c *Callbacks) Nip04Encrypt(ctx context.Context, content, pubkeyHex string) (string, error) {
	return c.call(ctx, OpNip04Encrypt, content, pubkeyHex)
}

func (c *Callbacks) Nip04Decrypt(ctx context.Context, content, pubkeyHex string) (string, error) {
	return c.call(ctx, OpNip04Decrypt, content, pubkeyHex)
}

func (c *Callbacks) Nip44Encrypt(ctx context.Context, content, pubkeyHex string) (string, error) {
	return c.call(ctx, OpNip44Encrypt, content, pubkeyHex)
}

func (c *Callbacks) Nip44Decrypt(ctx context.Context, content, pubkeyHex string) (string, error) {
	return c.call(ctx, OpNip44Decrypt, content, pubkeyHex)
}

func (c *Callbacks) call(ctx context.Context, op Op, content, pubkey string) (string, error) {
	id := uuid.NewString()
	replyCh := make(chan Reply, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return "", errors.ErrSignerDisconnected
	}
	c.pending[id] = replyCh
	c.mu.Unlock()
	defer c.forget(id)

	c.writeMu.Lock()
	err := c.conn.WriteJSON(Request{ID: id, Op: op, Content: content, Pubkey: pubkey})
	c.writeMu.Unlock()
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrSignerDisconnected, err)
	}

	select {
	case reply, ok := <-replyCh:
		if !ok {
			return "", errors.ErrSignerDisconnected
		}
		if reply.Error != "" {
			return "", fmt.Errorf("%w: %s: %s", errors.ErrSignerOperation, op, reply.Error)
		}
		return reply.Result, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (c *Callbacks) deliver(reply Reply) {
	c.mu.Lock()
	replyCh, ok := c.pending[reply.ID]
	delete(c.pending, reply.ID)
	c.mu.Unlock()

	if !ok {
		c.log.Debug("Reply without pending request", "id", reply.ID)
		return
	}
	replyCh <- reply
}

func (c *Callbacks) forget(id string) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

func (c *Callbacks) shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for id, replyCh := range c.pending {
		close(replyCh)
		delete(c.pending, id)
	}
	close(c.done)
	_ = c.conn.Close()
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return stdErrors.As(err, &syntaxErr) || stdErrors.As(err, &typeErr)
}
