package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// Handler consumes one NOTIFY payload from a channel.
type Handler func(payload []byte)

// NotifyListener holds a dedicated PostgreSQL connection LISTENing on a
// fixed set of channels and dispatches payloads to per-channel
// handlers. The channel set is static for the process lifetime, so the
// receive loop is the only goroutine touching the pgx connection.
type NotifyListener struct {
	connString string
	handlers   map[string]Handler
	backoffCap time.Duration
	conn       *pgx.Conn
	connMu     sync.Mutex
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
	started    bool
}

// NewNotifyListener creates a listener for the given channel → handler
// map. backoffCap bounds the reconnect delay.
func NewNotifyListener(connString string, handlers map[string]Handler, backoffCap time.Duration) *NotifyListener {
	if backoffCap <= 0 {
		backoffCap = 30 * time.Second
	}
	return &NotifyListener{
		connString: connString,
		handlers:   handlers,
		backoffCap: backoffCap,
	}
}

// Start establishes the dedicated LISTEN connection, subscribes to all
// channels, and begins receiving notifications.
func (l *NotifyListener) Start(ctx context.Context) error {
	if l.started {
		return nil
	}

	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}
	if err := l.listenAll(ctx, conn); err != nil {
		_ = conn.Close(ctx)
		return err
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()
	l.started = true

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("NotifyListener started", "channels", len(l.handlers))
	return nil
}

// listenAll issues LISTEN for every configured channel.
func (l *NotifyListener) listenAll(ctx context.Context, conn *pgx.Conn) error {
	for channel := range l.handlers {
		sanitized := pgx.Identifier{channel}.Sanitize()
		if _, err := conn.Exec(ctx, "LISTEN "+sanitized); err != nil {
			return fmt.Errorf("LISTEN %s failed: %w", sanitized, err)
		}
	}
	return nil
}

// receiveLoop continuously receives notifications and dispatches them.
// It is the sole goroutine that touches the pgx connection.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		// Short timeout so shutdown is noticed promptly.
		waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return // Context cancelled — shutting down
			}
			if waitCtx.Err() != nil {
				continue // Timeout — loop back
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		if handler, ok := l.handlers[notification.Channel]; ok {
			handler([]byte(notification.Payload))
		}
	}
}

// reconnect re-establishes the LISTEN connection with exponential
// backoff and re-subscribes every channel.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, l.backoffCap)
			continue
		}
		if err := l.listenAll(ctx, conn); err != nil {
			slog.Error("Re-LISTEN failed", "error", err)
			_ = conn.Close(ctx)
			backoff = min(backoff*2, l.backoffCap)
			continue
		}
		l.conn = conn

		slog.Info("NotifyListener reconnected")
		return
	}
}

// Stop signals the receive loop to exit, waits for it to finish, then
// closes the LISTEN connection.
func (l *NotifyListener) Stop(ctx context.Context) {
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
