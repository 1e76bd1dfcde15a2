package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
	"github.com/yeojugoodnews/subsidy-digest/internal/core/ports"
	"github.com/yeojugoodnews/subsidy-digest/internal/infrastructure/resilience"
)

const DefaultSubject = "digest.published"

type publisher interface {
	Publish(subject string, data []byte) error
	FlushTimeout(timeout time.Duration) error
	Close()
}

type Notifier struct {
	conn         publisher
	subject      string
	flushTimeout time.Duration
	executor     *resilience.Executor
}

var _ ports.EventNotifier = (*Notifier)(nil)

type Options struct {
	ConnectTimeout     time.Duration
	FlushTimeout       time.Duration
	ResilienceExecutor *resilience.Executor
}

func New(url, subject string, options Options) (*Notifier, error) {
	connectTimeout := options.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 2 * time.Second
	}

	// Reconnects are disabled; the process publishes once and exits.
	conn, err := nats.Connect(
		url,
		nats.Name("subsidy-digest"),
		nats.Timeout(connectTimeout),
		nats.NoReconnect(),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("nats_disconnected", "error", err)
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return newNotifier(conn, subject, options), nil
}

func newNotifier(conn publisher, subject string, options Options) *Notifier {
	if subject == "" {
		subject = DefaultSubject
	}
	flushTimeout := options.FlushTimeout
	if flushTimeout <= 0 {
		flushTimeout = 2 * time.Second
	}
	return &Notifier{
		conn:         conn,
		subject:      subject,
		flushTimeout: flushTimeout,
		executor:     options.ResilienceExecutor,
	}
}

func (n *Notifier) Close() {
	if n.conn != nil {
		n.conn.Close()
	}
}

func (n *Notifier) NotifyDigestPublished(ctx context.Context, event domain.DigestEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal digest event: %w", err)
	}

	call := func(_ context.Context) error {
		if err := n.conn.Publish(n.subject, payload); err != nil {
			return fmt.Errorf("nats publish: %w", err)
		}
		if err := n.conn.FlushTimeout(n.flushTimeout); err != nil {
			return fmt.Errorf("nats flush: %w", err)
		}
		return nil
	}

	if n.executor != nil {
		err = n.executor.Execute(ctx, "nats.publish", call, classifyNATSError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return wrapTemporaryIfNeeded(err)
	}
	return nil
}
