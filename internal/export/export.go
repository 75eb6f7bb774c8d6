// Package export republishes store change notifications on NATS so that other
// processes can follow conversations without polling the daemon.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matheus3301/chatters/internal/store"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// DefaultPrefix is the first subject token when none is configured.
const DefaultPrefix = "chatters"

// stateToken is the conversation token of backend state notices.
const stateToken = "_state"

// Config holds the NATS connection settings.
type Config struct {
	URL    string `toml:"url"`
	Token  string `toml:"token"`
	Prefix string `toml:"prefix"`
}

type publisher interface {
	Publish(subject string, data []byte) error
}

// Notice is the JSON body of every exported message.
type Notice struct {
	store.Change
	Time time.Time `json:"time"`
}

// Exporter publishes each change on <prefix>.<backend>.<conversation>.
type Exporter struct {
	conn   *nats.Conn
	pub    publisher
	prefix string
	logger *zap.Logger
}

// Connect dials NATS. The connection reconnects on its own for as long as the
// exporter lives.
func Connect(cfg Config, logger *zap.Logger) (*Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("export")
	if cfg.URL == "" {
		return nil, errors.New("export: nats url is required")
	}
	opts := []nats.Option{
		nats.Name("chatters"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			logger.Error("NATS error", zap.Error(err))
		}),
	}
	if cfg.Token != "" {
		opts = append(opts, nats.Token(cfg.Token))
	}
	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	x := newExporter(nc, cfg.Prefix, logger)
	x.conn = nc
	return x, nil
}

func newExporter(pub publisher, prefix string, logger *zap.Logger) *Exporter {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Exporter{pub: pub, prefix: strings.TrimSuffix(prefix, "."), logger: logger}
}

// Run forwards every change of st until ctx is done.
func (x *Exporter) Run(ctx context.Context, st *store.Store) {
	sub := st.Subscribe(store.DefaultBuffer, "")
	defer sub.Close()
	for {
		changes, err := sub.Next(ctx)
		if err != nil {
			return
		}
		for _, c := range changes {
			if err := x.Publish(c); err != nil {
				x.logger.Warn("export failed", zap.String("kind", string(c.Kind)), zap.Error(err))
			}
		}
	}
}

// Publish sends one change.
func (x *Exporter) Publish(c store.Change) error {
	data, err := json.Marshal(Notice{Change: c, Time: time.Now()})
	if err != nil {
		return err
	}
	return x.pub.Publish(Subject(x.prefix, c), data)
}

// Close flushes pending publishes and closes the connection.
func (x *Exporter) Close() {
	if x.conn == nil {
		return
	}
	if err := x.conn.Drain(); err != nil {
		x.conn.Close()
	}
}

// Subject returns the subject a change is published on. Backend state changes
// use the _state conversation token.
func Subject(prefix string, c store.Change) string {
	conv := stateToken
	if !c.Conversation.IsZero() {
		conv = token(c.Conversation.Native)
	}
	return prefix + "." + token(string(c.Backend)) + "." + conv
}

// token makes s usable as a single subject token. The exact ids travel in
// the body.
func token(s string) string {
	if s == "" {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ', '\t', '\r', '\n':
			return '_'
		}
		return r
	}, s)
}
