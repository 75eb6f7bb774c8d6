// Package hooks runs user scripts when things happen, currently for every new
// incoming message.
package hooks

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/matheus3301/chatters/internal/bus"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/engine"
	"go.uber.org/zap"
)

// Config holds the scripts. Empty scripts are not run.
type Config struct {
	OnNewMessage string `toml:"on_new_message"`
}

// Runner listens on the bus and spawns hook scripts. Scripts run with sh -c,
// detached from the daemon's stdio; their exit status is only logged.
type Runner struct {
	cfg    Config
	bus    *bus.Bus
	logger *zap.Logger
	app    string

	cancel context.CancelFunc
	done   chan struct{}
	wg     sync.WaitGroup
}

// New creates a runner. Start must be called for it to react to events.
func New(cfg Config, b *bus.Bus, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:    cfg,
		bus:    b,
		logger: logger.Named("hooks"),
		app:    filepath.Base(os.Args[0]),
	}
}

// Start subscribes to message events.
func (r *Runner) Start(ctx context.Context) {
	if r.cfg.OnNewMessage == "" || r.cancel != nil {
		return
	}
	events, unsubscribe := r.bus.Subscribe(bus.KindMessageReceived, 64)
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	go func() {
		defer close(r.done)
		defer unsubscribe()
		for {
			select {
			case evt := <-events:
				if rec, ok := evt.Payload.(engine.Received); ok {
					r.OnNewMessage(rec)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops listening and waits for running scripts to exit.
func (r *Runner) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.wg.Wait()
}

// OnNewMessage runs the on_new_message script for rec.
func (r *Runner) OnNewMessage(rec engine.Received) {
	if r.cfg.OnNewMessage == "" {
		return
	}
	cmd := exec.Command("sh", "-c", r.cfg.OnNewMessage)
	cmd.Env = append(os.Environ(), Env(r.app, rec)...)
	if err := cmd.Start(); err != nil {
		r.logger.Warn("failed to execute on_new_message hook", zap.Error(err))
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := cmd.Wait(); err != nil {
			r.logger.Warn("on_new_message hook failed",
				zap.Stringer("conversation", rec.Conversation.ID),
				zap.Error(err))
		}
	}()
}

// Env is the environment handed to on_new_message.
func Env(app string, rec engine.Received) []string {
	sender := rec.Message.SenderName
	if sender == "" {
		sender = senderName(rec.Conversation, rec.Message.Sender)
	}
	return []string{
		"CHATTERS_APP_NAME=" + app,
		"CHATTERS_BACKEND=" + rec.Backend,
		"CHATTERS_CONTACT_NAME=" + rec.Conversation.Title(),
		"CHATTERS_SENDER_NAME=" + sender,
		"CHATTERS_MESSAGE_BODY=" + body(rec.Message),
	}
}

func senderName(conv chat.Conversation, id string) string {
	for _, p := range conv.Participants {
		if p.ID == id {
			return p.DisplayName()
		}
	}
	return id
}

func body(m chat.Message) string {
	if m.Body.Text != "" {
		return m.Body.Text
	}
	return m.Body.Preview()
}
