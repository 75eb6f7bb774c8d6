package whatsapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/matheus3301/chatters/internal/backend"
	"go.uber.org/zap"
)

// Link pairs the device by QR code. The returned channel yields every code
// to display and ends with a terminal event. On success the client stays
// connected and the next Connect adopts it.
func (b *Backend) Link(ctx context.Context) (<-chan backend.LinkEvent, error) {
	if b.Linked() {
		return nil, errors.New("already linked")
	}
	b.mu.Lock()
	if b.linking {
		b.mu.Unlock()
		return nil, errors.New("link already in progress")
	}
	b.linking = true
	b.mu.Unlock()

	qrChan, err := b.client.GetQRChannel(ctx)
	if err != nil {
		b.endLink()
		return nil, fmt.Errorf("get QR channel: %w", err)
	}

	out := make(chan backend.LinkEvent, 10)
	go func() {
		defer close(out)
		defer b.endLink()

		// Connect must be called after GetQRChannel.
		if err := b.client.Connect(); err != nil {
			out <- backend.LinkEvent{Type: backend.LinkFailed, Message: err.Error()}
			return
		}
		for item := range qrChan {
			switch item.Event {
			case "code":
				out <- backend.LinkEvent{Type: backend.LinkCode, Code: item.Code}
			case "success":
				b.logger.Info("device linked", zap.String("phone", b.PhoneNumber()))
				out <- backend.LinkEvent{Type: backend.LinkAuthenticated, Message: "linked as " + b.PhoneNumber()}
				return
			case "timeout":
				b.client.Disconnect()
				out <- backend.LinkEvent{Type: backend.LinkTimeout, Message: "QR code timeout"}
				return
			default:
				if item.Error != nil {
					b.client.Disconnect()
					out <- backend.LinkEvent{Type: backend.LinkFailed, Message: item.Error.Error()}
					return
				}
			}
		}
	}()
	return out, nil
}

func (b *Backend) endLink() {
	b.mu.Lock()
	b.linking = false
	b.mu.Unlock()
}
