package daemon

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matheus3301/chatters/internal/backend"
	"github.com/matheus3301/chatters/internal/backend/local"
	"github.com/matheus3301/chatters/internal/backend/matrix"
	"github.com/matheus3301/chatters/internal/backend/relay"
	"github.com/matheus3301/chatters/internal/backend/whatsapp"
	"github.com/matheus3301/chatters/internal/chat"
	"github.com/matheus3301/chatters/internal/config"
	"github.com/matheus3301/chatters/internal/profile"
	"go.uber.org/zap"
)

// newBackend builds a backend and its normalizer from a [[backends]] entry.
// Credentials live under the profile's backends/<id> directory.
func newBackend(profileName string, bc config.Backend, logger *zap.Logger) (backend.Backend, backend.Normalizer, error) {
	id := chat.BackendID(bc.ID)
	dir := profile.BackendDir(profileName, bc.ID)

	switch bc.Kind {
	case config.KindLocal:
		var opts []local.Option
		if bc.EchoDelay > 0 {
			opts = append(opts, local.WithEchoDelay(bc.EchoDelay))
		}
		return local.New(id, opts...), local.Normalizer{}, nil

	case config.KindWhatsApp:
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, nil, err
		}
		b, err := whatsapp.New(context.Background(), id, whatsapp.Config{
			DevicePath:  filepath.Join(dir, "device.db"),
			DeviceName:  bc.DeviceName,
			SendTimeout: bc.SendTimeout,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return b, whatsapp.Normalizer{}, nil

	case config.KindMatrix:
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, nil, err
		}
		b, err := matrix.New(id, matrix.Config{
			Homeserver:  bc.Homeserver,
			UserID:      bc.UserID,
			AccessToken: bc.AccessToken,
			Password:    bc.Password,
			DeviceName:  bc.DeviceName,
			SessionPath: filepath.Join(dir, "session.json"),
			SendTimeout: bc.SendTimeout,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return b, matrix.Normalizer{}, nil

	case config.KindRelay:
		b, err := relay.New(id, relay.Config{
			BaseURL:           bc.URL,
			Token:             bc.Token,
			HeartbeatInterval: bc.HeartbeatInterval,
			SendTimeout:       bc.SendTimeout,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return b, relay.Normalizer{}, nil
	}
	return nil, nil, errUnknownKind(bc.Kind)
}

type errUnknownKind string

func (e errUnknownKind) Error() string {
	return "unknown backend kind " + string(e)
}
