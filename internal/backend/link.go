package backend

import "context"

// LinkEventType enumerates device-linking steps.
type LinkEventType string

const (
	LinkCode          LinkEventType = "code"
	LinkAuthenticated LinkEventType = "authenticated"
	LinkFailed        LinkEventType = "failed"
	LinkTimeout       LinkEventType = "timeout"
)

// LinkEvent is one step of linking this device to an account.
// Code is set for LinkCode and holds the provisioning payload to render as a QR code.
type LinkEvent struct {
	Type    LinkEventType
	Code    string
	Message string
}

// Linker is implemented by backends that pair as a secondary device.
// The channel closes after a terminal event.
type Linker interface {
	Linked() bool
	Link(ctx context.Context) (<-chan LinkEvent, error)
}

// Unlinker is implemented by linked backends that can remove their device
// from the account. The stored credentials are discarded.
type Unlinker interface {
	Logout(ctx context.Context) error
}
