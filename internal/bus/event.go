package bus

import "time"

// Event kinds published by the daemon.
const (
	KindBackendState    = "backend.state_changed"
	KindMessageReceived = "message.received"
	KindSendFailed      = "message.send_failed"
	KindSendAck         = "message.send_ack"
)

// Event represents a domain event published on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}
