package backend

import (
	"github.com/matheus3301/chatters/internal/chat"
)

// Backends report a few things that are common to every protocol with these
// payloads. The shared Normalize helpers translate them, so backend-specific
// normalizers only handle their own native events.

// TransportChanged reports a connection change of the backend session.
type TransportChanged struct {
	Transport Transport
	Err       error
}

// SendResult is the eventual outcome of SendMessage.
type SendResult struct {
	Conversation chat.ConversationID
	MessageID    string
	// NativeID is the id the server assigned, when it differs from MessageID.
	NativeID string
	Err      error
}

// NormalizeCommon handles the payloads above. ok is false when the payload is
// not one of them.
func NormalizeCommon(evt RawEvent) (muts []chat.Mutation, ok bool) {
	switch p := evt.Payload.(type) {
	case TransportChanged:
		state := chat.ConnState{Phase: chat.Connecting}
		switch p.Transport {
		case TransportConnected:
			state.Phase = chat.Live
		case TransportDisconnected:
			state.Phase = chat.Degraded
			state.Reason = "transport disconnected"
			if p.Err != nil {
				state.Reason = p.Err.Error()
			}
		}
		return []chat.Mutation{chat.UpdateConnectionState{Backend: evt.Backend, State: state}}, true
	case SendResult:
		upd := chat.UpdateDeliveryState{
			Conversation: p.Conversation,
			MessageID:    p.MessageID,
			NativeID:     p.NativeID,
			State:        chat.Sent,
		}
		if p.Err != nil {
			upd.State = chat.Failed
			upd.Reason = p.Err.Error()
		}
		return []chat.Mutation{upd}, true
	}
	return nil, false
}
