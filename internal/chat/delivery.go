package chat

import "fmt"

// DeliveryState is the lifecycle stage of a message.
type DeliveryState uint8

const (
	StateUnknown DeliveryState = iota
	Sending
	Sent
	Delivered
	Read
	Failed
)

var deliveryNames = map[DeliveryState]string{
	StateUnknown: "unknown",
	Sending:      "sending",
	Sent:         "sent",
	Delivered:    "delivered",
	Read:         "read",
	Failed:       "failed",
}

func (s DeliveryState) String() string {
	if name, ok := deliveryNames[s]; ok {
		return name
	}
	return fmt.Sprintf("DeliveryState(%d)", uint8(s))
}

// CanAdvanceTo reports whether moving from s to next is a forward transition.
// States only move forward through Sending, Sent, Delivered, Read. Failed can
// only be reached from Sending or Sent and nothing leaves it.
func (s DeliveryState) CanAdvanceTo(next DeliveryState) bool {
	switch {
	case next == StateUnknown || s == next || s == Failed:
		return false
	case next == Failed:
		return s == Sending || s == Sent || s == StateUnknown
	default:
		return next > s
	}
}

func (s DeliveryState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *DeliveryState) UnmarshalText(text []byte) error {
	state, err := ParseDeliveryState(string(text))
	if err != nil {
		return err
	}
	*s = state
	return nil
}

// ParseDeliveryState parses the lower-case name of a state.
func ParseDeliveryState(name string) (DeliveryState, error) {
	for state, n := range deliveryNames {
		if n == name {
			return state, nil
		}
	}
	return StateUnknown, fmt.Errorf("unknown delivery state %q", name)
}
