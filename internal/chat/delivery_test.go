package chat

import "testing"

func TestCanAdvanceTo(t *testing.T) {
	tests := []struct {
		from, to DeliveryState
		want     bool
	}{
		{Sending, Sent, true},
		{Sending, Delivered, true},
		{Sent, Read, true},
		{Delivered, Read, true},
		{Sending, Failed, true},
		{Sent, Failed, true},
		{Delivered, Sending, false},
		{Read, Delivered, false},
		{Delivered, Failed, false},
		{Read, Failed, false},
		{Failed, Sent, false},
		{Failed, Read, false},
		{Sent, Sent, false},
		{StateUnknown, Delivered, true},
		{Sent, StateUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			if got := tt.from.CanAdvanceTo(tt.to); got != tt.want {
				t.Errorf("CanAdvanceTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeliveryStateText(t *testing.T) {
	for _, s := range []DeliveryState{Sending, Sent, Delivered, Read, Failed} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got DeliveryState
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if got != s {
			t.Errorf("round trip %s = %s", s, got)
		}
	}
	var s DeliveryState
	if err := s.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText(bogus) should fail")
	}
}
