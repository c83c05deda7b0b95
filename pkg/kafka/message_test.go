package kafka

import (
	"math"
	"testing"
)

func TestMessageBuilder_Build(t *testing.T) {
	msg, err := NewMessage().
		WithKey("booking-1").
		WithValue(map[string]string{"status": "active"}).
		WithEventType("booking.started").
		WithCorrelationID("req-42").
		WithSource("parking").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.Key != "booking-1" {
		t.Errorf("expected key booking-1, got %s", msg.Key)
	}
	if msg.GetEventID() == "" {
		t.Error("expected generated event id")
	}
	if msg.GetEventType() != "booking.started" {
		t.Errorf("expected event type booking.started, got %s", msg.GetEventType())
	}
	if msg.GetCorrelationID() != "req-42" {
		t.Errorf("expected correlation id req-42, got %s", msg.GetCorrelationID())
	}
	if msg.Headers[HeaderTimestamp] == "" {
		t.Error("expected timestamp header")
	}

	var decoded map[string]string
	if err := msg.DecodeValue(&decoded); err != nil {
		t.Fatalf("decode value: %v", err)
	}
	if decoded["status"] != "active" {
		t.Errorf("expected status active, got %q", decoded["status"])
	}
}

func TestMessageBuilder_EmptyCorrelationIDIsSkipped(t *testing.T) {
	msg, err := NewMessage().WithKey("k").WithValue("v").WithCorrelationID("").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := msg.Headers[HeaderCorrelationID]; ok {
		t.Error("empty correlation id should not set a header")
	}
}

func TestMessageBuilder_UnencodableValue(t *testing.T) {
	_, err := NewMessage().WithKey("k").WithValue(math.Inf(1)).Build()
	if err == nil {
		t.Fatal("expected encoding error for +Inf")
	}
}
