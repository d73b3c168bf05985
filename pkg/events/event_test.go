package events

import (
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	aggregateID := "conv-123"

	before := time.Now().UTC()
	event := NewBaseEvent("ConversationStarted", aggregateID, "Conversation")
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}

	if event.EventType() != "ConversationStarted" {
		t.Errorf("expected event type %q, got %q", "ConversationStarted", event.EventType())
	}

	if event.AggregateID() != aggregateID {
		t.Errorf("expected aggregate ID %v, got %v", aggregateID, event.AggregateID())
	}

	if event.AggregateType() != "Conversation" {
		t.Errorf("expected aggregate type %q, got %q", "Conversation", event.AggregateType())
	}

	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestNewBaseEvent_UniqueIDs(t *testing.T) {
	a := NewBaseEvent("TurnProcessed", "conv-1", "Conversation")
	b := NewBaseEvent("TurnProcessed", "conv-1", "Conversation")

	if a.EventID() == b.EventID() {
		t.Error("expected distinct event IDs for distinct events")
	}
}

func TestEventCollector(t *testing.T) {
	var c EventCollector

	c.Record(NewBaseEvent("A", "conv-1", "Conversation"))
	c.Record(NewBaseEvent("B", "conv-1", "Conversation"))

	if got := len(c.Events()); got != 2 {
		t.Fatalf("expected 2 collected events, got %d", got)
	}

	drained := c.ClearEvents()
	if len(drained) != 2 {
		t.Fatalf("expected 2 drained events, got %d", len(drained))
	}
	if len(c.Events()) != 0 {
		t.Error("expected collector to be empty after ClearEvents")
	}
}
