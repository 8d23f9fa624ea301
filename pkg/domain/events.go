package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeCreated    EventType = "node_created"
	EventDedupHit       EventType = "dedup_hit"
	EventNoveltySkipped EventType = "novelty_skipped"
	EventSessionEnd     EventType = "session_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// NodeEvent describes a single candidate outcome during expansion.
type NodeEvent struct {
	EventBase
	NodeID    string `json:"node_id,omitempty"`
	Transform string `json:"transform"`
	Depth     int    `json:"depth"`

	// Occurrences carries the updated counter on dedup hits.
	Occurrences int `json:"occurrences,omitempty"`
}

// SessionEvent summarizes a finished run.
type SessionEvent struct {
	EventBase
	Nodes    int  `json:"nodes"`
	Edges    int  `json:"edges"`
	Grounded bool `json:"grounded"`
}

// LifecycleHooks defines callbacks for engine observability. All hooks are
// optional and must not mutate the graph.
type LifecycleHooks struct {
	OnNodeCreated    func(context.Context, *NodeEvent)
	OnDedupHit       func(context.Context, *NodeEvent)
	OnNoveltySkipped func(context.Context, *NodeEvent)
	OnSessionEnd     func(context.Context, *SessionEvent)
}
