// Package events provides a lightweight in-process pub/sub bus used to fan
// out module activity to interested listeners such as the live event stream.
package events

import "time"

// EventType identifies a category of event
type EventType string

const (
	// Plan lifecycle events
	PlanCreated  EventType = "PLAN_CREATED"
	PlanDeleted  EventType = "PLAN_DELETED"
	PlanExpired  EventType = "PLAN_EXPIRED"
	PlanShared   EventType = "PLAN_SHARED"
	PlanImported EventType = "PLAN_IMPORTED"

	// Analysis and tooling events
	RebalanceAnalyzed EventType = "REBALANCE_ANALYZED"
	ToolLaunched      EventType = "TOOL_LAUNCHED"

	// System events
	SystemStatusChanged EventType = "SYSTEM_STATUS_CHANGED"
	ErrorOccurred       EventType = "ERROR_OCCURRED"
)

// Event represents a single occurrence published on the bus
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Module    string    `json:"module"`
	Type      EventType `json:"type"`
	Data      EventData `json:"data,omitempty"`
}
