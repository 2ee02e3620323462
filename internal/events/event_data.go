package events

// EventData is the interface that all event data types must implement
// This allows for type-safe event data while maintaining flexibility
type EventData interface {
	// EventType returns the event type this data is associated with
	EventType() EventType
}

// PlanCreatedData contains data for PlanCreated events
type PlanCreatedData struct {
	PlanID           string  `json:"plan_id"`
	EquityPercentage float64 `json:"equity_percentage"`
	DebtPercentage   float64 `json:"debt_percentage"`
	FundCount        int     `json:"fund_count"`
}

// EventType returns the event type for PlanCreatedData
func (d *PlanCreatedData) EventType() EventType {
	return PlanCreated
}

// PlanDeletedData contains data for PlanDeleted events
type PlanDeletedData struct {
	PlanID string `json:"plan_id"`
}

// EventType returns the event type for PlanDeletedData
func (d *PlanDeletedData) EventType() EventType {
	return PlanDeleted
}

// PlanExpiredData contains data for PlanExpired events
type PlanExpiredData struct {
	Count int `json:"count"`
}

// EventType returns the event type for PlanExpiredData
func (d *PlanExpiredData) EventType() EventType {
	return PlanExpired
}

// PlanSharedData contains data for PlanShared events
type PlanSharedData struct {
	CodeLength int `json:"code_length"`
}

// EventType returns the event type for PlanSharedData
func (d *PlanSharedData) EventType() EventType {
	return PlanShared
}

// PlanImportedData contains data for PlanImported events
type PlanImportedData struct {
	CodeLength int `json:"code_length"`
}

// EventType returns the event type for PlanImportedData
func (d *PlanImportedData) EventType() EventType {
	return PlanImported
}

// RebalanceAnalyzedData contains data for RebalanceAnalyzed events
type RebalanceAnalyzedData struct {
	FundsAnalyzed    int     `json:"funds_analyzed"`
	DriftedFunds     int     `json:"drifted_funds"`
	MaxDrift         float64 `json:"max_drift"`
	MeanDrift        float64 `json:"mean_drift"`
	RebalanceNeeded  bool    `json:"rebalance_needed"`
	TradesRecommends int     `json:"trades_recommended"`
}

// EventType returns the event type for RebalanceAnalyzedData
func (d *RebalanceAnalyzedData) EventType() EventType {
	return RebalanceAnalyzed
}

// ToolLaunchedData contains data for ToolLaunched events
type ToolLaunchedData struct {
	Name string `json:"name"`
	PID  int    `json:"pid"`
}

// EventType returns the event type for ToolLaunchedData
func (d *ToolLaunchedData) EventType() EventType {
	return ToolLaunched
}

// SystemStatusChangedData contains data for SystemStatusChanged events
type SystemStatusChangedData struct {
	Status    string `json:"status,omitempty"`
	Timestamp string `json:"timestamp"`
}

// EventType returns the event type for SystemStatusChangedData
func (d *SystemStatusChangedData) EventType() EventType {
	return SystemStatusChanged
}

// ErrorEventData contains data for ErrorOccurred events
type ErrorEventData struct {
	Error   string                 `json:"error"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// EventType returns the event type for ErrorEventData
func (d *ErrorEventData) EventType() EventType {
	return ErrorOccurred
}
