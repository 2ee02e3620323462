package planning

import "time"

// TTL values for stored plans.
// The TTL is added to time.Now() at save time to compute ExpiresAt.
const (
	// DefaultPlanTTL covers a long browsing session. The store holds
	// session state, not records: anything older is regenerated on demand.
	DefaultPlanTTL = 24 * time.Hour
)
