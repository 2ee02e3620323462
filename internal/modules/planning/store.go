// Package planning keeps generated allocation plans for the lifetime of a
// session and turns plan requests into shareable codes. Plans live in memory
// with a TTL; nothing survives a restart.
package planning

import (
	"sort"
	"sync"
	"time"

	"github.com/aristath/fundplan/internal/events"
	"github.com/aristath/fundplan/internal/metrics"
	"github.com/aristath/fundplan/internal/modules/allocation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StoredPlan wraps an allocation plan with its storage identity
type StoredPlan struct {
	*allocation.Plan
	ID        string    `json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store is an in-memory, TTL-bounded plan store
type Store struct {
	plans map[string]*StoredPlan
	bus   *events.Bus
	log   zerolog.Logger
	ttl   time.Duration
	mu    sync.RWMutex
}

// NewStore creates a plan store. A non-positive TTL falls back to
// DefaultPlanTTL. The event bus may be nil.
func NewStore(ttl time.Duration, bus *events.Bus, log zerolog.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultPlanTTL
	}
	return &Store{
		plans: make(map[string]*StoredPlan),
		bus:   bus,
		log:   log.With().Str("service", "planning").Logger(),
		ttl:   ttl,
	}
}

// Save stores a plan under a fresh UUID and returns the stored wrapper
func (s *Store) Save(plan *allocation.Plan) *StoredPlan {
	stored := &StoredPlan{
		Plan:      plan,
		ID:        uuid.New().String(),
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.plans[stored.ID] = stored
	size := len(s.plans)
	s.mu.Unlock()

	metrics.PlansCreated.Inc()
	metrics.PlansActive.Set(float64(size))

	if s.bus != nil {
		s.bus.Emit(events.PlanCreated, "planning", &events.PlanCreatedData{
			PlanID:           stored.ID,
			EquityPercentage: plan.EquityPercentage,
			DebtPercentage:   plan.DebtPercentage,
			FundCount:        len(plan.EquityAllocations) + len(plan.DebtAllocations),
		})
	}

	s.log.Debug().
		Str("plan_id", stored.ID).
		Time("expires_at", stored.ExpiresAt).
		Msg("Plan stored")

	return stored
}

// Get returns a stored plan. Expired entries are hidden even before the
// cleanup job sweeps them.
func (s *Store) Get(id string) (*StoredPlan, bool) {
	s.mu.RLock()
	stored, ok := s.plans[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(stored.ExpiresAt) {
		return nil, false
	}
	return stored, true
}

// List returns all live plans, newest first
func (s *Store) List() []*StoredPlan {
	now := time.Now()

	s.mu.RLock()
	out := make([]*StoredPlan, 0, len(s.plans))
	for _, stored := range s.plans {
		if now.After(stored.ExpiresAt) {
			continue
		}
		out = append(out, stored)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Delete removes a plan. Returns false when the id is unknown.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	_, ok := s.plans[id]
	if ok {
		delete(s.plans, id)
	}
	size := len(s.plans)
	s.mu.Unlock()

	if !ok {
		return false
	}

	metrics.PlansDeleted.Inc()
	metrics.PlansActive.Set(float64(size))

	if s.bus != nil {
		s.bus.Emit(events.PlanDeleted, "planning", &events.PlanDeletedData{PlanID: id})
	}

	s.log.Debug().Str("plan_id", id).Msg("Plan deleted")

	return true
}

// DeleteExpired removes every expired plan and returns how many were removed
func (s *Store) DeleteExpired() int {
	now := time.Now()

	s.mu.Lock()
	deleted := 0
	for id, stored := range s.plans {
		if now.After(stored.ExpiresAt) {
			delete(s.plans, id)
			deleted++
		}
	}
	size := len(s.plans)
	s.mu.Unlock()

	if deleted == 0 {
		return 0
	}

	metrics.PlansExpired.Add(float64(deleted))
	metrics.PlansActive.Set(float64(size))

	if s.bus != nil {
		s.bus.Emit(events.PlanExpired, "planning", &events.PlanExpiredData{Count: deleted})
	}

	return deleted
}

// Len reports the number of entries, including expired ones not yet swept
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.plans)
}
