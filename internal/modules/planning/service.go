package planning

import (
	"errors"
	"time"

	"github.com/aristath/fundplan/internal/domain"
	"github.com/aristath/fundplan/internal/events"
	"github.com/aristath/fundplan/internal/metrics"
	"github.com/aristath/fundplan/internal/modules/allocation"
	"github.com/rs/zerolog"
)

// Service orchestrates plan generation, storage and share codes
type Service struct {
	engine *allocation.Engine
	store  *Store
	bus    *events.Bus
	log    zerolog.Logger
}

// NewService creates a planning service. The event bus may be nil.
func NewService(engine *allocation.Engine, store *Store, bus *events.Bus, log zerolog.Logger) *Service {
	return &Service{
		engine: engine,
		store:  store,
		bus:    bus,
		log:    log.With().Str("service", "planning").Logger(),
	}
}

// Store exposes the underlying plan store
func (s *Service) Store() *Store {
	return s.store
}

// CreatePlan builds a plan from a profile and stores it with a TTL
func (s *Service) CreatePlan(profile domain.InvestorProfile, opts allocation.PlanOptions) (*StoredPlan, error) {
	start := time.Now()

	plan, err := s.engine.CreatePlan(profile, opts)
	if err != nil {
		var validationErrs allocation.ValidationErrors
		if errors.As(err, &validationErrs) {
			metrics.ValidationFailures.Inc()
		}
		return nil, err
	}

	metrics.PlanBuildDuration.Observe(time.Since(start).Seconds())

	return s.store.Save(plan), nil
}

// Share encodes a plan request into a share code. The request is run through
// the engine first so a code is only issued for inputs that produce a plan.
func (s *Service) Share(req SharedPlanRequest) (string, error) {
	if _, err := s.engine.CreatePlan(req.Profile, req.Options); err != nil {
		return "", err
	}

	code, err := EncodeShareCode(req)
	if err != nil {
		return "", err
	}

	metrics.ShareCodesIssued.Inc()

	if s.bus != nil {
		s.bus.Emit(events.PlanShared, "planning", &events.PlanSharedData{CodeLength: len(code)})
	}

	s.log.Debug().Int("code_length", len(code)).Msg("Share code issued")

	return code, nil
}

// Resolve decodes a share code and recomputes its plan. Nothing is stored;
// the recipient decides whether to save the result.
func (s *Service) Resolve(code string) (*allocation.Plan, error) {
	req, err := DecodeShareCode(code)
	if err != nil {
		return nil, err
	}

	plan, err := s.engine.CreatePlan(req.Profile, req.Options)
	if err != nil {
		return nil, err
	}

	metrics.ShareCodesResolved.Inc()

	if s.bus != nil {
		s.bus.Emit(events.PlanImported, "planning", &events.PlanImportedData{CodeLength: len(code)})
	}

	return plan, nil
}
