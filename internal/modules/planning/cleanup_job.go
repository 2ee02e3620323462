package planning

import (
	"github.com/rs/zerolog"
)

// CleanupJob sweeps expired plans out of the store.
// It should be scheduled to run every few minutes.
type CleanupJob struct {
	store *Store
	log   zerolog.Logger
}

// NewCleanupJob creates a new plan cleanup job
func NewCleanupJob(store *Store, log zerolog.Logger) *CleanupJob {
	return &CleanupJob{
		store: store,
		log:   log.With().Str("job", "plan_cleanup").Logger(),
	}
}

// Run removes all expired plans from the store
func (j *CleanupJob) Run() error {
	deleted := j.store.DeleteExpired()
	if deleted > 0 {
		j.log.Info().
			Int("deleted", deleted).
			Int("remaining", j.store.Len()).
			Msg("Cleaned up expired plans")
	}
	return nil
}

// Name returns the job name for scheduling and logging
func (j *CleanupJob) Name() string {
	return "plan_cleanup"
}
