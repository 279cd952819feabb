package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates the scheduled jobs of the service.
type JobManager struct {
	catalogRefreshJob *CatalogRefreshJob
}

// NewJobManager creates the job manager. An empty refresh schedule disables the
// catalog refresh job.
func NewJobManager(reloader CatalogReloader, refreshSchedule string, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if refreshSchedule != "" {
		jm.catalogRefreshJob = NewCatalogRefreshJob(reloader, refreshSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if jm.catalogRefreshJob == nil {
		return nil
	}
	if err := jm.catalogRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start catalog refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.catalogRefreshJob != nil {
		jm.catalogRefreshJob.Stop()
	}
}
