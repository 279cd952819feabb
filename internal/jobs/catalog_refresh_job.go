package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// CatalogReloader re-reads the price list backing the product catalog.
type CatalogReloader interface {
	Reload(ctx context.Context) error
}

// CatalogRefreshJob reloads the product catalog on a cron schedule with seconds.
// A failed reload is logged and the previous price list stays in use.
type CatalogRefreshJob struct {
	reloader CatalogReloader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCatalogRefreshJob creates a job reloading the catalog on schedule, for example
// "0 */5 * * * *" for every five minutes.
func NewCatalogRefreshJob(reloader CatalogReloader, schedule string, logger *slog.Logger) *CatalogRefreshJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogRefreshJob{
		reloader: reloader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "catalog_refresh_job"),
	}
}

// Start schedules the job. It fails for an invalid schedule.
func (j *CatalogRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.reloader.Reload(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Catalog refresh job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job and waits for a running reload to finish.
func (j *CatalogRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}
