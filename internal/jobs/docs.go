// Package jobs provides scheduled background tasks for the order-taking service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// CatalogRefreshJob reloads the price list file behind the product catalog, so price
// and product changes take effect without a restart.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(catalog, "0 */5 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Reload failures are logged; the catalog keeps serving its previous price list.
package jobs
