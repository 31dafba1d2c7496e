package config

// CronJob maps a schedule to a job function.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs holds statically configured jobs. CRM jobs (heartbeat, lowstock,
// crmreport) self-register from cron/jobs via init() to avoid an import
// cycle with config.NewDB.
var CronJobs = map[string]CronJob{
	// Add more jobs here
}
