package jobs

import (
	"log"
	"time"

	"crm.GO/config"
	"crm.GO/cron"
	crmService "crm.GO/service/crm"
)

func init() {
	cron.Register("crmreport", "0 6 * * 1", CrmReportJob)
}

// CrmReportJob logs weekly totals and caches the line in Redis when configured.
func CrmReportJob(args ...string) {
	db, err := config.SharedDB()
	if err != nil {
		log.Printf("crmreport: db: %v", err)
		return
	}
	report, err := crmService.BuildReport(db)
	if err != nil {
		log.Printf("crmreport: %v", err)
		return
	}
	log.Println(report.String())
	if config.RedisClient != nil {
		if err := config.RedisClient.Set(config.RedisCtx(), "crm:report", report.String(), 7*24*time.Hour).Err(); err != nil {
			log.Printf("crmreport: redis set failed: %v", err)
		}
	}
}
