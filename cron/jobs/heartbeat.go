package jobs

import (
	"log"
	"time"

	"crm.GO/config"
	"crm.GO/cron"
)

func init() {
	cron.Register("heartbeat", "*/5 * * * *", Heartbeat)
}

// Heartbeat logs liveness and pings Redis when configured.
func Heartbeat(args ...string) {
	log.Printf("%s CRM is alive", time.Now().Format("02/01/2006-15:04:05"))
	if config.RedisClient != nil {
		if err := config.RedisClient.Ping(config.RedisCtx()).Err(); err != nil {
			log.Printf("heartbeat: redis ping failed: %v", err)
		}
	}
}
