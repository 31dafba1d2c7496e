package jobs

import (
	"log"

	"crm.GO/config"
	"crm.GO/cron"
	productRepo "crm.GO/model/repository/product"
)

func init() {
	cron.Register("lowstock", "0 */12 * * *", LowStockJob)
}

// LowStockJob restocks products with stock below 10 by +10 (same semantics
// as the updateLowStockProducts mutation).
func LowStockJob(args ...string) {
	db, err := config.SharedDB()
	if err != nil {
		log.Printf("lowstock: db: %v", err)
		return
	}
	updated, err := productRepo.GetProductRepository(db).RestockLowStock(10, 10)
	if err != nil {
		log.Printf("lowstock: restock: %v", err)
		return
	}
	for _, p := range updated {
		log.Printf("lowstock: restocked %q to %d", p.Name, p.Stock)
	}
	log.Printf("lowstock: %d products updated", len(updated))
}
