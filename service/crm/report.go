package crm

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	customerRepo "crm.GO/model/repository/customer"
	orderRepo "crm.GO/model/repository/order"
	productRepo "crm.GO/model/repository/product"
)

// Report aggregates CRM-wide totals for the weekly cron job and dashboard.
type Report struct {
	Customers   int64
	Products    int64
	Orders      int64
	Revenue     float64
	GeneratedAt time.Time
}

// BuildReport gathers the totals. Counts come from the repositories, revenue
// from a single aggregate query.
func BuildReport(db *gorm.DB) (*Report, error) {
	customers, err := customerRepo.GetCustomerRepository(db).Count()
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}
	products, err := productRepo.GetProductRepository(db).Count()
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	orders, err := orderRepo.GetOrderRepository(db).Count()
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	revenue, err := orderRepo.GetOrderRepository(db).RevenueTotal()
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}
	return &Report{
		Customers:   customers,
		Products:    products,
		Orders:      orders,
		Revenue:     revenue,
		GeneratedAt: time.Now(),
	}, nil
}

// String renders the one-line log format used by the crmreport job.
func (r *Report) String() string {
	return fmt.Sprintf("%s - Report: %d customers, %d orders, %.2f revenue",
		r.GeneratedAt.Format("2006-01-02 15:04:05"), r.Customers, r.Orders, r.Revenue)
}
