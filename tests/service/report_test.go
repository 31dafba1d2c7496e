package servicetest

import (
	"fmt"
	"testing"
	"time"

	crmEntity "crm.GO/model/entity/crm"
	orderRepo "crm.GO/model/repository/order"
	crmService "crm.GO/service/crm"
)

func TestBuildReport_Empty(t *testing.T) {
	db := importDB(t)

	report, err := crmService.BuildReport(db)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if report.Customers != 0 || report.Products != 0 || report.Orders != 0 || report.Revenue != 0 {
		t.Errorf("empty report = %+v", report)
	}
	if report.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
}

func TestBuildReport_Totals(t *testing.T) {
	db := importDB(t)

	cust := &crmEntity.Customer{Name: "Reporter", Email: "report@example.com"}
	if err := db.Create(cust).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	p1 := &crmEntity.Product{Name: "A", Price: 12.50, Stock: 5}
	p2 := &crmEntity.Product{Name: "B", Price: 7.50, Stock: 5}
	if err := db.Create(p1).Error; err != nil {
		t.Fatalf("seed p1: %v", err)
	}
	if err := db.Create(p2).Error; err != nil {
		t.Fatalf("seed p2: %v", err)
	}

	repo := orderRepo.GetOrderRepository(db)
	if _, err := repo.CreateForCustomer(cust, []crmEntity.Product{*p1, *p2}); err != nil {
		t.Fatalf("order: %v", err)
	}

	report, err := crmService.BuildReport(db)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if report.Customers != 1 || report.Products != 2 || report.Orders != 1 {
		t.Errorf("counts = %+v, want 1/2/1", report)
	}
	if report.Revenue != 20.00 {
		t.Errorf("revenue = %v, want 20.00", report.Revenue)
	}
}

func TestReport_String(t *testing.T) {
	at := time.Date(2026, 8, 24, 6, 0, 0, 0, time.UTC)
	r := &crmService.Report{Customers: 3, Orders: 2, Revenue: 42.5, GeneratedAt: at}

	want := fmt.Sprintf("%s - Report: 3 customers, 2 orders, 42.50 revenue", at.Format("2006-01-02 15:04:05"))
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
