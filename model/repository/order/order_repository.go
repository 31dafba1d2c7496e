package order

import (
	"database/sql"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	crmEntity "crm.GO/model/entity/crm"
)

type OrderRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

var (
	mu        sync.Mutex
	instances = map[*gorm.DB]*OrderRepository{}
)

// GetOrderRepository returns a per-DB singleton.
func GetOrderRepository(db *gorm.DB) *OrderRepository {
	mu.Lock()
	defer mu.Unlock()
	if r, ok := instances[db]; ok {
		return r
	}
	r := NewOrderRepository(db)
	instances[db] = r
	return r
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	sqlDB, _ := db.DB()
	return &OrderRepository{db: db, sqlDB: sqlDB}
}

// Filter mirrors the order filterset. CustomerName and ProductName are
// case-insensitive substring matches across the joins; ProductID is exact.
type Filter struct {
	TotalGte     *float64
	TotalLte     *float64
	OrderDateGte *time.Time
	OrderDateLte *time.Time
	CustomerName *string
	ProductName  *string
	ProductID    *uint
}

var sortFields = map[string]string{
	"total_amount": "crm_order.total_amount",
	"order_date":   "crm_order.order_date",
}

func OrderExpr(orderBy []string) (string, error) {
	if len(orderBy) == 0 {
		return "crm_order.entity_id ASC", nil
	}
	parts := make([]string, 0, len(orderBy))
	for _, key := range orderBy {
		dir := "ASC"
		field := key
		if strings.HasPrefix(key, "-") {
			dir = "DESC"
			field = key[1:]
		}
		col, ok := sortFields[field]
		if !ok {
			return "", fmt.Errorf("unsupported sort field %q", field)
		}
		parts = append(parts, col+" "+dir)
	}
	return strings.Join(parts, ", "), nil
}

func (f Filter) needsJoin() bool {
	return (f.CustomerName != nil && *f.CustomerName != "") ||
		(f.ProductName != nil && *f.ProductName != "") ||
		f.ProductID != nil
}

func (r *OrderRepository) filtered(f Filter) *gorm.DB {
	q := r.db.Model(&crmEntity.Order{})
	if f.TotalGte != nil {
		q = q.Where("crm_order.total_amount >= ?", *f.TotalGte)
	}
	if f.TotalLte != nil {
		q = q.Where("crm_order.total_amount <= ?", *f.TotalLte)
	}
	if f.OrderDateGte != nil {
		q = q.Where("crm_order.order_date >= ?", *f.OrderDateGte)
	}
	if f.OrderDateLte != nil {
		q = q.Where("crm_order.order_date <= ?", *f.OrderDateLte)
	}
	if f.CustomerName != nil && *f.CustomerName != "" {
		q = q.Joins("JOIN crm_customer ON crm_customer.entity_id = crm_order.customer_id").
			Where("LOWER(crm_customer.name) LIKE ?", "%"+strings.ToLower(*f.CustomerName)+"%")
	}
	if (f.ProductName != nil && *f.ProductName != "") || f.ProductID != nil {
		q = q.Joins("JOIN crm_order_product ON crm_order_product.order_id = crm_order.entity_id").
			Joins("JOIN crm_product ON crm_product.entity_id = crm_order_product.product_id")
		if f.ProductName != nil && *f.ProductName != "" {
			q = q.Where("LOWER(crm_product.name) LIKE ?", "%"+strings.ToLower(*f.ProductName)+"%")
		}
		if f.ProductID != nil {
			q = q.Where("crm_product.entity_id = ?", *f.ProductID)
		}
	}
	return q
}

// List pages orders matching the filter. It selects the page of IDs first,
// then hydrates with customer and product associations.
func (r *OrderRepository) List(f Filter, orderBy []string, currentPage, pageSize int) ([]crmEntity.Order, int64, error) {
	order, err := OrderExpr(orderBy)
	if err != nil {
		return nil, 0, err
	}

	countQ := r.filtered(f)
	if f.needsJoin() {
		countQ = countQ.Distinct("crm_order.entity_id")
	}
	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Grouping by the primary key dedupes join matches while still allowing
	// ORDER BY on non-selected columns.
	q := r.filtered(f)
	if f.needsJoin() {
		q = q.Group("crm_order.entity_id")
	}
	var ids []uint
	err = q.Order(order).
		Offset((currentPage - 1) * pageSize).
		Limit(pageSize).
		Pluck("crm_order.entity_id", &ids).Error
	if err != nil {
		return nil, 0, err
	}

	orders, err := r.FindByIDs(ids)
	return orders, total, err
}

func (r *OrderRepository) FindByID(id uint) (*crmEntity.Order, error) {
	var o crmEntity.Order
	err := r.db.Preload("Customer").Preload("Products").
		First(&o, "entity_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// FindByIDs preserves the input order.
func (r *OrderRepository) FindByIDs(ids []uint) ([]crmEntity.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var orders []crmEntity.Order
	err := r.db.Preload("Customer").Preload("Products").
		Where("entity_id IN ?", ids).Find(&orders).Error
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]crmEntity.Order, len(orders))
	for _, o := range orders {
		byID[o.EntityID] = o
	}
	ordered := make([]crmEntity.Order, 0, len(ids))
	for _, id := range ids {
		if o, ok := byID[id]; ok {
			ordered = append(ordered, o)
		}
	}
	return ordered, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// CreateForCustomer creates the order, associates products, and persists the
// total (sum of product prices, each product counted once) in one
// transaction. The whole operation succeeds or fails together.
func (r *OrderRepository) CreateForCustomer(customer *crmEntity.Customer, products []crmEntity.Product) (*crmEntity.Order, error) {
	o := &crmEntity.Order{CustomerID: customer.EntityID}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		if err := tx.Model(o).Association("Products").Append(products); err != nil {
			return err
		}
		var total float64
		for _, p := range products {
			total += p.Price
		}
		o.TotalAmount = roundCents(total)
		return tx.Model(o).UpdateColumn("total_amount", o.TotalAmount).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(o.EntityID)
}

func (r *OrderRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&crmEntity.Order{}).Count(&n).Error
	return n, err
}

// RevenueTotal sums total_amount across all orders. Raw SQL for a single scalar.
func (r *OrderRepository) RevenueTotal() (float64, error) {
	const query = `SELECT COALESCE(SUM(total_amount), 0) FROM crm_order`
	var total float64
	if r.sqlDB != nil {
		err := r.sqlDB.QueryRow(query).Scan(&total)
		return total, err
	}
	err := r.db.Raw(query).Scan(&total).Error
	return total, err
}
