package product

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"gorm.io/gorm"

	"crm.GO/core/cache"
	crmEntity "crm.GO/model/entity/crm"
)

// CacheTag invalidates all cached product pages at once.
const CacheTag = "products"

type ProductRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

var (
	mu        sync.Mutex
	instances = map[*gorm.DB]*ProductRepository{}
)

// GetProductRepository returns a per-DB singleton.
func GetProductRepository(db *gorm.DB) *ProductRepository {
	mu.Lock()
	defer mu.Unlock()
	if r, ok := instances[db]; ok {
		return r
	}
	r := NewProductRepository(db)
	instances[db] = r
	return r
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db, cache: cache.GetInstance()}
}

// Filter mirrors the product filterset: name substring, price and stock
// ranges, plus the low-stock shortcut (stock strictly below StockLt).
type Filter struct {
	Name     *string
	PriceGte *float64
	PriceLte *float64
	StockGte *int
	StockLte *int
	StockLt  *int
}

// key renders the filter by value for cache lookups. Formatting the struct
// directly would print the pointer addresses, so equal filters would never
// share an entry and a reused address could serve another filter's page.
func (f Filter) key() string {
	s := func(p *string) string {
		if p == nil {
			return "-"
		}
		return *p
	}
	fl := func(p *float64) string {
		if p == nil {
			return "-"
		}
		return strconv.FormatFloat(*p, 'f', -1, 64)
	}
	n := func(p *int) string {
		if p == nil {
			return "-"
		}
		return strconv.Itoa(*p)
	}
	return strings.Join([]string{
		s(f.Name),
		fl(f.PriceGte), fl(f.PriceLte),
		n(f.StockGte), n(f.StockLte), n(f.StockLt),
	}, "|")
}

var sortFields = map[string]string{
	"name":  "name",
	"price": "price",
	"stock": "stock",
}

func OrderExpr(orderBy []string) (string, error) {
	if len(orderBy) == 0 {
		return "entity_id ASC", nil
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

func (r *ProductRepository) applyFilter(q *gorm.DB, f Filter) *gorm.DB {
	if f.Name != nil && *f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(*f.Name)+"%")
	}
	if f.PriceGte != nil {
		q = q.Where("price >= ?", *f.PriceGte)
	}
	if f.PriceLte != nil {
		q = q.Where("price <= ?", *f.PriceLte)
	}
	if f.StockGte != nil {
		q = q.Where("stock >= ?", *f.StockGte)
	}
	if f.StockLte != nil {
		q = q.Where("stock <= ?", *f.StockLte)
	}
	if f.StockLt != nil {
		q = q.Where("stock < ?", *f.StockLt)
	}
	return q
}

type listPage struct {
	Items []crmEntity.Product
	Total int64
}

// List returns one page of products plus the unpaginated total. Results are
// cached per (filter, order, page) tuple and invalidated on writes.
func (r *ProductRepository) List(f Filter, orderBy []string, currentPage, pageSize int) ([]crmEntity.Product, int64, error) {
	order, err := OrderExpr(orderBy)
	if err != nil {
		return nil, 0, err
	}

	cacheKey := []interface{}{"product_list", f.key(), order, currentPage, pageSize}
	if v, ok := r.cache.GetN(cacheKey...); ok {
		if page, ok := v.(listPage); ok {
			return page.Items, page.Total, nil
		}
	}

	q := r.applyFilter(r.db.Model(&crmEntity.Product{}), f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []crmEntity.Product
	err = q.Order(order).
		Offset((currentPage - 1) * pageSize).
		Limit(pageSize).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	r.cache.SetN(cacheKey, listPage{Items: products, Total: total}, 300, []string{CacheTag})
	return products, total, nil
}

func (r *ProductRepository) FindByID(id uint) (*crmEntity.Product, error) {
	var p crmEntity.Product
	if err := r.db.First(&p, "entity_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindByIDs(ids []uint) ([]crmEntity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []crmEntity.Product
	err := r.db.Where("entity_id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *ProductRepository) Create(p *crmEntity.Product) error {
	if err := r.db.Create(p).Error; err != nil {
		return err
	}
	r.cache.InvalidateTag(CacheTag)
	return nil
}

// FindLowStock returns products with stock strictly below threshold.
func (r *ProductRepository) FindLowStock(threshold int) ([]crmEntity.Product, error) {
	var products []crmEntity.Product
	err := r.db.Where("stock < ?", threshold).Order("entity_id ASC").Find(&products).Error
	return products, err
}

// RestockLowStock increments stock by amount for every product below
// threshold, in one transaction, and returns the updated rows.
func (r *ProductRepository) RestockLowStock(threshold, amount int) ([]crmEntity.Product, error) {
	var updated []crmEntity.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var low []crmEntity.Product
		if err := tx.Where("stock < ?", threshold).Order("entity_id ASC").Find(&low).Error; err != nil {
			return err
		}
		if len(low) == 0 {
			return nil
		}
		ids := make([]uint, len(low))
		for i, p := range low {
			ids[i] = p.EntityID
		}
		if err := tx.Model(&crmEntity.Product{}).
			Where("entity_id IN ?", ids).
			UpdateColumn("stock", gorm.Expr("stock + ?", amount)).Error; err != nil {
			return err
		}
		return tx.Where("entity_id IN ?", ids).Order("entity_id ASC").Find(&updated).Error
	})
	if err != nil {
		return nil, err
	}
	if len(updated) > 0 {
		r.cache.InvalidateTag(CacheTag)
	}
	return updated, nil
}

func (r *ProductRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&crmEntity.Product{}).Count(&n).Error
	return n, err
}
