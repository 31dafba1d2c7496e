package customer

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	crmEntity "crm.GO/model/entity/crm"
)

type CustomerRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

var (
	mu        sync.Mutex
	instances = map[*gorm.DB]*CustomerRepository{}
)

// GetCustomerRepository returns a per-DB singleton.
func GetCustomerRepository(db *gorm.DB) *CustomerRepository {
	mu.Lock()
	defer mu.Unlock()
	if r, ok := instances[db]; ok {
		return r
	}
	r := NewCustomerRepository(db)
	instances[db] = r
	return r
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	sqlDB, _ := db.DB()
	return &CustomerRepository{db: db, sqlDB: sqlDB}
}

// Filter mirrors the customer filterset: substring matches are
// case-insensitive, created_at is a closed range, phone matches by prefix.
type Filter struct {
	Name         *string
	Email        *string
	CreatedAtGte *time.Time
	CreatedAtLte *time.Time
	PhonePrefix  *string
}

var sortFields = map[string]string{
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
}

// OrderExpr translates orderBy keys ("-name" for descending) into an SQL
// ORDER BY expression. Unknown keys are rejected.
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

func (r *CustomerRepository) applyFilter(q *gorm.DB, f Filter) *gorm.DB {
	if f.Name != nil && *f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(*f.Name)+"%")
	}
	if f.Email != nil && *f.Email != "" {
		q = q.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(*f.Email)+"%")
	}
	if f.CreatedAtGte != nil {
		q = q.Where("created_at >= ?", *f.CreatedAtGte)
	}
	if f.CreatedAtLte != nil {
		q = q.Where("created_at <= ?", *f.CreatedAtLte)
	}
	if f.PhonePrefix != nil && *f.PhonePrefix != "" {
		// LIKE folds case under MySQL's default collation; phones are digits,
		// '+', separators, so the prefix match is effectively exact.
		q = q.Where("phone LIKE ?", *f.PhonePrefix+"%")
	}
	return q
}

// List returns one page of customers plus the unpaginated total.
func (r *CustomerRepository) List(f Filter, orderBy []string, currentPage, pageSize int) ([]crmEntity.Customer, int64, error) {
	order, err := OrderExpr(orderBy)
	if err != nil {
		return nil, 0, err
	}
	q := r.applyFilter(r.db.Model(&crmEntity.Customer{}), f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []crmEntity.Customer
	err = q.Order(order).
		Offset((currentPage - 1) * pageSize).
		Limit(pageSize).
		Find(&customers).Error
	return customers, total, err
}

func (r *CustomerRepository) FindByID(id uint) (*crmEntity.Customer, error) {
	var c crmEntity.Customer
	if err := r.db.First(&c, "entity_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByIDs preserves the input order (used to hydrate search hits).
func (r *CustomerRepository) FindByIDs(ids []uint) ([]crmEntity.Customer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var customers []crmEntity.Customer
	if err := r.db.Where("entity_id IN ?", ids).Find(&customers).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]crmEntity.Customer, len(customers))
	for _, c := range customers {
		byID[c.EntityID] = c
	}
	ordered := make([]crmEntity.Customer, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}

// ExistsByEmail checks uniqueness with a raw scalar query for minimal overhead.
func (r *CustomerRepository) ExistsByEmail(email string) (bool, error) {
	const query = `SELECT COUNT(*) FROM crm_customer WHERE email = ?`
	var n int64
	if r.sqlDB != nil {
		if err := r.sqlDB.QueryRow(query, email).Scan(&n); err != nil {
			return false, err
		}
		return n > 0, nil
	}
	err := r.db.Model(&crmEntity.Customer{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

// ExistingEmails returns which of the given emails are already taken, in one query.
func (r *CustomerRepository) ExistingEmails(emails []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(emails))
	if len(emails) == 0 {
		return existing, nil
	}
	var found []string
	err := r.db.Model(&crmEntity.Customer{}).
		Where("email IN ?", emails).
		Pluck("email", &found).Error
	if err != nil {
		return nil, err
	}
	for _, e := range found {
		existing[e] = true
	}
	return existing, nil
}

func (r *CustomerRepository) Create(c *crmEntity.Customer) error {
	return r.db.Create(c).Error
}

// CreateBatch inserts all customers in a single transaction (all or nothing).
func (r *CustomerRepository) CreateBatch(customers []*crmEntity.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(customers).Error
	})
}

func (r *CustomerRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&crmEntity.Customer{}).Count(&n).Error
	return n, err
}
