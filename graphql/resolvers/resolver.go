package resolvers

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	customerRepo "crm.GO/model/repository/customer"
	eventRepo "crm.GO/model/repository/event"
	orderRepo "crm.GO/model/repository/order"
	productRepo "crm.GO/model/repository/product"

	gqlregistry "crm.GO/graphql/registry"
)

// QueryResolver is the single resolver for all Query fields.
// Methods live in customer.go, product.go, order.go, search.go.
// New Query fields: use RegisterSchemaExtension + add method on QueryResolver,
// or use _extension for fully dynamic resolvers.
type QueryResolver struct {
	db *gorm.DB
}

func NewQueryResolver(db *gorm.DB) *QueryResolver {
	return &QueryResolver{db: db}
}

// MutationResolver implements all Mutation fields (mutation.go).
type MutationResolver struct {
	db *gorm.DB
}

func NewMutationResolver(db *gorm.DB) *MutationResolver {
	return &MutationResolver{db: db}
}

func (r *QueryResolver) customerRepo() *customerRepo.CustomerRepository {
	return customerRepo.GetCustomerRepository(r.db)
}

func (r *QueryResolver) productRepo() *productRepo.ProductRepository {
	return productRepo.GetProductRepository(r.db)
}

func (r *QueryResolver) orderRepo() *orderRepo.OrderRepository {
	return orderRepo.GetOrderRepository(r.db)
}

func (r *QueryResolver) searchService() *SearchService {
	return GetSearchService()
}

func (m *MutationResolver) customerRepo() *customerRepo.CustomerRepository {
	return customerRepo.GetCustomerRepository(m.db)
}

func (m *MutationResolver) productRepo() *productRepo.ProductRepository {
	return productRepo.GetProductRepository(m.db)
}

func (m *MutationResolver) orderRepo() *orderRepo.OrderRepository {
	return orderRepo.GetOrderRepository(m.db)
}

func (m *MutationResolver) eventRepo() *eventRepo.EventRepository {
	return eventRepo.GetEventRepository(m.db)
}

// Hello is the canonical smoke-test field.
func (r *QueryResolver) Hello(ctx context.Context) string {
	return "Hello, GraphQL!"
}

// Extension dispatches to registered custom resolvers.
func (r *QueryResolver) Extension(ctx context.Context, args struct {
	Name string
	Args *string
}) (*string, error) {
	m := make(map[string]interface{})
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	out, err := gqlregistry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, _ := json.Marshal(out)
	s := string(b)
	return &s, nil
}
