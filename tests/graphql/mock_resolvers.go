package graphqltest

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"

	"crm.GO/graphql"
	gqlmodels "crm.GO/graphql/models"
)

// MockRootResolver is the root for graphql-go tests (no DB).
type MockRootResolver struct{}

func (m *MockRootResolver) Query() *MockQueryResolver {
	return &MockQueryResolver{}
}

func (m *MockRootResolver) Mutation() *MockMutationResolver {
	return &MockMutationResolver{}
}

type MockQueryResolver struct{}

func (m *MockQueryResolver) Hello(ctx context.Context) string {
	return "Hello, GraphQL!"
}

func mockCustomer() *gqlmodels.Customer {
	phone := "+1234567890"
	return &gqlmodels.Customer{
		EntityID:  "1",
		Name:      "Mock Customer",
		Email:     "mock@example.com",
		Phone:     &phone,
		CreatedAt: "2026-01-01T00:00:00Z",
	}
}

func mockProduct() *gqlmodels.Product {
	return &gqlmodels.Product{EntityID: "1", Name: "Mock Product", Price: 99.99, Stock: 5}
}

func mockPageInfo() *gqlmodels.PageInfo {
	return &gqlmodels.PageInfo{PageSize: 20, CurrentPage: 1, TotalPages: 1}
}

type mockCustomerArgs struct {
	ID gql.ID
}

func (m *MockQueryResolver) Customer(ctx context.Context, args mockCustomerArgs) (*gqlmodels.Customer, error) {
	return mockCustomer(), nil
}

type mockCustomerFilter struct {
	Name         *string
	Email        *string
	CreatedAtGte *string
	CreatedAtLte *string
	PhonePattern *string
}

type mockCustomerListArgs struct {
	Filter      *mockCustomerFilter
	OrderBy     *[]string
	PageSize    int32
	CurrentPage int32
}

func (m *MockQueryResolver) AllCustomers(ctx context.Context, args mockCustomerListArgs) (*gqlmodels.CustomerPage, error) {
	return &gqlmodels.CustomerPage{
		Items:      []*gqlmodels.Customer{mockCustomer()},
		TotalCount: 1,
		PageInfo:   mockPageInfo(),
	}, nil
}

type mockProductFilter struct {
	Name     *string
	PriceGte *float64
	PriceLte *float64
	StockGte *int32
	StockLte *int32
	LowStock *int32
}

type mockProductListArgs struct {
	Filter      *mockProductFilter
	OrderBy     *[]string
	PageSize    int32
	CurrentPage int32
}

func (m *MockQueryResolver) AllProducts(ctx context.Context, args mockProductListArgs) (*gqlmodels.ProductPage, error) {
	return &gqlmodels.ProductPage{
		Items:      []*gqlmodels.Product{mockProduct()},
		TotalCount: 1,
		PageInfo:   mockPageInfo(),
	}, nil
}

type mockOrderFilter struct {
	TotalAmountGte *float64
	TotalAmountLte *float64
	OrderDateGte   *string
	OrderDateLte   *string
	CustomerName   *string
	ProductName    *string
	ProductID      *gql.ID
}

type mockOrderListArgs struct {
	Filter      *mockOrderFilter
	OrderBy     *[]string
	PageSize    int32
	CurrentPage int32
}

func (m *MockQueryResolver) AllOrders(ctx context.Context, args mockOrderListArgs) (*gqlmodels.OrderPage, error) {
	return &gqlmodels.OrderPage{
		Items: []*gqlmodels.Order{{
			EntityID:    "1",
			Customer:    mockCustomer(),
			Products:    []*gqlmodels.Product{mockProduct()},
			TotalAmount: 99.99,
			OrderDate:   "2026-01-02T00:00:00Z",
		}},
		TotalCount: 1,
		PageInfo:   mockPageInfo(),
	}, nil
}

type mockSearchArgs struct {
	Query       string
	PageSize    int32
	CurrentPage int32
}

func (m *MockQueryResolver) SearchCustomers(ctx context.Context, args mockSearchArgs) (*gqlmodels.CustomerPage, error) {
	return &gqlmodels.CustomerPage{
		Items:      []*gqlmodels.Customer{mockCustomer()},
		TotalCount: 1,
		PageInfo:   mockPageInfo(),
	}, nil
}

type mockExtensionArgs struct {
	Name string
	Args *string
}

func (m *MockQueryResolver) Extension(ctx context.Context, args mockExtensionArgs) (*string, error) {
	s := `{"mock":"ok"}`
	return &s, nil
}

type MockMutationResolver struct{}

type mockCustomerInput struct {
	Name  string
	Email string
	Phone *string
}

func (m *MockMutationResolver) CreateCustomer(ctx context.Context, args struct{ Input mockCustomerInput }) (*gqlmodels.CreateCustomerPayload, error) {
	return &gqlmodels.CreateCustomerPayload{
		Customer: mockCustomer(),
		Message:  "Customer 'Mock Customer' created successfully.",
	}, nil
}

func (m *MockMutationResolver) BulkCreateCustomers(ctx context.Context, args struct{ Input []mockCustomerInput }) (*gqlmodels.BulkCreateCustomersPayload, error) {
	return &gqlmodels.BulkCreateCustomersPayload{
		Customers: []*gqlmodels.Customer{mockCustomer()},
		Errors:    []string{},
	}, nil
}

type mockProductInput struct {
	Name  string
	Price float64
	Stock *int32
}

func (m *MockMutationResolver) CreateProduct(ctx context.Context, args struct{ Input mockProductInput }) (*gqlmodels.CreateProductPayload, error) {
	return &gqlmodels.CreateProductPayload{Product: mockProduct()}, nil
}

type mockOrderInput struct {
	CustomerID gql.ID
	ProductIDs []gql.ID
}

func (m *MockMutationResolver) CreateOrder(ctx context.Context, args struct{ Input mockOrderInput }) (*gqlmodels.CreateOrderPayload, error) {
	return &gqlmodels.CreateOrderPayload{
		Order: &gqlmodels.Order{
			EntityID:    "1",
			Customer:    mockCustomer(),
			Products:    []*gqlmodels.Product{mockProduct()},
			TotalAmount: 99.99,
			OrderDate:   "2026-01-02T00:00:00Z",
		},
	}, nil
}

func (m *MockMutationResolver) UpdateLowStockProducts(ctx context.Context) (*gqlmodels.UpdateLowStockPayload, error) {
	return &gqlmodels.UpdateLowStockPayload{
		Products: []*gqlmodels.Product{mockProduct()},
		Message:  "Successfully updated 1 low-stock products.",
	}, nil
}

// NewMockSchema creates a schema with mock resolvers for tests.
func NewMockSchema() *gql.Schema {
	schema, err := gql.ParseSchema(graphql.Schema(), &MockRootResolver{}, gql.UseFieldResolvers())
	if err != nil {
		panic("mock schema: " + err.Error())
	}
	return schema
}
