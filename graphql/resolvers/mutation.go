package resolvers

import (
	"context"
	"fmt"
	"strings"

	graphql "github.com/graph-gophers/graphql-go"

	gqlmodels "crm.GO/graphql/models"
	crmEntity "crm.GO/model/entity/crm"
)

const (
	lowStockThreshold = 10
	restockAmount     = 10
)

// CustomerInput mirrors the schema's CustomerInput.
type CustomerInput struct {
	Name  string
	Email string
	Phone *string
}

// ProductInput mirrors the schema's ProductInput. Stock defaults to 0.
type ProductInput struct {
	Name  string
	Price float64
	Stock *int32
}

// OrderInput mirrors the schema's OrderInput.
type OrderInput struct {
	CustomerID graphql.ID
	ProductIDs []graphql.ID
}

// CreateCustomer validates and inserts a single customer. Any failure becomes
// a resolver error so the GraphQL response carries it under errors.
func (m *MutationResolver) CreateCustomer(ctx context.Context, args struct{ Input CustomerInput }) (*gqlmodels.CreateCustomerPayload, error) {
	in := args.Input

	if err := validateEmail(in.Email); err != nil {
		return nil, fmt.Errorf("Validation Error: %s", err.Error())
	}
	if in.Phone != nil && *in.Phone != "" {
		if err := validatePhone(*in.Phone); err != nil {
			return nil, fmt.Errorf("Validation Error: %s", err.Error())
		}
	}

	exists, err := m.customerRepo().ExistsByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("Validation Error: Email '%s' already exists.", in.Email)
	}

	c := &crmEntity.Customer{Name: in.Name, Email: in.Email, Phone: in.Phone}
	if err := m.customerRepo().Create(c); err != nil {
		return nil, err
	}
	_ = m.eventRepo().Log("customer.created", map[string]interface{}{
		"entity_id": c.EntityID,
		"email":     c.Email,
	})

	return &gqlmodels.CreateCustomerPayload{
		Customer: toCustomerModel(*c),
		Message:  fmt.Sprintf("Customer '%s' created successfully.", in.Name),
	}, nil
}

// BulkCreateCustomers validates each record and inserts all valid ones in a
// single transaction. Partial success: invalid records land in errors, the
// rest are created. A database failure during the insert creates nothing.
func (m *MutationResolver) BulkCreateCustomers(ctx context.Context, args struct{ Input []CustomerInput }) (*gqlmodels.BulkCreateCustomersPayload, error) {
	repo := m.customerRepo()

	emails := make([]string, len(args.Input))
	for i, in := range args.Input {
		emails[i] = in.Email
	}
	// Pre-check all emails in a single query
	existing, err := repo.ExistingEmails(emails)
	if err != nil {
		return nil, err
	}

	validationErrors := []string{}
	var toCreate []*crmEntity.Customer

	for _, in := range args.Input {
		var errMsg string
		if err := validateEmail(in.Email); err != nil {
			errMsg = fmt.Sprintf("Record for '%s' failed: %s", in.Name, err.Error())
		} else {
			if existing[in.Email] {
				errMsg = fmt.Sprintf("Record for '%s' failed: Email '%s' already exists.", in.Name, in.Email)
			}
			// The phone is checked even for duplicate emails; its failure
			// replaces the duplicate message.
			if in.Phone != nil && *in.Phone != "" {
				if err := validatePhone(*in.Phone); err != nil {
					errMsg = fmt.Sprintf("Record for '%s' failed: %s", in.Name, err.Error())
				}
			}
		}
		if errMsg != "" {
			validationErrors = append(validationErrors, errMsg)
			continue
		}
		toCreate = append(toCreate, &crmEntity.Customer{Name: in.Name, Email: in.Email, Phone: in.Phone})
	}

	created := []*gqlmodels.Customer{}
	if len(toCreate) > 0 {
		if err := repo.CreateBatch(toCreate); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("Database error during bulk creation: %v", err))
		} else {
			for _, c := range toCreate {
				created = append(created, toCustomerModel(*c))
			}
			_ = m.eventRepo().Log("customer.bulk_created", map[string]interface{}{
				"created": len(created),
				"failed":  len(validationErrors),
			})
		}
	}

	return &gqlmodels.BulkCreateCustomersPayload{
		Customers: created,
		Errors:    validationErrors,
	}, nil
}

// CreateProduct validates price and stock and inserts the product.
func (m *MutationResolver) CreateProduct(ctx context.Context, args struct{ Input ProductInput }) (*gqlmodels.CreateProductPayload, error) {
	in := args.Input

	stock := 0
	if in.Stock != nil {
		stock = int(*in.Stock)
	}
	if in.Price <= 0 {
		return nil, fmt.Errorf("Validation Error: Price must be a positive number.")
	}
	if stock < 0 {
		return nil, fmt.Errorf("Validation Error: Stock cannot be negative.")
	}

	p := &crmEntity.Product{Name: in.Name, Price: in.Price, Stock: stock}
	if err := m.productRepo().Create(p); err != nil {
		return nil, err
	}
	_ = m.eventRepo().Log("product.created", map[string]interface{}{
		"entity_id": p.EntityID,
		"name":      p.Name,
	})

	return &gqlmodels.CreateProductPayload{Product: toProductModel(*p)}, nil
}

// CreateOrder validates the customer and product set and creates the order,
// its associations, and the computed total atomically.
func (m *MutationResolver) CreateOrder(ctx context.Context, args struct{ Input OrderInput }) (*gqlmodels.CreateOrderPayload, error) {
	in := args.Input

	if len(in.ProductIDs) == 0 {
		return nil, fmt.Errorf("Validation Error: Order must contain at least one product.")
	}

	customerID, err := parseID(in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("Validation Error: Customer with ID '%s' not found.", string(in.CustomerID))
	}
	customer, err := m.customerRepo().FindByID(customerID)
	if err != nil {
		return nil, fmt.Errorf("Validation Error: Customer with ID '%s' not found.", string(in.CustomerID))
	}

	// Duplicate IDs in the input count once.
	seen := make(map[uint]bool, len(in.ProductIDs))
	var productIDs []uint
	var invalid []string
	for _, raw := range in.ProductIDs {
		id, err := parseID(raw)
		if err != nil {
			invalid = append(invalid, string(raw))
			continue
		}
		if !seen[id] {
			seen[id] = true
			productIDs = append(productIDs, id)
		}
	}

	products, err := m.productRepo().FindByIDs(productIDs)
	if err != nil {
		return nil, err
	}
	if len(invalid) > 0 || len(products) != len(productIDs) {
		found := make(map[uint]bool, len(products))
		for _, p := range products {
			found[p.EntityID] = true
		}
		for _, id := range productIDs {
			if !found[id] {
				invalid = append(invalid, fmt.Sprint(id))
			}
		}
		return nil, fmt.Errorf("Validation Error: Invalid product ID(s) found: %s", strings.Join(invalid, ", "))
	}

	order, err := m.orderRepo().CreateForCustomer(customer, products)
	if err != nil {
		return nil, err
	}
	_ = m.eventRepo().Log("order.created", map[string]interface{}{
		"entity_id":    order.EntityID,
		"customer_id":  customer.EntityID,
		"total_amount": order.TotalAmount,
	})

	return &gqlmodels.CreateOrderPayload{Order: toOrderModel(*order)}, nil
}

// UpdateLowStockProducts restocks every product below the threshold by a
// fixed amount (also run on a schedule by the lowstock cron job).
func (m *MutationResolver) UpdateLowStockProducts(ctx context.Context) (*gqlmodels.UpdateLowStockPayload, error) {
	updated, err := m.productRepo().RestockLowStock(lowStockThreshold, restockAmount)
	if err != nil {
		return nil, err
	}

	products := make([]*gqlmodels.Product, len(updated))
	for i, p := range updated {
		products[i] = toProductModel(p)
	}
	if len(updated) > 0 {
		_ = m.eventRepo().Log("product.low_stock_restocked", map[string]interface{}{
			"count": len(updated),
		})
	}

	return &gqlmodels.UpdateLowStockPayload{
		Products: products,
		Message:  fmt.Sprintf("Successfully updated %d low-stock products.", len(updated)),
	}, nil
}
