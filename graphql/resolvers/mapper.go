package resolvers

import (
	"fmt"
	"strconv"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	gqlmodels "crm.GO/graphql/models"
	crmEntity "crm.GO/model/entity/crm"
)

func toID(id uint) graphql.ID {
	return graphql.ID(strconv.FormatUint(uint64(id), 10))
}

func parseID(id graphql.ID) (uint, error) {
	n, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q", string(id))
	}
	return uint(n), nil
}

func toCustomerModel(c crmEntity.Customer) *gqlmodels.Customer {
	return &gqlmodels.Customer{
		EntityID:  toID(c.EntityID),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func toProductModel(p crmEntity.Product) *gqlmodels.Product {
	return &gqlmodels.Product{
		EntityID: toID(p.EntityID),
		Name:     p.Name,
		Price:    p.Price,
		Stock:    int32(p.Stock),
	}
}

func toOrderModel(o crmEntity.Order) *gqlmodels.Order {
	products := make([]*gqlmodels.Product, len(o.Products))
	for i, p := range o.Products {
		products[i] = toProductModel(p)
	}
	return &gqlmodels.Order{
		EntityID:    toID(o.EntityID),
		Customer:    toCustomerModel(o.Customer),
		Products:    products,
		TotalAmount: o.TotalAmount,
		OrderDate:   o.OrderDate.Format(time.RFC3339),
	}
}

// parseTime accepts RFC3339 or plain dates (filter inputs arrive as strings).
func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD or RFC3339)", s)
}
