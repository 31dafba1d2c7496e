package resolvers

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	gqlmodels "crm.GO/graphql/models"
	orderRepo "crm.GO/model/repository/order"
)

// OrderFilterInput mirrors the schema's OrderFilterInput. Name filters reach
// across the customer and product joins.
type OrderFilterInput struct {
	TotalAmountGte *float64
	TotalAmountLte *float64
	OrderDateGte   *string
	OrderDateLte   *string
	CustomerName   *string
	ProductName    *string
	ProductID      *graphql.ID
}

func (f *OrderFilterInput) toRepoFilter() (orderRepo.Filter, error) {
	var out orderRepo.Filter
	if f == nil {
		return out, nil
	}
	out.TotalGte = f.TotalAmountGte
	out.TotalLte = f.TotalAmountLte
	out.CustomerName = f.CustomerName
	out.ProductName = f.ProductName
	if f.OrderDateGte != nil {
		t, err := parseTime(*f.OrderDateGte)
		if err != nil {
			return out, err
		}
		out.OrderDateGte = &t
	}
	if f.OrderDateLte != nil {
		t, err := parseTime(*f.OrderDateLte)
		if err != nil {
			return out, err
		}
		out.OrderDateLte = &t
	}
	if f.ProductID != nil {
		id, err := parseID(*f.ProductID)
		if err != nil {
			return out, err
		}
		out.ProductID = &id
	}
	return out, nil
}

func (r *QueryResolver) AllOrders(ctx context.Context, args struct {
	Filter      *OrderFilterInput
	OrderBy     *[]string
	PageSize    int32
	CurrentPage int32
}) (*gqlmodels.OrderPage, error) {
	ps := defaultPageSize(args.PageSize)
	cp := defaultCurrentPage(args.CurrentPage)

	filter, err := args.Filter.toRepoFilter()
	if err != nil {
		return nil, err
	}
	var orderBy []string
	if args.OrderBy != nil {
		orderBy = *args.OrderBy
	}

	orders, total, err := r.orderRepo().List(filter, orderBy, cp, ps)
	if err != nil {
		return nil, err
	}

	items := make([]*gqlmodels.Order, len(orders))
	for i, o := range orders {
		items[i] = toOrderModel(o)
	}
	return &gqlmodels.OrderPage{
		Items:      items,
		TotalCount: int32(total),
		PageInfo:   pageInfo(total, cp, ps),
	}, nil
}
