package resolvers

import (
	"context"

	gqlmodels "crm.GO/graphql/models"
	productRepo "crm.GO/model/repository/product"
)

// ProductFilterInput mirrors the schema's ProductFilterInput. low_stock keeps
// the filterset shortcut: stock strictly below the given value.
type ProductFilterInput struct {
	Name     *string
	PriceGte *float64
	PriceLte *float64
	StockGte *int32
	StockLte *int32
	LowStock *int32
}

func (f *ProductFilterInput) toRepoFilter() productRepo.Filter {
	var out productRepo.Filter
	if f == nil {
		return out
	}
	out.Name = f.Name
	out.PriceGte = f.PriceGte
	out.PriceLte = f.PriceLte
	if f.StockGte != nil {
		v := int(*f.StockGte)
		out.StockGte = &v
	}
	if f.StockLte != nil {
		v := int(*f.StockLte)
		out.StockLte = &v
	}
	if f.LowStock != nil {
		v := int(*f.LowStock)
		out.StockLt = &v
	}
	return out
}

func (r *QueryResolver) AllProducts(ctx context.Context, args struct {
	Filter      *ProductFilterInput
	OrderBy     *[]string
	PageSize    int32
	CurrentPage int32
}) (*gqlmodels.ProductPage, error) {
	ps := defaultPageSize(args.PageSize)
	cp := defaultCurrentPage(args.CurrentPage)

	var orderBy []string
	if args.OrderBy != nil {
		orderBy = *args.OrderBy
	}

	products, total, err := r.productRepo().List(args.Filter.toRepoFilter(), orderBy, cp, ps)
	if err != nil {
		return nil, err
	}

	items := make([]*gqlmodels.Product, len(products))
	for i, p := range products {
		items[i] = toProductModel(p)
	}
	return &gqlmodels.ProductPage{
		Items:      items,
		TotalCount: int32(total),
		PageInfo:   pageInfo(total, cp, ps),
	}, nil
}
