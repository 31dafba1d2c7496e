package resolvers

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"
	"gorm.io/gorm"

	gqlmodels "crm.GO/graphql/models"
	customerRepo "crm.GO/model/repository/customer"
)

// CustomerFilterInput mirrors the schema's CustomerFilterInput.
type CustomerFilterInput struct {
	Name         *string
	Email        *string
	CreatedAtGte *string
	CreatedAtLte *string
	PhonePattern *string
}

func (f *CustomerFilterInput) toRepoFilter() (customerRepo.Filter, error) {
	var out customerRepo.Filter
	if f == nil {
		return out, nil
	}
	out.Name = f.Name
	out.Email = f.Email
	out.PhonePrefix = f.PhonePattern
	if f.CreatedAtGte != nil {
		t, err := parseTime(*f.CreatedAtGte)
		if err != nil {
			return out, err
		}
		out.CreatedAtGte = &t
	}
	if f.CreatedAtLte != nil {
		t, err := parseTime(*f.CreatedAtLte)
		if err != nil {
			return out, err
		}
		out.CreatedAtLte = &t
	}
	return out, nil
}

func (r *QueryResolver) Customer(ctx context.Context, args struct{ ID graphql.ID }) (*gqlmodels.Customer, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, nil
	}
	c, err := r.customerRepo().FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toCustomerModel(*c), nil
}

func (r *QueryResolver) AllCustomers(ctx context.Context, args struct {
	Filter      *CustomerFilterInput
	OrderBy     *[]string
	PageSize    int32
	CurrentPage int32
}) (*gqlmodels.CustomerPage, error) {
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

	customers, total, err := r.customerRepo().List(filter, orderBy, cp, ps)
	if err != nil {
		return nil, err
	}

	items := make([]*gqlmodels.Customer, len(customers))
	for i, c := range customers {
		items[i] = toCustomerModel(c)
	}
	return &gqlmodels.CustomerPage{
		Items:      items,
		TotalCount: int32(total),
		PageInfo:   pageInfo(total, cp, ps),
	}, nil
}
