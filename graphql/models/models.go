package models

import graphql "github.com/graph-gophers/graphql-go"

// --- Customer ---

type Customer struct {
	EntityID  graphql.ID `json:"entity_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	CreatedAt string     `json:"created_at"`
}

// --- Product ---

type Product struct {
	EntityID graphql.ID `json:"entity_id"`
	Name     string     `json:"name"`
	Price    float64    `json:"price"`
	Stock    int32      `json:"stock"`
}

// --- Order ---

type Order struct {
	EntityID    graphql.ID `json:"entity_id"`
	Customer    *Customer  `json:"customer"`
	Products    []*Product `json:"products"`
	TotalAmount float64    `json:"total_amount"`
	OrderDate   string     `json:"order_date"`
}

// --- Paging ---

type PageInfo struct {
	PageSize    int32 `json:"page_size"`
	CurrentPage int32 `json:"current_page"`
	TotalPages  int32 `json:"total_pages"`
}

type CustomerPage struct {
	Items      []*Customer `json:"items"`
	TotalCount int32       `json:"total_count"`
	PageInfo   *PageInfo   `json:"page_info"`
}

type ProductPage struct {
	Items      []*Product `json:"items"`
	TotalCount int32      `json:"total_count"`
	PageInfo   *PageInfo  `json:"page_info"`
}

type OrderPage struct {
	Items      []*Order  `json:"items"`
	TotalCount int32     `json:"total_count"`
	PageInfo   *PageInfo `json:"page_info"`
}

// --- Mutation payloads ---

type CreateCustomerPayload struct {
	Customer *Customer `json:"customer,omitempty"`
	Message  string    `json:"message"`
}

type BulkCreateCustomersPayload struct {
	Customers []*Customer `json:"customers"`
	Errors    []string    `json:"errors"`
}

type CreateProductPayload struct {
	Product *Product `json:"product,omitempty"`
}

type CreateOrderPayload struct {
	Order *Order `json:"order,omitempty"`
}

type UpdateLowStockPayload struct {
	Products []*Product `json:"products"`
	Message  string     `json:"message"`
}
