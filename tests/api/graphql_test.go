package apitest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	graphqlApi "crm.GO/api/graphql"
	entity "crm.GO/model/entity"
	crmEntity "crm.GO/model/entity/crm"
)

func crmTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// OrderProduct before Order so the many2many join table keeps our shape
	if err := db.AutoMigrate(
		&crmEntity.OrderProduct{},
		&crmEntity.Customer{},
		&crmEntity.Product{},
		&crmEntity.Order{},
		&entity.EventLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func gqlServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	e := echo.New()
	db := crmTestDB(t)
	graphqlApi.RegisterGraphQLRoutes(e, db)
	return e, db
}

type gqlResponse struct {
	Data   map[string]interface{}
	Errors []struct{ Message string }
}

func postGQL(t *testing.T, e *echo.Echo, query string, variables map[string]interface{}) gqlResponse {
	t.Helper()
	body := map[string]interface{}{"query": query}
	if variables != nil {
		body["variables"] = variables
	}
	bodyBytes, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var resp gqlResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func requireNoErrors(t *testing.T, resp gqlResponse) {
	t.Helper()
	if len(resp.Errors) > 0 {
		t.Fatalf("graphql errors: %v", resp.Errors)
	}
}

func firstError(resp gqlResponse) string {
	if len(resp.Errors) == 0 {
		return ""
	}
	return resp.Errors[0].Message
}

func TestGraphQL_Hello(t *testing.T) {
	e, _ := gqlServer(t)
	resp := postGQL(t, e, `{ hello }`, nil)
	requireNoErrors(t, resp)
	if resp.Data["hello"] != "Hello, GraphQL!" {
		t.Errorf("hello = %v", resp.Data["hello"])
	}
}

func TestGraphQL_CreateCustomer(t *testing.T) {
	e, db := gqlServer(t)

	resp := postGQL(t, e, `mutation {
		createCustomer(input: {name: "Alice", email: "alice@example.com", phone: "+11234567890"}) {
			customer { entity_id name email phone created_at }
			message
		}
	}`, nil)
	requireNoErrors(t, resp)

	payload := resp.Data["createCustomer"].(map[string]interface{})
	if payload["message"] != "Customer 'Alice' created successfully." {
		t.Errorf("message = %v", payload["message"])
	}
	customer := payload["customer"].(map[string]interface{})
	if customer["email"] != "alice@example.com" {
		t.Errorf("email = %v", customer["email"])
	}
	if customer["created_at"] == "" {
		t.Error("created_at missing")
	}

	var n int64
	db.Model(&crmEntity.Customer{}).Count(&n)
	if n != 1 {
		t.Errorf("customer rows = %d, want 1", n)
	}

	// Audit row written
	var events int64
	db.Model(&entity.EventLog{}).Where("event = ?", "customer.created").Count(&events)
	if events != 1 {
		t.Errorf("event rows = %d, want 1", events)
	}
}

func TestGraphQL_CreateCustomer_DuplicateEmail(t *testing.T) {
	e, _ := gqlServer(t)

	mutation := `mutation {
		createCustomer(input: {name: "Bob", email: "bob@example.com"}) { message }
	}`
	requireNoErrors(t, postGQL(t, e, mutation, nil))

	resp := postGQL(t, e, mutation, nil)
	if got := firstError(resp); got != "Validation Error: Email 'bob@example.com' already exists." {
		t.Errorf("error = %q", got)
	}
}

func TestGraphQL_CreateCustomer_InvalidEmail(t *testing.T) {
	e, _ := gqlServer(t)

	resp := postGQL(t, e, `mutation {
		createCustomer(input: {name: "Bad", email: "not-an-email"}) { message }
	}`, nil)
	if got := firstError(resp); got != "Validation Error: Enter a valid email address." {
		t.Errorf("error = %q", got)
	}
}

func TestGraphQL_CreateCustomer_InvalidPhone(t *testing.T) {
	e, _ := gqlServer(t)

	resp := postGQL(t, e, `mutation {
		createCustomer(input: {name: "Bad", email: "badphone@example.com", phone: "abc"}) { message }
	}`, nil)
	if got := firstError(resp); got != "Validation Error: Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed." {
		t.Errorf("error = %q", got)
	}
}

func TestGraphQL_BulkCreateCustomers_PartialSuccess(t *testing.T) {
	e, db := gqlServer(t)

	// Existing customer to collide with
	requireNoErrors(t, postGQL(t, e, `mutation {
		createCustomer(input: {name: "Existing", email: "taken@example.com"}) { message }
	}`, nil))

	resp := postGQL(t, e, `mutation {
		bulkCreateCustomers(input: [
			{name: "Good One", email: "good1@example.com"},
			{name: "Taken", email: "taken@example.com"},
			{name: "Bad Mail", email: "nope"},
			{name: "Good Two", email: "good2@example.com", phone: "+1 987-654-3210"}
		]) {
			customers { name email }
			errors
		}
	}`, nil)
	requireNoErrors(t, resp)

	payload := resp.Data["bulkCreateCustomers"].(map[string]interface{})
	customers := payload["customers"].([]interface{})
	errors := payload["errors"].([]interface{})

	if len(customers) != 2 {
		t.Fatalf("created = %d, want 2 (%v)", len(customers), customers)
	}
	if len(errors) != 2 {
		t.Fatalf("errors = %d, want 2 (%v)", len(errors), errors)
	}
	if errors[0] != "Record for 'Taken' failed: Email 'taken@example.com' already exists." {
		t.Errorf("errors[0] = %v", errors[0])
	}
	if errors[1] != "Record for 'Bad Mail' failed: Enter a valid email address." {
		t.Errorf("errors[1] = %v", errors[1])
	}

	var n int64
	db.Model(&crmEntity.Customer{}).Count(&n)
	if n != 3 {
		t.Errorf("customer rows = %d, want 3 (existing + 2 created)", n)
	}
}

func TestGraphQL_BulkCreateCustomers_PhoneErrorBeatsDuplicate(t *testing.T) {
	e, _ := gqlServer(t)

	requireNoErrors(t, postGQL(t, e, `mutation {
		createCustomer(input: {name: "Existing", email: "held@example.com"}) { message }
	}`, nil))

	// Duplicate email AND bad phone on one record: the phone failure wins.
	resp := postGQL(t, e, `mutation {
		bulkCreateCustomers(input: [
			{name: "Both Wrong", email: "held@example.com", phone: "abc"}
		]) {
			customers { name }
			errors
		}
	}`, nil)
	requireNoErrors(t, resp)

	payload := resp.Data["bulkCreateCustomers"].(map[string]interface{})
	errors := payload["errors"].([]interface{})
	if len(errors) != 1 {
		t.Fatalf("errors = %v, want 1", errors)
	}
	want := "Record for 'Both Wrong' failed: Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed."
	if errors[0] != want {
		t.Errorf("errors[0] = %v, want %q", errors[0], want)
	}
}

func TestGraphQL_CreateProduct(t *testing.T) {
	e, _ := gqlServer(t)

	resp := postGQL(t, e, `mutation {
		createProduct(input: {name: "Laptop", price: 999.99, stock: 4}) {
			product { entity_id name price stock }
		}
	}`, nil)
	requireNoErrors(t, resp)

	product := resp.Data["createProduct"].(map[string]interface{})["product"].(map[string]interface{})
	if product["price"] != 999.99 {
		t.Errorf("price = %v", product["price"])
	}
	if int(product["stock"].(float64)) != 4 {
		t.Errorf("stock = %v", product["stock"])
	}
}

func TestGraphQL_CreateProduct_DefaultStock(t *testing.T) {
	e, _ := gqlServer(t)

	resp := postGQL(t, e, `mutation {
		createProduct(input: {name: "No Stock Given", price: 1.50}) {
			product { stock }
		}
	}`, nil)
	requireNoErrors(t, resp)

	product := resp.Data["createProduct"].(map[string]interface{})["product"].(map[string]interface{})
	if int(product["stock"].(float64)) != 0 {
		t.Errorf("stock = %v, want 0", product["stock"])
	}
}

func TestGraphQL_CreateProduct_Validation(t *testing.T) {
	e, _ := gqlServer(t)

	resp := postGQL(t, e, `mutation {
		createProduct(input: {name: "Free", price: 0}) { product { entity_id } }
	}`, nil)
	if got := firstError(resp); got != "Validation Error: Price must be a positive number." {
		t.Errorf("price error = %q", got)
	}

	resp = postGQL(t, e, `mutation {
		createProduct(input: {name: "Negative", price: 5, stock: -1}) { product { entity_id } }
	}`, nil)
	if got := firstError(resp); got != "Validation Error: Stock cannot be negative." {
		t.Errorf("stock error = %q", got)
	}
}

func TestGraphQL_CreateOrder(t *testing.T) {
	e, db := gqlServer(t)

	cust := &crmEntity.Customer{Name: "Buyer", Email: "buyer@example.com"}
	if err := db.Create(cust).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	p1 := &crmEntity.Product{Name: "Widget", Price: 19.99, Stock: 5}
	p2 := &crmEntity.Product{Name: "Gadget", Price: 5.01, Stock: 5}
	if err := db.Create(p1).Error; err != nil {
		t.Fatalf("seed p1: %v", err)
	}
	if err := db.Create(p2).Error; err != nil {
		t.Fatalf("seed p2: %v", err)
	}

	resp := postGQL(t, e, `mutation($input: OrderInput!) {
		createOrder(input: $input) {
			order {
				entity_id
				total_amount
				order_date
				customer { email }
				products { name }
			}
		}
	}`, map[string]interface{}{
		"input": map[string]interface{}{
			"customer_id": "1",
			"product_ids": []string{"1", "2"},
		},
	})
	requireNoErrors(t, resp)

	order := resp.Data["createOrder"].(map[string]interface{})["order"].(map[string]interface{})
	if order["total_amount"] != 25.0 {
		t.Errorf("total_amount = %v, want 25", order["total_amount"])
	}
	if order["customer"].(map[string]interface{})["email"] != "buyer@example.com" {
		t.Errorf("customer = %v", order["customer"])
	}
	if len(order["products"].([]interface{})) != 2 {
		t.Errorf("products = %v", order["products"])
	}
	if order["order_date"] == "" {
		t.Error("order_date missing")
	}
}

func TestGraphQL_CreateOrder_Validation(t *testing.T) {
	e, db := gqlServer(t)

	cust := &crmEntity.Customer{Name: "Buyer", Email: "buyer2@example.com"}
	if err := db.Create(cust).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	// No products
	resp := postGQL(t, e, `mutation {
		createOrder(input: {customer_id: "1", product_ids: []}) { order { entity_id } }
	}`, nil)
	if got := firstError(resp); got != "Validation Error: Order must contain at least one product." {
		t.Errorf("empty products error = %q", got)
	}

	// Unknown customer
	resp = postGQL(t, e, `mutation {
		createOrder(input: {customer_id: "999", product_ids: ["1"]}) { order { entity_id } }
	}`, nil)
	if got := firstError(resp); got != "Validation Error: Customer with ID '999' not found." {
		t.Errorf("unknown customer error = %q", got)
	}

	// Unknown product
	resp = postGQL(t, e, `mutation {
		createOrder(input: {customer_id: "1", product_ids: ["77"]}) { order { entity_id } }
	}`, nil)
	if got := firstError(resp); got != "Validation Error: Invalid product ID(s) found: 77" {
		t.Errorf("unknown product error = %q", got)
	}
}

func TestGraphQL_UpdateLowStockProducts(t *testing.T) {
	e, db := gqlServer(t)

	if err := db.Create(&crmEntity.Product{Name: "Low", Price: 5, Stock: 2}).Error; err != nil {
		t.Fatalf("seed low: %v", err)
	}
	if err := db.Create(&crmEntity.Product{Name: "Fine", Price: 5, Stock: 40}).Error; err != nil {
		t.Fatalf("seed fine: %v", err)
	}

	resp := postGQL(t, e, `mutation {
		updateLowStockProducts {
			products { name stock }
			message
		}
	}`, nil)
	requireNoErrors(t, resp)

	payload := resp.Data["updateLowStockProducts"].(map[string]interface{})
	if payload["message"] != "Successfully updated 1 low-stock products." {
		t.Errorf("message = %v", payload["message"])
	}
	products := payload["products"].([]interface{})
	if len(products) != 1 {
		t.Fatalf("products = %v, want 1", products)
	}
	p := products[0].(map[string]interface{})
	if p["name"] != "Low" || int(p["stock"].(float64)) != 12 {
		t.Errorf("restocked = %v, want Low with stock 12", p)
	}
}

func TestGraphQL_AllCustomers_FilterSortPage(t *testing.T) {
	e, db := gqlServer(t)

	for _, c := range []crmEntity.Customer{
		{Name: "Carol", Email: "carol@example.com"},
		{Name: "Carl", Email: "carl@example.com"},
		{Name: "Dave", Email: "dave@example.com"},
	} {
		cc := c
		if err := db.Create(&cc).Error; err != nil {
			t.Fatalf("seed %s: %v", c.Email, err)
		}
	}

	resp := postGQL(t, e, `query {
		allCustomers(filter: {name: "car"}, orderBy: ["-name"], pageSize: 1, currentPage: 1) {
			items { name }
			total_count
			page_info { page_size current_page total_pages }
		}
	}`, nil)
	requireNoErrors(t, resp)

	page := resp.Data["allCustomers"].(map[string]interface{})
	if int(page["total_count"].(float64)) != 2 {
		t.Errorf("total_count = %v, want 2", page["total_count"])
	}
	items := page["items"].([]interface{})
	if len(items) != 1 || items[0].(map[string]interface{})["name"] != "Carol" {
		t.Errorf("items = %v, want [Carol] (desc, page 1 of 2)", items)
	}
	info := page["page_info"].(map[string]interface{})
	if int(info["total_pages"].(float64)) != 2 {
		t.Errorf("total_pages = %v, want 2", info["total_pages"])
	}
}

func TestGraphQL_Customer_NotFoundIsNull(t *testing.T) {
	e, _ := gqlServer(t)

	resp := postGQL(t, e, `{ customer(id: "123") { entity_id } }`, nil)
	requireNoErrors(t, resp)
	if resp.Data["customer"] != nil {
		t.Errorf("customer = %v, want null", resp.Data["customer"])
	}
}

func TestGraphQL_AllOrders_CustomerNameFilter(t *testing.T) {
	e, db := gqlServer(t)

	alice := &crmEntity.Customer{Name: "Alice", Email: "alice-ord@example.com"}
	bob := &crmEntity.Customer{Name: "Bob", Email: "bob-ord@example.com"}
	prod := &crmEntity.Product{Name: "Thing", Price: 10, Stock: 9}
	for _, v := range []interface{}{alice, bob, prod} {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	for _, custID := range []string{"1", "2"} {
		resp := postGQL(t, e, `mutation($input: OrderInput!) {
			createOrder(input: $input) { order { entity_id } }
		}`, map[string]interface{}{
			"input": map[string]interface{}{"customer_id": custID, "product_ids": []string{"1"}},
		})
		requireNoErrors(t, resp)
	}

	resp := postGQL(t, e, `query {
		allOrders(filter: {customer_name: "alice"}) {
			items { customer { name } total_amount }
			total_count
		}
	}`, nil)
	requireNoErrors(t, resp)

	page := resp.Data["allOrders"].(map[string]interface{})
	if int(page["total_count"].(float64)) != 1 {
		t.Fatalf("total_count = %v, want 1", page["total_count"])
	}
	item := page["items"].([]interface{})[0].(map[string]interface{})
	if item["customer"].(map[string]interface{})["name"] != "Alice" {
		t.Errorf("customer = %v, want Alice", item["customer"])
	}
}
