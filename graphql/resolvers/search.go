package resolvers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"

	gqlmodels "crm.GO/graphql/models"
	customerRepo "crm.GO/model/repository/customer"
)

var (
	searchServiceInstance *SearchService
	searchServiceOnce     sync.Once
)

// GetSearchService returns singleton SearchService.
func GetSearchService() *SearchService {
	searchServiceOnce.Do(func() {
		searchServiceInstance = NewSearchService()
	})
	return searchServiceInstance
}

type SearchService struct {
	client *elasticsearch.Client
	prefix string
}

func NewSearchService() *SearchService {
	host := os.Getenv("ELASTICSEARCH_HOST")
	if host == "" {
		host = "http://localhost:9200"
	}
	prefix := os.Getenv("ELASTICSEARCH_INDEX_PREFIX")
	if prefix == "" {
		prefix = "crm"
	}

	cfg := elasticsearch.Config{
		Addresses: []string{host},
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return &SearchService{prefix: prefix}
	}

	return &SearchService{
		client: client,
		prefix: prefix,
	}
}

// SearchCustomers (resolver) delegates to SearchService and hydrates hits
// from the database by ID, preserving relevance order.
func (r *QueryResolver) SearchCustomers(ctx context.Context, args struct {
	Query       string
	PageSize    int32
	CurrentPage int32
}) (*gqlmodels.CustomerPage, error) {
	ps := defaultPageSize(args.PageSize)
	cp := defaultCurrentPage(args.CurrentPage)
	return r.searchService().SearchCustomers(ctx, args.Query, ps, cp, r.customerRepo())
}

// SearchCustomers queries the customer index: {prefix}_customer
func (s *SearchService) SearchCustomers(
	ctx context.Context,
	query string,
	pageSize int,
	currentPage int,
	repo *customerRepo.CustomerRepository,
) (*gqlmodels.CustomerPage, error) {
	if s.client == nil {
		return nil, fmt.Errorf("elasticsearch not configured")
	}

	indexName := fmt.Sprintf("%s_customer", s.prefix)
	from := (currentPage - 1) * pageSize

	body := map[string]interface{}{
		"from": from,
		"size": pageSize,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name^3", "email^2", "phone"},
			},
		},
	}
	bodyBytes, _ := json.Marshal(body)

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(indexName),
		s.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esResp struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	var ids []uint
	for _, hit := range esResp.Hits.Hits {
		if entityID, ok := hit.Source["entity_id"].(float64); ok {
			ids = append(ids, uint(entityID))
		}
	}

	customers, err := repo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	items := make([]*gqlmodels.Customer, len(customers))
	for i, c := range customers {
		items[i] = toCustomerModel(c)
	}
	return &gqlmodels.CustomerPage{
		Items:      items,
		TotalCount: int32(esResp.Hits.Total.Value),
		PageInfo:   pageInfo(int64(esResp.Hits.Total.Value), currentPage, pageSize),
	}, nil
}
