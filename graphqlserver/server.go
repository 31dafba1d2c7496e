package graphqlserver

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"crm.GO/graphql"
	"crm.GO/graphql/resolvers"
)

// RootResolver is the root for graphql-go. Query and Mutation resolvers share
// the DB handle; per-request state travels in context.
type RootResolver struct {
	DB *gorm.DB
}

// Query returns the query resolver.
func (r *RootResolver) Query() *resolvers.QueryResolver {
	return resolvers.NewQueryResolver(r.DB)
}

// Mutation returns the mutation resolver.
func (r *RootResolver) Mutation() *resolvers.MutationResolver {
	return resolvers.NewMutationResolver(r.DB)
}

// NewSchema parses the schema (base + registered extensions) and returns a
// graphql-go Schema.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{DB: db}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
