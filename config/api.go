package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public paths (GraphQL endpoint carries its own validation, dashboard is read-only)
	return []string{"/graphql", "/playground", "/dashboard"}
}
