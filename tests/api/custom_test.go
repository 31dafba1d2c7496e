package apitest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"crm.GO/api"
	"crm.GO/core/registry"
	gqlregistry "crm.GO/graphql/registry"

	_ "crm.GO/custom"
)

func TestCustomRoute_Ping(t *testing.T) {
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryRoutes)
	defer registry.GlobalRegistry.Lock(registry.KeyRegistryRoutes)

	e := echo.New()
	api.ApplyRoutes(e, nil)

	req := httptest.NewRequest(http.MethodGet, "/custom/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /custom/ping status = %d, want 200", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["pong"] != "ok" {
		t.Errorf("pong = %q, want ok", resp["pong"])
	}
}

func TestCustomExtension_Ping(t *testing.T) {
	got, err := gqlregistry.Resolve(context.Background(), "ping", nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	m, ok := got.(map[string]string)
	if !ok || m["pong"] != "ok" {
		t.Errorf("got %v, want map[pong:ok]", got)
	}
}
