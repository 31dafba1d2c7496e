package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func TestRegistry_Register_Apply(t *testing.T) {
	RegisterGET("/test/registry/check", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	e := echo.New()
	ApplyRoutes(e, nil)

	req := httptest.NewRequest(http.MethodGet, "/test/registry/check", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRegistry_RegisterModule_Apply(t *testing.T) {
	called := false
	RegisterModule(func(g *echo.Group, db *gorm.DB) {
		called = true
		g.GET("/module/check", func(c echo.Context) error {
			return c.String(200, "ok")
		})
	})

	e := echo.New()
	ApplyModules(e.Group("/api"), nil)
	if !called {
		t.Fatal("module was not applied")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/module/check", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
