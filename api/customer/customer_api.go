package customer

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"crm.GO/api"
	customerService "crm.GO/service/customer"
)

func init() {
	api.RegisterModule(RegisterCustomerRoutes)
}

func RegisterCustomerRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/customers")

	// POST /api/customers/import – bulk customer upsert (auth required via /api middleware)
	g.POST("/import", func(c echo.Context) error {
		start := time.Now()

		var body struct {
			Items     []customerService.CustomerRow `json:"items"`
			BatchSize int                           `json:"batch_size"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if len(body.Items) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "items array is required and must not be empty"})
		}

		res, err := customerService.ImportCustomersJSON(db, body.Items, body.BatchSize)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"created":             res.Created,
			"skipped":             res.Skipped,
			"errors":              res.Errors,
			"request_duration_ms": duration,
		})
	})
}
