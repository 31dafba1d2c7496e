package html

import (
	"html/template"
	"io"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	eventRepo "crm.GO/model/repository/event"
	crmService "crm.GO/service/crm"
)

type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// RegisterDashboardRoutes registers the server-rendered CRM dashboard.
func RegisterDashboardRoutes(e *echo.Echo, db *gorm.DB) {
	e.GET("/dashboard", func(c echo.Context) error {
		report, err := crmService.BuildReport(db)
		if err != nil {
			log.Println("dashboard: report:", err)
			return c.String(http.StatusInternalServerError, "Error building report")
		}
		events, err := eventRepo.GetEventRepository(db).Recent(10)
		if err != nil {
			log.Println("dashboard: events:", err)
		}
		return c.Render(http.StatusOK, "dashboard.html", map[string]interface{}{
			"Report": report,
			"Events": events,
		})
	})
}
