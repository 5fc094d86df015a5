package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/repuestos-analytics/internal/application/analytics"
	"github.com/jhoicas/repuestos-analytics/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Analytics *analytics.PredictiveUseCase
	Logger    *logger.Logger
}

// Router registra las rutas de la API.
// Autenticación y permisos los resuelve la aplicación anfitriona delante de este servicio.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api", RequestLogger(log))

	analyticsGroup := api.Group("/analytics")
	h := NewAnalyticsHandler(deps.Analytics)
	analyticsGroup.Get("/parts", h.GetAll)
	analyticsGroup.Get("/parts/:id", h.GetByPart)
	analyticsGroup.Get("/critical", h.GetCritical)
	analyticsGroup.Get("/recommendations", h.GetRecommendations)
	analyticsGroup.Get("/recommendations/pdf", h.GetRecommendationsPDF)
}
