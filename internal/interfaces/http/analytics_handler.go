package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/repuestos-analytics/internal/application/analytics"
	"github.com/jhoicas/repuestos-analytics/internal/application/dto"
	"github.com/jhoicas/repuestos-analytics/internal/domain"
)

// AnalyticsHandler expone la analítica predictiva de inventario.
type AnalyticsHandler struct {
	uc *analytics.PredictiveUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.PredictiveUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetAll godoc
// @Summary      Analítica predictiva de todos los repuestos
// @Description  Tendencia, pronóstico 30/60/90 días, estacionalidad, criticidad, confianza y alertas por repuesto.
// @Tags         analytics
// @Produce      json
// @Success      200  {array}   dto.PartAnalyticsDTO
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/parts [get]
func (h *AnalyticsHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAllAnalytics(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByPart godoc
// @Summary      Analítica predictiva de un repuesto
// @Tags         analytics
// @Produce      json
// @Param        id   path      string  true  "ID del repuesto"
// @Success      200  {object}  dto.PartAnalyticsDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/parts/{id} [get]
func (h *AnalyticsHandler) GetByPart(c *fiber.Ctx) error {
	out, err := h.uc.GetPartAnalytics(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetCritical godoc
// @Summary      Repuestos críticos
// @Description  Criticidad critical/high o agotamiento dentro de 30 días, ordenados por días restantes.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.CriticalItemsDTO
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/critical [get]
func (h *AnalyticsHandler) GetCritical(c *fiber.Ctx) error {
	out, err := h.uc.GetCriticalItems(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetRecommendations godoc
// @Summary      Recomendaciones de compra priorizadas
// @Tags         analytics
// @Produce      json
// @Success      200  {array}   dto.RecommendationDTO
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/recommendations [get]
func (h *AnalyticsHandler) GetRecommendations(c *fiber.Ctx) error {
	out, err := h.uc.GetPurchaseRecommendations(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetRecommendationsPDF godoc
// @Summary      Recomendaciones de compra en PDF
// @Tags         analytics
// @Produce      application/pdf
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/recommendations/pdf [get]
func (h *AnalyticsHandler) GetRecommendationsPDF(c *fiber.Ctx) error {
	doc, err := h.uc.GetRecommendationsPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recomendaciones-compra.pdf"`)
	return c.Send(doc)
}

// writeError traduce errores de dominio a códigos HTTP.
func writeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
