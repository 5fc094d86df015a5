package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/repuestos-analytics/internal/application/analytics"
	"github.com/jhoicas/repuestos-analytics/internal/application/dto"
	"github.com/jhoicas/repuestos-analytics/internal/domain/entity"
	"github.com/jhoicas/repuestos-analytics/internal/domain/forecast"
	"github.com/jhoicas/repuestos-analytics/internal/infrastructure/memory"
	"github.com/jhoicas/repuestos-analytics/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/repuestos-analytics/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func monthlyUsage(partID string, qtys ...int) []entity.UsageEvent {
	events := make([]entity.UsageEvent, 0, len(qtys))
	for i, q := range qtys {
		events = append(events, entity.UsageEvent{
			PartID:    partID,
			Quantity:  q,
			Timestamp: time.Date(2024, time.Month(i+1), 5, 8, 0, 0, 0, time.UTC),
		})
	}
	return events
}

func testStore() *memory.Store {
	s := memory.NewStore()
	s.AddPart(entity.Part{ID: "p1", Code: "FIL001", Description: "Filtro de aceite", CurrentStock: 2, MinimumStock: 5})
	s.AddPart(entity.Part{ID: "p2", Code: "COR100", Description: "Correa", CurrentStock: 100})
	s.AddUsage(monthlyUsage("p1", 20, 20, 20)...)
	s.AddUsage(monthlyUsage("p2", 2, 2, 2)...)
	return s
}

// buildTestApp construye una aplicación Fiber con las rutas de analítica sobre el store dado.
func buildTestApp(store *memory.Store) *fiber.App {
	uc := analytics.NewPredictiveUseCase(
		store, store,
		forecast.NewEngine(forecast.DefaultConfig()),
		nil,
		analytics.WithReportGenerator(pdf.NewMarotoReportGenerator("Compras sugeridas")),
	)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{Analytics: uc})
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, dst), "body: %s", body)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAll_DevuelveAnaliticaPorRepuesto(t *testing.T) {
	app := buildTestApp(testStore())

	resp := doGet(t, app, "/api/analytics/parts")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID), "se genera X-Request-ID")

	var out []map[string]any
	decodeBody(t, resp, &out)
	require.Len(t, out, 2)
	assert.Equal(t, "FIL001", out[0]["code"])
	assert.Equal(t, "critical", out[0]["criticality"])
	assert.EqualValues(t, 3, out[0]["days_until_stockout"])
	assert.Equal(t, "20", out[0]["avg_monthly_consumption"])
}

func TestGetAll_RespetaRequestIDDelCliente(t *testing.T) {
	app := buildTestApp(testStore())

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/parts", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestGetByPart(t *testing.T) {
	app := buildTestApp(testStore())

	resp := doGet(t, app, "/api/analytics/parts/p2")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.PartAnalyticsDTO
	decodeBody(t, resp, &out)
	assert.Equal(t, "COR100", out.Code)
	assert.Equal(t, "low", out.Criticality)
	assert.Contains(t, out.Alerts, forecast.AlertOverstock)

	resp = doGet(t, app, "/api/analytics/parts/no-existe")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var errBody dto.ErrorResponse
	decodeBody(t, resp, &errBody)
	assert.Equal(t, "NOT_FOUND", errBody.Code)
}

func TestGetByPart_SinConsumoDiasNull(t *testing.T) {
	store := testStore()
	store.AddPart(entity.Part{ID: "p3", Code: "JUN300", CurrentStock: 0})
	app := buildTestApp(store)

	resp := doGet(t, app, "/api/analytics/parts/p3")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out map[string]any
	decodeBody(t, resp, &out)
	assert.Nil(t, out["days_until_stockout"])
	assert.Equal(t, true, out["no_depletion"])
	assert.Equal(t, []any{}, out["high_demand_months"])
}

func TestGetCritical(t *testing.T) {
	app := buildTestApp(testStore())

	resp := doGet(t, app, "/api/analytics/critical")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.CriticalItemsDTO
	decodeBody(t, resp, &out)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "FIL001", out.Items[0].Code)
	assert.Equal(t, 1, out.Summary.Critical)
}

func TestGetRecommendations(t *testing.T) {
	app := buildTestApp(testStore())

	resp := doGet(t, app, "/api/analytics/recommendations")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out []dto.RecommendationDTO
	decodeBody(t, resp, &out)
	require.Len(t, out, 1)
	assert.Equal(t, "alta", out[0].Priority)
	assert.Equal(t, "stock crítico: 3 días restantes", out[0].Reason)
	// sugerido 40, déficit 38; demanda 60 días = 40
	assert.Equal(t, 40, out[0].SuggestedQuantity)
}

func TestGetRecommendationsPDF(t *testing.T) {
	app := buildTestApp(testStore())

	resp := doGet(t, app, "/api/analytics/recommendations/pdf")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, len(body) > 4 && string(body[:4]) == "%PDF")
}

func TestEntradaInvalida_422(t *testing.T) {
	store := testStore()
	store.AddUsage(entity.UsageEvent{PartID: "p1", Quantity: -3, Timestamp: time.Now()})
	app := buildTestApp(store)

	resp := doGet(t, app, "/api/analytics/recommendations")
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	var errBody dto.ErrorResponse
	decodeBody(t, resp, &errBody)
	assert.Equal(t, "INVALID_INPUT", errBody.Code)
}

func TestErrorDeHistorial_500(t *testing.T) {
	store := testStore()
	store.FailUsageFor("p2", errors.New("conexión rechazada"))
	app := buildTestApp(store)

	resp := doGet(t, app, "/api/analytics/critical")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	var errBody dto.ErrorResponse
	decodeBody(t, resp, &errBody)
	assert.Equal(t, "INTERNAL", errBody.Code)
	assert.Contains(t, errBody.Message, "conexión rechazada")
}
