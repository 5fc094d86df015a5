package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/repuestos-analytics/pkg/logger"
)

// HeaderRequestID cabecera de correlación de peticiones.
const HeaderRequestID = "X-Request-ID"

// RequestLogger registra método, ruta, estado y latencia de cada petición.
// Reutiliza X-Request-ID si el cliente lo envía; si no, genera uno.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)
		c.Locals("request_id", reqID)

		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición procesada")
		return err
	}
}
