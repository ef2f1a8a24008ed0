package middleware

import (
	"net/http"
	"time"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrorHandler drains errors the handlers attached via c.Error after the
// chain runs. Handlers resolve their own status for domain errors; anything
// left here is unexpected, so the client gets an opaque 500 and the detail
// stays in the log.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		ultimo := c.Errors.Last()
		log.Error().
			Err(ultimo.Err).
			Str("request_id", c.GetString(RequestIDKey)).
			Str("metodo", c.Request.Method).
			Str("ruta", c.FullPath()).
			Msg("error no controlado")

		c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}

// Recovery turns a panic into the same opaque 500 the error drain produces,
// keeping the process alive.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panico", r).
					Str("request_id", c.GetString(RequestIDKey)).
					Str("ruta", c.Request.URL.Path).
					Msg("pánico recuperado")
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
			}
		}()
		c.Next()
	}
}

// Logger writes one line per request. Server errors log at error level and
// client errors at warn, so a grep for level keeps operational noise apart
// from real failures.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio := time.Now()
		c.Next()

		status := c.Writer.Status()
		var evt *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			evt = log.Error()
		case status >= http.StatusBadRequest:
			evt = log.Warn()
		default:
			evt = log.Info()
		}
		evt.
			Str("request_id", c.GetString(RequestIDKey)).
			Str("metodo", c.Request.Method).
			Str("ruta", c.Request.URL.Path).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Str("ip", c.ClientIP()).
			Dur("duracion", time.Since(inicio)).
			Msg("solicitud atendida")
	}
}
