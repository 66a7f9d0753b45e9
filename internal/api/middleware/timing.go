package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	HeaderExecuteTime = "Execute-time"
	HeaderProcessTime = "X-Process-Time"
)

// Timing stamps successful responses with their completion time and elapsed
// processing time, and logs one line per request.
func Timing(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			res := c.Response()

			res.Before(func() {
				if res.Status >= 400 {
					return
				}
				res.Header().Set(HeaderExecuteTime, time.Now().UTC().Format(time.RFC3339Nano))
				res.Header().Set(HeaderProcessTime, time.Since(start).String())
			})

			err := next(c)
			if err != nil {
				// Let the error handler write the response so the status is final.
				c.Error(err)
			}

			log.Info().
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Str("method", c.Request().Method).
				Str("url", c.Request().URL.String()).
				Int("status", res.Status).
				Dur("elapsed", time.Since(start)).
				Msg("request completed")

			return nil
		}
	}
}
