package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	applogger "AstroChart/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Recover returns recovery middleware. A panic in a handler is logged and
// converted into a generic 500 response; the process keeps serving.
func Recover(l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}
					if l != nil {
						l.Error("panic recovered",
							applogger.Error(err),
							applogger.String("path", c.Request().URL.Path),
							applogger.String("stack", string(debug.Stack())),
						)
					}
					_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"error": "internal error",
					})
				}
			}()
			return next(c)
		}
	}
}
