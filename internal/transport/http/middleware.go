package http

import (
	"github.com/labstack/echo/v4"

	"github.com/njprem/VisitEgypt_BackEnd/internal/domain"
	"github.com/njprem/VisitEgypt_BackEnd/internal/navigation"
	"github.com/njprem/VisitEgypt_BackEnd/internal/service"
)

const contextRecorderKey = "navigation.recorder"

// ProvideSession scopes every request below it to manager.
func ProvideSession(manager *service.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(service.WithSessionManager(req.Context(), manager)))
			return next(c)
		}
	}
}

// TrackNavigation attaches a route recorder to the request so services can
// navigate without knowing about HTTP.
func TrackNavigation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx, rec := navigation.WithRecorder(req.Context())
			c.SetRequest(req.WithContext(ctx))
			c.Set(contextRecorderKey, rec)
			return next(c)
		}
	}
}

func CurrentUser(c echo.Context) (domain.User, bool, error) {
	return service.CurrentUserFromContext(c.Request().Context())
}

// navigatedTo returns the last route a service navigated to during this request.
func navigatedTo(c echo.Context) (string, bool) {
	rec, ok := c.Get(contextRecorderKey).(*navigation.Recorder)
	if !ok || rec == nil {
		return "", false
	}
	return rec.Last()
}
