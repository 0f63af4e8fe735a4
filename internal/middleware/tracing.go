package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/ordering-backend/internal/server"
)

// TracingMiddleware wraps the New Relic Echo integration. nrApp is nil
// when New Relic is disabled, and then every middleware it returns is a
// pass-through.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

func passThrough(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}

// NewRelicMiddleware starts one transaction per request and stores it in
// the request context for newrelic.FromContext.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return passThrough
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing tags the transaction with client, route and request id,
// then with the final status once the handler chain returns. Errors are
// noticed with their pkg/errors stack. It must run after
// NewRelicMiddleware and RequestID.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return passThrough
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			for key, value := range map[string]interface{}{
				"http.real_ip":        c.RealIP(),
				"http.user_agent":     c.Request().UserAgent(),
				"http.route":          c.Path(),
				"request.id":          GetRequestID(c),
				"service.environment": tm.server.Config.Primary.Env,
			} {
				txn.AddAttribute(key, value)
			}

			err := next(c)

			status := c.Response().Status
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
				status = StatusOf(err)
			}
			txn.AddAttribute("http.status_code", status)

			return err
		}
	}
}
