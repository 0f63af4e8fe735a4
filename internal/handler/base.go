package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/ordering-backend/internal/middleware"
	"github.com/deppfellow/ordering-backend/internal/server"
	"github.com/deppfellow/ordering-backend/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Handler holds what every resource handler shares: the server, for
// config, logger and database access.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint. It receives a bound and validated
// request and returns the value written as the JSON body.
//
// Req is a pointer type, e.g. *CreateProductRequest, because Echo's Bind
// needs a pointer to populate fields.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// requestTrace follows one request through the pipeline, reporting each
// stage to the request logger and, when New Relic is on, the transaction.
type requestTrace struct {
	logger zerolog.Logger
	txn    *newrelic.Transaction
	start  time.Time
}

func newRequestTrace(c echo.Context) *requestTrace {
	t := &requestTrace{
		logger: middleware.GetLogger(c).With().
			Str("operation", "handler").
			Str("route", c.Path()).
			Logger(),
		txn:   newrelic.FromContext(c.Request().Context()),
		start: time.Now(),
	}
	t.attr("handler.name", c.Path())
	return t
}

func (t *requestTrace) attr(key string, value interface{}) {
	if t.txn != nil {
		t.txn.AddAttribute(key, value)
	}
}

// stage records how long a pipeline stage took and whether it failed.
func (t *requestTrace) stage(name string, started time.Time, err error) time.Duration {
	elapsed := time.Since(started)
	t.attr(name+".duration_ms", elapsed.Milliseconds())

	if err == nil {
		t.attr(name+".status", "success")
		return elapsed
	}

	t.attr(name+".status", "failed")
	if t.txn != nil {
		t.txn.NoticeError(nrpkgerrors.Wrap(err))
	}

	// GlobalErrorHandler logs the error itself at warn or error level.
	t.logger.Debug().
		Err(err).
		Int("status", middleware.StatusOf(err)).
		Dur(name+"_duration", elapsed).
		Msgf("%s failed", name)
	return elapsed
}

// handleRequest binds and validates req, runs fn and writes its result as
// JSON with status. Errors are returned untouched for GlobalErrorHandler.
func handleRequest[Req validation.Validatable, Res any](
	c echo.Context,
	req Req,
	fn HandlerFunc[Req, Res],
	status int,
) error {
	trace := newRequestTrace(c)
	trace.logger.Debug().Msg("handling request")

	validationStart := time.Now()
	err := validation.BindAndValidate(c, req)
	validationDuration := trace.stage("validation", validationStart, err)
	if err != nil {
		return err
	}

	handlerStart := time.Now()
	result, err := fn(c, req)
	handlerDuration := trace.stage("handler", handlerStart, err)
	if err != nil {
		return err
	}

	total := time.Since(trace.start)
	trace.attr("total.duration_ms", total.Milliseconds())

	trace.logger.Info().
		Int("status", status).
		Dur("validation_duration", validationDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", total).
		Msg("request completed successfully")

	if c.Request().Method == http.MethodHead {
		return c.NoContent(status)
	}
	return c.JSON(status, result)
}

// Handle adapts a typed handler to an echo.HandlerFunc.
//
// req is bound in place, so callers pass a fresh value per request:
//
//	func (h *ProductHandler) CreateProduct(c echo.Context) error {
//		return Handle(h.Handler, h.createProduct, http.StatusCreated, &CreateProductRequest{})(c)
//	}
func Handle[Req validation.Validatable, Res any](
	h Handler,
	fn HandlerFunc[Req, Res],
	status int,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, req, fn, status)
	}
}
