package api

import (
	"net/http"
	"time"

	"github.com/dancaldera/investment-api/internal/domain/models"
	"github.com/dancaldera/investment-api/internal/domain/service"
	xhttp "github.com/dancaldera/investment-api/pkg/http"
	xlogger "github.com/dancaldera/investment-api/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler exposes the signal engine over Echo routes.
type AnalysisHandler struct {
	logger   *xlogger.Logger
	analyzer service.Analyzer
}

// NewAnalysisHandler creates the handler.
func NewAnalysisHandler(logger *xlogger.Logger, analyzer service.Analyzer) *AnalysisHandler {
	return &AnalysisHandler{logger: logger, analyzer: analyzer}
}

// RegisterRoutes wires the analysis and liveness endpoints.
func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	g := e.Group("/api/v1")
	g.GET("/analysis", h.Analyze)
}

// Analyze handles GET /api/v1/analysis?symbol=&interval=. The engine
// never errors past its boundary, so every accepted request returns a
// rendered result in the standard envelope.
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	start := time.Now()
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.analyzer.Analyze(c.Request().Context(), req.Symbol, req.Interval)

	h.logger.Info("analysis served",
		xlogger.String("symbol", res.Symbol),
		xlogger.String("classification", res.Classification),
		xlogger.Duration("took", time.Since(start)))
	return xhttp.SuccessResponse(c, models.NewAnalyzeResponse(res))
}

// Health is the liveness probe.
func (h *AnalysisHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
