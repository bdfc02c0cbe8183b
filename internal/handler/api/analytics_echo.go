package api

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
	domrepo "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/repository"
	domsvc "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/service"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/usecase"
	xhttp "github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/http"
	xlogger "github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/logger"
)

// AnalyticsEchoHandler exposes the analytics engine over HTTP.
type AnalyticsEchoHandler struct {
	logger   *xlogger.Logger
	analyzer domsvc.Analyzer
	symbols  *usecase.SymbolAnalytics
	trainer  *usecase.Trainer
	model    domsvc.ModelService
}

func NewAnalyticsEchoHandler(
	logger *xlogger.Logger,
	analyzer domsvc.Analyzer,
	symbols *usecase.SymbolAnalytics,
	trainer *usecase.Trainer,
	model domsvc.ModelService,
) *AnalyticsEchoHandler {
	return &AnalyticsEchoHandler{
		logger:   logger,
		analyzer: analyzer,
		symbols:  symbols,
		trainer:  trainer,
		model:    model,
	}
}

func (h *AnalyticsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/analyze", h.Analyze)
	g.GET("/symbol/analyze", h.AnalyzeSymbol)
	g.POST("/model/train", h.Train)
	g.GET("/model/metrics", h.ModelMetrics)
	g.GET("/model/importance", h.FeatureImportance)
}

// Analyze runs the engine over candles supplied in the request body.
func (h *AnalyticsEchoHandler) Analyze(c echo.Context) error {
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	candles := make([]models.Candle, len(req.Candles))
	for i, p := range req.Candles {
		candles[i] = models.Candle{
			Bucket: time.Unix(p.Timestamp, 0).UTC(),
			Symbol: req.Symbol,
			Open:   p.Open,
			High:   p.High,
			Low:    p.Low,
			Close:  p.Close,
			Volume: p.Volume,
		}
	}

	report, err := h.analyzer.Analyze(c.Request().Context(), candles)
	if err != nil {
		if errors.Is(err, models.ErrInsufficientData) {
			return xhttp.UnprocessableResponse(c,
				xhttp.UnprocessableError(err.Error()).WithParam("min_required", usecase.MinCandlesForAnalysis))
		}
		h.logger.Error("analyze error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	report.Symbol = req.Symbol
	return xhttp.SuccessResponse(c, report)
}

// AnalyzeSymbol runs the engine over stored candles for a symbol.
// Without range params the latest n candles are used; an explicit
// from/to window takes precedence over n.
func (h *AnalyticsEchoHandler) AnalyzeSymbol(c echo.Context) error {
	req := &models.SymbolAnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	tf := domrepo.NormalizeTimeframe(req.TF)

	var report *models.AnalyticsReport
	var err error
	if raw := c.QueryParam("from"); raw != "" {
		from, ok := xhttp.ParseTime(raw)
		if !ok {
			return xhttp.BadRequestResponse(c,
				xhttp.BadRequestError("from must be RFC3339 or unix seconds"))
		}
		to := xhttp.ParseTimeDefault(c.QueryParam("to"), time.Now().UTC())
		report, err = h.symbols.AnalyzeSymbolRange(c.Request().Context(), req.Symbol, from, to, tf)
	} else {
		report, err = h.symbols.AnalyzeSymbol(c.Request().Context(), req.Symbol, req.N, tf)
	}
	if err != nil {
		if errors.Is(err, models.ErrInsufficientData) {
			return xhttp.UnprocessableResponse(c,
				xhttp.UnprocessableError(err.Error()).WithParam("symbol", req.Symbol))
		}
		h.logger.Error("symbol analyze error",
			xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=15")
	return xhttp.SuccessResponse(c, report)
}

// Train retrains the classifier from provided or synthetic examples.
func (h *AnalyticsEchoHandler) Train(c echo.Context) error {
	req := &models.TrainRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	metrics, err := h.trainer.Train(c.Request().Context(), req.Examples, req.Samples)
	if err != nil {
		if errors.Is(err, models.ErrInsufficientData) {
			return xhttp.UnprocessableResponse(c, xhttp.UnprocessableError(err.Error()))
		}
		h.logger.Error("train error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.CreatedResponse(c, metrics)
}

// ModelMetrics reports the last training run's held-out metrics.
func (h *AnalyticsEchoHandler) ModelMetrics(c echo.Context) error {
	metrics, ok := h.model.Metrics(c.Request().Context())
	if !ok {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("no trained model available"))
	}
	return xhttp.SuccessResponse(c, metrics)
}

// FeatureImportance reports the top-N features of the live model.
func (h *AnalyticsEchoHandler) FeatureImportance(c echo.Context) error {
	req := &models.ImportanceRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	importance := h.model.FeatureImportance(c.Request().Context(), req.TopN)
	if len(importance) == 0 {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("no trained model available"))
	}
	return xhttp.SuccessResponse(c, importance)
}
