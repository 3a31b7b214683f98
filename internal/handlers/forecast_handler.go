// internal/handlers/forecast_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/service"
	"go_5_vocab_srs/internal/webutil"

	"cloud.google.com/go/civil"
)

type ForecastHandler struct {
	service service.ForecastService
	logger  *slog.Logger
}

func NewForecastHandler(s service.ForecastService, logger *slog.Logger) *ForecastHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ForecastHandler{service: s, logger: logger}
}

// GetForecast は辞書ごとの日別出題数の予測を返します (?days=N&start=YYYY-MM-DD)
func (h *ForecastHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetForecast"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Tenant not found in context", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "テナント情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	query := model.ForecastQuery{Start: r.URL.Query().Get("start")}
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warn("Invalid days parameter", slog.String("days", raw))
			appErr := model.NewAppError("VALIDATION_ERROR", "予測日数は整数で指定してください。", "days", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		query.Days = &days
	}

	if err := webutil.Validator.Struct(query); err != nil {
		if appErr := webutil.NewValidationAppError(err); appErr != nil {
			logger.Warn("Validation failed", slog.String("error", err.Error()))
			webutil.HandleError(w, logger, appErr)
			return
		}
		logger.Error("Unexpected error during validation", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	var start *civil.Date
	if query.Start != "" {
		d, err := civil.ParseDate(query.Start)
		if err != nil {
			appErr := model.NewAppError("VALIDATION_ERROR", "開始日はYYYY-MM-DD形式で指定してください。", "start", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		start = &d
	}

	res, err := h.service.GetForecast(r.Context(), tenantID, start, query.Days)
	if err != nil {
		logger.Error("Error computing forecast in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}
