// internal/handlers/practice_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/service"
	"go_5_vocab_srs/internal/srs"
	"go_5_vocab_srs/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PracticeHandler struct {
	service service.PracticeService
	logger  *slog.Logger
}

func NewPracticeHandler(s service.PracticeService, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PracticeHandler{
		service: s,
		logger:  logger,
	}
}

// tenantAndUUIDParam はテナントIDと URL パラメータ param の UUID を取り出します。失敗時はレスポンスを書いて ok=false を返します。
func tenantAndUUIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, param string) (tenantID, id uuid.UUID, ok bool) {
	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Tenant not found in context", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "テナント情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, uuid.Nil, false
	}

	raw := chi.URLParam(r, param)
	id, err = uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid ID format in URL", slog.String("param", param), slog.String("value", raw))
		appErr := model.NewAppError("INVALID_URL_PARAM", param+"の形式が正しくありません。", param, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, uuid.Nil, false
	}
	return tenantID, id, true
}

// GetWordsToPractice は辞書の今日の出題リストを返します (?scope=due|all)
func (h *PracticeHandler) GetWordsToPractice(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWordsToPractice"))

	tenantID, dictionaryID, ok := tenantAndUUIDParam(w, r, logger, "dictionary_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()), slog.String("dictionary_id", dictionaryID.String()))

	scope, err := srs.ParseScope(r.URL.Query().Get("scope"))
	if err != nil {
		logger.Warn("Invalid practice scope", slog.String("error", err.Error()))
		appErr := model.NewAppError("VALIDATION_ERROR", "出題範囲はdueまたはallを指定してください。", "scope", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	items, err := h.service.GetWordsToPractice(r.Context(), tenantID, dictionaryID, scope)
	if err != nil {
		logger.Error("Error getting words to practice in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if items == nil {
		items = []*model.PracticeItemResponse{}
	}
	logger.Info("Words to practice retrieved", slog.Int("count", len(items)))
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// GetPracticeCount は辞書の今日の出題数を返します
func (h *PracticeHandler) GetPracticeCount(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPracticeCount"))

	tenantID, dictionaryID, ok := tenantAndUUIDParam(w, r, logger, "dictionary_id")
	if !ok {
		return
	}

	count, err := h.service.GetPracticeCount(r.Context(), tenantID, dictionaryID)
	if err != nil {
		logger.Error("Error counting words to practice in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.PracticeCountResponse{Count: count}, logger)
}

// SubmitAnswer は1方向分の回答結果を反映します
func (h *PracticeHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitAnswer"))

	tenantID, wordPairID, ok := tenantAndUUIDParam(w, r, logger, "word_pair_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()), slog.String("word_pair_id", wordPairID.String()))

	var req model.SubmitAnswerRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		if appErr := webutil.NewValidationAppError(err); appErr != nil {
			logger.Warn("Validation failed", slog.String("error", err.Error()))
			webutil.HandleError(w, logger, appErr)
			return
		}
		logger.Error("Unexpected error during validation", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	direction, err := srs.ParseDirection(req.Direction)
	if err != nil {
		appErr := model.NewAppError("VALIDATION_ERROR", "出題方向は1または2を指定してください。", "direction", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	res, err := h.service.SubmitAnswer(r.Context(), tenantID, wordPairID, direction, *req.Answer)
	if err != nil {
		logger.Error("Error submitting answer in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Answer submitted", slog.Bool("applied", res.Applied), slog.Int("strength", res.Strength))
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}
