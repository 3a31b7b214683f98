// internal/service/forecast_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"go_5_vocab_srs/internal/config"
	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/repository"
	"go_5_vocab_srs/internal/srs"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ForecastService interface {
	// GetForecast は start (nil なら今日) から days (nil なら既定値) 日間の出題数を辞書ごとに予測します。
	GetForecast(ctx context.Context, tenantID uuid.UUID, start *civil.Date, days *int) (*model.ForecastResponse, error)
}

type forecastService struct {
	db       *gorm.DB
	dictRepo repository.DictionaryRepository
	pairRepo repository.WordPairRepository
	cfg      *config.Config
	clock    Clock
}

func NewForecastService(
	db *gorm.DB,
	dictRepo repository.DictionaryRepository,
	pairRepo repository.WordPairRepository,
	cfg *config.Config,
	clock Clock,
) ForecastService {
	return &forecastService{
		db:       db,
		dictRepo: dictRepo,
		pairRepo: pairRepo,
		cfg:      cfg,
		clock:    clock,
	}
}

func (s *forecastService) GetForecast(ctx context.Context, tenantID uuid.UUID, start *civil.Date, days *int) (*model.ForecastResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	n := s.cfg.Forecast.DefaultDays
	if days != nil {
		n = *days
	}
	if n > s.cfg.Forecast.MaxDays {
		return nil, model.NewAppError("INVALID_INPUT", fmt.Sprintf("予測日数は%d以下で指定してください。", s.cfg.Forecast.MaxDays), "days", model.ErrInvalidInput)
	}

	from := today(s.clock, s.cfg.App.Location())
	if start != nil {
		from = *start
	}

	dictionaries, err := s.dictRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Failed to find dictionaries from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "辞書の取得に失敗しました。", "", err)
	}
	pairs, err := s.pairRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Failed to find word pairs from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}

	byDictionary := make(map[uuid.UUID][]*model.WordPair, len(dictionaries))
	for _, p := range pairs {
		byDictionary[p.DictionaryID] = append(byDictionary[p.DictionaryID], p)
	}
	groups := make([]srs.Group[uuid.UUID, *model.WordPair], 0, len(dictionaries))
	for _, d := range dictionaries {
		groups = append(groups, srs.Group[uuid.UUID, *model.WordPair]{Key: d.DictionaryID, Items: byDictionary[d.DictionaryID]})
	}

	projection, err := srs.Forecast(groups, from, n)
	if err != nil {
		if errors.Is(err, srs.ErrInvalidArgument) {
			return nil, model.NewAppError("INVALID_INPUT", "予測日数は0以上で指定してください。", "days", errors.Join(model.ErrInvalidInput, err))
		}
		logger.Error("Failed to run forecast", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "予測の計算に失敗しました。", "", err)
	}

	response := &model.ForecastResponse{
		StartDate: projection.Start.String(),
		Dates:     make([]string, 0, len(projection.Dates)),
		Series:    make([]model.ForecastSeries, 0, len(dictionaries)),
		Sum:       projection.Sum(),
	}
	for _, d := range projection.Dates {
		response.Dates = append(response.Dates, d.String())
	}
	for _, d := range dictionaries {
		response.Series = append(response.Series, model.ForecastSeries{
			DictionaryID: d.DictionaryID,
			Name:         d.Name,
			Counts:       projection.Counts[d.DictionaryID],
		})
	}

	logger.Info("Forecast computed", "start", response.StartDate, "days", n, "dictionaries", len(dictionaries))
	return response, nil
}
