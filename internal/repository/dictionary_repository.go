//go:generate mockery --name DictionaryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DictionaryRepository interface {
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Dictionary, error)
	FindByID(ctx context.Context, db *gorm.DB, tenantID, dictionaryID uuid.UUID) (*model.Dictionary, error)
}

type gormDictionaryRepository struct{}

func NewGormDictionaryRepository() DictionaryRepository {
	return &gormDictionaryRepository{}
}

// FindByTenant は論理削除されていない辞書を作成順に返します。予測の系列順はこの順序です。
func (r *gormDictionaryRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Dictionary, error) {
	logger := middleware.GetLogger(ctx)
	var dictionaries []*model.Dictionary
	result := db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC, dictionary_id ASC").
		Find(&dictionaries)
	if result.Error != nil {
		logger.Error("Error finding dictionaries by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormDictionaryRepository.FindByTenant: %w", result.Error)
	}
	return dictionaries, nil
}

func (r *gormDictionaryRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, dictionaryID uuid.UUID) (*model.Dictionary, error) {
	logger := middleware.GetLogger(ctx)
	var dictionary model.Dictionary
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND dictionary_id = ?", tenantID, dictionaryID).
		First(&dictionary)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding dictionary by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"dictionary_id", dictionaryID.String(),
		)
		return nil, fmt.Errorf("gormDictionaryRepository.FindByID: %w", result.Error)
	}
	return &dictionary, nil
}
