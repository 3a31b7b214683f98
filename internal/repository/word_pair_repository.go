//go:generate mockery --name WordPairRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WordPairRepository interface {
	FindByDictionary(ctx context.Context, db *gorm.DB, tenantID, dictionaryID uuid.UUID) ([]*model.WordPair, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.WordPair, error)
	FindByID(ctx context.Context, db *gorm.DB, tenantID, wordPairID uuid.UUID) (*model.WordPair, error)
	UpdateReviewState(ctx context.Context, tx *gorm.DB, pair *model.WordPair, direction srs.Direction) error
}

type gormWordPairRepository struct{}

func NewGormWordPairRepository() WordPairRepository {
	return &gormWordPairRepository{}
}

// 論理削除された辞書の単語は存在しないものとして扱う
const joinLiveDictionaries = "JOIN dictionaries ON dictionaries.dictionary_id = word_pairs.dictionary_id AND dictionaries.deleted_at IS NULL"

func (r *gormWordPairRepository) FindByDictionary(ctx context.Context, db *gorm.DB, tenantID, dictionaryID uuid.UUID) ([]*model.WordPair, error) {
	logger := middleware.GetLogger(ctx)
	var pairs []*model.WordPair
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND dictionary_id = ?", tenantID, dictionaryID).
		Order("created_at ASC").
		Find(&pairs)
	if result.Error != nil {
		logger.Error("Error finding word pairs by dictionary in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"dictionary_id", dictionaryID.String(),
		)
		return nil, fmt.Errorf("gormWordPairRepository.FindByDictionary: %w", result.Error)
	}
	return pairs, nil
}

func (r *gormWordPairRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.WordPair, error) {
	logger := middleware.GetLogger(ctx)
	var pairs []*model.WordPair
	result := db.WithContext(ctx).
		Joins(joinLiveDictionaries).
		Where("word_pairs.tenant_id = ?", tenantID).
		Order("word_pairs.created_at ASC").
		Find(&pairs)
	if result.Error != nil {
		logger.Error("Error finding word pairs by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormWordPairRepository.FindByTenant: %w", result.Error)
	}
	return pairs, nil
}

func (r *gormWordPairRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, wordPairID uuid.UUID) (*model.WordPair, error) {
	logger := middleware.GetLogger(ctx)
	var pair model.WordPair
	result := db.WithContext(ctx).
		Joins(joinLiveDictionaries).
		Where("word_pairs.tenant_id = ? AND word_pairs.word_pair_id = ?", tenantID, wordPairID).
		First(&pair)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word pair by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"word_pair_id", wordPairID.String(),
		)
		return nil, fmt.Errorf("gormWordPairRepository.FindByID: %w", result.Error)
	}
	return &pair, nil
}

// UpdateReviewState は direction の復習状態の2カラムだけを更新します。
// もう一方の方向と単語の内容には触れないので、同じ単語の両方向の回答が並行しても互いを上書きしません。
func (r *gormWordPairRepository) UpdateReviewState(ctx context.Context, tx *gorm.DB, pair *model.WordPair, direction srs.Direction) error {
	logger := middleware.GetLogger(ctx)
	if !direction.Valid() {
		return fmt.Errorf("gormWordPairRepository.UpdateReviewState: direction %d: %w", direction, model.ErrInvalidInput)
	}

	strengthCol, dueCol := model.ReviewColumnNames(direction)
	cols := pair.First
	if direction == srs.Second {
		cols = pair.Second
	}
	result := tx.WithContext(ctx).
		Model(&model.WordPair{}).
		Where("tenant_id = ? AND word_pair_id = ?", pair.TenantID, pair.WordPairID).
		Updates(map[string]interface{}{
			strengthCol: cols.Strength,
			dueCol:      cols.DueDate,
		})
	if result.Error != nil {
		logger.Error("Error updating review state in DB",
			"error", result.Error,
			"tenant_id", pair.TenantID.String(),
			"word_pair_id", pair.WordPairID.String(),
			"direction", direction.String(),
		)
		return fmt.Errorf("gormWordPairRepository.UpdateReviewState: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
