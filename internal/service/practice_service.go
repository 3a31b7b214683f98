// internal/service/practice_service.go
package service

import (
	"context"
	"errors"

	"go_5_vocab_srs/internal/config"
	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/repository"
	"go_5_vocab_srs/internal/srs"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PracticeService interface {
	GetWordsToPractice(ctx context.Context, tenantID, dictionaryID uuid.UUID, scope srs.Scope) ([]*model.PracticeItemResponse, error)
	GetPracticeCount(ctx context.Context, tenantID, dictionaryID uuid.UUID) (int, error)
	SubmitAnswer(ctx context.Context, tenantID, wordPairID uuid.UUID, direction srs.Direction, correct bool) (*model.ReviewStateResponse, error)
}

type practiceService struct {
	db       *gorm.DB
	dictRepo repository.DictionaryRepository
	pairRepo repository.WordPairRepository
	cfg      *config.Config
	selector *srs.DueSelector
	clock    Clock
}

// NewPracticeService は selector が nil なら時刻で初期化した乱数で並べ替えます。
func NewPracticeService(
	db *gorm.DB,
	dictRepo repository.DictionaryRepository,
	pairRepo repository.WordPairRepository,
	cfg *config.Config,
	selector *srs.DueSelector,
	clock Clock,
) PracticeService {
	if selector == nil {
		selector = srs.NewDueSelector(nil)
	}
	return &practiceService{
		db:       db,
		dictRepo: dictRepo,
		pairRepo: pairRepo,
		cfg:      cfg,
		selector: selector,
		clock:    clock,
	}
}

func (s *practiceService) today() civil.Date {
	return today(s.clock, s.cfg.App.Location())
}

// loadDictionaryPairs は辞書の存在を確認してから単語ペアを取得します。
func (s *practiceService) loadDictionaryPairs(ctx context.Context, tenantID, dictionaryID uuid.UUID) ([]*model.WordPair, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "dictionary_id", dictionaryID)

	if _, err := s.dictRepo.FindByID(ctx, s.db, tenantID, dictionaryID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "辞書が見つかりません。", "dictionary_id", err)
		}
		logger.Error("Failed to find dictionary", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "辞書の取得に失敗しました。", "", err)
	}

	pairs, err := s.pairRepo.FindByDictionary(ctx, s.db, tenantID, dictionaryID)
	if err != nil {
		logger.Error("Failed to find word pairs from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}
	return pairs, nil
}

func (s *practiceService) GetWordsToPractice(ctx context.Context, tenantID, dictionaryID uuid.UUID, scope srs.Scope) ([]*model.PracticeItemResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "dictionary_id", dictionaryID)

	pairs, err := s.loadDictionaryPairs(ctx, tenantID, dictionaryID)
	if err != nil {
		return nil, err
	}

	due := srs.Select(s.selector, pairs, s.today(), scope)

	// 上限は並べ替えた後に適用する (0 は無制限)
	if limit := s.cfg.App.PracticeLimit; limit > 0 && len(due) > limit {
		due = due[:limit]
	}

	responses := make([]*model.PracticeItemResponse, 0, len(due))
	for _, d := range due {
		question, answer := d.Item.QuestionAndAnswer(d.Direction)
		responses = append(responses, &model.PracticeItemResponse{
			WordPairID:  d.Item.WordPairID,
			Direction:   int(d.Direction),
			Question:    question,
			Answer:      answer,
			Explanation: d.Item.Explanation,
			Strength:    d.Item.ReviewState(d.Direction).Strength,
		})
	}

	logger.Info("Successfully retrieved words to practice", "scope", string(scope), "count", len(responses))
	return responses, nil
}

func (s *practiceService) GetPracticeCount(ctx context.Context, tenantID, dictionaryID uuid.UUID) (int, error) {
	pairs, err := s.loadDictionaryPairs(ctx, tenantID, dictionaryID)
	if err != nil {
		return 0, err
	}
	count := len(srs.SelectDue(pairs, s.today()))
	middleware.GetLogger(ctx).Debug("Counted words to practice", "tenant_id", tenantID, "dictionary_id", dictionaryID, "count", count)
	return count, nil
}

// SubmitAnswer は1方向分の回答を反映します。
// 今日すでに正解して復習日が先に延びている場合は何もせず Applied=false を返します。
func (s *practiceService) SubmitAnswer(ctx context.Context, tenantID, wordPairID uuid.UUID, direction srs.Direction, correct bool) (*model.ReviewStateResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "word_pair_id", wordPairID, "direction", direction.String())

	if !direction.Valid() {
		return nil, model.NewAppError("INVALID_INPUT", "出題方向は1または2を指定してください。", "direction", model.ErrInvalidInput)
	}

	day := s.today()
	var response *model.ReviewStateResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 同じ (単語, 方向) への回答が並行したとき、AlreadyAnswered の判定と更新の間に割り込まれないよう行をロックする
		locked := tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "word_pairs"}})
		pair, err := s.pairRepo.FindByID(ctx, locked, tenantID, wordPairID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "単語が見つかりません。", "word_pair_id", err)
			}
			logger.Error("Error finding word pair in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得中にエラーが発生しました。", "", err)
		}

		current := pair.ReviewState(direction)
		if srs.AlreadyAnswered(current, day) {
			logger.Info("Answer already applied today, skipping", "due_date", current.DueDate.String())
			response = newReviewStateResponse(pair.WordPairID, direction, current, false)
			return nil
		}

		next := srs.Answer(current, day, correct)
		pair.SetReviewState(direction, next)
		if err := s.pairRepo.UpdateReviewState(ctx, tx, pair, direction); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Failed to update review state, record not found", "error", err)
				return model.NewAppError("NOT_FOUND", "更新対象の単語が見つかりませんでした。", "word_pair_id", err)
			}
			logger.Error("Error updating review state", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の更新に失敗しました。", "", err)
		}

		logger.Info("Answer applied",
			"correct", correct,
			"strength", next.Strength,
			"due_date", next.DueDate.String(),
		)
		response = newReviewStateResponse(pair.WordPairID, direction, next, true)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func newReviewStateResponse(id uuid.UUID, d srs.Direction, st srs.ReviewState, applied bool) *model.ReviewStateResponse {
	return &model.ReviewStateResponse{
		WordPairID: id,
		Direction:  int(d),
		Strength:   st.Strength,
		DueDate:    st.DueDate.String(),
		Applied:    applied,
	}
}
