// internal/service/tenant_service.go
package service

import (
	"context"
	"errors"

	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TenantService interface {
	GetTenant(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error)
}

type tenantService struct {
	db         *gorm.DB
	tenantRepo repository.TenantRepository
}

func NewTenantService(db *gorm.DB, repo repository.TenantRepository) TenantService {
	return &tenantService{db: db, tenantRepo: repo}
}

// GetTenant は指定されたIDのテナントを取得します (テナント解決ミドルウェアが利用)
func (s *tenantService) GetTenant(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, s.db, tenantID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error getting tenant from repo", "error", err, "tenant_id", tenantID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "テナント情報の取得に失敗しました。", "", err)
	}
	return tenant, nil
}
