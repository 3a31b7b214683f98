// internal/middleware/tenant.go
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"go_5_vocab_srs/internal/model"
	"go_5_vocab_srs/internal/webutil"

	"github.com/google/uuid"
)

// TenantHeader は学習者を指定するヘッダーです。認証はこのサービスの前段で済んでいる前提です。
const TenantHeader = "X-Tenant-ID"

// TenantResolver はテナントの存在確認を行います (service.TenantService が実装)。
type TenantResolver interface {
	GetTenant(ctx context.Context, tenantID uuid.UUID) (*model.Tenant, error)
}

// TenantContextMiddleware は X-Tenant-ID ヘッダーのテナントを確認し、コンテキストに設定します。
func TenantContextMiddleware(resolver TenantResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			tenantIDStr := r.Header.Get(TenantHeader)
			if tenantIDStr == "" {
				logger.Warn("Tenant resolution failed: header missing")
				appErr := model.NewAppError("TENANT_REQUIRED", "X-Tenant-IDヘッダーが必要です。", "", model.ErrInvalidInput)
				webutil.HandleError(w, logger, appErr)
				return
			}

			tenantID, err := uuid.Parse(tenantIDStr)
			if err != nil {
				logger.Warn("Tenant resolution failed: invalid header format", slog.String("tenant_id_str", tenantIDStr))
				appErr := model.NewAppError("INVALID_TENANT_ID", "X-Tenant-IDの形式が正しくありません。", "", model.ErrInvalidInput)
				webutil.HandleError(w, logger, appErr)
				return
			}

			tenant, err := resolver.GetTenant(r.Context(), tenantID)
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					logger.Warn("Tenant resolution failed: tenant not found", slog.String("tenant_id", tenantID.String()))
					appErr := model.NewAppError("TENANT_NOT_FOUND", "テナントが見つかりません。", "", model.ErrTenantNotFound)
					webutil.HandleError(w, logger, appErr)
					return
				}
				logger.Error("Tenant resolution failed", slog.Any("error", err))
				webutil.HandleError(w, logger, err)
				return
			}
			if !tenant.IsActive {
				logger.Warn("Tenant resolution failed: tenant inactive", slog.String("tenant_id", tenantID.String()))
				appErr := model.NewAppError("TENANT_INACTIVE", "テナントが有効ではありません。", "", model.ErrForbidden)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.TenantIDKey, tenantID)
			ctx = WithLogger(ctx, logger.With(slog.String("tenant_id", tenantID.String())))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetTenantIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.TenantIDKey).(uuid.UUID)
	if !ok {
		// ミドルウェアが正しく動作していない等の内部エラー
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストからテナント情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}
