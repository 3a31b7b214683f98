package handlers

import (
	"log/slog"
	"time"

	"go_5_vocab_srs/internal/config"
	"go_5_vocab_srs/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Router はルーティングに必要なハンドラ一式です。
type Router struct {
	Practice *PracticeHandler
	Forecast *ForecastHandler
	Health   *HealthHandler
	Tenants  middleware.TenantResolver
	CORS     config.CORSConfig
	Logger   *slog.Logger
}

// NewRouter はミドルウェアと /api/v1 以下のルートを設定した chi ルーターを返します。
func NewRouter(rt Router) *chi.Mux {
	logger := rt.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   rt.CORS.AllowedOrigins,
		AllowedMethods:   rt.CORS.AllowedMethods,
		AllowedHeaders:   rt.CORS.AllowedHeaders,
		ExposedHeaders:   rt.CORS.ExposedHeaders,
		AllowCredentials: rt.CORS.AllowCredentials,
		MaxAge:           rt.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// すべてテナント指定が必要
		r.Use(middleware.TenantContextMiddleware(rt.Tenants))

		r.Route("/dictionaries/{dictionary_id}/practice", func(r chi.Router) {
			r.Get("/", rt.Practice.GetWordsToPractice)
			r.Get("/count", rt.Practice.GetPracticeCount)
		})
		r.Post("/word-pairs/{word_pair_id}/answer", rt.Practice.SubmitAnswer)
		r.Get("/forecast", rt.Forecast.GetForecast)
	})

	r.Get("/health", rt.Health.Health)
	return r
}
