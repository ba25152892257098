package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/reallydirty/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	Logger *slog.Logger

	// ミドルウェア依存
	CORSAllowedOrigins []string
	GeneralRateLimit   int // req/min/client。0以下なら無効
	RateLimiter        *middleware.RateLimiter
	MetricsRecorder    middleware.HTTPRequestRecorder

	// 運用エンドポイント
	HealthChecker  HealthChecker
	MetricsHandler http.Handler

	// ドメイン
	DoctorService DoctorServiceInterface
	SlotService   SlotServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	RequestID → Logging → Recovery → Metrics → SecurityHeaders → CORS
//	  → (医師・予約枠ルートのみ) GeneralRateLimit → WriteRateLimit(POST)
//
// 未定義パスは404 {}、定義済みパスへのサポート外メソッドは400 {} を返す。
func NewRouter(deps *RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(middleware.NewRequestIDMiddleware())
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(middleware.NewRecoveryMiddleware(logger))
	if deps.MetricsRecorder != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.MetricsRecorder))
	}
	r.Use(middleware.NewSecurityHeadersMiddleware())
	if len(deps.CORSAllowedOrigins) > 0 {
		r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigins))
	}

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	doctorHandler := NewDoctorHandler(deps.DoctorService)
	slotHandler := NewSlotHandler(deps.SlotService)

	// --- 運用エンドポイント ---
	r.Get("/", Index)
	r.Get("/health", NewHealthHandler(deps.HealthChecker))
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	// --- 医師・予約枠 ---
	r.Group(func(r chi.Router) {
		if deps.GeneralRateLimit > 0 {
			r.Use(middleware.NewGeneralRateLimit(deps.GeneralRateLimit))
		}
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.WriteMiddleware())
		}

		r.Get("/doctor", doctorHandler.GetDoctor)
		r.Post("/doctor", doctorHandler.CreateDoctor)

		r.Get("/doctor/{doctorId:[0-9]+}/slots", slotHandler.ListSlots)
		r.Post("/doctor/{doctorId:[0-9]+}/slots", slotHandler.AddSlot)
	})

	return r
}
