package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/hitoshi/reallydirty/internal/model"
)

// apiBanner はルートパスで返すAPI名とバージョン。
const apiBanner = "ReallyDirty API v1.0"

// HealthChecker は依存先の疎通確認を行う。
type HealthChecker interface {
	Check(ctx context.Context) error
}

// healthResponse はヘルスチェックのレスポンス。
type healthResponse struct {
	Status string `json:"status"`
}

// Index はAPI名とバージョンをJSON文字列で返す。
// GET /
func Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apiBanner)
}

// NewHealthHandler はヘルスチェックハンドラーを返す。
// checkerがnilの場合は常にokを返す。
// GET /health
func NewHealthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			if err := checker.Check(r.Context()); err != nil {
				slog.Error("health check failed", slog.String("error", err.Error()))
				writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}

// notFound は未定義パスに空オブジェクトの404で応答する。
func notFound(w http.ResponseWriter, r *http.Request) {
	writeEmptyObject(w, http.StatusNotFound)
}

// methodNotAllowed はサポート外のメソッドに空オブジェクトの400で応答する。
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	handleServiceError(w, r, model.NewMethodNotAllowedError(r.Method))
}
