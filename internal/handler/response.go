package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/hitoshi/reallydirty/internal/middleware"
	"github.com/hitoshi/reallydirty/internal/model"
)

// idResponse は作成系エンドポイントのレスポンス。
type idResponse struct {
	ID int64 `json:"id"`
}

// writeJSON は値をJSONとして書き込む。
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

// writeEmptyObject は空オブジェクト {} を書き込む。
// 医師未検出とサポート外メソッドはこの本文で応答する。
func writeEmptyObject(w http.ResponseWriter, statusCode int) {
	writeJSON(w, statusCode, struct{}{})
}

// writeAPIErrorResponse は統一エラーフォーマットでレスポンスを書き込む。
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	middleware.WriteErrorResponse(w, statusCode, apiErr)
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPレスポンスに変換する。
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		statusCode := mapAPIErrorToHTTPStatus(apiErr)
		switch apiErr.Code {
		case model.ErrCodeDoctorNotFound, model.ErrCodeMethodNotAllowed:
			writeEmptyObject(w, statusCode)
		default:
			writeAPIErrorResponse(w, statusCode, apiErr)
		}
		return
	}

	// APIError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("request_id", middleware.RequestIDFromContext(r.Context())),
	)
	writeAPIErrorResponse(w, http.StatusInternalServerError, model.NewInternalError())
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeDoctorNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidDate, model.ErrCodeInvalidRequest, model.ErrCodeMethodNotAllowed:
		return http.StatusBadRequest
	case model.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
