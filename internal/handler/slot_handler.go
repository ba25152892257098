package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/reallydirty/internal/model"
)

// SlotServiceInterface は予約枠ハンドラーが必要とするサービスインターフェース。
type SlotServiceInterface interface {
	// ListSlots は医師の予約枠一覧を取得する。
	ListSlots(ctx context.Context, doctorID int64) ([]model.Slot, error)
	// EnsureDoctor は医師の存在を確認する。
	EnsureDoctor(ctx context.Context, doctorID int64) error
	// AddSlot は医師に予約枠を追加する。
	AddSlot(ctx context.Context, doctorID int64, day, fromHour string, duration int) (*model.Slot, error)
}

// SlotHandler は予約枠のHTTPハンドラー。
type SlotHandler struct {
	service SlotServiceInterface
}

// NewSlotHandler はSlotHandlerを生成する。
func NewSlotHandler(service SlotServiceInterface) *SlotHandler {
	return &SlotHandler{service: service}
}

// slotResponse は予約枠のAPIレスポンス。
type slotResponse struct {
	ID       int64  `json:"id"`
	Day      string `json:"day"`
	FromHour string `json:"from_hour"`
	Duration int    `json:"duration"`
}

// ListSlots は医師の予約枠一覧を返す。予約枠がない場合は空配列を返す。
// GET /doctor/{doctorId}/slots
func (h *SlotHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := doctorIDParam(r)
	if !ok {
		writeEmptyObject(w, http.StatusNotFound)
		return
	}

	slots, err := h.service.ListSlots(r.Context(), doctorID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	resp := make([]slotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, toSlotResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddSlot は医師に予約枠を追加する。
// POST /doctor/{doctorId}/slots
// 医師未検出は入力エラーより優先する。入力が不正な場合のみ先に医師の存在を確認する。
func (h *SlotHandler) AddSlot(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := doctorIDParam(r)
	if !ok {
		writeEmptyObject(w, http.StatusNotFound)
		return
	}

	req, duration, err := decodeAddSlotRequest(w, r)
	if err != nil {
		if derr := h.service.EnsureDoctor(r.Context(), doctorID); derr != nil {
			handleServiceError(w, r, derr)
			return
		}
		handleServiceError(w, r, err)
		return
	}

	slot, err := h.service.AddSlot(r.Context(), doctorID, req.Day, req.FromHour, duration)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, idResponse{ID: slot.ID})
}

// doctorIDParam はパスの医師IDを取得する。
// ルートの正規表現で数字に限定済みだが、int64を超える値はfalseを返す。
func doctorIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "doctorId"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// toSlotResponse はドメインモデルをAPIレスポンスに変換する。
func toSlotResponse(s model.Slot) slotResponse {
	return slotResponse{
		ID:       s.ID,
		Day:      s.Day.String(),
		FromHour: s.FromHour,
		Duration: s.Duration,
	}
}
