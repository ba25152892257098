package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/reallydirty/internal/model"
)

// DoctorServiceInterface は医師ハンドラーが必要とするサービスインターフェース。
type DoctorServiceInterface interface {
	// GetDoctor はIDで医師を取得する。
	GetDoctor(ctx context.Context, id int64) (*model.Doctor, error)
	// CreateDoctor は医師を登録する。
	CreateDoctor(ctx context.Context, firstName, lastName, specialization string) (*model.Doctor, error)
}

// DoctorHandler は医師のHTTPハンドラー。
type DoctorHandler struct {
	service DoctorServiceInterface
}

// NewDoctorHandler はDoctorHandlerを生成する。
func NewDoctorHandler(service DoctorServiceInterface) *DoctorHandler {
	return &DoctorHandler{service: service}
}

// doctorResponse は医師情報のAPIレスポンス。
type doctorResponse struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Specialization string `json:"specialization"`
}

// GetDoctor は医師を取得する。
// GET /doctor?id={id}
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id := parseIDOrZero(r.URL.Query().Get("id"))

	doctor, err := h.service.GetDoctor(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDoctorResponse(doctor))
}

// CreateDoctor は医師を登録する。
// POST /doctor
func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateDoctorRequest(w, r)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	doctor, err := h.service.CreateDoctor(r.Context(), req.FirstName, req.LastName, req.Specialization)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, idResponse{ID: doctor.ID})
}

// toDoctorResponse はドメインモデルをAPIレスポンスに変換する。
func toDoctorResponse(d *model.Doctor) doctorResponse {
	return doctorResponse{
		ID:             d.ID,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Specialization: d.Specialization,
	}
}
