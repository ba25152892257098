// Package doctor は医師の登録と取得のドメインロジックを提供する。
package doctor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/reallydirty/internal/model"
	"github.com/hitoshi/reallydirty/internal/repository"
)

// CreationRecorder は医師の作成を記録するインターフェース。
type CreationRecorder interface {
	RecordDoctorCreated()
}

// Service は医師管理のサービス層。
// 1回の呼び出しで永続化層への読み取りまたは書き込みを1回だけ行う。
type Service struct {
	repo     repository.DoctorRepository
	recorder CreationRecorder
}

// NewService はServiceの新しいインスタンスを生成する。recorderはnilでもよい。
func NewService(repo repository.DoctorRepository, recorder CreationRecorder) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
	}
}

// GetDoctor は指定IDの医師を取得する。
// 存在しない場合は医師未検出エラー（model.ErrCodeDoctorNotFound）を返す。
func (s *Service) GetDoctor(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("医師の取得に失敗しました: %w", err)
	}
	if doctor == nil {
		return nil, model.NewDoctorNotFoundError(id)
	}
	return doctor, nil
}

// CreateDoctor は医師を登録し、採番されたIDを含む医師を返す。
// 各項目は検証しない（空文字列も受け付ける）。
func (s *Service) CreateDoctor(ctx context.Context, firstName, lastName, specialization string) (*model.Doctor, error) {
	doctor := model.Doctor{
		FirstName:      firstName,
		LastName:       lastName,
		Specialization: specialization,
	}

	id, err := s.repo.Create(ctx, doctor)
	if err != nil {
		return nil, fmt.Errorf("医師の登録に失敗しました: %w", err)
	}
	doctor.ID = id

	if s.recorder != nil {
		s.recorder.RecordDoctorCreated()
	}

	slog.Info("doctor created",
		slog.Int64("doctor_id", id),
	)

	return &doctor, nil
}
