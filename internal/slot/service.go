// Package slot は医師ごとの予約枠の登録と一覧のドメインロジックを提供する。
package slot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/reallydirty/internal/model"
	"github.com/hitoshi/reallydirty/internal/repository"
)

// CreationRecorder は予約枠の作成を記録するインターフェース。
type CreationRecorder interface {
	RecordSlotCreated()
}

// Service は予約枠管理のサービス層。
// 医師の存在確認を行ったうえで、予約枠の読み書きを行う。
// 同一医師への同時追加は排他せず、枠の重複も検査しない。
type Service struct {
	doctorRepo repository.DoctorRepository
	slotRepo   repository.SlotRepository
	recorder   CreationRecorder
}

// NewService はServiceの新しいインスタンスを生成する。recorderはnilでもよい。
func NewService(doctorRepo repository.DoctorRepository, slotRepo repository.SlotRepository, recorder CreationRecorder) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		slotRepo:   slotRepo,
		recorder:   recorder,
	}
}

// ListSlots は医師の予約枠を登録順で返す。
// 医師が存在しない場合は医師未検出エラーを返す。予約枠がない場合は空スライスを返す。
func (s *Service) ListSlots(ctx context.Context, doctorID int64) ([]model.Slot, error) {
	if err := s.EnsureDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	slots, err := s.slotRepo.ListByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("予約枠一覧の取得に失敗しました: %w", err)
	}
	if slots == nil {
		slots = []model.Slot{}
	}
	return slots, nil
}

// AddSlot は医師に予約枠を追加し、採番されたIDを含む予約枠を返す。
// 判定順序: 医師の存在確認（未検出エラー）→ 日付の解析（日付エラー）→ 保存。
// fromHourとdurationは検証せずそのまま保存する。
func (s *Service) AddSlot(ctx context.Context, doctorID int64, day, fromHour string, duration int) (*model.Slot, error) {
	if err := s.EnsureDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	date, err := model.ParseDate(day)
	if err != nil {
		return nil, model.NewInvalidDateError(day)
	}

	slot := model.Slot{
		DoctorID: doctorID,
		Day:      date,
		FromHour: fromHour,
		Duration: duration,
	}

	id, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("予約枠の登録に失敗しました: %w", err)
	}
	slot.ID = id

	if s.recorder != nil {
		s.recorder.RecordSlotCreated()
	}

	slog.Info("slot created",
		slog.Int64("slot_id", id),
		slog.Int64("doctor_id", doctorID),
		slog.String("day", date.String()),
	)

	return &slot, nil
}

// EnsureDoctor は医師が存在することを確認する。存在しない場合は医師未検出エラーを返す。
func (s *Service) EnsureDoctor(ctx context.Context, doctorID int64) error {
	doctor, err := s.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		return fmt.Errorf("医師の取得に失敗しました: %w", err)
	}
	if doctor == nil {
		return model.NewDoctorNotFoundError(doctorID)
	}
	return nil
}
