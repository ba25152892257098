// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/reallydirty/internal/model"
)

// DoctorRepository は医師データの永続化インターフェース。
type DoctorRepository interface {
	// FindByID は指定IDの医師を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.Doctor, error)

	// Create は医師を保存し、採番されたIDを返す。
	Create(ctx context.Context, doctor model.Doctor) (int64, error)
}

// SlotRepository は予約枠データの永続化インターフェース。
type SlotRepository interface {
	// Create は予約枠を保存し、採番されたIDを返す。
	// 親の医師が存在しない場合は外部キー制約違反のエラーになる。
	Create(ctx context.Context, slot model.Slot) (int64, error)

	// ListByDoctorID は医師に紐づく予約枠を登録順（id昇順）で返す。
	// 該当がない場合は空スライスを返す。
	ListByDoctorID(ctx context.Context, doctorID int64) ([]model.Slot, error)
}
