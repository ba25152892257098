package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hitoshi/reallydirty/internal/model"
)

// slotRow はslotsテーブルの1行を表す。
// dayはDATE型で、ドライバからはUTC 0時のtime.Timeとして返る。
type slotRow struct {
	ID       int64
	DoctorID int64
	Day      time.Time
	FromHour string
	Duration int
}

func (r slotRow) toModel() model.Slot {
	return model.Slot{
		ID:       r.ID,
		DoctorID: r.DoctorID,
		Day:      model.DateOf(r.Day),
		FromHour: r.FromHour,
		Duration: r.Duration,
	}
}

// PostgresSlotRepo はPostgreSQLを使用した予約枠リポジトリ。
type PostgresSlotRepo struct {
	db *sql.DB
}

// NewPostgresSlotRepo はPostgresSlotRepoを生成する。
func NewPostgresSlotRepo(db *sql.DB) *PostgresSlotRepo {
	return &PostgresSlotRepo{db: db}
}

// Create は予約枠を保存し、採番されたIDを返す。
// dayはYYYY-MM-DD文字列としてDATE型にキャストして渡す。
func (r *PostgresSlotRepo) Create(ctx context.Context, slot model.Slot) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO slots (doctor_id, day, from_hour, duration)
		 VALUES ($1, $2::date, $3, $4)
		 RETURNING id`,
		slot.DoctorID, slot.Day.String(), slot.FromHour, slot.Duration,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("予約枠の作成に失敗しました: %w", err)
	}
	return id, nil
}

// ListByDoctorID は医師に紐づく予約枠を登録順（id昇順）で返す。
func (r *PostgresSlotRepo) ListByDoctorID(ctx context.Context, doctorID int64) ([]model.Slot, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, doctor_id, day, from_hour, duration
		 FROM slots
		 WHERE doctor_id = $1
		 ORDER BY id ASC`,
		doctorID,
	)
	if err != nil {
		return nil, fmt.Errorf("予約枠一覧の取得に失敗しました: %w", err)
	}
	defer rows.Close()

	slots := make([]model.Slot, 0)
	for rows.Next() {
		var row slotRow
		if err := rows.Scan(&row.ID, &row.DoctorID, &row.Day, &row.FromHour, &row.Duration); err != nil {
			return nil, fmt.Errorf("予約枠の読み取りに失敗しました: %w", err)
		}
		slots = append(slots, row.toModel())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("予約枠一覧の走査に失敗しました: %w", err)
	}

	return slots, nil
}

// compile-time interface check
var _ SlotRepository = (*PostgresSlotRepo)(nil)
