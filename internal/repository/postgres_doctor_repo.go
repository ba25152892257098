package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hitoshi/reallydirty/internal/model"
)

// doctorRow はdoctorsテーブルの1行を表す。
type doctorRow struct {
	ID             int64
	FirstName      string
	LastName       string
	Specialization string
}

func (r doctorRow) toModel() *model.Doctor {
	return &model.Doctor{
		ID:             r.ID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Specialization: r.Specialization,
	}
}

// PostgresDoctorRepo はPostgreSQLを使用した医師リポジトリ。
type PostgresDoctorRepo struct {
	db *sql.DB
}

// NewPostgresDoctorRepo はPostgresDoctorRepoを生成する。
func NewPostgresDoctorRepo(db *sql.DB) *PostgresDoctorRepo {
	return &PostgresDoctorRepo{db: db}
}

// FindByID は指定IDの医師を取得する。見つからない場合はnilを返す。
func (r *PostgresDoctorRepo) FindByID(ctx context.Context, id int64) (*model.Doctor, error) {
	var row doctorRow
	err := r.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, specialization
		 FROM doctors WHERE id = $1`,
		id,
	).Scan(&row.ID, &row.FirstName, &row.LastName, &row.Specialization)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("医師の取得に失敗しました: %w", err)
	}

	return row.toModel(), nil
}

// Create は医師を保存し、採番されたIDを返す。
func (r *PostgresDoctorRepo) Create(ctx context.Context, doctor model.Doctor) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO doctors (first_name, last_name, specialization)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		doctor.FirstName, doctor.LastName, doctor.Specialization,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("医師の作成に失敗しました: %w", err)
	}
	return id, nil
}

// compile-time interface check
var _ DoctorRepository = (*PostgresDoctorRepo)(nil)
