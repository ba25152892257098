package repository

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/hitoshi/reallydirty/internal/cache"
	"github.com/hitoshi/reallydirty/internal/model"
)

// CacheLookupRecorder はキャッシュのヒット/ミスを記録するインターフェース。
type CacheLookupRecorder interface {
	RecordDoctorCacheLookup(hit bool)
}

// doctorCacheEntry はキャッシュに保存する医師のJSON表現。
type doctorCacheEntry struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Specialization string `json:"specialization"`
}

// CachedDoctorRepo はDoctorRepositoryにread-throughキャッシュを被せるデコレータ。
// 医師は作成後に変更されないため、キャッシュの無効化は不要。
// 未検出の結果はキャッシュしない（後から作成される可能性があるため）。
// キャッシュ障害時はログに残して下位リポジトリの結果を返す。
type CachedDoctorRepo struct {
	next     DoctorRepository
	store    cache.Store
	ttl      time.Duration
	recorder CacheLookupRecorder
	logger   *slog.Logger
}

// NewCachedDoctorRepo はCachedDoctorRepoを生成する。recorderはnilでもよい。
func NewCachedDoctorRepo(next DoctorRepository, store cache.Store, ttl time.Duration, recorder CacheLookupRecorder, logger *slog.Logger) *CachedDoctorRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedDoctorRepo{
		next:     next,
		store:    store,
		ttl:      ttl,
		recorder: recorder,
		logger:   logger,
	}
}

// FindByID はキャッシュを参照し、なければ下位リポジトリから取得してキャッシュする。
func (r *CachedDoctorRepo) FindByID(ctx context.Context, id int64) (*model.Doctor, error) {
	key := doctorCacheKey(id)

	data, err := r.store.Get(ctx, key)
	switch {
	case err == nil:
		var entry doctorCacheEntry
		if err := json.Unmarshal(data, &entry); err == nil {
			r.record(true)
			return &model.Doctor{
				ID:             entry.ID,
				FirstName:      entry.FirstName,
				LastName:       entry.LastName,
				Specialization: entry.Specialization,
			}, nil
		}
		r.logger.Warn("doctor cache entry is corrupted",
			slog.Int64("doctor_id", id),
		)
	case !errors.Is(err, cache.ErrMiss):
		r.logger.Warn("doctor cache get failed",
			slog.Int64("doctor_id", id),
			slog.String("error", err.Error()),
		)
	}
	r.record(false)

	doctor, err := r.next.FindByID(ctx, id)
	if err != nil || doctor == nil {
		return doctor, err
	}

	r.put(ctx, *doctor)
	return doctor, nil
}

// Create は下位リポジトリに保存し、採番済みの医師をキャッシュに書き込む。
func (r *CachedDoctorRepo) Create(ctx context.Context, doctor model.Doctor) (int64, error) {
	id, err := r.next.Create(ctx, doctor)
	if err != nil {
		return 0, err
	}

	doctor.ID = id
	r.put(ctx, doctor)
	return id, nil
}

func (r *CachedDoctorRepo) put(ctx context.Context, doctor model.Doctor) {
	data, err := json.Marshal(doctorCacheEntry{
		ID:             doctor.ID,
		FirstName:      doctor.FirstName,
		LastName:       doctor.LastName,
		Specialization: doctor.Specialization,
	})
	if err != nil {
		return
	}
	if err := r.store.Set(ctx, doctorCacheKey(doctor.ID), data, r.ttl); err != nil {
		r.logger.Warn("doctor cache set failed",
			slog.Int64("doctor_id", doctor.ID),
			slog.String("error", err.Error()),
		)
	}
}

func (r *CachedDoctorRepo) record(hit bool) {
	if r.recorder != nil {
		r.recorder.RecordDoctorCacheLookup(hit)
	}
}

func doctorCacheKey(id int64) string {
	return "doctor:" + strconv.FormatInt(id, 10)
}

// compile-time interface check
var _ DoctorRepository = (*CachedDoctorRepo)(nil)
