package slot

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/reallydirty/internal/model"
)

// --- モック ---

type mockDoctorRepo struct {
	findByIDFn func(ctx context.Context, id int64) (*model.Doctor, error)
}

func (m *mockDoctorRepo) FindByID(ctx context.Context, id int64) (*model.Doctor, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockDoctorRepo) Create(ctx context.Context, doctor model.Doctor) (int64, error) {
	return 0, nil
}

type mockSlotRepo struct {
	createFn         func(ctx context.Context, slot model.Slot) (int64, error)
	listByDoctorIDFn func(ctx context.Context, doctorID int64) ([]model.Slot, error)
	createCalled     bool
}

func (m *mockSlotRepo) Create(ctx context.Context, slot model.Slot) (int64, error) {
	m.createCalled = true
	if m.createFn != nil {
		return m.createFn(ctx, slot)
	}
	return 1, nil
}

func (m *mockSlotRepo) ListByDoctorID(ctx context.Context, doctorID int64) ([]model.Slot, error) {
	if m.listByDoctorIDFn != nil {
		return m.listByDoctorIDFn(ctx, doctorID)
	}
	return nil, nil
}

// memorySlotRepo は登録順を保持するインメモリ実装。
type memorySlotRepo struct {
	slots  []model.Slot
	nextID int64
}

func (m *memorySlotRepo) Create(ctx context.Context, slot model.Slot) (int64, error) {
	m.nextID++
	slot.ID = m.nextID
	m.slots = append(m.slots, slot)
	return slot.ID, nil
}

func (m *memorySlotRepo) ListByDoctorID(ctx context.Context, doctorID int64) ([]model.Slot, error) {
	var out []model.Slot
	for _, s := range m.slots {
		if s.DoctorID == doctorID {
			out = append(out, s)
		}
	}
	return out, nil
}

type countingRecorder struct {
	created int
}

func (r *countingRecorder) RecordSlotCreated() {
	r.created++
}

func existingDoctor(ids ...int64) *mockDoctorRepo {
	known := map[int64]bool{}
	for _, id := range ids {
		known[id] = true
	}
	return &mockDoctorRepo{
		findByIDFn: func(ctx context.Context, id int64) (*model.Doctor, error) {
			if !known[id] {
				return nil, nil
			}
			return &model.Doctor{ID: id, FirstName: "Jane", LastName: "Doe", Specialization: "Cardiology"}, nil
		},
	}
}

// --- テスト ---

// 予約枠のない医師は未検出ではなく空の一覧になることを検証
func TestService_ListSlots_EmptyForDoctorWithoutSlots(t *testing.T) {
	svc := NewService(existingDoctor(1), &mockSlotRepo{}, nil)

	slots, err := svc.ListSlots(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListSlots returned error: %v", err)
	}
	if slots == nil {
		t.Fatal("ListSlots returned nil, want empty slice")
	}
	if len(slots) != 0 {
		t.Errorf("len = %d, want 0", len(slots))
	}
}

func TestService_ListSlots_DoctorNotFound(t *testing.T) {
	slotRepo := &mockSlotRepo{
		listByDoctorIDFn: func(ctx context.Context, doctorID int64) ([]model.Slot, error) {
			t.Error("ListByDoctorID should not be called for a missing doctor")
			return nil, nil
		},
	}
	svc := NewService(existingDoctor(), slotRepo, nil)

	_, err := svc.ListSlots(context.Background(), 999)
	if !model.IsNotFound(err) {
		t.Errorf("error = %v, want doctor not found", err)
	}
}

func TestService_AddSlot_DoctorNotFound(t *testing.T) {
	slotRepo := &mockSlotRepo{}
	svc := NewService(existingDoctor(), slotRepo, nil)

	_, err := svc.AddSlot(context.Background(), 999, "2024-03-01", "09:00", 30)
	if !model.IsNotFound(err) {
		t.Errorf("error = %v, want doctor not found", err)
	}
	if slotRepo.createCalled {
		t.Error("Create should not be called for a missing doctor")
	}
}

// 医師が存在しない場合は日付が不正でも未検出が優先されることを検証
func TestService_AddSlot_NotFoundTakesPrecedenceOverParseError(t *testing.T) {
	svc := NewService(existingDoctor(), &mockSlotRepo{}, nil)

	_, err := svc.AddSlot(context.Background(), 999, "garbage", "09:00", 30)
	if !model.IsNotFound(err) {
		t.Errorf("error = %v, want doctor not found", err)
	}
}

func TestService_AddSlot_InvalidDate(t *testing.T) {
	slotRepo := &mockSlotRepo{}
	svc := NewService(existingDoctor(1), slotRepo, nil)

	for _, day := range []string{"", "tomorrow", "2024-02-30", "03/01/2024", "0000-03-01"} {
		_, err := svc.AddSlot(context.Background(), 1, day, "09:00", 30)
		var apiErr *model.APIError
		if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeInvalidDate {
			t.Errorf("AddSlot(day=%q) error = %v, want %s", day, err, model.ErrCodeInvalidDate)
		}
	}
	if slotRepo.createCalled {
		t.Error("Create should not be called for an invalid date")
	}
}

// durationとfromHourは検証せずそのまま保存されることを検証
func TestService_AddSlot_StoresValuesVerbatim(t *testing.T) {
	var saved model.Slot
	slotRepo := &mockSlotRepo{
		createFn: func(ctx context.Context, slot model.Slot) (int64, error) {
			saved = slot
			return 5, nil
		},
	}
	rec := &countingRecorder{}
	svc := NewService(existingDoctor(1), slotRepo, rec)

	got, err := svc.AddSlot(context.Background(), 1, "2024-03-01", "half past nine", -15)
	if err != nil {
		t.Fatalf("AddSlot returned error: %v", err)
	}
	if got.ID != 5 {
		t.Errorf("ID = %d, want 5", got.ID)
	}
	if saved.DoctorID != 1 || saved.FromHour != "half past nine" || saved.Duration != -15 {
		t.Errorf("saved = %+v", saved)
	}
	if saved.Day.String() != "2024-03-01" {
		t.Errorf("saved day = %q, want %q", saved.Day.String(), "2024-03-01")
	}
	if rec.created != 1 {
		t.Errorf("recorded creations = %d, want 1", rec.created)
	}
}

func TestService_AddSlot_RepoError(t *testing.T) {
	slotRepo := &mockSlotRepo{
		createFn: func(ctx context.Context, slot model.Slot) (int64, error) {
			return 0, errors.New("insert failed")
		},
	}
	svc := NewService(existingDoctor(1), slotRepo, nil)

	_, err := svc.AddSlot(context.Background(), 1, "2024-03-01", "09:00", 30)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		t.Errorf("persistence failure should not be an APIError, got %v", apiErr)
	}
}

func TestService_DoctorLookupError(t *testing.T) {
	doctorRepo := &mockDoctorRepo{
		findByIDFn: func(ctx context.Context, id int64) (*model.Doctor, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewService(doctorRepo, &mockSlotRepo{}, nil)

	if _, err := svc.ListSlots(context.Background(), 1); err == nil || model.IsNotFound(err) {
		t.Errorf("ListSlots error = %v, want storage failure", err)
	}
	if _, err := svc.AddSlot(context.Background(), 1, "2024-03-01", "09:00", 30); err == nil || model.IsNotFound(err) {
		t.Errorf("AddSlot error = %v, want storage failure", err)
	}
}

func TestService_EnsureDoctor(t *testing.T) {
	svc := NewService(existingDoctor(1), &mockSlotRepo{}, nil)

	if err := svc.EnsureDoctor(context.Background(), 1); err != nil {
		t.Errorf("EnsureDoctor(1) error = %v, want nil", err)
	}
	if err := svc.EnsureDoctor(context.Background(), 999); !model.IsNotFound(err) {
		t.Errorf("EnsureDoctor(999) error = %v, want doctor not found", err)
	}
}

// 追加した予約枠が同じ値で一覧に含まれ、他の医師の一覧には含まれないことを検証
func TestService_AddThenList(t *testing.T) {
	slotRepo := &memorySlotRepo{}
	svc := NewService(existingDoctor(1, 2), slotRepo, nil)
	ctx := context.Background()

	added, err := svc.AddSlot(ctx, 1, "2024-03-01", "09:00", 30)
	if err != nil {
		t.Fatalf("AddSlot returned error: %v", err)
	}
	if _, err := svc.AddSlot(ctx, 2, "2024-03-05", "10:00", 45); err != nil {
		t.Fatalf("AddSlot returned error: %v", err)
	}

	slots, err := svc.ListSlots(ctx, 1)
	if err != nil {
		t.Fatalf("ListSlots returned error: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("len = %d, want 1", len(slots))
	}
	got := slots[0]
	if got.ID != added.ID || got.Day.String() != "2024-03-01" || got.FromHour != "09:00" || got.Duration != 30 {
		t.Errorf("listed slot = %+v, want %+v", got, *added)
	}
}
