package booking

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"

	"wintermarket/models"
	"wintermarket/services/registry"
)

// fakeEventRepo serves canned slot counts; other methods are unused by
// the selection service.
type fakeEventRepo struct {
	counts map[string]int
}

func (f *fakeEventRepo) Create(ctx context.Context, event models.Event) (string, error) {
	return "", nil
}
func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeEventRepo) GetByDate(ctx context.Context, date string) (*models.Event, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeEventRepo) GetAll(ctx context.Context) ([]models.Event, error) { return nil, nil }
func (f *fakeEventRepo) DeleteAll(ctx context.Context) error                { return nil }
func (f *fakeEventRepo) HoldSlot(ctx context.Context, eventID string, vendorType models.VendorType) (*models.BoothSlot, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeEventRepo) ReleaseSlot(ctx context.Context, eventID, slotID string) error { return nil }
func (f *fakeEventRepo) AvailableSlotCounts(ctx context.Context) (map[string]int, error) {
	return f.counts, nil
}

func newTestSelectionService(t *testing.T, counts map[string]int) (*DefaultSelectionService, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := &DefaultSelectionService{
		Cache:  client,
		Events: &fakeEventRepo{counts: counts},
		Availability: &AvailabilityView{
			Registry:        registry.Default(),
			DefaultCapacity: 26,
		},
	}
	return svc, mr
}

func TestStartSelection(t *testing.T) {
	svc, _ := newTestSelectionService(t, nil)
	ctx := context.Background()

	sel, err := svc.StartSelection(ctx, models.SelectionModeMulti)
	if err != nil {
		t.Fatalf("StartSelection failed: %v", err)
	}
	if sel.SessionID == "" {
		t.Error("session id should be assigned")
	}
	if !sel.IsEmpty() {
		t.Errorf("new selection should be empty, got %v", sel.Dates)
	}

	got, err := svc.GetSelection(ctx, sel.SessionID)
	if err != nil {
		t.Fatalf("GetSelection failed: %v", err)
	}
	if got.Mode != models.SelectionModeMulti {
		t.Errorf("mode = %q, want multi", got.Mode)
	}
}

func TestStartSelectionRejectsUnknownMode(t *testing.T) {
	svc, _ := newTestSelectionService(t, nil)

	_, err := svc.StartSelection(context.Background(), "weekly")
	if !IsValidationError(err) {
		t.Fatalf("StartSelection error = %v, want ValidationError", err)
	}
}

func TestGetSelectionExpired(t *testing.T) {
	svc, _ := newTestSelectionService(t, nil)

	if _, err := svc.GetSelection(context.Background(), "no-such-session"); err != ErrSessionNotFound {
		t.Fatalf("GetSelection error = %v, want ErrSessionNotFound", err)
	}
}

func TestToggleDateMulti(t *testing.T) {
	svc, _ := newTestSelectionService(t, nil)
	ctx := context.Background()

	sel, err := svc.StartSelection(ctx, models.SelectionModeMulti)
	if err != nil {
		t.Fatalf("StartSelection failed: %v", err)
	}

	// Toggle on.
	sel, err = svc.ToggleDate(ctx, sel.SessionID, "2025-12-12")
	if err != nil {
		t.Fatalf("ToggleDate failed: %v", err)
	}
	if !sel.Contains("2025-12-12") {
		t.Fatal("date should be selected after first toggle")
	}

	// Toggle the same date off.
	sel, err = svc.ToggleDate(ctx, sel.SessionID, "2025-12-12")
	if err != nil {
		t.Fatalf("ToggleDate failed: %v", err)
	}
	if sel.Contains("2025-12-12") {
		t.Fatal("date should be deselected after second toggle")
	}
	if !sel.IsEmpty() {
		t.Errorf("selection should be empty after toggle pair, got %v", sel.Dates)
	}
}

func TestToggleDatePreservesClickOrder(t *testing.T) {
	svc, _ := newTestSelectionService(t, nil)
	ctx := context.Background()

	sel, _ := svc.StartSelection(ctx, models.SelectionModeMulti)
	for _, d := range []string{"2026-01-03", "2025-12-12", "2025-12-14"} {
		var err error
		sel, err = svc.ToggleDate(ctx, sel.SessionID, d)
		if err != nil {
			t.Fatalf("ToggleDate(%s) failed: %v", d, err)
		}
	}

	want := []string{"2026-01-03", "2025-12-12", "2025-12-14"}
	for i, d := range want {
		if sel.Dates[i] != d {
			t.Fatalf("dates = %v, want click order %v", sel.Dates, want)
		}
	}
}

func TestToggleDateSingleModeReplaces(t *testing.T) {
	svc, _ := newTestSelectionService(t, nil)
	ctx := context.Background()

	sel, _ := svc.StartSelection(ctx, models.SelectionModeSingle)
	sel, err := svc.ToggleDate(ctx, sel.SessionID, "2025-12-12")
	if err != nil {
		t.Fatalf("ToggleDate failed: %v", err)
	}
	sel, err = svc.ToggleDate(ctx, sel.SessionID, "2025-12-13")
	if err != nil {
		t.Fatalf("ToggleDate failed: %v", err)
	}

	if len(sel.Dates) != 1 || sel.Dates[0] != "2025-12-13" {
		t.Errorf("single mode should replace the previous date, got %v", sel.Dates)
	}
}

func TestToggleDateNotBookable(t *testing.T) {
	// 2025-12-13 is sold out; 2025-12-15 is off the series calendar.
	svc, _ := newTestSelectionService(t, map[string]int{"2025-12-13": 0})
	ctx := context.Background()

	sel, _ := svc.StartSelection(ctx, models.SelectionModeMulti)

	for _, date := range []string{"2025-12-13", "2025-12-15"} {
		got, err := svc.ToggleDate(ctx, sel.SessionID, date)
		if err != nil {
			t.Fatalf("ToggleDate(%s) failed: %v", date, err)
		}
		if got.Contains(date) {
			t.Errorf("non-bookable date %s should not be selectable", date)
		}
	}
}

func TestToggleOffSoldOutDate(t *testing.T) {
	// A date already in the selection stays removable even after it sells out.
	svc, _ := newTestSelectionService(t, map[string]int{"2025-12-12": 1})
	ctx := context.Background()

	sel, _ := svc.StartSelection(ctx, models.SelectionModeMulti)
	sel, err := svc.ToggleDate(ctx, sel.SessionID, "2025-12-12")
	if err != nil || !sel.Contains("2025-12-12") {
		t.Fatalf("setup toggle failed: %v", err)
	}

	svc.Events = &fakeEventRepo{counts: map[string]int{"2025-12-12": 0}}
	sel, err = svc.ToggleDate(ctx, sel.SessionID, "2025-12-12")
	if err != nil {
		t.Fatalf("ToggleDate failed: %v", err)
	}
	if sel.Contains("2025-12-12") {
		t.Error("selected date should toggle off regardless of availability")
	}
}

func TestClearSelection(t *testing.T) {
	svc, _ := newTestSelectionService(t, nil)
	ctx := context.Background()

	sel, _ := svc.StartSelection(ctx, models.SelectionModeMulti)
	sel, _ = svc.ToggleDate(ctx, sel.SessionID, "2025-12-12")
	sel, _ = svc.ToggleDate(ctx, sel.SessionID, "2025-12-13")

	sel, err := svc.ClearSelection(ctx, sel.SessionID)
	if err != nil {
		t.Fatalf("ClearSelection failed: %v", err)
	}
	if !sel.IsEmpty() {
		t.Errorf("selection should be empty after clear, got %v", sel.Dates)
	}
}

func TestSwitchModeClearsDates(t *testing.T) {
	svc, _ := newTestSelectionService(t, nil)
	ctx := context.Background()

	sel, _ := svc.StartSelection(ctx, models.SelectionModeMulti)
	sel, _ = svc.ToggleDate(ctx, sel.SessionID, "2025-12-12")

	sel, err := svc.SwitchMode(ctx, sel.SessionID, models.SelectionModeSingle)
	if err != nil {
		t.Fatalf("SwitchMode failed: %v", err)
	}
	if sel.Mode != models.SelectionModeSingle {
		t.Errorf("mode = %q, want single", sel.Mode)
	}
	if !sel.IsEmpty() {
		t.Errorf("switching modes should discard selected dates, got %v", sel.Dates)
	}
}
