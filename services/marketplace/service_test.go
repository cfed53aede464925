package marketplace

import (
	"context"
	"errors"
	"strings"
	"testing"

	"apna/database/kv"
	marketplaceRepo "apna/database/repository/marketplace"
	"apna/models"
)

type recordingNotifier struct {
	bookings []models.Booking
	err      error
}

func (n *recordingNotifier) BookingCreated(_ context.Context, b models.Booking) error {
	n.bookings = append(n.bookings, b)
	return n.err
}

func newTestService(t *testing.T, notifier *recordingNotifier) (*DefaultMarketplaceService, kv.Store) {
	t.Helper()
	store := kv.NewMemoryStore()
	repo := marketplaceRepo.NewSeededStore(marketplaceRepo.Options{})
	return NewDefaultMarketplaceService(repo, store, notifier, nil), store
}

func TestSnapshotLoadsEverything(t *testing.T) {
	svc, _ := newTestService(t, &recordingNotifier{})
	ctx := context.Background()
	svc.Favorites().Toggle(ctx, "2")

	snap, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.CurrentUser.Name == "" {
		t.Fatal("expected current user")
	}
	if len(snap.Providers) == 0 || len(snap.UserBookings) == 0 || len(snap.ProviderBookings) == 0 || len(snap.PopularServices) == 0 {
		t.Fatalf("expected all collections populated, got %+v", snap)
	}
	if len(snap.FavoriteIDs) != 1 || snap.FavoriteIDs[0] != "2" {
		t.Fatalf("expected favorites [2], got %v", snap.FavoriteIDs)
	}
}

func TestSnapshotCancelled(t *testing.T) {
	svc, _ := newTestService(t, &recordingNotifier{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Snapshot(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAddReviewStampsCurrentUser(t *testing.T) {
	svc, _ := newTestService(t, &recordingNotifier{})
	ctx := context.Background()

	user, _ := svc.CurrentUser(ctx)
	review, err := svc.AddReview(ctx, "1", 4, "  Tidy and quick.  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.UserName != user.Name {
		t.Fatalf("expected review by %q, got %q", user.Name, review.UserName)
	}
	if review.Comment != "Tidy and quick." {
		t.Fatalf("expected trimmed comment, got %q", review.Comment)
	}

	p, _ := svc.Provider(ctx, "1")
	if p.Reviews[0].ID != review.ID {
		t.Fatalf("expected new review first, got %s", p.Reviews[0].ID)
	}
}

func TestAddReviewRejectsBlankComment(t *testing.T) {
	svc, _ := newTestService(t, &recordingNotifier{})
	ctx := context.Background()
	before, _ := svc.Provider(ctx, "1")

	if _, err := svc.AddReview(ctx, "1", 5, "   "); !errors.Is(err, ErrEmptyComment) {
		t.Fatalf("expected ErrEmptyComment, got %v", err)
	}
	after, _ := svc.Provider(ctx, "1")
	if len(after.Reviews) != len(before.Reviews) {
		t.Fatal("expected no review to be added")
	}
}

func TestAddReviewRequiresCurrentUser(t *testing.T) {
	repo := marketplaceRepo.NewStore(marketplaceRepo.Seed{
		Providers: []models.Provider{{ID: "p1", Name: "Solo"}},
	}, marketplaceRepo.Options{})
	svc := NewDefaultMarketplaceService(repo, kv.NewMemoryStore(), nil, nil)

	if _, err := svc.AddReview(context.Background(), "p1", 5, "great"); !errors.Is(err, ErrNoCurrentUser) {
		t.Fatalf("expected ErrNoCurrentUser, got %v", err)
	}
}

func TestAddReviewUnknownProvider(t *testing.T) {
	svc, _ := newTestService(t, &recordingNotifier{})
	_, err := svc.AddReview(context.Background(), "missing", 5, "great")
	if !errors.Is(err, marketplaceRepo.ErrProviderNotFound) {
		t.Fatalf("expected ErrProviderNotFound, got %v", err)
	}
}

func TestBookProviderNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, _ := newTestService(t, notifier)
	ctx := context.Background()

	booking, err := svc.BookProvider(ctx, "1", "2026-03-05", "10:00 AM", models.BookingContract)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(booking.ID, "b") || booking.Status != models.BookingConfirmed || booking.Type != models.BookingContract {
		t.Fatalf("unexpected booking %+v", booking)
	}
	if len(notifier.bookings) != 1 || notifier.bookings[0].ID != booking.ID {
		t.Fatalf("expected notifier to receive %s, got %+v", booking.ID, notifier.bookings)
	}

	providerSide, _ := svc.ProviderBookings(ctx)
	if providerSide[0].Status != models.BookingPending || providerSide[0].Amount != booking.Amount {
		t.Fatalf("expected pending provider twin, got %+v", providerSide[0])
	}
}

func TestBookProviderIgnoresNotifierFailure(t *testing.T) {
	svc, _ := newTestService(t, &recordingNotifier{err: errors.New("queue down")})
	if _, err := svc.BookProvider(context.Background(), "2", "2026-03-05", "2:00 PM", models.BookingOneTime); err != nil {
		t.Fatalf("expected booking to succeed despite notifier, got %v", err)
	}
}

func TestBookProviderUnknownProvider(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, _ := newTestService(t, notifier)
	_, err := svc.BookProvider(context.Background(), "missing", "2026-03-05", "2:00 PM", models.BookingOneTime)
	if !errors.Is(err, marketplaceRepo.ErrProviderNotFound) {
		t.Fatalf("expected ErrProviderNotFound, got %v", err)
	}
	if len(notifier.bookings) != 0 {
		t.Fatal("expected no notification for a failed booking")
	}
}

func TestCancelThenReschedule(t *testing.T) {
	svc, _ := newTestService(t, &recordingNotifier{})
	ctx := context.Background()

	booking, err := svc.BookProvider(ctx, "3", "2026-03-05", "9:00 AM", models.BookingOneTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.CancelUserBooking(ctx, booking.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got := findBooking(t, svc, booking.ID); got.Status != models.BookingCancelled {
		t.Fatalf("expected cancelled, got %s", got.Status)
	}

	if err := svc.RescheduleBooking(ctx, booking.ID, "2026-03-09", "11:00 AM"); err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	got := findBooking(t, svc, booking.ID)
	if got.Status != models.BookingPending || got.Date != "2026-03-09" || got.Time != "11:00 AM" {
		t.Fatalf("unexpected rescheduled booking %+v", got)
	}

	// Unknown ids are tolerated.
	if err := svc.CancelUserBooking(ctx, "b999"); err != nil {
		t.Fatalf("expected no error for unknown booking, got %v", err)
	}
}

func TestModerateProvider(t *testing.T) {
	svc, _ := newTestService(t, &recordingNotifier{})
	ctx := context.Background()

	for _, action := range []models.ModerationAction{models.ModerationFlag, models.ModerationBlock} {
		if err := svc.ModerateProvider(ctx, "4", action); err != nil {
			t.Fatalf("%s: %v", action, err)
		}
	}
	p, _ := svc.Provider(ctx, "4")
	if !p.Blocked || p.FlaggedCount < 1 {
		t.Fatalf("expected flagged and blocked provider, got blocked=%v flagged=%d", p.Blocked, p.FlaggedCount)
	}
}

func TestUpdateProviderRequest(t *testing.T) {
	svc, _ := newTestService(t, &recordingNotifier{})
	ctx := context.Background()

	bookings, _ := svc.ProviderBookings(ctx)
	id := bookings[0].ID
	if err := svc.UpdateProviderRequest(ctx, id, models.BookingConfirmed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bookings, _ = svc.ProviderBookings(ctx)
	if bookings[0].Status != models.BookingConfirmed {
		t.Fatalf("expected confirmed, got %s", bookings[0].Status)
	}
}

func findBooking(t *testing.T, svc *DefaultMarketplaceService, id string) models.Booking {
	t.Helper()
	bookings, err := svc.UserBookings(context.Background())
	if err != nil {
		t.Fatalf("fetch bookings: %v", err)
	}
	for _, b := range bookings {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("booking %s not found", id)
	return models.Booking{}
}
