package ads

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/admind-agency/admind-api/internal/domain/entities"
	"github.com/admind-agency/admind-api/internal/domain/repositories"
)

type fakeAdRepo struct {
	ads     map[uuid.UUID]*entities.Ad
	listErr error
	err     error
}

func newFakeAdRepo() *fakeAdRepo {
	return &fakeAdRepo{ads: make(map[uuid.UUID]*entities.Ad)}
}

func (f *fakeAdRepo) Create(ctx context.Context, ad *entities.Ad) error {
	if f.err != nil {
		return f.err
	}
	f.ads[ad.ID] = ad
	return nil
}

func (f *fakeAdRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Ad, error) {
	ad, ok := f.ads[id]
	if !ok || ad.UserID != userID {
		return nil, entities.ErrAdNotFound
	}
	return ad, nil
}

func (f *fakeAdRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Ad, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*entities.Ad
	for _, ad := range f.ads {
		if ad.UserID == userID {
			out = append(out, ad)
		}
	}
	return out, nil
}

func (f *fakeAdRepo) FindRecentlyUpdated(ctx context.Context, userID uuid.UUID, limit int) ([]repositories.AdActivity, error) {
	return nil, nil
}

func (f *fakeAdRepo) Projections(ctx context.Context, userID uuid.UUID) ([]repositories.AdProjection, error) {
	return nil, nil
}

func (f *fakeAdRepo) CountByStatus(ctx context.Context, userID uuid.UUID, status entities.AdStatus) (int64, error) {
	return 0, nil
}

func (f *fakeAdRepo) Update(ctx context.Context, ad *entities.Ad) error {
	if f.err != nil {
		return f.err
	}
	f.ads[ad.ID] = ad
	return nil
}

func (f *fakeAdRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := f.FindByID(ctx, id, userID); err != nil {
		return err
	}
	delete(f.ads, id)
	return nil
}

func newTestService(repo *fakeAdRepo) *AdService {
	return NewAdService(repo, zap.NewNop())
}

func TestList_StatsSumSpentNotBudget(t *testing.T) {
	repo := newFakeAdRepo()
	userID := uuid.New()
	repo.ads[uuid.New()] = &entities.Ad{ID: uuid.New(), UserID: userID, Status: entities.AdStatusActive, Budget: 1000, Spent: 250, Clicks: 40}
	repo.ads[uuid.New()] = &entities.Ad{ID: uuid.New(), UserID: userID, Status: entities.AdStatusPaused, Budget: 2000, Spent: 100.50, Clicks: 10}
	svc := newTestService(repo)

	out := svc.List(context.Background(), userID)

	if out.Stats.TotalAds != 2 {
		t.Errorf("total = %d, want 2", out.Stats.TotalAds)
	}
	if out.Stats.ActiveAds != 1 {
		t.Errorf("active = %d, want 1", out.Stats.ActiveAds)
	}
	if out.Stats.TotalSpent != 350.50 {
		t.Errorf("spent = %v, want 350.50", out.Stats.TotalSpent)
	}
	if out.Stats.TotalClicks != 50 {
		t.Errorf("clicks = %d, want 50", out.Stats.TotalClicks)
	}
}

func TestList_FailsOpen(t *testing.T) {
	repo := newFakeAdRepo()
	repo.listErr = errors.New("db down")
	svc := newTestService(repo)

	out := svc.List(context.Background(), uuid.New())
	if out == nil || out.Ads == nil {
		t.Fatal("expected empty page, got nil")
	}
	if len(out.Ads) != 0 {
		t.Fatalf("ads len = %d, want 0", len(out.Ads))
	}
}

func TestCreate_DefaultsToDraft(t *testing.T) {
	repo := newFakeAdRepo()
	svc := newTestService(repo)

	ad, err := svc.Create(context.Background(), uuid.New(), CreateInput{
		Title:    "New campaign",
		Platform: entities.PlatformGoogle,
		Budget:   500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ad.Status != entities.AdStatusDraft {
		t.Fatalf("status = %s, want draft", ad.Status)
	}
}

func TestUpdate_PartialFieldsAndCTR(t *testing.T) {
	repo := newFakeAdRepo()
	userID := uuid.New()
	adID := uuid.New()
	repo.ads[adID] = &entities.Ad{
		ID:       adID,
		UserID:   userID,
		Title:    "Old title",
		Platform: entities.PlatformFacebook,
		Budget:   100,
	}
	svc := newTestService(repo)

	clicks := int64(50)
	impressions := int64(1000)
	updated, err := svc.Update(context.Background(), adID, userID, UpdateInput{
		Clicks:      &clicks,
		Impressions: &impressions,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Title != "Old title" || updated.Budget != 100 {
		t.Errorf("untouched fields changed: %+v", updated)
	}
	if updated.CTR != 5 {
		t.Errorf("ctr = %v, want 5", updated.CTR)
	}
}

func TestUpdate_OtherUsersAdNotFound(t *testing.T) {
	repo := newFakeAdRepo()
	adID := uuid.New()
	repo.ads[adID] = &entities.Ad{ID: adID, UserID: uuid.New()}
	svc := newTestService(repo)

	title := "hijack"
	_, err := svc.Update(context.Background(), adID, uuid.New(), UpdateInput{Title: &title})
	if !errors.Is(err, entities.ErrAdNotFound) {
		t.Fatalf("err = %v, want ErrAdNotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeAdRepo()
	userID := uuid.New()
	adID := uuid.New()
	repo.ads[adID] = &entities.Ad{ID: adID, UserID: userID, Status: entities.AdStatusDraft}
	svc := newTestService(repo)

	ad, err := svc.UpdateStatus(context.Background(), adID, userID, entities.AdStatusActive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ad.Status != entities.AdStatusActive {
		t.Fatalf("status = %s, want active", ad.Status)
	}
}

func TestDelete_OwnerScoped(t *testing.T) {
	repo := newFakeAdRepo()
	userID := uuid.New()
	adID := uuid.New()
	repo.ads[adID] = &entities.Ad{ID: adID, UserID: userID}
	svc := newTestService(repo)

	if err := svc.Delete(context.Background(), adID, uuid.New()); !errors.Is(err, entities.ErrAdNotFound) {
		t.Fatalf("foreign delete err = %v, want ErrAdNotFound", err)
	}
	if err := svc.Delete(context.Background(), adID, userID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(repo.ads) != 0 {
		t.Fatal("ad was not deleted")
	}
}
