package resourcestore_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	resourcestore "github.com/stashdir/stashd/internal/app/store/resources"
	"github.com/stashdir/stashd/internal/domain/models"
	"github.com/stashdir/stashd/internal/testutil"
)

func TestCreate_Validation(t *testing.T) {
	// Validation runs before any database work, so a nil-collection store
	// is fine here.
	store := &resourcestore.Store{}

	tests := []struct {
		name    string
		res     models.Resource
		wantErr error
	}{
		{
			name:    "missing title",
			res:     models.Resource{URL: "https://example.com", Category: "coding"},
			wantErr: resourcestore.ErrTitleRequired,
		},
		{
			name:    "blank title",
			res:     models.Resource{Title: "   ", URL: "https://example.com", Category: "coding"},
			wantErr: resourcestore.ErrTitleRequired,
		},
		{
			name:    "bad url",
			res:     models.Resource{Title: "X Tool", URL: "not-a-url", Category: "coding"},
			wantErr: resourcestore.ErrURLRequired,
		},
		{
			name:    "bad category",
			res:     models.Resource{Title: "X Tool", URL: "https://example.com", Category: "nope"},
			wantErr: resourcestore.ErrBadCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Create(context.Background(), tt.res)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateAndFetch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx := context.Background()

	created, err := store.Create(ctx, models.Resource{
		Title:    "Color Hunt",
		Slug:     "color-hunt",
		URL:      "https://colorhunt.co",
		Category: "design-tools",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.TitleCI == "" {
		t.Error("TitleCI not set on create")
	}
	if created.Status != models.StatusPublished {
		t.Errorf("status: got %q, want published by default", created.Status)
	}

	got, err := store.GetBySlug(ctx, "color-hunt")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("GetBySlug returned wrong resource: %v", got.ID)
	}

	byID, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Title != "Color Hunt" {
		t.Errorf("GetByID title: got %q", byID.Title)
	}
}

func TestCreate_SanitizesBody(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx := context.Background()

	created, err := store.Create(ctx, models.Resource{
		Title:    "Style Stage",
		URL:      "https://stylestage.dev",
		Category: "css",
		Body:     `<p>A CSS showcase.</p><script>alert("x")</script>`,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if strings.Contains(created.Body, "script") {
		t.Errorf("script survived sanitization: %q", created.Body)
	}
	if !strings.Contains(created.Body, "<p>A CSS showcase.</p>") {
		t.Errorf("allowed formatting was stripped: %q", created.Body)
	}

	stored, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Body != created.Body {
		t.Errorf("stored body %q differs from created %q", stored.Body, created.Body)
	}
}

func TestDeleteAndCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx := context.Background()

	created, err := store.Create(ctx, models.Resource{
		Title:    "Short Lived",
		URL:      "https://example.com/short-lived",
		Category: "coding",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	n, err := store.Count(ctx, bson.M{})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Fatalf("count after create: got %d, want 1", n)
	}

	deleted, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted count: got %d, want 1", deleted)
	}

	deleted, err = store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleting a missing resource: got %d, want 0", deleted)
	}

	n, err = store.Count(ctx, bson.M{})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("count after delete: got %d, want 0", n)
	}
}

func TestCreate_DuplicateTitle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx := context.Background()

	// The unique index on title_ci is what triggers the duplicate error.
	if err := testutil.EnsureResourceIndexes(t, db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	base := models.Resource{
		Title:    "Color Hunt",
		URL:      "https://colorhunt.co",
		Category: "design-tools",
	}
	if _, err := store.Create(ctx, base); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	dup := base
	dup.Title = "COLOR HUNT" // folds to the same title_ci
	_, err := store.Create(ctx, dup)
	if !errors.Is(err, resourcestore.ErrDuplicateTitle) {
		t.Errorf("duplicate Create: got %v, want ErrDuplicateTitle", err)
	}
}

func TestGetBySlug_PendingHidden(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx := context.Background()

	if _, err := store.Create(ctx, models.Resource{
		Title:    "Hidden Tool",
		Slug:     "hidden-tool",
		URL:      "https://example.com/hidden",
		Category: "coding",
		Status:   models.StatusPending,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := store.GetBySlug(ctx, "hidden-tool")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("GetBySlug on pending resource: got %v, want ErrNoDocuments", err)
	}
}

func TestAllPublished_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := resourcestore.New(db)
	ctx := context.Background()

	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	for _, res := range []models.Resource{
		{Title: "Older", URL: "https://example.com/a", Category: "coding", CreatedAt: older},
		{Title: "Newer", URL: "https://example.com/b", Category: "coding", CreatedAt: newer},
		{Title: "Pending", URL: "https://example.com/c", Category: "coding", Status: models.StatusPending},
	} {
		if _, err := store.Create(ctx, res); err != nil {
			t.Fatalf("Create(%s): %v", res.Title, err)
		}
	}

	got, err := store.AllPublished(ctx)
	if err != nil {
		t.Fatalf("AllPublished: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("AllPublished: got %d resources, want 2 (pending excluded)", len(got))
	}
	if got[0].Title != "Newer" || got[1].Title != "Older" {
		t.Errorf("order: got %q, %q, want Newer, Older", got[0].Title, got[1].Title)
	}
}
