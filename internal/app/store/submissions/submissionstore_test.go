package submissionstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	submissionstore "github.com/stashdir/stashd/internal/app/store/submissions"
	"github.com/stashdir/stashd/internal/domain/models"
	"github.com/stashdir/stashd/internal/testutil"
)

func TestCreateAndGetByRef(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := submissionstore.New(db)
	ctx := context.Background()

	created, err := store.Create(ctx, models.Submission{
		Ref:         "5f3b0b1e-1111-2222-3333-444455556666",
		Title:       "Color Hunt",
		Slug:        "color-hunt",
		URL:         "https://colorhunt.co",
		Description: "Curated color palettes for designers.",
		Category:    "design-tools",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != models.StatusPending {
		t.Errorf("status on create: got %q, want pending", created.Status)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt not set on create")
	}

	got, err := store.GetByRef(ctx, created.Ref)
	if err != nil {
		t.Fatalf("GetByRef: %v", err)
	}
	if got.ID != created.ID || got.Title != "Color Hunt" {
		t.Errorf("GetByRef returned wrong submission: %+v", got)
	}

	_, err = store.GetByRef(ctx, "no-such-ref")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("GetByRef on unknown ref: got %v, want ErrNoDocuments", err)
	}
}

func TestPending_OldestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := submissionstore.New(db)
	ctx := context.Background()

	older := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	for _, sub := range []models.Submission{
		{Ref: "ref-newer", Title: "Newer", URL: "https://example.com/b", Category: "coding", CreatedAt: newer},
		{Ref: "ref-older", Title: "Older", URL: "https://example.com/a", Category: "coding", CreatedAt: older},
	} {
		if _, err := store.Create(ctx, sub); err != nil {
			t.Fatalf("Create(%s): %v", sub.Title, err)
		}
	}

	got, err := store.Pending(ctx)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Pending: got %d submissions, want 2", len(got))
	}
	if got[0].Title != "Older" || got[1].Title != "Newer" {
		t.Errorf("review order: got %q, %q, want Older, Newer", got[0].Title, got[1].Title)
	}

	n, err := store.Count(ctx, bson.M{"status": models.StatusPending})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("pending count: got %d, want 2", n)
	}
}
