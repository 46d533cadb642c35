package collections_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/stashdir/stashd/internal/app/features/collections"
	uierrors "github.com/stashdir/stashd/internal/app/features/errors"
	collectionstore "github.com/stashdir/stashd/internal/app/store/collections"
	resourcestore "github.com/stashdir/stashd/internal/app/store/resources"
	"github.com/stashdir/stashd/internal/domain/models"
	"github.com/stashdir/stashd/internal/testutil"
)

func newTestHandler(t *testing.T) (*collections.Handler, *collectionstore.Store, *resourcestore.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	cols := collectionstore.New(db)
	res := resourcestore.New(db)
	return collections.NewHandler(cols, res, uierrors.NewErrorLogger(logger), logger), cols, res
}

func TestServeDetail_MembersInEditorialOrder(t *testing.T) {
	h, cols, res := newTestHandler(t)
	ctx := context.Background()

	var created []models.Resource
	for _, title := range []string{"Gamma", "Alpha", "Beta"} {
		r, err := res.Create(ctx, models.Resource{
			Title:    title,
			URL:      "https://example.com/" + title,
			Category: "coding",
		})
		if err != nil {
			t.Fatalf("seed %q: %v", title, err)
		}
		created = append(created, r)
	}

	col := models.Collection{Title: "Weekend Stack", Slug: "weekend-stack"}
	for _, r := range created {
		col.ResourceIDs = append(col.ResourceIDs, r.ID)
	}
	if _, err := cols.Create(ctx, col); err != nil {
		t.Fatalf("seed collection: %v", err)
	}

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/api/collections/weekend-stack", nil), "slug", "weekend-stack")
	rec := httptest.NewRecorder()
	h.ServeDetail(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)
	var resp struct {
		Title     string `json:"title"`
		Count     int    `json:"count"`
		Resources []struct {
			Title string `json:"title"`
		} `json:"resources"`
	}
	testutil.DecodeJSON(t, rec, &resp)

	if resp.Count != 3 {
		t.Fatalf("count: got %d, want 3", resp.Count)
	}
	want := []string{"Gamma", "Alpha", "Beta"}
	for i, r := range resp.Resources {
		if r.Title != want[i] {
			t.Errorf("member %d: got %q, want %q (editorial order)", i, r.Title, want[i])
		}
	}
}

func TestServeDetail_UnknownSlug(t *testing.T) {
	h, _, _ := newTestHandler(t)

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/api/collections/nope", nil), "slug", "nope")
	rec := httptest.NewRecorder()
	h.ServeDetail(rec, req)
	testutil.AssertStatus(t, rec, http.StatusNotFound)
}

func TestServeIndex(t *testing.T) {
	h, cols, _ := newTestHandler(t)

	if _, err := cols.Create(context.Background(), models.Collection{Title: "Only One"}); err != nil {
		t.Fatalf("seed collection: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/collections", nil)
	rec := httptest.NewRecorder()
	h.ServeIndex(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)
	var resp struct {
		Collections []struct {
			Title      string `json:"title"`
			PublicSlug string `json:"publicSlug"`
			Resources  []any  `json:"resources"`
		} `json:"collections"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if len(resp.Collections) != 1 {
		t.Fatalf("collections: got %d, want 1", len(resp.Collections))
	}
	if resp.Collections[0].PublicSlug != "only-one" {
		t.Errorf("public slug: got %q, want derived only-one", resp.Collections[0].PublicSlug)
	}
	if len(resp.Collections[0].Resources) != 0 {
		t.Error("index must not resolve member resources")
	}
}
