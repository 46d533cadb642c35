package recommender_test

import (
	"math"
	"net/url"
	"reflect"
	"testing"

	"github.com/stashdir/stashd/internal/app/system/recommender"
	"github.com/stashdir/stashd/internal/app/system/taxonomy"
	"github.com/stashdir/stashd/internal/domain/models"
	"github.com/stashdir/stashd/internal/testutil"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScore_FullStack(t *testing.T) {
	res := testutil.Resource("Acme Cloud", "development-tools",
		testutil.WithIndustries("saas"),
		testutil.WithUseCases("auth", "hosting"),
		testutil.WithPricing("paid"),
		testutil.WithQuality(5),
		testutil.WithAdoption(taxonomy.AdoptionPopular),
		testutil.Featured(),
	)

	got := recommender.Score([]models.Resource{res}, recommender.Input{
		Industries: []string{"saas"},
		UseCases:   []string{"auth", "hosting"},
		Pricing:    "paid",
	})

	if len(got) != 1 {
		t.Fatalf("scored resources: got %d, want 1", len(got))
	}
	// 3 (industry) + 2+2 (use cases) + 2 (pricing) + 2.0 (quality 5/5)
	// + 1 (popular) + 0.5 (featured)
	if want := 10.5; !almostEqual(got[0].Score, want) {
		t.Errorf("score: got %v, want %v", got[0].Score, want)
	}

	wantReasons := []string{
		"Fits " + taxonomy.IndustryLabel("saas"),
		taxonomy.UseCaseLabel("auth"),
		taxonomy.UseCaseLabel("hosting"),
		taxonomy.PricingLabel("paid"),
		"Editor's pick",
		"Popular",
	}
	if !reflect.DeepEqual(got[0].Reasons, wantReasons) {
		t.Errorf("reasons: got %v, want %v", got[0].Reasons, wantReasons)
	}
}

func TestScore_IndustryBonusCapped(t *testing.T) {
	res := testutil.Resource("Multi Fit", "development-tools",
		testutil.WithIndustries("saas", "e-commerce", "developer"),
	)

	got := recommender.Score([]models.Resource{res}, recommender.Input{
		Industries: []string{"saas", "e-commerce", "developer"},
	})

	if len(got) != 1 {
		t.Fatalf("scored resources: got %d, want 1", len(got))
	}
	if want := 3.0; !almostEqual(got[0].Score, want) {
		t.Errorf("score: got %v, want %v (industry must contribute once)", got[0].Score, want)
	}
	if len(got[0].Reasons) != 1 {
		t.Errorf("reasons: got %v, want a single industry reason", got[0].Reasons)
	}
}

func TestScore_UseCasesAccumulate(t *testing.T) {
	res := testutil.Resource("Kitchen Sink", "development-tools",
		testutil.WithUseCases("auth", "payments", "email"),
	)

	got := recommender.Score([]models.Resource{res}, recommender.Input{
		UseCases: []string{"auth", "payments", "email"},
	})

	if len(got) != 1 {
		t.Fatalf("scored resources: got %d, want 1", len(got))
	}
	if want := 6.0; !almostEqual(got[0].Score, want) {
		t.Errorf("score: got %v, want %v", got[0].Score, want)
	}
}

func TestScore_TagInferredUseCase(t *testing.T) {
	// No explicit use cases; "stripe" infers the payments use case.
	res := testutil.Resource("Stripe Billing Kit", "development-tools",
		testutil.WithTags("Stripe", "saas"),
	)

	got := recommender.Score([]models.Resource{res}, recommender.Input{
		UseCases: []string{"payments"},
	})

	if len(got) != 1 {
		t.Fatalf("scored resources: got %d, want 1 (tag should infer use case)", len(got))
	}
	if want := 2.0; !almostEqual(got[0].Score, want) {
		t.Errorf("score: got %v, want %v", got[0].Score, want)
	}
	wantReasons := []string{taxonomy.UseCaseLabel("payments")}
	if !reflect.DeepEqual(got[0].Reasons, wantReasons) {
		t.Errorf("reasons: got %v, want %v", got[0].Reasons, wantReasons)
	}
}

func TestScore_Pricing(t *testing.T) {
	tests := []struct {
		name      string
		user      string
		resource  string
		wantScore float64
		wantKept  bool
	}{
		{name: "match", user: "free", resource: "free", wantScore: 2.0, wantKept: true},
		{name: "mismatch penalty drops below zero", user: "free", resource: "paid", wantKept: false},
		{name: "resource silent", user: "free", resource: "", wantKept: false},
		{name: "user any", user: taxonomy.PricingAny, resource: "paid", wantKept: false},
		{name: "user empty", user: "", resource: "paid", wantKept: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := testutil.Resource("Priced", "development-tools", testutil.WithPricing(tt.resource))
			got := recommender.Score([]models.Resource{res}, recommender.Input{Pricing: tt.user})
			if tt.wantKept {
				if len(got) != 1 {
					t.Fatalf("scored resources: got %d, want 1", len(got))
				}
				if !almostEqual(got[0].Score, tt.wantScore) {
					t.Errorf("score: got %v, want %v", got[0].Score, tt.wantScore)
				}
				return
			}
			// With no other bonuses the score is <= 0 and the resource is
			// filtered out.
			if len(got) != 0 {
				t.Errorf("scored resources: got %v, want none", got)
			}
		})
	}
}

func TestScore_PricingMismatchHasNoReason(t *testing.T) {
	res := testutil.Resource("Paid Tool", "development-tools",
		testutil.WithPricing("paid"),
		testutil.WithUseCases("auth"),
	)

	got := recommender.Score([]models.Resource{res}, recommender.Input{
		UseCases: []string{"auth"},
		Pricing:  "free",
	})

	if len(got) != 1 {
		t.Fatalf("scored resources: got %d, want 1", len(got))
	}
	if want := 1.0; !almostEqual(got[0].Score, want) { // 2 - 1
		t.Errorf("score: got %v, want %v", got[0].Score, want)
	}
	for _, reason := range got[0].Reasons {
		if reason == taxonomy.PricingLabel("paid") || reason == taxonomy.PricingLabel("free") {
			t.Errorf("pricing mismatch must not add a reason, got %v", got[0].Reasons)
		}
	}
}

func TestScore_Quality(t *testing.T) {
	tests := []struct {
		name        string
		quality     *int
		wantScore   float64
		wantPick    bool
		wantDropped bool
	}{
		{name: "nil", quality: nil, wantDropped: true},
		{name: "one", quality: intp(1), wantScore: 0.4},
		{name: "three", quality: intp(3), wantScore: 1.2},
		{name: "four is a pick", quality: intp(4), wantScore: 1.6, wantPick: true},
		{name: "five", quality: intp(5), wantScore: 2.0, wantPick: true},
		{name: "out of range high", quality: intp(9), wantDropped: true},
		{name: "out of range low", quality: intp(0), wantDropped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := testutil.Resource("Quality Test", "development-tools")
			res.QualityScore = tt.quality
			got := recommender.Score([]models.Resource{res}, recommender.Input{})
			if tt.wantDropped {
				if len(got) != 0 {
					t.Fatalf("scored resources: got %v, want none", got)
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("scored resources: got %d, want 1", len(got))
			}
			if !almostEqual(got[0].Score, tt.wantScore) {
				t.Errorf("score: got %v, want %v", got[0].Score, tt.wantScore)
			}
			hasPick := false
			for _, reason := range got[0].Reasons {
				if reason == "Editor's pick" {
					hasPick = true
				}
			}
			if hasPick != tt.wantPick {
				t.Errorf("editor's pick reason: got %v, want %v", hasPick, tt.wantPick)
			}
		})
	}
}

func TestScore_Adoption(t *testing.T) {
	popular := testutil.Resource("Popular", "development-tools", testutil.WithAdoption(taxonomy.AdoptionPopular))
	high := testutil.Resource("High", "development-tools", testutil.WithAdoption(taxonomy.AdoptionHigh))

	got := recommender.Score([]models.Resource{popular, high}, recommender.Input{})
	if len(got) != 2 {
		t.Fatalf("scored resources: got %d, want 2", len(got))
	}
	if !almostEqual(got[0].Score, 1.0) || got[0].Resource.Title != "Popular" {
		t.Errorf("popular: got %q score %v, want Popular score 1", got[0].Resource.Title, got[0].Score)
	}
	wantReasons := []string{"Popular"}
	if !reflect.DeepEqual(got[0].Reasons, wantReasons) {
		t.Errorf("popular reasons: got %v, want %v", got[0].Reasons, wantReasons)
	}
	if !almostEqual(got[1].Score, 0.5) {
		t.Errorf("high adoption score: got %v, want 0.5", got[1].Score)
	}
	if len(got[1].Reasons) != 0 {
		t.Errorf("high adoption must not add a reason, got %v", got[1].Reasons)
	}
}

func TestScore_ZeroScoreExcluded(t *testing.T) {
	plain := testutil.Resource("Plain", "development-tools")

	got := recommender.Score([]models.Resource{plain}, recommender.Input{
		Industries: []string{"saas"},
		UseCases:   []string{"auth"},
	})
	if len(got) != 0 {
		t.Errorf("non-matching resource must be excluded, got %v", got)
	}
}

func TestScore_SortStable(t *testing.T) {
	a := testutil.Resource("Alpha", "development-tools", testutil.WithUseCases("auth"))
	b := testutil.Resource("Beta", "development-tools", testutil.WithUseCases("auth"))
	top := testutil.Resource("Top", "development-tools", testutil.WithUseCases("auth"), testutil.Featured())

	got := recommender.Score([]models.Resource{a, b, top}, recommender.Input{
		UseCases: []string{"auth"},
	})
	if len(got) != 3 {
		t.Fatalf("scored resources: got %d, want 3", len(got))
	}
	if got[0].Resource.Title != "Top" {
		t.Errorf("highest score first: got %q", got[0].Resource.Title)
	}
	// Alpha and Beta tie; input order must hold.
	if got[1].Resource.Title != "Alpha" || got[2].Resource.Title != "Beta" {
		t.Errorf("tie order: got %q, %q, want Alpha, Beta", got[1].Resource.Title, got[2].Resource.Title)
	}
}

func TestScore_AddingMatchesNeverLowersScore(t *testing.T) {
	res := testutil.Resource("Mono", "development-tools",
		testutil.WithIndustries("saas"),
		testutil.WithUseCases("auth", "payments"),
	)

	base := recommender.Score([]models.Resource{res}, recommender.Input{
		UseCases: []string{"auth"},
	})
	more := recommender.Score([]models.Resource{res}, recommender.Input{
		Industries: []string{"saas"},
		UseCases:   []string{"auth", "payments"},
	})

	if len(base) != 1 || len(more) != 1 {
		t.Fatalf("scored resources: got %d and %d, want 1 and 1", len(base), len(more))
	}
	if more[0].Score < base[0].Score {
		t.Errorf("score fell from %v to %v when selection grew", base[0].Score, more[0].Score)
	}
}

func TestScore_DoesNotMutateInput(t *testing.T) {
	resources := []models.Resource{
		testutil.Resource("B Second", "development-tools", testutil.WithUseCases("auth")),
		testutil.Resource("A First", "development-tools", testutil.WithUseCases("auth"), testutil.Featured()),
	}
	titles := []string{resources[0].Title, resources[1].Title}

	recommender.Score(resources, recommender.Input{UseCases: []string{"auth"}})

	for i, want := range titles {
		if resources[i].Title != want {
			t.Fatalf("input slice mutated at %d: got %q, want %q", i, resources[i].Title, want)
		}
	}
}

func TestScore_EmptySelection(t *testing.T) {
	quality := testutil.Resource("Curated", "development-tools", testutil.WithQuality(4))
	plain := testutil.Resource("Plain", "development-tools")

	got := recommender.Score([]models.Resource{plain, quality}, recommender.Input{})
	if len(got) != 1 {
		t.Fatalf("scored resources: got %d, want 1", len(got))
	}
	if got[0].Resource.Title != "Curated" {
		t.Errorf("got %q, want Curated (only positive scorers survive)", got[0].Resource.Title)
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  recommender.Input
	}{
		{
			name:  "empty",
			query: "",
			want:  recommender.Input{Pricing: taxonomy.PricingAny},
		},
		{
			name:  "lists and pricing",
			query: "industry=saas,developer&use=auth,payments&pricing=free",
			want: recommender.Input{
				Industries: []string{"saas", "developer"},
				UseCases:   []string{"auth", "payments"},
				Pricing:    "free",
			},
		},
		{
			name:  "blank list entries dropped",
			query: "industry=saas,,&use=,auth",
			want: recommender.Input{
				Industries: []string{"saas"},
				UseCases:   []string{"auth"},
				Pricing:    taxonomy.PricingAny,
			},
		},
		{
			name:  "unknown pricing means no preference",
			query: "pricing=donationware",
			want:  recommender.Input{Pricing: taxonomy.PricingAny},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			got := recommender.ParseInput(q)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseInput: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestQueryStringRoundTrip(t *testing.T) {
	in := recommender.Input{
		Industries: []string{"saas", "developer"},
		UseCases:   []string{"auth", "payments"},
		Pricing:    "freemium",
	}

	q, err := url.ParseQuery(in.QueryString())
	if err != nil {
		t.Fatalf("parse encoded query: %v", err)
	}
	got := recommender.ParseInput(q)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip: got %+v, want %+v", got, in)
	}
}

func TestQueryString_OmitsEmpty(t *testing.T) {
	in := recommender.Input{Pricing: taxonomy.PricingAny}
	if got := in.QueryString(); got != "" {
		t.Errorf("QueryString: got %q, want empty", got)
	}
}

func intp(n int) *int { return &n }
