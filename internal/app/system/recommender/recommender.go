// Package recommender scores and ranks resources against a user's
// selected industries, use cases, and pricing preference, producing a
// per-resource numeric score and human-readable reasons.
//
// Score is a pure function over its inputs: no mutation, no I/O, safe for
// concurrent callers. Malformed or absent facets contribute nothing; there
// is no failure mode.
package recommender

import (
	"sort"
	"strings"

	"github.com/stashdir/stashd/internal/app/system/taxonomy"
	"github.com/stashdir/stashd/internal/domain/models"
)

// Scoring weights. Industry contributes at most once per resource no
// matter how many selected industries match; use cases accumulate.
const (
	industryBonus     = 3.0
	useCaseBonus      = 2.0
	pricingBonus      = 2.0
	pricingPenalty    = -1.0
	qualityMaxBonus   = 2.0
	popularBonus      = 1.0
	highAdoptionBonus = 0.5
	featuredBonus     = 0.5
)

// Reason strings that are not facet labels.
const (
	reasonEditorsPick = "Editor's pick"
	reasonPopular     = "Popular"
)

// Input is the user's selection. Empty slices and an empty or "any"
// pricing are valid and simply constrain nothing.
type Input struct {
	Industries []string
	UseCases   []string
	Pricing    string // concrete pricing value, or ""/"any" for no constraint
}

// ScoredResource pairs a resource with its accumulated score and the
// ordered reasons that contributed to it. Reasons may be empty even for a
// positive score (quality, adoption, and featured bonuses below their
// reason thresholds add points silently).
type ScoredResource struct {
	Resource models.Resource `json:"resource"`
	Score    float64         `json:"score"`
	Reasons  []string        `json:"reasons"`
}

// Score ranks resources for the given selection. Resources whose final
// score is zero or negative are dropped; the rest are returned sorted by
// score descending (stable, so input order breaks ties). The caller
// truncates to a page size.
func Score(resources []models.Resource, in Input) []ScoredResource {
	scored := make([]ScoredResource, 0, len(resources))

	for _, r := range resources {
		score := 0.0
		var reasons []string

		resourceUseCases := useCaseSet(r)
		resourceIndustries := stringSet(r.Industries)

		// Industry: first selected industry present in the resource's set
		// wins; the bonus is capped at one contribution.
		for _, ind := range in.Industries {
			if resourceIndustries[ind] {
				score += industryBonus
				reasons = append(reasons, "Fits "+taxonomy.IndustryLabel(ind))
				break
			}
		}

		// Use cases accumulate: every selected use case the resource
		// covers (explicitly or via tag inference) adds points.
		for _, uc := range in.UseCases {
			if resourceUseCases[uc] {
				score += useCaseBonus
				reasons = append(reasons, taxonomy.UseCaseLabel(uc))
			}
		}

		// Pricing is only judged when both sides state one. A resource
		// with no pricing neither gains nor loses.
		if in.Pricing != "" && in.Pricing != taxonomy.PricingAny && r.Pricing != "" {
			if r.Pricing == in.Pricing {
				score += pricingBonus
				reasons = append(reasons, taxonomy.PricingLabel(r.Pricing))
			} else {
				score += pricingPenalty
			}
		}

		// Quality scales linearly to qualityMaxBonus; out-of-range values
		// are ignored rather than rejected.
		if q := r.QualityScore; q != nil && *q >= 1 && *q <= 5 {
			score += float64(*q) / 5 * qualityMaxBonus
			if *q >= 4 {
				reasons = append(reasons, reasonEditorsPick)
			}
		}

		switch r.AdoptionTier {
		case taxonomy.AdoptionPopular:
			score += popularBonus
			reasons = append(reasons, reasonPopular)
		case taxonomy.AdoptionHigh:
			score += highAdoptionBonus
		}

		if r.Featured {
			score += featuredBonus
		}

		scored = append(scored, ScoredResource{Resource: r, Score: score, Reasons: reasons})
	}

	kept := scored[:0:0]
	for _, s := range scored {
		if s.Score > 0 {
			kept = append(kept, s)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})
	return kept
}

// useCaseSet returns the resource's explicit use cases unioned with those
// inferred from its tags via the taxonomy table. Tags with no table entry
// contribute nothing.
func useCaseSet(r models.Resource) map[string]bool {
	set := make(map[string]bool, len(r.UseCases))
	for _, u := range r.UseCases {
		if u != "" {
			set[u] = true
		}
	}
	for _, tag := range r.Tags {
		if uc, ok := taxonomy.TagUseCases[strings.ToLower(tag)]; ok {
			set[uc] = true
		}
	}
	return set
}

func stringSet(vals []string) map[string]bool {
	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		if v != "" {
			set[v] = true
		}
	}
	return set
}
