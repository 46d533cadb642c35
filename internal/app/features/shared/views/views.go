// Package views holds the JSON projections shared across feature
// endpoints: a resource or collection as the presentation layer receives
// it, with resolved public slugs and display labels.
package views

import (
	"github.com/stashdir/stashd/internal/app/system/slugify"
	"github.com/stashdir/stashd/internal/app/system/taxonomy"
	"github.com/stashdir/stashd/internal/domain/models"
)

// Resource is the JSON shape endpoints return for one resource: the
// stored record plus the resolved public slug and display labels.
type Resource struct {
	models.Resource

	PublicSlug    string `json:"publicSlug"`
	CategoryLabel string `json:"categoryLabel"`
	TypeLabel     string `json:"typeLabel,omitempty"`
	PricingLabel  string `json:"pricingLabel,omitempty"`
	AdoptionLabel string `json:"adoptionLabel,omitempty"`
}

// Of projects one resource into its view.
func Of(r models.Resource) Resource {
	return Resource{
		Resource:      r,
		PublicSlug:    slugify.Resolve(r.Slug, r.Title),
		CategoryLabel: taxonomy.CategoryLabel(r.Category),
		TypeLabel:     taxonomy.ResourceTypeLabel(r.ResourceType),
		PricingLabel:  taxonomy.PricingLabel(r.Pricing),
		AdoptionLabel: taxonomy.AdoptionLabel(r.AdoptionTier),
	}
}

// OfAll projects a slice of resources, preserving order.
func OfAll(rs []models.Resource) []Resource {
	out := make([]Resource, 0, len(rs))
	for _, r := range rs {
		out = append(out, Of(r))
	}
	return out
}

// Collection is the JSON shape for one collection, with its member
// resources resolved in editorial order.
type Collection struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	PublicSlug  string     `json:"publicSlug"`
	Description string     `json:"description"`
	Featured    bool       `json:"featured"`
	CreatedAt   string     `json:"createdAt,omitempty"`
	Resources   []Resource `json:"resources,omitempty"`
	Count       int        `json:"count"`
}
