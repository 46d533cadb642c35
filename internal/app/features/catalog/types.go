package catalog

import (
	"github.com/stashdir/stashd/internal/app/features/shared/views"
)

// listResponse is the JSON body of GET /api/resources.
type listResponse struct {
	Items []views.Resource `json:"items"`

	Total int `json:"total"` // matches after filtering, before paging
	Shown int `json:"shown"`

	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`
	RangeStart int  `json:"rangeStart"`
	RangeEnd   int  `json:"rangeEnd"`
	PrevStart  int  `json:"prevStart"`
	NextStart  int  `json:"nextStart"`

	// Echo of the applied filters so clients can rebuild UI state.
	Category string `json:"category"`
	Query    string `json:"query"`
	When     string `json:"when"`
	Sort     string `json:"sort"`
}

// collectionRef is a lightweight pointer to a collection a resource
// appears in.
type collectionRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// detailResponse is the JSON body of GET /api/resources/{slug}.
type detailResponse struct {
	views.Resource

	Similar     []views.Resource `json:"similar,omitempty"`
	Collections []collectionRef  `json:"collections,omitempty"`
}
