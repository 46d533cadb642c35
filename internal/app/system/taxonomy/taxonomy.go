// Package taxonomy holds the closed enumerations a resource is classified
// with (category, industry, use case, pricing, type, adoption tier) and
// their display labels, plus the tag-to-use-case inference table used by
// the recommender.
//
// All tables are package-level and never mutated after init. Label lookup
// on an unknown value echoes the raw value back instead of failing, so an
// unrecognized enumeration coming out of the content store can never crash
// a page.
package taxonomy

// Option pairs an enumeration value with its human-readable label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Categories is the primary classification of a resource.
var Categories = []Option{
	{Value: "design-tools", Label: "Design Tools"},
	{Value: "development-tools", Label: "Development Tools"},
	{Value: "ui-ux-resources", Label: "UI/UX Resources"},
	{Value: "inspiration", Label: "Inspiration"},
	{Value: "ai-tools", Label: "AI Tools"},
	{Value: "productivity", Label: "Productivity"},
	{Value: "learning-resources", Label: "Learning Resources"},
	{Value: "webflow", Label: "Webflow"},
	{Value: "shadcn", Label: "Shadcn"},
	{Value: "coding", Label: "Coding"},
	{Value: "github", Label: "GitHub"},
	{Value: "html", Label: "HTML"},
	{Value: "css", Label: "CSS"},
	{Value: "javascript", Label: "JavaScript"},
	{Value: "languages", Label: "Languages"},
	{Value: "miscellaneous", Label: "Miscellaneous"},
}

// Industries are the verticals the recommender matches on.
var Industries = []Option{
	{Value: "e-commerce", Label: "E-commerce"},
	{Value: "saas", Label: "SaaS / B2B"},
	{Value: "content", Label: "Content / Media"},
	{Value: "community", Label: "Community / Social"},
	{Value: "developer", Label: "Developer tools"},
	{Value: "marketing", Label: "Marketing / Growth"},
	{Value: "general", Label: "Other / General"},
}

// UseCases are the capability tags the recommender matches on.
var UseCases = []Option{
	{Value: "auth", Label: "Authentication"},
	{Value: "payments", Label: "Payments / Billing"},
	{Value: "email", Label: "Email / Notifications"},
	{Value: "database", Label: "Database"},
	{Value: "hosting", Label: "Hosting / Deployment"},
	{Value: "analytics", Label: "Analytics"},
	{Value: "ai", Label: "AI / ML"},
	{Value: "design", Label: "Design tools"},
	{Value: "cms", Label: "CMS"},
	{Value: "search", Label: "Search"},
	{Value: "storage", Label: "Storage / Files"},
	{Value: "apis", Label: "APIs"},
}

// PricingAny is the sentinel meaning "no pricing constraint".
const PricingAny = "any"

// PricingOptions includes the "any" sentinel first, matching the order the
// recommender UI presents them in.
var PricingOptions = []Option{
	{Value: PricingAny, Label: "Any"},
	{Value: "free", Label: "Free only"},
	{Value: "freemium", Label: "Freemium OK"},
	{Value: "open-source", Label: "Open source preferred"},
	{Value: "paid", Label: "Paid OK"},
	{Value: "enterprise", Label: "Enterprise"},
}

// ResourceTypes is the optional free-form "type" of a resource.
var ResourceTypes = []Option{
	{Value: "app", Label: "App"},
	{Value: "website", Label: "Website"},
	{Value: "utility", Label: "Utility"},
	{Value: "library", Label: "Library"},
	{Value: "directory", Label: "Directory"},
	{Value: "article", Label: "Article"},
	{Value: "tool", Label: "Tool"},
	{Value: "component", Label: "Component"},
	{Value: "snippet", Label: "Snippet"},
	{Value: "course", Label: "Course"},
	{Value: "framework", Label: "Framework"},
	{Value: "other", Label: "Other"},
}

// Adoption tier values (manual curation signal).
const (
	AdoptionLow     = "low"
	AdoptionMedium  = "medium"
	AdoptionHigh    = "high"
	AdoptionPopular = "popular"
)

var adoptionLabels = map[string]string{
	AdoptionLow:     "Emerging",
	AdoptionMedium:  "Growing",
	AdoptionHigh:    "Widely used",
	AdoptionPopular: "Popular",
}

// TagUseCases maps common tool-name and keyword tags to a use case. It is
// the fallback signal when a resource has no explicit use cases set.
var TagUseCases = map[string]string{
	"auth":           "auth",
	"authentication": "auth",
	"clerk":          "auth",
	"supabase":       "auth",
	"payments":       "payments",
	"stripe":         "payments",
	"billing":        "payments",
	"email":          "email",
	"resend":         "email",
	"database":       "database",
	"postgres":       "database",
	"hosting":        "hosting",
	"vercel":         "hosting",
	"analytics":      "analytics",
	"ai":             "ai",
	"design":         "design",
	"figma":          "design",
	"cms":            "cms",
	"sanity":         "cms",
	"search":         "search",
	"storage":        "storage",
	"api":            "apis",
	"apis":           "apis",
}

func labelIn(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func validIn(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

// CategoryLabel returns the display label for a category value, echoing
// the raw value when it is not in the closed set.
func CategoryLabel(value string) string { return labelIn(Categories, value) }

// IndustryLabel returns the display label for an industry value.
func IndustryLabel(value string) string { return labelIn(Industries, value) }

// UseCaseLabel returns the display label for a use-case value.
func UseCaseLabel(value string) string { return labelIn(UseCases, value) }

// PricingLabel returns the display label for a pricing value. Empty input
// yields an empty label.
func PricingLabel(value string) string {
	if value == "" {
		return ""
	}
	return labelIn(PricingOptions, value)
}

// ResourceTypeLabel returns the display label for a resource type. Empty
// input yields an empty label.
func ResourceTypeLabel(value string) string {
	if value == "" {
		return ""
	}
	return labelIn(ResourceTypes, value)
}

// AdoptionLabel returns the display label for an adoption tier, echoing
// the raw value for unknown tiers and "" for an absent one.
func AdoptionLabel(tier string) string {
	if tier == "" {
		return ""
	}
	if l, ok := adoptionLabels[tier]; ok {
		return l
	}
	return tier
}

// ValidCategory reports whether value is in the closed category set.
func ValidCategory(value string) bool { return validIn(Categories, value) }

// ValidIndustry reports whether value is in the closed industry set.
func ValidIndustry(value string) bool { return validIn(Industries, value) }

// ValidUseCase reports whether value is in the closed use-case set.
func ValidUseCase(value string) bool { return validIn(UseCases, value) }

// ValidPricing reports whether value is a concrete pricing model (the
// "any" sentinel is not a pricing model a resource can declare).
func ValidPricing(value string) bool {
	return value != PricingAny && validIn(PricingOptions, value)
}
