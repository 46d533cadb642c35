package recommender

import (
	"net/url"
	"strings"

	"github.com/stashdir/stashd/internal/app/system/taxonomy"
)

// Query-string parameter names for shareable recommendation links.
const (
	ParamIndustry = "industry"
	ParamUseCase  = "use"
	ParamPricing  = "pricing"
)

// ParseInput reconstructs a recommendation Input from decoded query-string
// values. Industries and use cases are comma-separated lists; empty
// entries are dropped. Unknown values are kept as-is; they simply never
// match anything during scoring. A pricing value outside the known options
// is treated as no preference.
func ParseInput(q url.Values) Input {
	in := Input{
		Industries: splitList(q.Get(ParamIndustry)),
		UseCases:   splitList(q.Get(ParamUseCase)),
		Pricing:    taxonomy.PricingAny,
	}
	if p := q.Get(ParamPricing); p == taxonomy.PricingAny || taxonomy.ValidPricing(p) {
		in.Pricing = p
	}
	return in
}

// QueryString encodes the input back into the shareable query-string
// format. Encoding then parsing yields an equivalent Input.
func (in Input) QueryString() string {
	q := url.Values{}
	if len(in.Industries) > 0 {
		q.Set(ParamIndustry, strings.Join(in.Industries, ","))
	}
	if len(in.UseCases) > 0 {
		q.Set(ParamUseCase, strings.Join(in.UseCases, ","))
	}
	if in.Pricing != "" && in.Pricing != taxonomy.PricingAny {
		q.Set(ParamPricing, in.Pricing)
	}
	return q.Encode()
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
