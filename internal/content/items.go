package content

import "fmt"

// Post is one entry of posts/index.json. Every field is optional on the wire.
type Post struct {
	Title     string `json:"title,omitempty"`
	TitleAR   string `json:"title_ar,omitempty"`
	TitleEN   string `json:"title_en,omitempty"`
	Summary   string `json:"summary,omitempty"`
	SummaryAR string `json:"summary_ar,omitempty"`
	SummaryEN string `json:"summary_en,omitempty"`
	Date      string `json:"date,omitempty"`
	Path      string `json:"path,omitempty"`
	Lang      string `json:"lang,omitempty"`
}

// Tool is one entry of tools.json.
type Tool struct {
	TitleAR string   `json:"title_ar,omitempty"`
	TitleEN string   `json:"title_en,omitempty"`
	DescAR  string   `json:"desc_ar,omitempty"`
	DescEN  string   `json:"desc_en,omitempty"`
	Path    string   `json:"path,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// Variant selects which content list a page shows.
type Variant string

const (
	VariantPosts Variant = "posts"
	VariantTools Variant = "tools"
)

// Variants lists every variant in build order.
var Variants = []Variant{VariantPosts, VariantTools}

// ParseVariant validates a variant name.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantPosts, VariantTools:
		return Variant(s), nil
	}
	return "", fmt.Errorf("invalid variant %q: must be one of posts, tools", s)
}

// DataPath is the path of the variant's content list relative to the site root.
func (v Variant) DataPath() string {
	if v == VariantTools {
		return "tools.json"
	}
	return "posts/index.json"
}

// Searchable reports whether the variant has a search box.
func (v Variant) Searchable() bool { return v == VariantTools }
