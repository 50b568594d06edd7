package render

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ziadkadry99/bilingo/internal/content"
)

func sampleTools() []content.Tool {
	return []content.Tool{
		{TitleAR: "أداة", TitleEN: "Tool A", Tags: []string{"json"}},
		{TitleAR: "محول", TitleEN: "ABC Converter", DescEN: "Converts units", Tags: []string{"units"}},
		{TitleAR: "منسق", TitleEN: "Formatter", DescAR: "تنسيق النصوص", Tags: []string{"text", "abc"}},
	}
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	tools := sampleTools()
	for _, q := range []string{"", "   ", "\t\n"} {
		got := FilterTools(tools, q)
		if !reflect.DeepEqual(got, tools) {
			t.Errorf("FilterTools(%q) changed the list: %+v", q, got)
		}
	}
	if got := FilterTools(nil, ""); got != nil {
		t.Errorf("FilterTools(nil, \"\") = %+v, want nil", got)
	}
}

func TestFilterSingleMatch(t *testing.T) {
	tools := []content.Tool{{TitleAR: "أداة", TitleEN: "Tool A", Tags: []string{"json"}}}
	got := FilterTools(tools, "json")
	if len(got) != 1 || got[0].TitleEN != "Tool A" {
		t.Errorf("FilterTools(json) = %+v", got)
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	tools := sampleTools()
	upper := FilterTools(tools, "ABC")
	lower := FilterTools(tools, "abc")
	if !reflect.DeepEqual(upper, lower) {
		t.Errorf("case sensitivity: ABC=%+v abc=%+v", upper, lower)
	}
	if len(lower) != 2 {
		t.Errorf("expected 2 matches for abc, got %d", len(lower))
	}
}

func TestFilterIdempotentAndOrdered(t *testing.T) {
	tools := sampleTools()
	for _, q := range []string{"abc", "tool", "تنسيق", "units", "nomatch"} {
		once := FilterTools(tools, q)
		twice := FilterTools(once, q)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("FilterTools not idempotent for %q: %+v vs %+v", q, once, twice)
		}
	}

	got := FilterTools(tools, "abc")
	if got[0].TitleEN != "ABC Converter" || got[1].TitleEN != "Formatter" {
		t.Errorf("original order not preserved: %+v", got)
	}
}

func TestFilterMatchesEveryField(t *testing.T) {
	tools := sampleTools()
	tests := map[string]string{
		"أداة":      "Tool A",
		"converts":  "ABC Converter",
		"النصوص":    "Formatter",
		"  text  ":  "Formatter",
		"formatter": "Formatter",
	}
	for q, want := range tests {
		got := FilterTools(tools, q)
		if len(got) != 1 || got[0].TitleEN != want {
			t.Errorf("FilterTools(%q) = %+v, want only %q", q, got, want)
		}
	}
}

func TestHaystack(t *testing.T) {
	h := Haystack(content.Tool{TitleAR: "أ", TitleEN: "B", DescAR: "ج", DescEN: "D", Tags: []string{"X", "y"}})
	want := "أ | b | ج | d | x | y"
	if h != want {
		t.Errorf("Haystack = %q, want %q", h, want)
	}
}

func TestSearchTextLowercasesOnly(t *testing.T) {
	tool := content.Tool{TitleAR: "أ", TitleEN: "Straße", Tags: []string{"JSON"}}
	if got, want := SearchText(tool), "أ | straße |  |  | json"; got != want {
		t.Errorf("SearchText = %q, want %q", got, want)
	}
	// Folding maps ß to ss; the in-page filter cannot, so built pages keep ß.
	if !strings.Contains(Haystack(tool), "strasse") {
		t.Errorf("Haystack = %q, want folded ß", Haystack(tool))
	}
	if card := ToolCard(tool, content.English); card.Search != SearchText(tool) {
		t.Errorf("card search text = %q", card.Search)
	}
}
