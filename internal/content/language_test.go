package content

import (
	"encoding/json"
	"testing"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input  string
		want   Language
		wantOK bool
	}{
		{"ar", Arabic, true},
		{"en", English, true},
		{"EN", English, true},
		{" ar ", Arabic, true},
		{"en-US", English, true},
		{"ar_EG", Arabic, true},
		{"fr", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLanguage(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLanguage(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLanguageOrDefault(t *testing.T) {
	if got := LanguageOrDefault(""); got != Arabic {
		t.Errorf("unset default = %q, want ar", got)
	}
	if got := LanguageOrDefault("klingon"); got != Arabic {
		t.Errorf("invalid default = %q, want ar", got)
	}
	if got := LanguageOrDefault("en"); got != English {
		t.Errorf("en default = %q, want en", got)
	}
}

func TestDirAndToggle(t *testing.T) {
	if Arabic.Dir() != "rtl" || English.Dir() != "ltr" {
		t.Fatalf("unexpected directions: ar=%s en=%s", Arabic.Dir(), English.Dir())
	}

	lang := Arabic
	lang = lang.Toggle()
	if lang != English {
		t.Fatalf("toggle from ar = %q, want en", lang)
	}
	lang = lang.Toggle()
	if lang != Arabic || lang.Dir() != "rtl" {
		t.Fatalf("double toggle = %q (%s), want ar (rtl)", lang, lang.Dir())
	}

	if Arabic.ToggleLabel() != "EN" || English.ToggleLabel() != "AR" {
		t.Errorf("toggle labels: ar=%q en=%q", Arabic.ToggleLabel(), English.ToggleLabel())
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		accept   string
		fallback Language
		want     Language
	}{
		{"query wins", "ar", "en-US,en;q=0.9", English, Arabic},
		{"accept language", "", "en-GB,en;q=0.9", Arabic, English},
		{"accept prefers higher q", "", "en;q=0.5,ar-EG;q=0.9", English, Arabic},
		{"unsupported falls back", "", "fr-FR,de;q=0.8", English, English},
		{"invalid query ignored", "xx", "", Arabic, Arabic},
		{"empty everything", "", "", English, English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Negotiate(tt.query, tt.accept, tt.fallback)
			if got != tt.want {
				t.Errorf("Negotiate(%q, %q, %q) = %q, want %q", tt.query, tt.accept, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestSiteConfigSelectors(t *testing.T) {
	var cfg SiteConfig
	raw := `{"site_name_ar":"موقع","site_name_en":"Site","site_description_ar":"وصف","site_description_en":"About","language_default":"en"}`
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cfg.DefaultLanguage() != English {
		t.Errorf("default = %q, want en", cfg.DefaultLanguage())
	}
	if cfg.Name(English) != "Site" || cfg.Name(Arabic) != "موقع" {
		t.Errorf("names: en=%q ar=%q", cfg.Name(English), cfg.Name(Arabic))
	}
	if cfg.Description(English) != "About" || cfg.Description(Arabic) != "وصف" {
		t.Errorf("descriptions: en=%q ar=%q", cfg.Description(English), cfg.Description(Arabic))
	}

	if (SiteConfig{}).DefaultLanguage() != Arabic {
		t.Error("missing language_default should default to ar")
	}
}

func TestParseVariant(t *testing.T) {
	if v, err := ParseVariant("tools"); err != nil || v != VariantTools {
		t.Errorf("ParseVariant(tools) = %q, %v", v, err)
	}
	if _, err := ParseVariant("pages"); err == nil {
		t.Error("expected error for unknown variant")
	}
	if VariantPosts.DataPath() != "posts/index.json" || VariantTools.DataPath() != "tools.json" {
		t.Error("unexpected data paths")
	}
	if VariantPosts.Searchable() || !VariantTools.Searchable() {
		t.Error("only tools should be searchable")
	}
}
