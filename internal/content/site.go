package content

// SiteConfig is the site.config.json document.
type SiteConfig struct {
	SiteNameAR        string `json:"site_name_ar"`
	SiteNameEN        string `json:"site_name_en"`
	SiteDescriptionAR string `json:"site_description_ar"`
	SiteDescriptionEN string `json:"site_description_en"`
	LanguageDefault   string `json:"language_default"`
	SiteURL           string `json:"site_url,omitempty"`
}

// DefaultLanguage returns the configured default, or Arabic when it is unset or invalid.
func (c SiteConfig) DefaultLanguage() Language {
	return LanguageOrDefault(c.LanguageDefault)
}

// Name returns the site name for lang.
func (c SiteConfig) Name(lang Language) string {
	if lang == English {
		return c.SiteNameEN
	}
	return c.SiteNameAR
}

// Description returns the site description for lang.
func (c SiteConfig) Description(lang Language) string {
	if lang == English {
		return c.SiteDescriptionEN
	}
	return c.SiteDescriptionAR
}
