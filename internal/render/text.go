package render

import "github.com/ziadkadry99/bilingo/internal/content"

// Message keys for fixed UI strings.
const (
	MsgEmpty             = "list.empty"
	MsgNoResults         = "list.no_results"
	MsgLoadError         = "page.load_error"
	MsgSearchPlaceholder = "search.placeholder"
	MsgClearSearch       = "search.clear"
	MsgPosts             = "nav.posts"
	MsgTools             = "nav.tools"
	MsgHome              = "post.home"
	MsgSource            = "post.source"
	MsgSummaryNotice     = "post.summary_notice"
)

var translations = map[content.Language]map[string]string{
	content.Arabic: {
		MsgEmpty:             "لا يوجد محتوى بعد.",
		MsgNoResults:         "لا توجد نتائج مطابقة.",
		MsgLoadError:         "تعذر تحميل المحتوى. حاول مرة أخرى لاحقًا.",
		MsgSearchPlaceholder: "ابحث في الأدوات…",
		MsgClearSearch:       "مسح",
		MsgPosts:             "المقالات",
		MsgTools:             "الأدوات",
		MsgHome:              "الرئيسية",
		MsgSource:            "المصدر",
		MsgSummaryNotice:     "هذه المادة تلخيص تحويلي مع رابط للمصدر",
	},
	content.English: {
		MsgEmpty:             "Nothing here yet.",
		MsgNoResults:         "No matching results.",
		MsgLoadError:         "Could not load the content. Please try again later.",
		MsgSearchPlaceholder: "Search tools…",
		MsgClearSearch:       "Clear",
		MsgPosts:             "Posts",
		MsgTools:             "Tools",
		MsgHome:              "Home",
		MsgSource:            "Source",
		MsgSummaryNotice:     "Transformative summary with a source link.",
	},
}

// T returns the UI string for key in lang, falling back to English and then to the key.
func T(lang content.Language, key string) string {
	if m, ok := translations[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := translations[content.English][key]; ok {
		return v
	}
	return key
}
