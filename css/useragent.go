package css

// User agent defaults. These tables are configuration data, kept apart
// from the resolution algorithm so they can grow without touching it.
// Based on the HTML5 specification default styles.

// displayNoneElements are the elements hidden by default.
var displayNoneElements = map[string]struct{}{
	"area":     {},
	"base":     {},
	"basefont": {},
	"datalist": {},
	"head":     {},
	"link":     {},
	"meta":     {},
	"noembed":  {},
	"noframes": {},
	"param":    {},
	"rp":       {},
	"script":   {},
	"style":    {},
	"template": {},
	"title":    {},
}

// boldElements are the elements rendered bold by default.
var boldElements = map[string]struct{}{
	"b":      {},
	"strong": {},
}

// DefaultDisplay returns the user agent `display` value for a tag.
func DefaultDisplay(tagName string) Keyword {
	if _, ok := displayNoneElements[tagName]; ok {
		return Keyword("none")
	}
	return Keyword("block")
}

// DefaultFontWeight returns the user agent `font-weight` value for a tag.
func DefaultFontWeight(tagName string) Keyword {
	if _, ok := boldElements[tagName]; ok {
		return Keyword("bold")
	}
	return Keyword("normal")
}
