package advertisement

import "strings"

// arabicFolds canonicalizes hamza variants onto the bare alef and taa
// marbuta onto haa before slugging, so visually equivalent Arabic spellings
// produce the same key.
var arabicFolds = strings.NewReplacer(
	"أ", "ا",
	"إ", "ا",
	"ة", "ه",
)

// CategoryKey derives a lowercase, ASCII-safe key from bilingual
// classification text, preferring the sub-category and falling back to the
// category. It is a pure function used only for client-side routing; the key
// is never persisted or used for lookups.
func CategoryKey(subCategory, category string) string {
	s := subCategory
	if s == "" {
		s = category
	}
	s = arabicFolds.Replace(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return strings.TrimSpace(b.String())
}
