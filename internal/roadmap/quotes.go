package roadmap

// quotes shown on the roadmap view, one picked per generated roadmap.
var quotes = []string{
	"Every expert was once a beginner.",
	"Consistency is the key to mastery.",
	"Your skills are your best asset.",
	"Don't watch the clock; do what it does. Keep going.",
	"Learning never exhausts the mind.",
}

// PickQuote returns a motivational quote chosen deterministically from
// the seed, so a given roadmap shows a stable quote while tests can pin
// the selection.
func PickQuote(seed int64) string {
	n := int64(len(quotes))
	i := seed % n
	if i < 0 {
		i += n
	}
	return quotes[i]
}
