package textnorm

func stopwordsFor(lang string) map[string]struct{} {
	var words []string
	switch lang {
	case "en":
		words = englishStopwords
	case "ur":
		words = romanUrduStopwords
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var englishStopwords = []string{
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to",
	"of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were",
	"be", "been", "being", "it", "this", "that", "these", "those", "from",
	"up", "down", "over", "under", "again", "further", "than", "so", "such",
	"into", "about", "between", "through", "during", "before", "after",
	"above", "below", "out", "off", "own", "same", "too", "very", "can",
	"will", "just", "don", "should", "now", "what", "how", "do", "does",
	"i", "you", "he", "she", "we", "they", "me", "my", "your",
}

// Roman Urdu carries no canonical stop-word list; this set covers the
// particles and copulas that dominate conversational agricultural queries.
var romanUrduStopwords = []string{
	"ka", "ki", "ke", "ko", "se", "mein", "main", "par", "aur", "ya",
	"bhi", "toh", "to", "hai", "ha", "hain", "ho", "hota", "hoti", "hote",
	"kya", "kis", "kitna", "kitni", "kitne", "jo", "is", "us", "ye", "yeh",
	"wo", "woh", "aik", "ek", "na", "nahi", "magar", "lekin", "phir",
}
