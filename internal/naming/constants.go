package naming

// MaxSuggestions caps how many ids Suggest returns.
const MaxSuggestions = 3

// MinFuzzyLength is the shortest query that is compared by edit distance.
// Shorter queries only match exactly or by prefix.
const MinFuzzyLength = 3

// Match scores, highest first.
const (
	ScoreExact     = 1.0
	ScorePrefix    = 0.9
	ScoreSubstring = 0.8
	ScoreFuzzyBase = 0.72
	ScoreFuzzyStep = 0.08
)

// Match sources reported in Match.Source
const (
	SourceExact     = "exact"
	SourcePrefix    = "prefix"
	SourceSubstring = "substring"
	SourceFuzzy     = "lev"
)
