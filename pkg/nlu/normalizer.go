package nlu

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
)

// ProcessedInput is the deterministic normalization of a raw message.
// Normalized is the stopword-filtered tokens rejoined with spaces and
// is the classifier's input; token order is preserved so repeated calls
// on the same text are byte-identical.
type ProcessedInput struct {
	Original   string
	Tokens     []string
	Stems      []string
	Normalized string
}

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// Normalizer lowercases, tokenizes, strips stopwords and stems input
// text. It holds no state and is safe for concurrent use.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Process normalizes raw input. Empty or whitespace-only input yields a
// zero-valued result rather than an error.
func (n *Normalizer) Process(raw string) ProcessedInput {
	if strings.TrimSpace(raw) == "" {
		return ProcessedInput{
			Original: "",
			Tokens:   []string{},
			Stems:    []string{},
		}
	}

	lowered := strings.ToLower(raw)
	tokens := tokenPattern.FindAllString(lowered, -1)

	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if IsStopword(tok) {
			continue
		}
		filtered = append(filtered, tok)
	}

	stems := make([]string, 0, len(filtered))
	for _, tok := range filtered {
		stems = append(stems, Stem(tok))
	}

	return ProcessedInput{
		Original:   raw,
		Tokens:     tokens,
		Stems:      stems,
		Normalized: strings.Join(filtered, " "),
	}
}

// Stem applies the Snowball English stemmer. Tokens the stemmer rejects
// are kept as-is.
func Stem(token string) string {
	stemmed, err := snowball.Stem(token, "english", false)
	if err != nil || stemmed == "" {
		return token
	}
	return stemmed
}
