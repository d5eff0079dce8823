package nlg

import (
	"log"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"sync"

	"nailaide-be/internal/constant"
	"nailaide-be/pkg/store"
)

// Response is a rendered reply tagged with the intent that produced it.
type Response struct {
	Text   string
	Intent string
}

var placeholderPattern = regexp.MustCompile(`\{[^{}]*\}`)

// Generator renders templated replies. Template selection is uniform
// over the intent's bucket through the injected random source, so tests
// can pin the choice with a fixed seed.
type Generator struct {
	templates Templates

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator builds a generator over the given templates. A nil rng
// falls back to an unseeded source.
func NewGenerator(templates Templates, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Generator{templates: templates, rng: rng}
}

// NewGeneratorFromDir loads templates from dir, degrading to the
// built-in defaults when the directory is unusable.
func NewGeneratorFromDir(dir string, rng *rand.Rand, logger *log.Logger) *Generator {
	templates, err := LoadTemplates(dir)
	if err != nil {
		if logger == nil {
			logger = log.New(os.Stdout, "[NLG] ", log.LstdFlags)
		}
		logger.Printf("[WARN] templates unavailable (%v), using defaults", err)
		templates = DefaultTemplates()
	}
	return NewGenerator(templates, rng)
}

// Generate picks a template from the intent's bucket (or the fallback
// bucket) and fills it. When even the fallback bucket is missing, a
// fixed apology tagged as fallback is returned — there is always a
// reply.
func (g *Generator) Generate(intentName string, entities map[string]string, ctx *store.Context) Response {
	bucket := g.templates[intentName]
	if len(bucket) == 0 {
		intentName = constant.IntentFallback
		bucket = g.templates[constant.IntentFallback]
	}
	if len(bucket) == 0 {
		return Response{Text: constant.NoTemplateResponseV1, Intent: constant.IntentFallback}
	}

	g.mu.Lock()
	template := bucket[g.rng.Intn(len(bucket))]
	g.mu.Unlock()

	return Response{Text: Fill(template, entities, ctx), Intent: intentName}
}

// Fill substitutes {key} placeholders from entities and {context.key}
// placeholders from scalar context fields, then strips whatever
// placeholders remain. Missing data degrades to omission, never to
// visible braces.
func Fill(template string, entities map[string]string, ctx *store.Context) string {
	result := template
	for key, value := range entities {
		result = strings.ReplaceAll(result, "{"+key+"}", value)
	}
	for key, value := range ctx.Values() {
		result = strings.ReplaceAll(result, "{context."+key+"}", value)
	}
	return placeholderPattern.ReplaceAllString(result, "")
}
