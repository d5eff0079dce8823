package intent

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"nailaide-be/internal/constant"
	"nailaide-be/pkg/nlu"
	"nailaide-be/pkg/store"

	"github.com/jbrukh/bayesian"
)

// Intent is a classified user intention with its posterior probability.
type Intent struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Record is one labeled training bucket: an intent name plus example
// utterances.
type Record struct {
	Name     string   `json:"name"`
	Examples []string `json:"examples"`
}

// Classifier is a naive-Bayes bag-of-words intent classifier. It is
// trained once at construction and read-only afterwards, so Detect is
// safe for concurrent use.
type Classifier struct {
	model      *bayesian.Classifier
	classes    []bayesian.Class
	normalizer *nlu.Normalizer
	logger     *log.Logger
}

// NewClassifier trains a classifier from the given records. At least
// two distinct labels are required by the underlying model.
func NewClassifier(records []Record, logger *log.Logger) (*Classifier, error) {
	if logger == nil {
		logger = log.New(os.Stdout, "[INTENT] ", log.LstdFlags)
	}

	normalizer := nlu.NewNormalizer()

	seen := make(map[string]struct{})
	classes := make([]bayesian.Class, 0, len(records))
	for _, rec := range records {
		name := strings.TrimSpace(rec.Name)
		if name == "" || len(rec.Examples) == 0 {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		classes = append(classes, bayesian.Class(name))
	}
	if len(classes) < 2 {
		return nil, fmt.Errorf("training corpus needs at least 2 labeled intents, got %d", len(classes))
	}

	model := bayesian.NewClassifier(classes...)
	documents := 0
	for _, rec := range records {
		if _, ok := seen[rec.Name]; !ok {
			continue
		}
		for _, example := range rec.Examples {
			stems := normalizer.Process(example).Stems
			if len(stems) == 0 {
				continue
			}
			model.Learn(stems, bayesian.Class(rec.Name))
			documents++
		}
	}
	if documents == 0 {
		return nil, fmt.Errorf("training corpus has no usable examples")
	}

	logger.Printf("trained on %d documents across %d intents", documents, len(classes))

	return &Classifier{
		model:      model,
		classes:    classes,
		normalizer: normalizer,
		logger:     logger,
	}, nil
}

// NewClassifierFromDir trains from data files, degrading to the built-in
// seed corpus if the directory is missing or unusable. The classifier is
// always usable after this call.
func NewClassifierFromDir(dir string, logger *log.Logger) *Classifier {
	records, err := LoadRecords(dir)
	if err == nil {
		if c, cerr := NewClassifier(records, logger); cerr == nil {
			return c
		} else {
			err = cerr
		}
	}
	if logger != nil {
		logger.Printf("[WARN] training corpus unavailable (%v), using seed corpus", err)
	}
	c, err := NewClassifier(SeedRecords(), logger)
	if err != nil {
		// The seed corpus is a compile-time constant; this cannot happen
		// unless it is edited into an invalid state.
		panic(fmt.Sprintf("seed corpus invalid: %v", err))
	}
	return c
}

// LoadRecords reads every *.json training record from dir.
func LoadRecords(dir string) ([]Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read corpus file %s: %w", entry.Name(), err)
		}
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("parse corpus file %s: %w", entry.Name(), err)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no corpus files in %s", dir)
	}
	return records, nil
}

// Detect classifies the normalized input. Empty input and any model
// failure resolve to the fallback intent; Detect never returns an error
// to the caller. A top score at or below the confidence threshold also
// resolves to fallback, but keeps the score so callers can see how
// close the call was.
func (c *Classifier) Detect(input nlu.ProcessedInput, _ *store.Context) (result Intent) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Printf("[ERROR] classification panic: %v", r)
			result = Intent{Name: constant.IntentFallback, Confidence: 0}
		}
	}()

	if input.Normalized == "" || len(input.Stems) == 0 {
		return Intent{Name: constant.IntentFallback, Confidence: 0}
	}

	scores, best, _ := c.model.ProbScores(input.Stems)
	top := scores[best]
	if math.IsNaN(top) || math.IsInf(top, 0) {
		return Intent{Name: constant.IntentFallback, Confidence: 0}
	}

	if top <= constant.ConfidenceThreshold {
		return Intent{Name: constant.IntentFallback, Confidence: top}
	}
	return Intent{Name: string(c.classes[best]), Confidence: top}
}

// Classes returns the trained label set in training order.
func (c *Classifier) Classes() []string {
	names := make([]string, len(c.classes))
	for i, cl := range c.classes {
		names[i] = string(cl)
	}
	return names
}
