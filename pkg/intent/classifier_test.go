package intent

import (
	"io"
	"log"
	"testing"

	"nailaide-be/internal/constant"
	"nailaide-be/pkg/nlu"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(SeedRecords(), log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("NewClassifier: %v", err)
	}
	return c
}

func TestDetect(t *testing.T) {
	c := newTestClassifier(t)
	n := nlu.NewNormalizer()

	tests := []struct {
		name       string
		message    string
		wantIntent string
	}{
		{"greeting", "hello there", constant.IntentGreeting},
		{"booking", "i want to book a gel manicure", constant.IntentBookAppointment},
		{"thanks", "thanks a lot", constant.IntentThanks},
		{"goodbye", "goodbye", constant.IntentGoodbye},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Detect(n.Process(tt.message), nil)

			if got.Name != tt.wantIntent {
				t.Errorf("Detect(%q).Name = %q, want %q", tt.message, got.Name, tt.wantIntent)
			}
			if got.Confidence <= constant.ConfidenceThreshold {
				t.Errorf("Detect(%q).Confidence = %v, want > %v", tt.message, got.Confidence, constant.ConfidenceThreshold)
			}
		})
	}
}

func TestDetectEmptyInput(t *testing.T) {
	c := newTestClassifier(t)
	n := nlu.NewNormalizer()

	got := c.Detect(n.Process(""), nil)

	if got.Name != constant.IntentFallback {
		t.Errorf("Name = %q, want %q", got.Name, constant.IntentFallback)
	}
	if got.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", got.Confidence)
	}
}

func TestDetectNonsenseFallsBack(t *testing.T) {
	c := newTestClassifier(t)
	n := nlu.NewNormalizer()

	// Tokens the model has never seen spread probability mass evenly,
	// so no class can clear the threshold.
	got := c.Detect(n.Process("xyzzy quux blorp"), nil)

	if got.Name != constant.IntentFallback {
		t.Errorf("Name = %q, want %q", got.Name, constant.IntentFallback)
	}
	if got.Confidence > constant.ConfidenceThreshold {
		t.Errorf("Confidence = %v, want <= %v", got.Confidence, constant.ConfidenceThreshold)
	}
}

func TestNewClassifierRejectsTinyCorpus(t *testing.T) {
	_, err := NewClassifier([]Record{
		{Name: "only_one", Examples: []string{"hello"}},
	}, log.New(io.Discard, "", 0))

	if err == nil {
		t.Fatal("expected error for single-class corpus, got nil")
	}
}

func TestClassesMatchesSeed(t *testing.T) {
	c := newTestClassifier(t)

	if got, want := len(c.Classes()), len(SeedRecords()); got != want {
		t.Errorf("len(Classes()) = %d, want %d", got, want)
	}
}
