package nlu

import (
	"reflect"
	"testing"
)

func TestProcess(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name           string
		raw            string
		wantNormalized string
		wantStems      []string
	}{
		{
			name:           "empty input",
			raw:            "",
			wantNormalized: "",
			wantStems:      []string{},
		},
		{
			name:           "whitespace only",
			raw:            "   \t  ",
			wantNormalized: "",
			wantStems:      []string{},
		},
		{
			name:           "greeting with stopword",
			raw:            "Hello there!",
			wantNormalized: "hello",
			wantStems:      []string{"hello"},
		},
		{
			name:           "punctuation and case",
			raw:            "I want to BOOK an appointment!!!",
			wantNormalized: "want book appointment",
			wantStems:      []string{"want", "book", "appoint"},
		},
		{
			name:           "numbers survive tokenization",
			raw:            "book me at 2pm",
			wantNormalized: "book 2pm",
			wantStems:      []string{"book", "2pm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Process(tt.raw)

			if got.Normalized != tt.wantNormalized {
				t.Errorf("Normalized = %q, want %q", got.Normalized, tt.wantNormalized)
			}
			if !reflect.DeepEqual(got.Stems, tt.wantStems) {
				t.Errorf("Stems = %v, want %v", got.Stems, tt.wantStems)
			}
		})
	}
}

func TestProcessDeterministic(t *testing.T) {
	n := NewNormalizer()
	raw := "Can I book a Gel Manicure for tomorrow at 2pm?"

	first := n.Process(raw)
	for i := 0; i < 10; i++ {
		again := n.Process(raw)
		if again.Normalized != first.Normalized {
			t.Fatalf("run %d: Normalized = %q, want %q", i, again.Normalized, first.Normalized)
		}
		if !reflect.DeepEqual(again.Stems, first.Stems) {
			t.Fatalf("run %d: Stems = %v, want %v", i, again.Stems, first.Stems)
		}
	}
}

func TestStemKeepsUnstemmableTokens(t *testing.T) {
	if got := Stem("2pm"); got != "2pm" {
		t.Errorf("Stem(2pm) = %q, want 2pm", got)
	}
}
