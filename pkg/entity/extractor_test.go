package entity

import (
	"io"
	"log"
	"testing"
	"time"

	"nailaide-be/internal/constant"
	"nailaide-be/pkg/catalog"
	"nailaide-be/pkg/intent"
	"nailaide-be/pkg/nlu"
)

func newTestExtractor() *Extractor {
	e := NewExtractor(catalog.Default(), log.New(io.Discard, "", 0))
	// Pin "today" to a Wednesday so relative dates are stable.
	base := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)
	return e.WithClock(func() time.Time { return base })
}

func TestFindServiceEntity(t *testing.T) {
	e := newTestExtractor()
	n := nlu.NewNormalizer()

	tests := []struct {
		name        string
		message     string
		intentName  string
		wantService string
	}{
		{
			name:        "exact service name",
			message:     "I want to book a gel manicure",
			intentName:  constant.IntentBookAppointment,
			wantService: "Gel Manicure",
		},
		{
			name:        "keyword resolves to canonical name",
			message:     "how much are acrylics",
			intentName:  constant.IntentPriceInquiry,
			wantService: "Acrylic Full Set",
		},
		{
			name:        "plain manicure does not match gel entry",
			message:     "book me a manicure",
			intentName:  constant.IntentBookAppointment,
			wantService: "Classic Manicure",
		},
		{
			name:        "no service mentioned",
			message:     "book me in please",
			intentName:  constant.IntentBookAppointment,
			wantService: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Find(n.Process(tt.message), intent.Intent{Name: tt.intentName, Confidence: 0.9})

			if got[constant.EntityService] != tt.wantService {
				t.Errorf("service = %q, want %q", got[constant.EntityService], tt.wantService)
			}
		})
	}
}

func TestFindDateAndTime(t *testing.T) {
	e := newTestExtractor()
	n := nlu.NewNormalizer()

	t.Run("tomorrow resolves to next calendar day", func(t *testing.T) {
		got := e.Find(n.Process("book a pedicure for tomorrow"), intent.Intent{Name: constant.IntentBookAppointment, Confidence: 0.9})

		if got[constant.EntityDate] != "2026-03-05" {
			t.Errorf("date = %q, want 2026-03-05", got[constant.EntityDate])
		}
		if _, ok := got[constant.EntityTime]; ok {
			t.Errorf("time = %q, want absent when no clock time was given", got[constant.EntityTime])
		}
	})

	t.Run("explicit clock time is emitted", func(t *testing.T) {
		got := e.Find(n.Process("any openings tomorrow at 2pm"), intent.Intent{Name: constant.IntentCheckAvail, Confidence: 0.9})

		if got[constant.EntityDate] != "2026-03-05" {
			t.Errorf("date = %q, want 2026-03-05", got[constant.EntityDate])
		}
		if got[constant.EntityTime] != "14:00" {
			t.Errorf("time = %q, want 14:00", got[constant.EntityTime])
		}
	})

	t.Run("no date expression yields no date", func(t *testing.T) {
		got := e.Find(n.Process("cancel my appointment"), intent.Intent{Name: constant.IntentCancelAppt, Confidence: 0.9})

		if _, ok := got[constant.EntityDate]; ok {
			t.Errorf("date = %q, want absent", got[constant.EntityDate])
		}
	})
}

func TestFindIsIntentScoped(t *testing.T) {
	e := newTestExtractor()
	n := nlu.NewNormalizer()

	// A greeting never triggers extraction, even if the text happens to
	// mention a service.
	got := e.Find(n.Process("hello, gel manicure tomorrow"), intent.Intent{Name: constant.IntentGreeting, Confidence: 0.9})

	if len(got) != 0 {
		t.Errorf("entities = %v, want empty for greeting intent", got)
	}
}
