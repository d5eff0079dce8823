package nlg

import (
	"math/rand"
	"testing"

	"nailaide-be/internal/constant"
	"nailaide-be/pkg/store"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name     string
		template string
		entities map[string]string
		ctx      *store.Context
		want     string
	}{
		{
			name:     "entity substitution",
			template: "Great, booking your {service} for {date}!",
			entities: map[string]string{"service": "Gel Manicure", "date": "2026-03-05"},
			want:     "Great, booking your Gel Manicure for 2026-03-05!",
		},
		{
			name:     "missing entity degrades to omission",
			template: "Our {service} costs {price}",
			entities: map[string]string{"service": "Gel Manicure"},
			want:     "Our Gel Manicure costs ",
		},
		{
			name:     "context substitution",
			template: "Still interested in {context.preferredDate}?",
			ctx:      &store.Context{PreferredDate: "2026-03-06"},
			want:     "Still interested in 2026-03-06?",
		},
		{
			name:     "nil context strips context placeholders",
			template: "Welcome back {context.lastIntent}",
			want:     "Welcome back ",
		},
		{
			name:     "no placeholders is a no-op",
			template: "We're open 9am to 7pm.",
			want:     "We're open 9am to 7pm.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fill(tt.template, tt.entities, tt.ctx)

			if got != tt.want {
				t.Errorf("Fill() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	templates := Templates{
		"greeting":  {"Hello!"},
		"fallback":  {"Sorry, say again?"},
		"with_slot": {"Your {service} awaits."},
	}
	g := NewGenerator(templates, rand.New(rand.NewSource(1)))

	t.Run("known intent uses its bucket", func(t *testing.T) {
		got := g.Generate("greeting", nil, nil)

		if got.Text != "Hello!" {
			t.Errorf("Text = %q, want Hello!", got.Text)
		}
		if got.Intent != "greeting" {
			t.Errorf("Intent = %q, want greeting", got.Intent)
		}
	})

	t.Run("unknown intent falls back", func(t *testing.T) {
		got := g.Generate("price_inquiry", nil, nil)

		if got.Text != "Sorry, say again?" {
			t.Errorf("Text = %q, want fallback text", got.Text)
		}
		if got.Intent != constant.IntentFallback {
			t.Errorf("Intent = %q, want %q", got.Intent, constant.IntentFallback)
		}
	})

	t.Run("entities flow into the template", func(t *testing.T) {
		got := g.Generate("with_slot", map[string]string{"service": "Nail Art"}, nil)

		if got.Text != "Your Nail Art awaits." {
			t.Errorf("Text = %q, want filled template", got.Text)
		}
	})
}

func TestGenerateWithoutFallbackBucket(t *testing.T) {
	g := NewGenerator(Templates{}, rand.New(rand.NewSource(1)))

	got := g.Generate("anything", nil, nil)

	if got.Text != constant.NoTemplateResponseV1 {
		t.Errorf("Text = %q, want the fixed no-template reply", got.Text)
	}
	if got.Intent != constant.IntentFallback {
		t.Errorf("Intent = %q, want %q", got.Intent, constant.IntentFallback)
	}
}

func TestDefaultTemplatesHaveFallback(t *testing.T) {
	if len(DefaultTemplates()[constant.IntentFallback]) == 0 {
		t.Fatal("default templates must include a fallback bucket")
	}
}
