package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMatch(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		text     string
		wantName string
		wantOk   bool
	}{
		{"full name", "i'd like a gel manicure please", "Gel Manicure", true},
		{"keyword", "do you do shellac", "Gel Manicure", true},
		{"specific wins over generic", "book a spa pedicure", "Spa Pedicure", true},
		{"generic pedicure", "book a pedicure", "Classic Pedicure", true},
		{"plural keyword", "how much are acrylics", "Acrylic Full Set", true},
		{"no service", "when are you open", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Match(tt.text)

			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	c := Default()

	if svc, ok := c.Resolve("gel manicure"); !ok || svc.Price != 45 {
		t.Errorf("Resolve(gel manicure) = %+v, %v; want the $45 entry", svc, ok)
	}
	if _, ok := c.Resolve("Unicorn Wrap"); ok {
		t.Error("Resolve(Unicorn Wrap) = ok, want miss")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "services.json")
	payload := `{"services":[{"name":"Test Gloss","keywords":["gloss"],"price":20,"duration":15,"description":"test"}]}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := c.Names(); len(got) != 1 || got[0] != "Test Gloss" {
		t.Errorf("Names() = %v, want [Test Gloss]", got)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load(missing) = nil error, want failure")
	}
}
