package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Service is one entry of the salon's service list.
type Service struct {
	Name        string   `json:"name"`
	Keywords    []string `json:"keywords"`
	Price       float64  `json:"price"`
	Duration    int      `json:"duration"` // minutes
	Description string   `json:"description"`
}

// Catalog is the read-only service list consumed by entity extraction,
// prompt building and action planning. Entry order matters: Match
// returns the first entry whose name or keyword appears in the text,
// so specific services must be listed before generic ones.
type Catalog struct {
	services []Service
}

type catalogFile struct {
	Services []Service `json:"services"`
}

// Load reads a catalog from a JSON file ({"services": [...]}).
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Services) == 0 {
		return nil, fmt.Errorf("catalog %s has no services", path)
	}
	return &Catalog{services: file.Services}, nil
}

// Default returns the built-in catalog used when no data file is
// available. Multi-word services come first so that "gel manicure"
// never resolves to the plain manicure entry.
func Default() *Catalog {
	return &Catalog{services: []Service{
		{
			Name:        "Gel Manicure",
			Keywords:    []string{"gel", "gel polish", "shellac"},
			Price:       45,
			Duration:    60,
			Description: "Long-lasting gel polish manicure, cured under UV light.",
		},
		{
			Name:        "Acrylic Full Set",
			Keywords:    []string{"acrylic", "acrylics", "full set", "extensions"},
			Price:       65,
			Duration:    90,
			Description: "Full set of sculpted acrylic nail extensions.",
		},
		{
			Name:        "Spa Pedicure",
			Keywords:    []string{"spa pedicure", "deluxe pedicure"},
			Price:       55,
			Duration:    75,
			Description: "Pedicure with exfoliating scrub, mask and extended massage.",
		},
		{
			Name:        "Classic Manicure",
			Keywords:    []string{"manicure", "mani", "basic manicure"},
			Price:       25,
			Duration:    30,
			Description: "Nail shaping, cuticle care and regular polish.",
		},
		{
			Name:        "Classic Pedicure",
			Keywords:    []string{"pedicure", "pedi"},
			Price:       35,
			Duration:    45,
			Description: "Foot soak, nail shaping and regular polish.",
		},
		{
			Name:        "Nail Art",
			Keywords:    []string{"nail art", "design", "nail design", "art"},
			Price:       15,
			Duration:    30,
			Description: "Custom nail art, priced per design complexity.",
		},
		{
			Name:        "Polish Change",
			Keywords:    []string{"polish change", "color change"},
			Price:       15,
			Duration:    15,
			Description: "Quick removal and fresh coat of regular polish.",
		},
	}}
}

// Services returns the catalog entries in priority order.
func (c *Catalog) Services() []Service {
	return c.services
}

// Names returns the canonical service names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.services))
	for i, s := range c.services {
		names[i] = s.Name
	}
	return names
}

// Match finds the first service whose name or keyword appears in the
// lowercased text. Name is checked before keywords for each entry.
func (c *Catalog) Match(text string) (Service, bool) {
	lowered := strings.ToLower(text)
	for _, s := range c.services {
		if strings.Contains(lowered, strings.ToLower(s.Name)) {
			return s, true
		}
		for _, kw := range s.Keywords {
			if strings.Contains(lowered, strings.ToLower(kw)) {
				return s, true
			}
		}
	}
	return Service{}, false
}

// Resolve looks up a service by canonical name, case-insensitively.
func (c *Catalog) Resolve(name string) (Service, bool) {
	for _, s := range c.services {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Service{}, false
}
