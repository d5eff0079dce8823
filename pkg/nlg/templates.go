package nlg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nailaide-be/internal/constant"
)

// Templates maps an intent name to its bucket of candidate response
// strings. Buckets may contain {entity} and {context.key} placeholders.
type Templates map[string][]string

type templateFile struct {
	Responses []string `json:"responses"`
}

// LoadTemplates reads every *.json bucket from dir; the bucket key is
// the file name without extension. A fallback bucket is required for
// the generator to degrade gracefully, so its absence is an error.
func LoadTemplates(dir string) (Templates, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read templates dir: %w", err)
	}

	templates := Templates{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read template file %s: %w", entry.Name(), err)
		}
		var file templateFile
		if err := json.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parse template file %s: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		templates[name] = file.Responses
	}

	if len(templates) == 0 {
		return nil, fmt.Errorf("no template files in %s", dir)
	}
	if len(templates[constant.IntentFallback]) == 0 {
		return nil, fmt.Errorf("templates in %s are missing a fallback bucket", dir)
	}
	return templates, nil
}

// DefaultTemplates is the built-in two-bucket set used when the data
// directory cannot be loaded.
func DefaultTemplates() Templates {
	return Templates{
		constant.IntentGreeting: {
			"Hello! I'm NailAide, how can I help you today?",
			"Hi there! Welcome to Delane Nails. What can I assist you with?",
			"Welcome! How may I help you with your nail care needs today?",
		},
		constant.IntentFallback: {
			"I'm not sure I understand. Could you rephrase that?",
			"I didn't quite catch that. Can you try again?",
			"I'm still learning. Could you please rephrase your question?",
		},
	}
}
