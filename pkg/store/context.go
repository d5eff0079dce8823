package store

import "time"

// Context is the short-lived per-user conversation memory. It is owned
// by the context repository: created on first interaction, merged on
// every turn, evicted after the TTL.
type Context struct {
	LastIntent    string            `json:"last_intent"`
	Entities      map[string]string `json:"entities"`
	LastMessage   string            `json:"last_message"`
	PreferredDate string            `json:"preferred_date,omitempty"`
	LastUpdated   time.Time         `json:"last_updated"`
}

// ContextUpdate is a partial context applied over the stored one.
// Zero-valued fields are left untouched; Entities replaces the stored
// map wholesale, so callers merge entity keys before building an update.
type ContextUpdate struct {
	LastIntent    string
	Entities      map[string]string
	LastMessage   string
	PreferredDate string
}

// Values exposes the scalar context fields for template substitution
// ({context.key} placeholders).
func (c *Context) Values() map[string]string {
	if c == nil {
		return map[string]string{}
	}
	v := map[string]string{
		"lastIntent":  c.LastIntent,
		"lastMessage": c.LastMessage,
	}
	if c.PreferredDate != "" {
		v["preferredDate"] = c.PreferredDate
	}
	return v
}

// Entity returns the remembered entity value for key, or "".
func (c *Context) Entity(key string) string {
	if c == nil || c.Entities == nil {
		return ""
	}
	return c.Entities[key]
}

// Stats describes the live contents of the context store.
type Stats struct {
	TotalContexts int       `json:"total_contexts"`
	OldestContext time.Time `json:"oldest_context"`
}
