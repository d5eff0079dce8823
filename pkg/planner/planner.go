package planner

import (
	"nailaide-be/internal/constant"
	"nailaide-be/pkg/catalog"
	"nailaide-be/pkg/store"
)

// Action is a suggested UI step derived from the conversation turn.
type Action struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Planner maps (intent, entities, context) to suggested actions. It is
// a pure function over its inputs; only the catalog is consulted.
type Planner struct {
	catalog *catalog.Catalog
}

func NewPlanner(cat *catalog.Catalog) *Planner {
	return &Planner{catalog: cat}
}

// Plan derives the action list for a turn. Intents without a UI
// follow-up produce an empty list, never nil actions with partial data.
func (p *Planner) Plan(intentName string, entities map[string]string, ctx *store.Context) []Action {
	actions := []Action{}

	switch intentName {
	case constant.IntentBookAppointment:
		suggestedDate := entities[constant.EntityDate]
		if suggestedDate == "" {
			suggestedDate = ctx.Values()["preferredDate"]
		}
		actions = append(actions, Action{
			Type: constant.ActionShowBookingForm,
			Data: map[string]any{
				"prefilledService": entities[constant.EntityService],
				"suggestedDate":    suggestedDate,
			},
		})

	case constant.IntentServiceInquiry:
		if name := entities[constant.EntityService]; name != "" {
			if svc, ok := p.catalog.Resolve(name); ok {
				actions = append(actions, Action{
					Type: constant.ActionShowServiceDetails,
					Data: svc,
				})
				break
			}
		}
		actions = append(actions, Action{
			Type: constant.ActionShowServicesList,
			Data: nil,
		})

	case constant.IntentCheckAvail:
		actions = append(actions, Action{
			Type: constant.ActionShowAvailability,
			Data: map[string]any{
				"date":    entities[constant.EntityDate],
				"service": entities[constant.EntityService],
			},
		})
	}

	return actions
}
