package entity

import (
	"log"
	"os"
	"strings"
	"time"

	"nailaide-be/internal/constant"
	"nailaide-be/pkg/catalog"
	"nailaide-be/pkg/intent"
	"nailaide-be/pkg/nlu"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Set maps an entity kind (service, date, time) to its extracted value.
// Missing keys mean the entity was not found.
type Set map[string]string

// Extractor pulls salon entities out of a processed message. Extraction
// is intent-scoped: only entity kinds relevant to the intent are
// attempted.
type Extractor struct {
	catalog *catalog.Catalog
	parser  *when.Parser
	clock   *when.Parser
	now     func() time.Time
	logger  *log.Logger
}

// NewExtractor builds an extractor over the given catalog. Two parsers
// are kept: the full one resolves the actual timestamp, while the
// clock-only one acts as the gate deciding whether the user explicitly
// named a time of day. A date alone must never fabricate a time.
func NewExtractor(cat *catalog.Catalog, logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.New(os.Stdout, "[ENTITY] ", log.LstdFlags)
	}

	parser := when.New(nil)
	parser.Add(en.All...)
	parser.Add(common.All...)

	clock := when.New(nil)
	clock.Add(
		en.Hour(rules.Override),
		en.HourMinute(rules.Override),
		en.CasualTime(rules.Override),
	)

	return &Extractor{
		catalog: cat,
		parser:  parser,
		clock:   clock,
		now:     time.Now,
		logger:  logger,
	}
}

// WithClock overrides the reference time used to resolve relative
// expressions like "tomorrow". Intended for tests.
func (e *Extractor) WithClock(now func() time.Time) *Extractor {
	e.now = now
	return e
}

// Find extracts the entities relevant to the detected intent.
func (e *Extractor) Find(input nlu.ProcessedInput, it intent.Intent) Set {
	entities := Set{}
	text := strings.ToLower(input.Original)
	if text == "" {
		return entities
	}

	switch it.Name {
	case constant.IntentBookAppointment, constant.IntentCheckAvail:
		e.addService(text, entities)
		e.addDateTime(text, entities)
	case constant.IntentServiceInquiry, constant.IntentPriceInquiry:
		e.addService(text, entities)
	case constant.IntentCancelAppt, constant.IntentRescheduleAppt:
		e.addDateTime(text, entities)
	}

	return entities
}

func (e *Extractor) addService(text string, entities Set) {
	if svc, ok := e.catalog.Match(text); ok {
		entities[constant.EntityService] = svc.Name
	}
}

// addDateTime parses the first natural-language date/time expression.
// The date is a calendar date with no timezone conversion; the time is
// only emitted when a clock-time rule matched explicitly.
func (e *Extractor) addDateTime(text string, entities Set) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Printf("[ERROR] date parsing panic: %v", r)
			delete(entities, constant.EntityDate)
			delete(entities, constant.EntityTime)
		}
	}()

	base := e.now()
	result, err := e.parser.Parse(text, base)
	if err != nil || result == nil {
		return
	}

	entities[constant.EntityDate] = result.Time.Format("2006-01-02")

	hourMatch, err := e.clock.Parse(text, base)
	if err == nil && hourMatch != nil {
		entities[constant.EntityTime] = result.Time.Format("15:04")
	}
}
