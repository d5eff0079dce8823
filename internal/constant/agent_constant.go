package constant

import "time"

// Intent labels. The classifier is trained on every label except
// IntentFallback and IntentError, which are derived states.
const (
	IntentGreeting        = "greeting"
	IntentBookAppointment = "book_appointment"
	IntentServiceInquiry  = "service_inquiry"
	IntentPriceInquiry    = "price_inquiry"
	IntentCheckAvail      = "check_availability"
	IntentCancelAppt      = "cancel_appointment"
	IntentRescheduleAppt  = "reschedule_appointment"
	IntentHoursInquiry    = "hours_inquiry"
	IntentLocationInquiry = "location_inquiry"
	IntentThanks          = "thanks"
	IntentGoodbye         = "goodbye"
	IntentGeneralQuestion = "general_question"
	IntentFallback        = "fallback"
	IntentError           = "error"
)

// Entity keys extracted from user messages.
const (
	EntityService = "service"
	EntityDate    = "date"
	EntityTime    = "time"
)

// Action types suggested to the UI layer.
const (
	ActionShowBookingForm    = "show_booking_form"
	ActionShowServiceDetails = "show_service_details"
	ActionShowServicesList   = "show_services_list"
	ActionShowAvailability   = "show_availability"
)

// ConfidenceThreshold is shared by the classifier fallback and the
// agent's AI-generation branch. Keep it in one place: the two checks
// are meant to agree.
const ConfidenceThreshold = 0.6

const (
	ContextTTL           = 30 * time.Minute
	ContextSweepInterval = 5 * time.Minute
)

// Topic for the in-process action hand-off.
const ActionTopicName = "chat.actions"

const (
	ApologyResponseV1 = "I'm sorry, I'm having trouble understanding right now. Can you try again?"

	NoTemplateResponseV1 = "I'm not sure how to respond to that."

	AssistantPersonaPromptV1 = `You are NailAide, a helpful assistant for a nail salon called Delane Nails.
The salon offers these services: %s.
Current conversation context: %s
User says: %s
Respond in a friendly, helpful way. Keep responses concise but informative.`
)

// SimulatedReplies are returned when no completion provider is reachable.
// The user must always get a plausible answer, never an error.
var SimulatedReplies = []string{
	"I'd be happy to help you with your nail care needs. Would you like to book an appointment?",
	"Our salon offers a wide range of services including manicures, pedicures, and nail art. How can I assist you today?",
	"The best way to maintain healthy nails is regular care and moisturizing cuticles. Would you like to book a maintenance appointment?",
	"Our most popular service is the Deluxe Gel Manicure, which lasts up to 2 weeks. Would you like to know more about it?",
	"I recommend coming in for a nail health consultation to determine the best services for you.",
}
