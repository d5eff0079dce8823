package intent

import "nailaide-be/internal/constant"

// SeedRecords is the built-in minimal corpus used when the training
// data directory cannot be loaded. It keeps the system usable in
// degraded mode; the data files carry richer examples.
func SeedRecords() []Record {
	return []Record{
		{Name: constant.IntentGreeting, Examples: []string{
			"hi", "hello", "hey", "hello there", "good morning", "good afternoon",
		}},
		{Name: constant.IntentBookAppointment, Examples: []string{
			"book appointment", "schedule appointment", "make appointment",
			"i want to book a gel manicure", "can i book a pedicure for tomorrow",
			"i need an appointment", "book me in",
		}},
		{Name: constant.IntentServiceInquiry, Examples: []string{
			"services", "what services do you offer", "nail services",
			"do you offer acrylics", "tell me about your services",
		}},
		{Name: constant.IntentPriceInquiry, Examples: []string{
			"prices", "how much", "cost", "how much does it cost",
			"what are your prices", "price list",
		}},
		{Name: constant.IntentCheckAvail, Examples: []string{
			"availability", "do you have openings", "any free slots tomorrow",
			"are you available on friday", "check availability",
		}},
		{Name: constant.IntentCancelAppt, Examples: []string{
			"cancel", "cancel my appointment", "i need to cancel",
		}},
		{Name: constant.IntentRescheduleAppt, Examples: []string{
			"reschedule", "reschedule my appointment", "move my appointment",
			"change my appointment time",
		}},
		{Name: constant.IntentHoursInquiry, Examples: []string{
			"hours", "when are you open", "opening hours",
			"what time do you close", "are you open today",
		}},
		{Name: constant.IntentLocationInquiry, Examples: []string{
			"location", "where are you", "address",
			"where are you located", "how do i get there",
		}},
		{Name: constant.IntentThanks, Examples: []string{
			"thank you", "thanks", "thanks a lot", "appreciate it",
		}},
		{Name: constant.IntentGoodbye, Examples: []string{
			"bye", "goodbye", "see you later", "have a nice day",
		}},
		{Name: constant.IntentGeneralQuestion, Examples: []string{
			"what do you recommend for weak nails",
			"how long does gel polish last",
			"is gel bad for my nails",
			"how should i care for my cuticles",
		}},
	}
}
