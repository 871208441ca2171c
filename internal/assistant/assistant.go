// Package assistant is the trip chat's canned-response engine. It is a
// keyword matcher over a fixed reply table, not natural language
// understanding; the "AI" in "AI Travel Assistant" is marketing.
package assistant

import (
	"math/rand"
	"strings"
)

// SenderID and SenderName identify assistant messages in a transcript.
const (
	SenderID   = "ai-assistant"
	SenderName = "AI Travel Assistant"
)

// topic pairs a keyword group with its reply. Groups are checked in
// order; the first hit wins.
type topic struct {
	keywords []string
	reply    string
}

var topics = []topic{
	{
		keywords: []string{"price", "cost", "budget"},
		reply:    "Great question! Based on your destination and duration, I'd recommend setting a budget of $800-1500 per person. This includes accommodation, food, and activities.",
	},
	{
		keywords: []string{"transport", "flight", "bus"},
		reply:    "I can help you find the best transport options! For your group size, I'd recommend booking in advance. Would you prefer budget or comfort travel?",
	},
	{
		keywords: []string{"accommodation", "hotel", "stay"},
		reply:    "For accommodations, I recommend checking out guesthouses and hostels near the main attractions. They're usually 50-100% cheaper than hotels and great for meeting other travelers!",
	},
	{
		keywords: []string{"activity", "what to do", "adventure"},
		reply:    "This destination has amazing activities! I'd recommend: local guided tours, water sports, cultural experiences, and food tours. What interests you most?",
	},
	{
		keywords: []string{"safety", "danger", "safe"},
		reply:    "Your safety is my priority! Always travel with a buddy, keep emergency contacts handy, and stay aware of your surroundings. I'm here 24/7 if you need help!",
	},
	{
		keywords: []string{"food", "eat", "restaurant"},
		reply:    "The local cuisine is incredible! I recommend street food for authentic flavors. Try the local markets for lunch - it's affordable and delicious!",
	},
	{
		keywords: []string{"when", "date", "season"},
		reply:    "Timing is important! I'd recommend checking the weather patterns and local events. The shoulder seasons usually offer the best balance of weather and fewer crowds.",
	},
	{
		keywords: []string{"group", "people", "team"},
		reply:    "Group travel is wonderful! My advice: establish communication channels early, discuss budgets upfront, and plan flexibility for different preferences.",
	},
}

// generic is the fallback pool used when no keyword group matches.
var generic = []string{
	"That sounds amazing! Have you thought about what activities you'd like to do there?",
	"I'd love to help you plan this trip! What's your budget range?",
	"Great destination choice! When are you thinking of traveling?",
	"How many people are you planning to travel with?",
	"That's perfect for a group trip! What accommodations are you looking for?",
	"Adventure travel is the best! Have you considered travel insurance?",
	"The local food there is incredible! Do you have any dietary restrictions I should know about?",
	"I can help arrange transport options for your group. What mode of transport do you prefer?",
	"That time of year has great weather! Have you checked the visa requirements?",
	"This destination is perfect for making new friends! What's your travel style - adventure, relaxation, or cultural?",
	"Safety first! I'll help you plan emergency contacts and travel tips.",
	"Your group seems diverse! That's the best part of group travel. Any specific interests in common?",
	"Budget-friendly options are my specialty! Let me help you save on this trip.",
	"The local culture there is fascinating! Want some tips on respecting local customs?",
	"I've helped hundreds of travelers plan similar trips. Any specific concerns?",
}

// Engine picks canned replies. The zero value is not usable; call New.
type Engine struct {
	intn func(n int) int
}

// New returns an Engine using the package-level random source for the
// no-match fallback.
func New() *Engine {
	return &Engine{intn: rand.Intn}
}

// NewWithRand returns an Engine with an injected random index function,
// for deterministic tests.
func NewWithRand(intn func(n int) int) *Engine {
	return &Engine{intn: intn}
}

// Respond returns the reply for a user message: the first keyword group
// that matches wins; otherwise a uniformly random generic prompt.
// Matching is case-insensitive substring membership.
func (e *Engine) Respond(userMessage string) string {
	lower := strings.ToLower(userMessage)
	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				return t.reply
			}
		}
	}
	return generic[e.intn(len(generic))]
}

// GenericReplies returns a copy of the fallback pool.
func GenericReplies() []string {
	out := make([]string, len(generic))
	copy(out, generic)
	return out
}
