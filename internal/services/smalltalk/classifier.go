package smalltalk

import (
	"regexp"
	"strings"
	"unicode"
)

// Canned replies for conversational filler. These short-circuit the whole
// pipeline: no retrieval and no provider call happens for small talk.
const (
	greetingReply  = "Hi! I'm doing great and ready to help you explore Gradus programs, mentors, and placements. What would you like to know?"
	howAreYouReply = "Thanks for asking! I'm feeling energized and here to support you with anything about Gradus. How can I help you today?"
	gratitudeReply = "You're very welcome! If there's anything else you need about Gradus, just let me know."
	farewellReply  = "Thanks for stopping by! Whenever you need Gradus info again, I'll be right here."
)

// greetingVariants includes common misspellings seen in real traffic
var greetingVariants = map[string]struct{}{
	"hi": {}, "hey": {}, "hello": {}, "hola": {}, "namaste": {},
	"helo": {}, "heloo": {}, "hii": {}, "hiii": {}, "hiya": {},
	"hlw": {}, "wassup": {}, "sup": {},
	"good morning": {}, "good afternoon": {}, "good evening": {}, "hey there": {},
}

var (
	howAreYouPattern = regexp.MustCompile(`(?i)(how are (you|u)|how's it going|how are ya|how're you|how ru|how r u|howdy)`)
	gratitudePattern = regexp.MustCompile(`(?i)(thank you|thanks|much appreciated|appreciate it)`)
	farewellPattern  = regexp.MustCompile(`(?i)\b(bye|goodbye|see you|see ya|catch you later|cya|talk soon)\b`)
)

// Reply returns the canned response for a small-talk message. The second
// return value is false when the message is not small talk.
func Reply(message string) (string, bool) {
	raw := strings.TrimSpace(message)
	if raw == "" {
		return "", false
	}

	if isGreeting(raw) {
		return greetingReply, true
	}
	if howAreYouPattern.MatchString(raw) {
		return howAreYouReply, true
	}
	if gratitudePattern.MatchString(raw) {
		return gratitudeReply, true
	}
	if farewellPattern.MatchString(raw) {
		return farewellReply, true
	}

	// Very short alphabetic messages are greetings more often than queries
	simplified := lettersOnly(raw)
	if simplified != "" && len(simplified) <= 4 {
		if _, ok := greetingVariants[simplified]; ok {
			return greetingReply, true
		}
	}

	return "", false
}

// isGreeting matches the normalized message exactly or any of its words
func isGreeting(raw string) bool {
	normalized := normalizeLetters(raw)
	if normalized == "" {
		return false
	}
	if _, ok := greetingVariants[normalized]; ok {
		return true
	}
	for _, word := range strings.Fields(normalized) {
		if _, ok := greetingVariants[word]; ok {
			return true
		}
	}
	return false
}

// normalizeLetters keeps letters and spaces, lowercased and collapsed
func normalizeLetters(text string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		if unicode.IsSpace(r) {
			return ' '
		}
		return ' '
	}, text)
	return strings.Join(strings.Fields(mapped), " ")
}

// lettersOnly strips everything but letters
func lettersOnly(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}
