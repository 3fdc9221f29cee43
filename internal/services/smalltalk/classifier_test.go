package smalltalk

import "testing"

func TestReplyGreetings(t *testing.T) {
	tests := []string{
		"hi",
		"Hey",
		"hello!",
		"namaste",
		"good morning",
		"hey there team",
		"HII",
	}

	for _, message := range tests {
		reply, ok := Reply(message)
		if !ok {
			t.Errorf("Reply(%q) expected small talk", message)
			continue
		}
		if reply != greetingReply {
			t.Errorf("Reply(%q) = %q, want greeting reply", message, reply)
		}
	}
}

func TestReplyPatternFamilies(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"how are you doing today", howAreYouReply},
		{"how r u", howAreYouReply},
		{"howdy partner", howAreYouReply},
		{"thanks a lot", gratitudeReply},
		{"Thank you so much!", gratitudeReply},
		{"appreciate it", gratitudeReply},
		{"ok bye", farewellReply},
		{"see you later", farewellReply},
		{"talk soon", farewellReply},
	}

	for _, tt := range tests {
		reply, ok := Reply(tt.message)
		if !ok {
			t.Errorf("Reply(%q) expected small talk", tt.message)
			continue
		}
		if reply != tt.want {
			t.Errorf("Reply(%q) = %q, want %q", tt.message, reply, tt.want)
		}
	}
}

func TestReplyShortGreeting(t *testing.T) {
	reply, ok := Reply("h!i")
	if !ok || reply != greetingReply {
		t.Fatalf("Reply(%q) = %q, %v; want greeting", "h!i", reply, ok)
	}
}

func TestReplyRealQuestionsPassThrough(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"what programs does Gradus offer?",
		"tell me about placement support",
		"maybe I should enroll in the finance track",
		"how does the mentorship model work",
	}

	for _, message := range tests {
		if reply, ok := Reply(message); ok {
			t.Errorf("Reply(%q) = %q, expected no small talk", message, reply)
		}
	}
}
