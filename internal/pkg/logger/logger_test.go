package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":    DebugLevel,
		" WARN ":   WarnLevel,
		"error":    ErrorLevel,
		"disabled": DisabledLevel,
		"verbose":  InfoLevel,
		"":         InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfigureWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	Debug().Msg("hidden")
	WithComponent("menu").Info().Str("studentId", "S1").Msg("Student added")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected exactly one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["component"] != "menu" || entry["studentId"] != "S1" || entry["message"] != "Student added" {
		t.Fatalf("unexpected entry %v", entry)
	}
}
