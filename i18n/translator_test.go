package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_type", nil); msg != "invalid type" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_type", nil); msg == "invalid type" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBackToCode(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("got %q", msg)
	}
}

func TestTranslator_EmbedsData(t *testing.T) {
	got := T("invalid_type", map[string]string{"expected": "number"})
	if got != "invalid type (expected: number)" {
		t.Fatalf("got %q", got)
	}
	got = T("invalid_format", map[string]string{"format": "uuid", "ignored": "x"})
	if got != "invalid format (format: uuid)" {
		t.Fatalf("got %q", got)
	}
}

type fixed string

func (f fixed) Message(string, map[string]string) string { return string(f) }

func TestTranslator_Custom(t *testing.T) {
	SetTranslator(fixed("nope"))
	defer SetTranslator(nil)
	if msg := T("invalid_type", nil); msg != "nope" {
		t.Fatalf("got %q", msg)
	}
}
