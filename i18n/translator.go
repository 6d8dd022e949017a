package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized default messages for failure codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "format").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			msg = "型が不正です"
		case "invalid_format":
			msg = "形式が不正です"
		case "refinement":
			msg = "制約を満たしていません"
		case "union_no_match":
			msg = "いずれの候補にも一致しません"
		case "parse_error":
			msg = "解析エラー"
		case "duplicate_key":
			msg = "キーが重複しています"
		case "custom":
			msg = "不正な値です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			msg = "invalid type"
		case "invalid_format":
			msg = "invalid format"
		case "refinement":
			msg = "constraint not satisfied"
		case "union_no_match":
			msg = "no union member matched"
		case "parse_error":
			msg = "parse error"
		case "duplicate_key":
			msg = "duplicate key"
		case "custom":
			msg = "invalid value"
		}
	}
	if msg == "" {
		return code
	}
	if len(data) == 0 {
		return msg
	}
	// e.g. "invalid type (expected: number)"
	keys := []string{"expected", "format", "rule"}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if v, ok := data[k]; ok && v != "" {
			parts = append(parts, k+": "+v)
		}
	}
	if len(parts) == 0 {
		return msg
	}
	return msg + " (" + strings.Join(parts, ", ") + ")"
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
