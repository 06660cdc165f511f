package i18n

// Translator retrieves localized messages for DecodeError codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "missing_field":
			return "必須フィールドが不足しています"
		case "null_field":
			return "必須フィールドがnullです"
		case "invalid_type":
			if data["expected"] != "" && data["got"] != "" {
				return data["expected"] + "が必要ですが" + data["got"] + "でした"
			}
			return "型が不正です"
		case "validation_failure":
			return "検証エラー"
		case "invalid_format":
			return "形式が不正です"
		case "parse_error":
			return "解析エラー"
		case "overflow":
			return "数値が表現範囲を超えています"
		}
	default: // "en"
		switch code {
		case "missing_field":
			return "required field missing"
		case "null_field":
			return "required field is null"
		case "invalid_type":
			if data["expected"] != "" && data["got"] != "" {
				return "expected " + data["expected"] + ", got " + data["got"]
			}
			return "invalid type"
		case "validation_failure":
			return "validation failed"
		case "invalid_format":
			return "invalid format"
		case "parse_error":
			return "parse error"
		case "overflow":
			return "number out of range"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
