package estimate

import "fmt"

// Phrases holds the localized text used by the estimators. Range and
// single formats take already-formatted numbers.
type Phrases struct {
	DifficultyDefault string
	DifficultyRange   string // min, max
	DifficultySingle  string // value
	FrequencyDefault  string
	FrequencyRange    string // min, max
	FrequencySingle   string // value
}

// Chinese returns the default phrase book.
func Chinese() Phrases {
	return Phrases{
		DifficultyDefault: "当前能力层级+0.5~1级",
		DifficultyRange:   "当前能力层级+%s~%s级",
		DifficultySingle:  "当前能力层级+%s级",
		FrequencyDefault:  "每日1次，每次4-8分钟",
		FrequencyRange:    "每日1次，每次%d-%d分钟",
		FrequencySingle:   "每日1次，每次%d分钟",
	}
}

// English returns the English phrase book.
func English() Phrases {
	return Phrases{
		DifficultyDefault: "current ability tier +0.5~1 level",
		DifficultyRange:   "current ability tier +%s~%s level",
		DifficultySingle:  "current ability tier +%s level",
		FrequencyDefault:  "once daily, 4-8 minutes per session",
		FrequencyRange:    "once daily, %d-%d minutes",
		FrequencySingle:   "once daily, %d minutes",
	}
}

// ForLocale returns the phrase book for locale. An empty locale means
// Chinese; anything other than the zh and en variants is an error, which
// config.Validate reports at startup.
func ForLocale(locale string) (Phrases, error) {
	switch locale {
	case "", "zh", "zh-CN":
		return Chinese(), nil
	case "en", "en-US":
		return English(), nil
	default:
		return Phrases{}, fmt.Errorf("unsupported locale %q", locale)
	}
}
