package types

import (
	ierr "github.com/atlasdoors/backoffice/internal/errors"
)

// Language selects the label dictionary and the text direction used
// when rendering documents.
type Language string

const (
	LanguageFrench  Language = "fr"
	LanguageHebrew  Language = "he"
	LanguageEnglish Language = "en"

	// LanguageDefault is the fallback language for missing labels
	LanguageDefault = LanguageFrench
)

func (l Language) Validate() error {
	switch l {
	case LanguageFrench, LanguageHebrew, LanguageEnglish:
		return nil
	default:
		return ierr.NewError("invalid language").
			WithHintf("Language must be one of: %s, %s, %s", LanguageFrench, LanguageHebrew, LanguageEnglish).
			Mark(ierr.ErrValidation)
	}
}

// IsRTL reports whether the language lays out right-to-left.
func (l Language) IsRTL() bool {
	return l == LanguageHebrew
}

func (l Language) String() string {
	return string(l)
}
