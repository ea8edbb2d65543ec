package translation

import (
	"github.com/atlasdoors/backoffice/internal/types"
)

// Labels maps a label key (e.g. quoteTitle, colTotal) to its display
// string in one language.
type Labels map[string]string

// Dictionary holds the label set for every supported language. It is
// persisted as a single document; languages are replaced wholesale,
// never deleted.
type Dictionary map[types.Language]Labels

// Clone returns a deep copy so callers can mutate the result without
// touching cached or stored state.
func (d Dictionary) Clone() Dictionary {
	out := make(Dictionary, len(d))
	for lang, labels := range d {
		copied := make(Labels, len(labels))
		for k, v := range labels {
			copied[k] = v
		}
		out[lang] = copied
	}
	return out
}

// Resolve returns the labels for lang with the lookup policy applied
// per key: stored value, else built-in default for that language, else
// the French built-in default. A key never resolves to an empty string
// when any default exists for it.
func (d Dictionary) Resolve(lang types.Language) Labels {
	defaults := DefaultDictionary()

	out := make(Labels)
	for k, v := range defaults[types.LanguageDefault] {
		out[k] = v
	}
	for k, v := range defaults[lang] {
		if v != "" {
			out[k] = v
		}
	}
	for k, v := range d[lang] {
		if v != "" {
			out[k] = v
		}
	}
	return out
}
