package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atlasdoors/backoffice/internal/types"
)

func TestResolveStoredOverride(t *testing.T) {
	dict := Dictionary{
		types.LanguageHebrew: Labels{KeyInvoiceTitle: "חשבונית מס"},
	}

	labels := dict.Resolve(types.LanguageHebrew)
	assert.Equal(t, "חשבונית מס", labels[KeyInvoiceTitle])
	// Keys without a stored value fall back to the Hebrew defaults.
	assert.Equal(t, DefaultDictionary()[types.LanguageHebrew][KeyColTotal], labels[KeyColTotal])
}

func TestResolveFallsBackToFrench(t *testing.T) {
	labels := Dictionary{}.Resolve(types.LanguageEnglish)

	// Every French default key resolves to something.
	for key := range DefaultDictionary()[types.LanguageFrench] {
		assert.NotEmpty(t, labels[key], "key %s resolved empty", key)
	}
}

func TestResolveIgnoresEmptyStoredValues(t *testing.T) {
	dict := Dictionary{
		types.LanguageFrench: Labels{KeyInvoiceTitle: ""},
	}

	labels := dict.Resolve(types.LanguageFrench)
	assert.Equal(t, "Facture", labels[KeyInvoiceTitle])
}

func TestCloneIsDeep(t *testing.T) {
	dict := Dictionary{
		types.LanguageFrench: Labels{KeyInvoiceTitle: "Facture"},
	}

	clone := dict.Clone()
	clone[types.LanguageFrench][KeyInvoiceTitle] = "changed"
	assert.Equal(t, "Facture", dict[types.LanguageFrench][KeyInvoiceTitle])
}

func TestDefaultDictionaryCoversAllLanguages(t *testing.T) {
	defaults := DefaultDictionary()
	frKeys := defaults[types.LanguageFrench]
	assert.NotEmpty(t, frKeys)

	for _, lang := range []types.Language{types.LanguageHebrew, types.LanguageEnglish} {
		for key := range frKeys {
			assert.NotEmpty(t, defaults[lang][key], "language %s missing key %s", lang, key)
		}
	}
}
