// Package rollmsg renders roll results into chat messages and classifies
// rendered messages back into outcome counts.
package rollmsg

// Translator resolves a status key to a localized label.
// An empty string means the key is unknown.
type Translator interface {
	Translate(key string) string
}

// TranslatorFunc adapts a function to Translator
type TranslatorFunc func(key string) string

func (f TranslatorFunc) Translate(key string) string { return f(key) }

// ReverseTranslator resolves a rendered label back to its status key
type ReverseTranslator interface {
	ReverseTranslate(label string) (key string, ok bool)
}

// ReverseTranslatorFunc adapts a function to ReverseTranslator
type ReverseTranslatorFunc func(label string) (string, bool)

func (f ReverseTranslatorFunc) ReverseTranslate(label string) (string, bool) { return f(label) }
