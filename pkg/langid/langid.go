// Package langid identifies the dominant language of a document so reports
// can say which stopword family applies.
package langid

import (
	"github.com/pemistahl/lingua-go"
)

// sampleRunes caps how much text feeds the detector; a few thousand runes are
// plenty to separate Russian from English.
const sampleRunes = 4000

// Detector classifies document text as Russian or English.
type Detector struct {
	inner lingua.LanguageDetector
}

// NewDetector builds a detector restricted to the corpus languages.
func NewDetector() *Detector {
	return &Detector{
		inner: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.Russian, lingua.English).
			Build(),
	}
}

// Detect returns the language name ("Russian", "English") or "" when the
// detector has no confident answer.
func (d *Detector) Detect(text string) string {
	runes := []rune(text)
	if len(runes) > sampleRunes {
		runes = runes[:sampleRunes]
	}

	lang, ok := d.inner.DetectLanguageOf(string(runes))
	if !ok {
		return ""
	}
	return lang.String()
}
