// Package textload reads document files into decoded strings. Decoding is a
// bounded retry over an ordered list of encodings: UTF-8 first, then the
// legacy single-byte Cyrillic encodings common in older corpora. The first
// encoding that decodes cleanly wins; exhausting the list is a load failure
// for that document only.
package textload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ErrUndecodable is returned when no configured encoding decodes the file.
var ErrUndecodable = errors.New("textload: text not decodable in any configured encoding")

type attempt struct {
	name string
	enc  encoding.Encoding // nil means validated UTF-8 passthrough
}

// Loader decodes document files, falling back through a fixed encoding list.
type Loader struct {
	attempts []attempt
}

// NewLoader returns a loader trying UTF-8, windows-1251, then KOI8-R.
func NewLoader() *Loader {
	return &Loader{attempts: []attempt{
		{name: "utf-8"},
		{name: "windows-1251", enc: charmap.Windows1251},
		{name: "koi8-r", enc: charmap.KOI8R},
	}}
}

// LoadFile reads and decodes the file. HTML documents are flattened to plain
// text after decoding. Returns the text and the name of the encoding that
// succeeded.
func (l *Loader) LoadFile(path string) (text, encName string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, encName, err = l.Decode(data)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = FlattenHTML(text)
		if err != nil {
			return "", "", fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
	}

	return text, encName, nil
}

// Decode tries each configured encoding in order and returns the first clean
// decoding along with the encoding's name.
func (l *Loader) Decode(data []byte) (string, string, error) {
	for _, a := range l.attempts {
		if a.enc == nil {
			if utf8.Valid(data) {
				return string(data), a.name, nil
			}
			continue
		}

		decoded, err := a.enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		// Charmap decoders substitute U+FFFD for bytes the encoding does not
		// define; treat that as a failed attempt, not a success.
		if strings.ContainsRune(string(decoded), utf8.RuneError) {
			continue
		}
		return string(decoded), a.name, nil
	}

	return "", "", ErrUndecodable
}
