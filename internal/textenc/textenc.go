// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textenc maps the configured encoding name onto a character set
// codec and wraps file reads/writes with it. Course material predates the
// UTF-8 migration in places, so windows-1251 and friends must round-trip.
package textenc

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// codecs maps normalized encoding names to their codec. A nil value means
// the encoding is UTF-8 and file contents pass through untouched.
var codecs = map[string]encoding.Encoding{
	"utf8":        nil,
	"":            nil,
	"windows1251": charmap.Windows1251,
	"cp1251":      charmap.Windows1251,
	"windows1252": charmap.Windows1252,
	"cp1252":      charmap.Windows1252,
	"koi8r":       charmap.KOI8R,
	"iso88591":    charmap.ISO8859_1,
	"latin1":      charmap.ISO8859_1,
	"iso88595":    charmap.ISO8859_5,
	"cp866":       charmap.CodePage866,
	"ibm866":      charmap.CodePage866,
}

// Codec resolves an encoding name from the [settings] section. Unknown
// names are a configuration error and abort the run before any processing.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// Lookup returns the codec for name. Names are matched ignoring case,
// hyphens, and underscores, so "UTF-8", "utf8" and "utf_8" are equivalent.
func Lookup(name string) (*Codec, error) {
	norm := strings.ToLower(name)
	norm = strings.NewReplacer("-", "", "_", "", " ", "").Replace(norm)
	enc, ok := codecs[norm]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return &Codec{name: name, enc: enc}, nil
}

// Name returns the configured encoding name as written in the settings.
func (c *Codec) Name() string {
	if c.name == "" {
		return "utf-8"
	}
	return c.name
}

// ReadFile reads path and decodes it to UTF-8.
func (c *Codec) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if c.enc == nil {
		return string(data), nil
	}
	decoded, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s as %s: %w", path, c.Name(), err)
	}
	return string(decoded), nil
}

// WriteFile encodes content from UTF-8 and writes it to path.
func (c *Codec) WriteFile(path, content string) error {
	data := []byte(content)
	if c.enc != nil {
		encoded, err := c.enc.NewEncoder().Bytes(data)
		if err != nil {
			return fmt.Errorf("encoding %s as %s: %w", path, c.Name(), err)
		}
		data = encoded
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
