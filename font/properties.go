package font

import "golang.org/x/image/font/sfnt"
import "github.com/pkg/errors"

// Returned when a font name property is missing.
var ErrNotFound = errors.New("font property not found or empty")

// Returns the full name of the given font. If the information is
// missing, [ErrNotFound] will be returned.
func Name(font *sfnt.Font) (string, error) {
	var buffer sfnt.Buffer
	name, err := font.Name(&buffer, sfnt.NameIDFull)
	if err == sfnt.ErrNotFound || (err == nil && name == "") { return "", ErrNotFound }
	return name, err
}

// Returns the distinct runes of the given text that the font can't
// represent, in order of appearance.
func MissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	var buffer sfnt.Buffer
	var missing []rune
	seen := make(map[rune]bool)
	for _, codePoint := range text {
		if seen[codePoint] { continue }
		seen[codePoint] = true
		index, err := font.GlyphIndex(&buffer, codePoint)
		if err != nil { return missing, errors.Wrapf(err, "glyph index for %q", codePoint) }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
