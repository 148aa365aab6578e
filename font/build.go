package font

import "context"
import "math"
import "unicode/utf8"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/btxt/cache"
import "github.com/tinne26/btxt/charmap"
import "github.com/tinne26/btxt/glyph"
import "github.com/tinne26/btxt/internal/logger"
import "github.com/tinne26/btxt/synth"

// Synthesizes the glyphs for the given text and returns them as a
// bitmap font. See [synth.Build]() for details.
func Build(ctx context.Context, config synth.Config, text ...string) (*BitmapFont, error) {
	table, err := synth.Build(ctx, config, text...)
	if err != nil { return nil, err }
	return FromTable(table, config)
}

// Creates a bitmap font from the glyphs in the given table, which must
// have been built with the same configuration. When the configuration
// has an outline source, kerning between outline glyphs is included.
func FromTable(table *cache.Table, config synth.Config) (*BitmapFont, error) {
	if err := config.Validate(); err != nil { return nil, err }
	metrics := config.Metrics()
	keys := table.Keys()

	kerning, err := KerningPairs(table, config)
	if err != nil { return nil, err }

	entries := make([]charmap.Entry, 0, len(keys))
	for _, key := range keys {
		glyphs, _ := table.Get(key)
		chain := glyph.Link(glyphs)
		entries = append(entries, charmap.Entry{
			Key: key,
			Glyph: chain,
			AdvanceChars: utf8.RuneCountInString(key),
			AdvanceWidthTo: charmap.Kerning(chain.AdvanceWidth, kerning[key]),
		})
	}
	fallback := charmap.Entry{ AdvanceChars: 1, AdvanceWidthTo: charmap.Advance(float32(metrics.Width)) }

	ppem := config.PixelsPerEm
	stroke := max(1, int(math.Round(ppem*0.05)))
	bitmapFont := &BitmapFont{
		Charmap: charmap.New(entries, fallback),
		Metrics: Metrics{ Ascent: int(metrics.Top), Descent: int(-metrics.Bottom) },
		Underline: Decoration{ YOffset: -max(1, int(math.Round(ppem*0.08))), StrokeWidth: stroke },
		Strikethrough: Decoration{ YOffset: int(math.Round(ppem*0.32)) + stroke/2, StrokeWidth: stroke },
		BitDepth: config.BitDepth,
	}
	logger.Get().Debug("bitmap font ready", "entries", len(entries), "kerned", len(kerning))
	return bitmapFont, nil
}

// Returns the nonzero kerning pairs between the outline glyphs of the
// table, grouped by their first key and sorted by the second one.
func KerningPairs(table *cache.Table, config synth.Config) (map[string][]charmap.KernPair, error) {
	pairs := make(map[string][]charmap.KernPair)
	if config.Outline == nil { return pairs, nil }
	keys := table.Keys()

	outlineRunes := make([]rune, 0, len(keys))
	outlineKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		glyphs, _ := table.Get(key)
		if glyphs[0].ID < synth.BaseIDOutline { continue }
		r, _ := utf8.DecodeRuneInString(key)
		outlineRunes = append(outlineRunes, r)
		outlineKeys = append(outlineKeys, key)
	}

	var buffer sfnt.Buffer
	for i, first := range outlineRunes {
		for j, second := range outlineRunes {
			kern, err := config.Outline.Kern(&buffer, first, second, config.PixelsPerEm)
			if err != nil { return nil, err }
			if kern == 0 { continue }
			pairs[outlineKeys[i]] = append(pairs[outlineKeys[i]], charmap.KernPair{ Next: outlineKeys[j], Kern: kern })
		}
	}
	return pairs, nil
}
