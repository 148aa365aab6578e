// The charmap subpackage maps input text to glyph chains.
//
// A [Charmap] is an immutable, sorted table of entries. Keys are usually
// single characters, but they can also be clusters of several runes
// (e.g. a base letter followed by combining marks). Lookups always pick
// the longest key that prefixes the remaining text, and fall back to a
// blank entry when nothing matches, so text walks never fail.
package charmap

import "sort"
import "strconv"
import "unicode/utf8"

import "golang.org/x/text/unicode/norm"

import "github.com/tinne26/btxt/glyph"

// A charmap entry. AdvanceWidthTo returns the advance from the start of
// this entry to the start of the entry with the given key, including
// kerning. At the end of the text it's called with an empty key.
type Entry struct {
	Key string
	Glyph *glyph.Glyph // may be nil for blank entries
	AdvanceChars int // number of runes consumed from the input
	AdvanceWidthTo func(next string) float32
}

// Returns the advance width of the entry without kerning.
func (self *Entry) AdvanceWidth() float32 {
	return self.AdvanceWidthTo("")
}

// A kerning adjustment applied when the entry is followed by the entry
// with the given key.
type KernPair struct {
	Next string
	Kern float32
}

// Returns an advance function that ignores the next key.
func Advance(width float32) func(string) float32 {
	return func(string) float32 { return width }
}

// Returns an advance function that adds the kerning of the matching
// pair. Pairs must be sorted by key; they are not copied.
func Kerning(width float32, pairs []KernPair) func(string) float32 {
	if len(pairs) == 0 { return Advance(width) }
	return func(next string) float32 {
		index := sort.Search(len(pairs), func(i int) bool { return pairs[i].Next >= next })
		if index < len(pairs) && pairs[index].Next == next {
			return width + pairs[index].Kern
		}
		return width
	}
}

// A sorted, immutable table of entries. Safe for concurrent use.
type Charmap struct {
	entries []Entry
	fallback Entry
	maxKeyRunes int
}

// Creates a charmap with the given entries and fallback entry. Keys
// are normalized to NFC and the entries are sorted by key. Missing
// AdvanceChars are set to the number of runes in the key, and missing
// advance functions to the advance of the glyph chain.
//
// The function panics on empty or duplicate keys.
func New(entries []Entry, fallback Entry) *Charmap {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	maxKeyRunes := 1
	for i := range sorted {
		entry := &sorted[i]
		if entry.Key == "" { panic("empty charmap key") }
		entry.Key = norm.NFC.String(entry.Key)
		runes := utf8.RuneCountInString(entry.Key)
		if runes > maxKeyRunes { maxKeyRunes = runes }
		completeEntry(entry, runes)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	for i := 1; i < len(sorted); i++ {
		if sorted[i - 1].Key == sorted[i].Key {
			panic("duplicate charmap key " + strconv.Quote(sorted[i].Key))
		}
	}

	completeEntry(&fallback, 1)
	return &Charmap{ entries: sorted, fallback: fallback, maxKeyRunes: maxKeyRunes }
}

func completeEntry(entry *Entry, runes int) {
	if entry.AdvanceChars <= 0 { entry.AdvanceChars = runes }
	if entry.AdvanceWidthTo == nil {
		var width float32
		if entry.Glyph != nil { width = entry.Glyph.AdvanceWidth }
		entry.AdvanceWidthTo = Advance(width)
	}
}

// Returns the entry with the longest key that prefixes the given text,
// or the fallback entry if there's none. The text should be in NFC.
func (self *Charmap) Get(remaining string) *Entry {
	// byte lengths of the first maxKeyRunes prefixes
	var ends [8]int
	prefixEnds := ends[ : 0]
	offset := 0
	for offset < len(remaining) && len(prefixEnds) < self.maxKeyRunes {
		_, size := utf8.DecodeRuneInString(remaining[offset : ])
		offset += size
		prefixEnds = append(prefixEnds, offset)
	}

	for i := len(prefixEnds) - 1; i >= 0; i-- {
		if entry := self.lookup(remaining[ : prefixEnds[i]]); entry != nil {
			return entry
		}
	}
	return &self.fallback
}

// Returns the entry with the exact given key, or nil.
func (self *Charmap) Lookup(key string) *Entry {
	return self.lookup(norm.NFC.String(key))
}

func (self *Charmap) lookup(key string) *Entry {
	index := sort.Search(len(self.entries), func(i int) bool { return self.entries[i].Key >= key })
	if index < len(self.entries) && self.entries[index].Key == key {
		return &self.entries[index]
	}
	return nil
}

// Returns the fallback entry.
func (self *Charmap) Fallback() *Entry { return &self.fallback }

// Returns the number of entries, not counting the fallback.
func (self *Charmap) Len() int { return len(self.entries) }

// Calls the given function for each entry in key order, until it
// returns false.
func (self *Charmap) Entries(fn func(*Entry) bool) {
	for i := range self.entries {
		if !fn(&self.entries[i]) { return }
	}
}
