package charmap

import "testing"

import "github.com/google/go-cmp/cmp"

import "github.com/tinne26/btxt/glyph"

func testEntry(key string, advance float32) Entry {
	return Entry{ Key: key, Glyph: &glyph.Glyph{ AdvanceWidth: advance } }
}

func TestLongestMatch(t *testing.T) {
	charmap := New([]Entry{
		testEntry("e", 7),
		testEntry("a", 7),
		testEntry("e\u0301", 8), // normalized to "\u00e9"
		testEntry("fi", 9),
		testEntry("f", 5),
	}, Entry{ AdvanceWidthTo: Advance(3) })

	tests := []struct {
		in string
		key string
		chars int
	}{
		{"abc", "a", 1},
		{"fix", "fi", 2},
		{"fa", "f", 1},
		{"\u00e9a", "\u00e9", 1},
		{"e", "e", 1},
		{"zz", "", 1},
		{"", "", 1},
	}
	for i, test := range tests {
		entry := charmap.Get(test.in)
		if entry.Key != test.key || entry.AdvanceChars != test.chars {
			t.Fatalf("test #%d: expected key %q consuming %d, got %q consuming %d", i, test.key, test.chars, entry.Key, entry.AdvanceChars)
		}
	}
	if charmap.Get("zz").AdvanceWidth() != 3 { t.Fatalf("expected fallback advance 3") }
	if charmap.Get("fi").AdvanceWidth() != 9 { t.Fatalf("expected glyph advance 9") }
	if charmap.Lookup("e\u0301") == nil { t.Fatalf("expected lookup to normalize the key") }
	if charmap.Lookup("x") != nil { t.Fatalf("expected missing key") }

	var keys []string
	charmap.Entries(func(entry *Entry) bool {
		keys = append(keys, entry.Key)
		return true
	})
	if diff := cmp.Diff([]string{"a", "e", "f", "fi", "\u00e9"}, keys); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if charmap.Len() != 5 { t.Fatalf("expected 5 entries, got %d", charmap.Len()) }
}

func TestKerning(t *testing.T) {
	advance := Kerning(10, []KernPair{ {"A", -1}, {"V", -2}, {"W", 0.5} })
	tests := []struct {
		next string
		out float32
	}{
		{"A", 9}, {"V", 8}, {"W", 10.5}, {"B", 10}, {"", 10}, {"Z", 10},
	}
	for i, test := range tests {
		if got := advance(test.next); got != test.out {
			t.Fatalf("test #%d: expected %v, got %v", i, test.out, got)
		}
	}
	if Kerning(4, nil)("A") != 4 { t.Fatalf("expected plain advance without pairs") }
}

func TestNewPanics(t *testing.T) {
	if !panics(func() { New([]Entry{ testEntry("", 1) }, Entry{}) }) {
		t.Fatalf("expected panic on empty key")
	}
	if !panics(func() { New([]Entry{ testEntry("\u00e9", 1), testEntry("e\u0301", 1) }, Entry{}) }) {
		t.Fatalf("expected panic on keys that normalize to the same string")
	}
}

func panics(function func()) (didPanic bool) {
	defer func() { didPanic = (recover() != nil) }()
	function()
	return
}
