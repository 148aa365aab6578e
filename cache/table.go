package cache

import "sort"
import "sync"
import "sync/atomic"

import "github.com/tinne26/btxt/glyph"
import "github.com/tinne26/btxt/internal/logger"

// A concurrent-safe table of glyph chains indexed by charmap key.
type Table struct {
	entries map[string]*tableEntry
	spaceBytesLeft uint32
	lowestBytesLeft uint32
	byteSizeLimit uint32
	mutex sync.RWMutex
}

// Creates a new table bounded by the given size in bytes. Zero means
// no limit. Negative values will panic.
//
// Bounded tables never evict entries: inserts that don't fit are
// rejected. This keeps the contents of the table independent of
// the insertion order as long as the limit is not reached.
func NewTable(maxByteSize int) *Table {
	if maxByteSize < 0 { panic("maxByteSize < 0") } // likely a dev mistake
	limit := uint32(maxByteSize)
	if maxByteSize == 0 || maxByteSize > int(^uint32(0) >> 1) { limit = ^uint32(0) >> 1 }
	return &Table{
		entries: make(map[string]*tableEntry, 128),
		spaceBytesLeft: limit,
		lowestBytesLeft: limit,
		byteSizeLimit: limit,
	}
}

// Returns whether the given key is present in the table.
func (self *Table) Has(key string) bool {
	self.mutex.RLock()
	_, found := self.entries[key]
	self.mutex.RUnlock()
	return found
}

// Returns the glyphs associated to the given key. The returned
// slice must not be modified.
func (self *Table) Get(key string) ([]glyph.Glyph, bool) {
	self.mutex.RLock()
	entry, found := self.entries[key]
	self.mutex.RUnlock()
	if !found { return nil, false }
	return entry.Glyphs, true
}

// Stores the given glyphs under the given key, unless the key is
// already present or the entry doesn't fit in the remaining space.
// Returns whether the glyphs were inserted.
//
// The glyphs are copied before taking the lock, so the table never
// exposes partially constructed entries.
func (self *Table) Insert(key string, glyphs []glyph.Glyph) bool {
	entry := newTableEntry(key, glyphs)

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, alreadyExists := self.entries[key]; alreadyExists {
		logger.Get().Debug("duplicate glyph insert ignored", "key", key)
		return false
	}
	if atomic.LoadUint32(&self.spaceBytesLeft) < entry.ByteSize {
		logger.Get().Debug("glyph entry doesn't fit in table", "key", key, "bytes", entry.ByteSize)
		return false
	}
	newLeft := atomic.AddUint32(&self.spaceBytesLeft, ^uint32(entry.ByteSize - 1))
	if newLeft < atomic.LoadUint32(&self.lowestBytesLeft) {
		atomic.StoreUint32(&self.lowestBytesLeft, newLeft)
	}
	self.entries[key] = entry
	return true
}

// Removes the given key from the table. Returns whether the key
// was present.
func (self *Table) Delete(key string) bool {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	entry, found := self.entries[key]
	if !found { return false }
	delete(self.entries, key)
	atomic.AddUint32(&self.spaceBytesLeft, entry.ByteSize)
	return true
}

// Returns the number of entries in the table.
func (self *Table) Len() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.entries)
}

// Returns the keys of the table in ascending order.
func (self *Table) Keys() []string {
	self.mutex.RLock()
	keys := make([]string, 0, len(self.entries))
	for key, _ := range self.entries {
		keys = append(keys, key)
	}
	self.mutex.RUnlock()
	sort.Strings(keys)
	return keys
}

// Returns an approximation of the number of bytes taken by the
// glyphs currently stored in the table.
func (self *Table) ApproxByteSize() int {
	return int(atomic.LoadUint32(&self.byteSizeLimit) - atomic.LoadUint32(&self.spaceBytesLeft))
}

// Returns an approximation of the maximum amount of bytes that the
// table has been filled with at any point of its life.
func (self *Table) PeakSize() int {
	return int(atomic.LoadUint32(&self.byteSizeLimit) - atomic.LoadUint32(&self.lowestBytesLeft))
}
