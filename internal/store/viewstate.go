package store

import "sync"

// ===============================
// VIEW-STATE DICTIONARIES
// ===============================
//
// UI-only per-entity state with no server persistence. Entries are created
// exactly once when an entity enters its collection and dropped exactly once
// when it leaves, which both bounds memory over a long session and prevents
// stale state from resurfacing if an id is ever reused.

// FlagDict maps an entity id to a boolean (expanded, comment panel visible).
type FlagDict struct {
	mu       sync.RWMutex
	flags    map[string]bool
	defaults bool
}

// NewFlagDict creates a flag dictionary whose entries start as defaultValue.
func NewFlagDict(defaultValue bool) *FlagDict {
	return &FlagDict{
		flags:    make(map[string]bool),
		defaults: defaultValue,
	}
}

// InitFor creates the entry for a new entity.
func (d *FlagDict) InitFor(entityID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.flags[entityID] = d.defaults
}

// Toggle flips the flag and returns the new value.
func (d *FlagDict) Toggle(entityID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.flags[entityID] = !d.flags[entityID]
	return d.flags[entityID]
}

// Set assigns the flag.
func (d *FlagDict) Set(entityID string, value bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.flags[entityID] = value
}

// Get returns the flag for an entity.
func (d *FlagDict) Get(entityID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.flags[entityID]
}

// Has reports whether an entry exists for the entity.
func (d *FlagDict) Has(entityID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.flags[entityID]
	return ok
}

// DropFor removes the entry for a departed entity.
func (d *FlagDict) DropFor(entityID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.flags, entityID)
}

// Len returns the number of entries.
func (d *FlagDict) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.flags)
}

// InitEntity implements Companion.
func (d *FlagDict) InitEntity(id string) { d.InitFor(id) }

// DropEntity implements Companion.
func (d *FlagDict) DropEntity(id string) { d.DropFor(id) }

// TextDict maps an entity id to a string buffer (inline edit buffers,
// comment drafts).
type TextDict struct {
	mu    sync.RWMutex
	texts map[string]string
}

// NewTextDict creates an empty text dictionary.
func NewTextDict() *TextDict {
	return &TextDict{texts: make(map[string]string)}
}

// InitFor creates an empty buffer for a new entity.
func (d *TextDict) InitFor(entityID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texts[entityID] = ""
}

// Set assigns the buffer.
func (d *TextDict) Set(entityID, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texts[entityID] = value
}

// Get returns the buffer for an entity.
func (d *TextDict) Get(entityID string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.texts[entityID]
}

// Has reports whether an entry exists for the entity.
func (d *TextDict) Has(entityID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.texts[entityID]
	return ok
}

// Clear resets the buffer to empty without dropping the entry.
func (d *TextDict) Clear(entityID string) {
	d.Set(entityID, "")
}

// DropFor removes the entry for a departed entity.
func (d *TextDict) DropFor(entityID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.texts, entityID)
}

// Len returns the number of entries.
func (d *TextDict) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.texts)
}

// InitEntity implements Companion.
func (d *TextDict) InitEntity(id string) { d.InitFor(id) }

// DropEntity implements Companion.
func (d *TextDict) DropEntity(id string) { d.DropFor(id) }
