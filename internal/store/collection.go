package store

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ===============================
// ENTITY COLLECTION
// ===============================

// Entity is anything owned by a Collection. Identifiers are opaque strings
// assigned by the gateway.
type Entity interface {
	EntityID() string
}

// Companion is satellite per-entity state (view-state dictionaries, the
// comment store) whose key set must stay aligned with the collection.
// Collections invoke companions inside the same locked step as their own
// mutation, so no reader ever observes the two disagreeing on ids.
type Companion interface {
	InitEntity(id string)
	DropEntity(id string)
}

// Collection holds the ordered entity list for one page. Insertion order is
// fetch/creation order; no server-defined sort is assumed beyond what the
// gateway returns.
type Collection[E Entity] struct {
	mu         sync.RWMutex
	entities   []E
	index      map[string]int
	companions []Companion
	logger     *zap.Logger
}

// NewCollection creates an empty collection.
func NewCollection[E Entity](logger *zap.Logger) *Collection[E] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collection[E]{
		index:  make(map[string]int),
		logger: logger,
	}
}

// Attach registers companions. Must be called before the first mutation.
func (c *Collection[E]) Attach(companions ...Companion) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.companions = append(c.companions, companions...)
}

// Load replaces the full sequence; used once after the initial fetch.
// Companion entries are dropped for every departing id and initialized for
// every arriving one in the same step.
func (c *Collection[E]) Load(entities []E) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entities {
		c.dropCompanions(e.EntityID())
	}

	c.entities = make([]E, 0, len(entities))
	c.index = make(map[string]int, len(entities))
	for _, e := range entities {
		id := e.EntityID()
		if _, dup := c.index[id]; dup {
			c.logger.Warn("duplicate entity id in load, keeping first", zap.String("id", id))
			continue
		}
		c.index[id] = len(c.entities)
		c.entities = append(c.entities, e)
		c.initCompanions(id)
	}
}

// Append adds one entity at the end (post-create) and initializes its
// companion entries.
func (c *Collection[E]) Append(entity E) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := entity.EntityID()
	if _, dup := c.index[id]; dup {
		c.logger.Warn("append of existing entity id, replacing in place", zap.String("id", id))
		c.entities[c.index[id]] = entity
		return
	}
	c.index[id] = len(c.entities)
	c.entities = append(c.entities, entity)
	c.initCompanions(id)
}

// Replace substitutes the entity with a matching id in place (post-update).
// A missing id is a reportable inconsistency and returns an error; the
// collection is left unchanged.
func (c *Collection[E]) Replace(id string, entity E) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		c.logger.Error("replace of unknown entity id", zap.String("id", id))
		return fmt.Errorf("store: replace of unknown entity %q", id)
	}
	c.entities[i] = entity
	return nil
}

// Remove deletes the entity with a matching id (post-delete) and drops its
// companion entries in the same step.
func (c *Collection[E]) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return
	}
	c.entities = append(c.entities[:i], c.entities[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.entities); j++ {
		c.index[c.entities[j].EntityID()] = j
	}
	c.dropCompanions(id)
}

// Get returns the entity with the given id.
func (c *Collection[E]) Get(id string) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero E
	i, ok := c.index[id]
	if !ok {
		return zero, false
	}
	return c.entities[i], true
}

// Snapshot returns a copy of the ordered entity list.
func (c *Collection[E]) Snapshot() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]E, len(c.entities))
	copy(out, c.entities)
	return out
}

// Filter returns the entities matching keep, in collection order.
func (c *Collection[E]) Filter(keep func(E) bool) []E {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []E
	for _, e := range c.entities {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// IDs returns the ordered list of entity ids.
func (c *Collection[E]) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, len(c.entities))
	for i, e := range c.entities {
		ids[i] = e.EntityID()
	}
	return ids
}

// Len returns the number of entities.
func (c *Collection[E]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entities)
}

func (c *Collection[E]) initCompanions(id string) {
	for _, comp := range c.companions {
		comp.InitEntity(id)
	}
}

func (c *Collection[E]) dropCompanions(id string) {
	for _, comp := range c.companions {
		comp.DropEntity(id)
	}
}
