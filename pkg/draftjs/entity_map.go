package draftjs

import (
	"github.com/elliotchance/orderedmap"
)

// EntityMap holds entities by key in insertion order.
type EntityMap struct {
	*orderedmap.OrderedMap
}

func NewEntityMap() *EntityMap {
	return &EntityMap{OrderedMap: orderedmap.NewOrderedMap()}
}

func (m *EntityMap) Add(e *Entity) {
	m.Set(e.Key, e)
}

// Find returns nil when no entity is stored under key.
func (m *EntityMap) Find(key string) *Entity {
	v, ok := m.Get(key)
	if !ok {
		return nil
	}
	return v.(*Entity)
}

func (m *EntityMap) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

func (m *EntityMap) Entities() []*Entity {
	result := make([]*Entity, 0, m.Len())
	for pair := m.Front(); pair != nil; pair = pair.Next() {
		result = append(result, pair.Value.(*Entity))
	}
	return result
}
