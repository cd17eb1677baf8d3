// Package draftjs models Draft.js raw content: blocks of text with
// inline style ranges and entity ranges pointing into an entity map.
package draftjs

import (
	"go.uber.org/multierr"
	"golang.org/x/exp/slices"

	"github.com/stateful/draftjshtml/internal/keys"
)

// MaxDepth is the deepest block nesting accepted from raw documents.
const MaxDepth = 256

type Content struct {
	blocks    []*Block
	entityMap *EntityMap
}

func NewContent(blocks []*Block, entityMap *EntityMap) *Content {
	if entityMap == nil {
		entityMap = NewEntityMap()
	}
	return &Content{blocks: blocks, entityMap: entityMap}
}

// FromRaw builds Content from an already decoded document.
// Ranges with a negative offset or length and blocks with a depth
// outside [0, MaxDepth] are rejected; all of them are reported at once.
func FromRaw(raw *RawDraftJS) (*Content, error) {
	if raw == nil {
		return nil, invalidf("document is absent")
	}

	var err error
	for i, b := range raw.Blocks {
		if b.Depth < 0 || b.Depth > MaxDepth {
			err = multierr.Append(err, invalidf("block %d: depth %d is outside [0, %d]", i, b.Depth, MaxDepth))
		}
		for _, r := range b.InlineStyleRanges {
			if r.Offset < 0 || r.Length < 0 {
				err = multierr.Append(err, invalidf("block %d: style %q has offset %d and length %d", i, r.Style, r.Offset, r.Length))
			}
		}
		for _, r := range b.EntityRanges {
			if r.Offset < 0 || r.Length < 0 {
				err = multierr.Append(err, invalidf("block %d: entity %q has offset %d and length %d", i, r.Key, r.Offset, r.Length))
			}
		}
	}
	if err != nil {
		return nil, err
	}

	blocks := make([]*Block, 0, len(raw.Blocks))
	for _, b := range raw.Blocks {
		blocks = append(blocks, newBlock(b))
	}

	entityKeys := make([]string, 0, len(raw.EntityMap))
	for key := range raw.EntityMap {
		entityKeys = append(entityKeys, key)
	}
	slices.Sort(entityKeys)

	entityMap := NewEntityMap()
	for _, key := range entityKeys {
		entityMap.Add(newEntity(key, raw.EntityMap[key]))
	}

	return NewContent(blocks, entityMap), nil
}

func (c *Content) Blocks() []*Block {
	if c == nil {
		return nil
	}
	return c.blocks
}

func (c *Content) EntityMap() *EntityMap {
	if c == nil {
		return NewEntityMap()
	}
	return c.entityMap
}

// FindEntity returns nil for unknown keys, so dangling
// references behave as if no entity was attached.
func (c *Content) FindEntity(key string) *Entity {
	if c == nil || key == "" {
		return nil
	}
	return c.entityMap.Find(key)
}

// AttachEntity stores entity under a fresh key and points the inclusive
// range [start, end] of block at it. It returns the new key.
func (c *Content) AttachEntity(entity *Entity, block *Block, start, end int) string {
	key := keys.EntityKey()
	for c.entityMap.Has(key) {
		key = keys.EntityKey()
	}

	entity.Key = key
	c.entityMap.Add(entity)
	block.addEntityRange(key, start, end)

	return key
}

// AddBlock appends a block to the content.
func (c *Content) AddBlock(block *Block) {
	c.blocks = append(c.blocks, block)
}

// ToRaw is the structural inverse of FromRaw.
func (c *Content) ToRaw() *RawDraftJS {
	raw := &RawDraftJS{
		Blocks:    make([]RawBlock, 0, len(c.Blocks())),
		EntityMap: make(map[string]RawEntity),
	}
	for _, b := range c.Blocks() {
		raw.Blocks = append(raw.Blocks, b.toRaw())
	}
	for _, e := range c.EntityMap().Entities() {
		raw.EntityMap[e.Key] = e.toRaw()
	}
	return raw
}
