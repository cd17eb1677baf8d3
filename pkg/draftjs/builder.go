package draftjs

import (
	"github.com/stateful/draftjshtml/internal/keys"
)

// Builder assembles a RawDraftJS document block by block.
// Ranges are inclusive: InlineStyle("BOLD", 0, 4) covers five characters.
type Builder struct {
	blocks    []RawBlock
	entityMap map[string]RawEntity
}

func NewBuilder() *Builder {
	return &Builder{entityMap: make(map[string]RawEntity)}
}

func (b *Builder) TextBlock(text string) *Builder {
	return b.TypedBlock(DefaultBlockType, text, 0)
}

func (b *Builder) TypedBlock(typ, text string, depth int) *Builder {
	b.blocks = append(b.blocks, RawBlock{
		Key:               keys.BlockKey(),
		Text:              text,
		Type:              typ,
		Depth:             depth,
		InlineStyleRanges: []RawInlineStyleRange{},
		EntityRanges:      []RawEntityRange{},
	})
	return b
}

// HasBlocks reports whether any block was added.
func (b *Builder) HasBlocks() bool {
	return len(b.blocks) > 0
}

func (b *Builder) InlineStyle(style string, start, end int) *Builder {
	last := b.last()
	last.InlineStyleRanges = append(last.InlineStyleRanges, RawInlineStyleRange{
		Style:  style,
		Offset: start,
		Length: end - start + 1,
	})
	return b
}

func (b *Builder) EntityRange(key string, start, end int) *Builder {
	last := b.last()
	last.EntityRanges = append(last.EntityRanges, RawEntityRange{
		Key:    key,
		Offset: start,
		Length: end - start + 1,
	})
	return b
}

type EntityOption func(*entityOptions)

type entityOptions struct {
	key        string
	mutability Mutability
	data       map[string]interface{}
}

func WithEntityKey(key string) EntityOption {
	return func(o *entityOptions) {
		o.key = key
	}
}

func WithMutability(m Mutability) EntityOption {
	return func(o *entityOptions) {
		o.mutability = m
	}
}

func WithData(data map[string]interface{}) EntityOption {
	return func(o *entityOptions) {
		o.data = data
	}
}

// ApplyEntity registers an entity and covers [start, end] of the last
// block with it. Entities are IMMUTABLE with empty data unless options
// say otherwise.
func (b *Builder) ApplyEntity(typ string, start, end int, opts ...EntityOption) *Builder {
	o := entityOptions{mutability: Immutable}
	for _, opt := range opts {
		opt(&o)
	}
	if o.key == "" {
		o.key = keys.EntityKey()
	}
	if o.data == nil {
		o.data = map[string]interface{}{}
	}

	b.entityMap[o.key] = RawEntity{
		Type:       typ,
		Mutability: o.mutability,
		Data:       o.data,
	}

	return b.EntityRange(o.key, start, end)
}

func (b *Builder) Raw() *RawDraftJS {
	blocks := make([]RawBlock, len(b.blocks))
	copy(blocks, b.blocks)

	entityMap := make(map[string]RawEntity, len(b.entityMap))
	for k, v := range b.entityMap {
		entityMap[k] = v
	}

	return &RawDraftJS{Blocks: blocks, EntityMap: entityMap}
}

func (b *Builder) last() *RawBlock {
	if len(b.blocks) == 0 {
		b.TextBlock("")
	}
	return &b.blocks[len(b.blocks)-1]
}
