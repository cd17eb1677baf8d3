package fromhtml

import (
	"github.com/stateful/draftjshtml/internal/keys"
	"github.com/stateful/draftjshtml/pkg/draftjs"
)

type pendingEntity struct {
	tag   string
	start int
	attrs map[string]string
}

// pendingBlock is an open element that may still become output blocks.
type pendingBlock struct {
	tag             string
	chars           *CharList
	pendingEntities []*pendingEntity

	// parent is the innermost open block or list when b was opened.
	parent string
	// list is the innermost open list, empty outside lists.
	list string
	// level is the number of tags open above b.
	level int
	depth int
}

func newPendingBlock(tag, parent, list string, level, depth int) *pendingBlock {
	return &pendingBlock{
		tag:    tag,
		chars:  NewCharList(),
		parent: parent,
		list:   list,
		level:  level,
		depth:  depth,
	}
}

func (b *pendingBlock) flushable() bool {
	return flushBoundaries[b.parent]
}

// takeEntity removes and returns the innermost pending entity opened by tag.
func (b *pendingBlock) takeEntity(tag string) *pendingEntity {
	for i := len(b.pendingEntities) - 1; i >= 0; i-- {
		if e := b.pendingEntities[i]; e.tag == tag {
			b.pendingEntities = append(b.pendingEntities[:i], b.pendingEntities[i+1:]...)
			return e
		}
	}
	return nil
}

// consume appends the buffered content of a closed child block.
func (b *pendingBlock) consume(child *pendingBlock) {
	offset := b.chars.Size()
	b.chars = b.chars.Concat(child.chars)
	for _, e := range child.pendingEntities {
		e.start += offset
		b.pendingEntities = append(b.pendingEntities, e)
	}
}

// reset empties the buffer after it was written out. Entities still
// open now start at the beginning of the new buffer.
func (b *pendingBlock) reset() {
	b.chars = NewCharList()
	for _, e := range b.pendingEntities {
		e.start = 0
	}
}

func (b *pendingBlock) blockType() string {
	if b.depth >= 0 {
		switch b.list {
		case "ol":
			return orderedListItem
		case "ul":
			return unorderedListItem
		}
	}
	if t, ok := blockTypes[b.tag]; ok {
		return t
	}
	return defaultBlockType
}

// writeBlocks emits one block per line of chars, typed after b.
func writeBlocks(builder *draftjs.Builder, b *pendingBlock, chars *CharList, squeezeWhitespace bool) {
	depth := b.depth
	if depth < 0 {
		depth = 0
	}
	if depth > draftjs.MaxDepth {
		depth = draftjs.MaxDepth
	}

	for _, line := range chars.Lines() {
		atomic := line.Atomic()
		if squeezeWhitespace && !atomic && !line.MoreThanWhitespace() {
			continue
		}

		blockType := b.blockType()
		if atomic {
			blockType = atomicBlockType
		}
		builder.TypedBlock(blockType, line.Text(), depth)

		entityKeys := make(map[*NodeEntity]string)
		for _, r := range line.EntityRanges() {
			if key, ok := entityKeys[r.Entity]; ok {
				builder.EntityRange(key, r.Start, r.End)
				continue
			}

			key := keys.EntityKey()
			entityKeys[r.Entity] = key

			mutability := r.Entity.Mutability
			if mutability == "" {
				mutability = draftjs.Immutable
			}
			builder.ApplyEntity(r.Entity.Type, r.Start, r.End,
				draftjs.WithEntityKey(key),
				draftjs.WithMutability(mutability),
				draftjs.WithData(r.Entity.Data),
			)
		}

		for _, r := range line.StyleRanges() {
			builder.InlineStyle(r.Style, r.Start, r.End)
		}
	}
}
