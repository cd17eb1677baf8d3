package fromhtml

import (
	"go.uber.org/zap"

	"github.com/stateful/draftjshtml/pkg/draftjs"
)

// listMark remembers the stack sizes when a list started.
type listMark struct {
	frames int
	tags   int
}

// depthStack tracks open blocks and lists. frames[0] is the document
// root and is never popped. tags holds the names of open blocks and
// lists, innermost last.
type depthStack struct {
	builder           *draftjs.Builder
	logger            *zap.Logger
	squeezeWhitespace bool

	frames    []*pendingBlock
	tags      []string
	lists     []listMark
	listDepth int
}

func newDepthStack(builder *draftjs.Builder, logger *zap.Logger, squeezeWhitespace bool) *depthStack {
	return &depthStack{
		builder:           builder,
		logger:            logger,
		squeezeWhitespace: squeezeWhitespace,
		frames:            []*pendingBlock{newPendingBlock("", "", "", 0, -1)},
		listDepth:         -1,
	}
}

func (s *depthStack) current() *pendingBlock {
	return s.frames[len(s.frames)-1]
}

func (s *depthStack) insideList() bool {
	return len(s.lists) > 0
}

func (s *depthStack) parentTag() string {
	if len(s.tags) == 0 {
		return ""
	}
	return s.tags[len(s.tags)-1]
}

func (s *depthStack) listTag() string {
	if n := len(s.lists); n > 0 {
		return s.tags[s.lists[n-1].tags]
	}
	return ""
}

// push opens a block. Outside lists, text buffered so far in the current
// block is written out first when its element is a boundary, so output
// keeps document order.
func (s *depthStack) push(tag string) {
	if !s.insideList() && flushBoundaries[s.parentTag()] {
		s.flushPartial(s.current())
	}

	s.frames = append(s.frames, newPendingBlock(tag, s.parentTag(), s.listTag(), len(s.tags), s.listDepth))
	s.tags = append(s.tags, tag)
}

// pop closes the innermost block for the end tag name. A matching block
// at a boundary is written out; anything else merges into its parent.
func (s *depthStack) pop(tag string) {
	if len(s.frames) == 1 {
		s.logger.Debug("ignoring end tag without open block", zap.String("tag", tag))
		return
	}
	if n := len(s.lists); n > 0 && s.lists[n-1].frames == len(s.frames) {
		s.logger.Debug("ignoring end tag of block opened outside the current list", zap.String("tag", tag))
		return
	}

	top := s.current()
	parent := s.frames[len(s.frames)-2]

	switch {
	case tag == top.tag && top.depth >= 0:
		if top.tag == "li" || parent.depth < 0 {
			s.flush(top)
		} else {
			parent.consume(top)
		}
	case tag == top.tag && top.flushable():
		s.flush(top)
	default:
		if tag != top.tag {
			s.logger.Debug("merging unbalanced block into parent", zap.String("tag", tag), zap.String("open", top.tag))
		}
		parent.consume(top)
	}

	s.frames = s.frames[:len(s.frames)-1]
	if top.level <= len(s.tags) {
		s.tags = s.tags[:top.level]
	}
}

// pushList starts a list. Content buffered by the open blocks belongs
// before the list and is written out now.
func (s *depthStack) pushList(tag string) {
	if n := len(s.lists); n > 0 {
		s.flushGroups(s.frames[s.lists[n-1].frames:])
	} else {
		for _, f := range s.frames {
			s.flushPartial(f)
		}
	}

	s.listDepth++
	s.lists = append(s.lists, listMark{frames: len(s.frames), tags: len(s.tags)})
	s.tags = append(s.tags, tag)
}

// popList ends the innermost list and writes out every block opened
// inside it.
func (s *depthStack) popList(tag string) {
	n := len(s.lists)
	if n == 0 {
		s.logger.Debug("ignoring end of list that was never opened", zap.String("tag", tag))
		return
	}

	mark := s.lists[n-1]
	s.flushGroups(s.frames[mark.frames:])

	s.frames = s.frames[:mark.frames]
	s.tags = s.tags[:mark.tags]
	s.lists = s.lists[:n-1]
	s.listDepth--
}

// closeAll closes everything still open at the end of input.
func (s *depthStack) closeAll() {
	for len(s.lists) > 0 {
		s.popList(s.parentTag())
	}
	for len(s.frames) > 1 {
		s.pop(s.current().tag)
	}
	s.flush(s.current())
}

func (s *depthStack) flush(b *pendingBlock) {
	if len(b.pendingEntities) > 0 {
		s.logger.Debug("dropping unclosed entities", zap.String("tag", b.tag), zap.Int("count", len(b.pendingEntities)))
		b.pendingEntities = nil
	}
	s.flushPartial(b)
}

func (s *depthStack) flushPartial(b *pendingBlock) {
	if b.chars.Size() == 0 {
		return
	}
	writeBlocks(s.builder, b, b.chars, s.squeezeWhitespace)
	b.reset()
}

// flushGroups writes out frames where each list item heads a group
// together with the blocks opened inside it.
func (s *depthStack) flushGroups(frames []*pendingBlock) {
	var (
		head  *pendingBlock
		group []*pendingBlock
	)

	write := func() {
		if head == nil {
			return
		}
		chars := NewCharList()
		for _, f := range group {
			chars = chars.Concat(f.chars)
		}
		if chars.Size() > 0 {
			writeBlocks(s.builder, head, chars, s.squeezeWhitespace)
		}
		for _, f := range group {
			f.reset()
		}
	}

	for _, f := range frames {
		if head == nil || f.tag == "li" {
			write()
			head = f
			group = nil
		}
		group = append(group, f)
	}
	write()
}
