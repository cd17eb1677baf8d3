package tohtml

import (
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

type level struct {
	tag     string
	wrapper *html.Node
	// item is the last element added to wrapper.
	item *html.Node
}

// nesting reconciles block depths into nested wrapper elements.
// levels[i] is the open wrapper at depth i.
type nesting struct {
	root   *html.Node
	levels []*level
	logger *zap.Logger
}

func isListTag(tag string) bool {
	return tag == "ol" || tag == "ul"
}

// enter makes wrapper the innermost open element at depth and returns
// the level that receives the block. Open levels are reused when they
// match; levels missing because of a depth jump are synthesized inside
// an empty list item.
func (n *nesting) enter(wrapper string, depth int) *level {
	keep := 0
	for keep < len(n.levels) && keep <= depth {
		tag := n.levels[keep].tag
		if keep == depth && tag != wrapper {
			break
		}
		if keep < depth && !isListTag(tag) {
			break
		}
		keep++
	}
	n.levels = n.levels[:keep]

	for len(n.levels) <= depth {
		tag := wrapper
		if len(n.levels) < depth {
			n.logger.Debug("synthesizing missing list level", zap.Int("depth", len(n.levels)))
			if !isListTag(wrapper) {
				tag = "ul"
			}
		}

		el := newElement(tag, nil)
		n.parent().AppendChild(el)
		n.levels = append(n.levels, &level{tag: tag, wrapper: el})
	}

	return n.levels[depth]
}

// leave closes wrappers deeper than depth and returns the element that
// receives a block rendered outside any wrapper.
func (n *nesting) leave(depth int) *html.Node {
	keep := 0
	for keep < len(n.levels) && keep < depth && isListTag(n.levels[keep].tag) {
		keep++
	}
	n.levels = n.levels[:keep]
	return n.parent()
}

// parent is the element new content at the next depth goes into.
func (n *nesting) parent() *html.Node {
	if len(n.levels) == 0 {
		return n.root
	}
	last := n.levels[len(n.levels)-1]
	if last.item == nil {
		last.item = newElement("li", nil)
		last.wrapper.AppendChild(last.item)
	}
	return last.item
}

func (l *level) add(el *html.Node) {
	l.wrapper.AppendChild(el)
	l.item = el
}
