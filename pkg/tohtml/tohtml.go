// Package tohtml renders Draft.js content as HTML.
package tohtml

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/stateful/draftjshtml/internal/bidi"
	"github.com/stateful/draftjshtml/internal/log"
	"github.com/stateful/draftjshtml/internal/overrides"
	"github.com/stateful/draftjshtml/pkg/draftjs"
)

// ErrUnknownMapping is returned for a block type or inline style that
// has no element to render as.
var ErrUnknownMapping = errors.New("unknown mapping")

// EntityRenderer renders an entity around content. Returning false
// keeps content unchanged.
type EntityRenderer func(entity *draftjs.Entity, content Node, doc *draftjs.Content) (Node, bool)

// InlineStyleRenderer renders a run carrying styles. Returning false
// falls back to nesting one element per style.
type InlineStyleRenderer func(styles []string, content Node, doc *draftjs.Content) (Node, bool)

type Options struct {
	// BlockTypeMapping overrides the element of a block type.
	BlockTypeMapping map[string]string
	// StyleMapping overrides the element of an inline style.
	StyleMapping map[string]StyleTag
	// EntityStyleMappings overrides how entities of a type render.
	EntityStyleMappings map[string]EntityRenderer
	InlineStyleRenderer InlineStyleRenderer
	// SqueezeNewlines collapses consecutive newlines into one <br>.
	SqueezeNewlines bool
	// Encoding is a WHATWG encoding label. Empty means UTF-8.
	Encoding string
	Logger   *zap.Logger
}

type renderer struct {
	opts      Options
	doc       *draftjs.Content
	logger    *zap.Logger
	blocks    *overrides.Map[string, string]
	styles    *overrides.Map[string, StyleTag]
	entities  *overrides.Map[string, EntityRenderer]
	direction *bidi.CurrentDirection
}

// Render converts content into HTML. Top-level elements are separated
// by newlines.
func Render(doc *draftjs.Content, opts Options) (string, error) {
	r := &renderer{
		opts:      opts,
		doc:       doc,
		logger:    log.Or(opts.Logger),
		blocks:    overrides.New(defaultBlockTypes).WithOverrides(opts.BlockTypeMapping),
		styles:    overrides.New(defaultStyles).WithOverrides(opts.StyleMapping),
		entities:  overrides.New(defaultEntityRenderers).WithOverrides(opts.EntityStyleMappings).WithFallback(renderEntityContent),
		direction: bidi.NewCurrentDirection(bidi.LTR),
	}

	body := newElement("body", nil)
	n := &nesting{root: body, logger: r.logger}

	for _, block := range doc.Blocks() {
		if err := r.renderBlock(n, block); err != nil {
			return "", err
		}
	}

	out, err := serialize(body)
	if err != nil {
		return "", err
	}

	return encode(out, opts.Encoding)
}

func (r *renderer) renderBlock(n *nesting, block *draftjs.Block) error {
	tag, ok := r.blocks.ValueOf(block.Type)
	if !ok {
		return errors.Wrapf(ErrUnknownMapping, "block type %q", block.Type)
	}

	var el *html.Node
	if wrapper, ok := blockWrappers[block.Type]; ok {
		l := n.enter(wrapper, block.Depth)
		el = newElement(tag, nil)
		if block.Blank() {
			el.AppendChild(newElement("br", nil))
		}
		l.add(el)
	} else {
		parent := n.leave(block.Depth)
		if block.Blank() {
			parent.AppendChild(newElement("br", nil))
			return nil
		}
		el = newElement(tag, nil)
		parent.AppendChild(el)
	}

	if block.Blank() {
		return nil
	}

	for _, run := range trimNewlines(block.Ranges(), r.opts.SqueezeNewlines) {
		content, err := r.renderRun(run)
		if err != nil {
			return errors.Wrapf(err, "block %q", block.Key)
		}
		for _, c := range content.nodes() {
			el.AppendChild(c)
		}
	}

	r.markDirection(el, n.root)

	return nil
}

func (r *renderer) renderRun(run draftjs.CharRange) (Node, error) {
	content := Text(run.Text)

	if entity := r.doc.FindEntity(run.EntityKey); entity != nil {
		render, _ := r.entities.ValueOf(entity.Type)
		if rendered, ok := render(entity, content, r.doc); ok && rendered != nil {
			content = rendered
		}
	} else if run.EntityKey != "" {
		r.logger.Debug("rendering dangling entity as text", zap.String("key", run.EntityKey))
	}

	if len(run.StyleNames) == 0 {
		return content, nil
	}

	if r.opts.InlineStyleRenderer != nil {
		if rendered, ok := r.opts.InlineStyleRenderer(run.StyleNames, content, r.doc); ok && rendered != nil {
			return rendered, nil
		}
	}

	for i := len(run.StyleNames) - 1; i >= 0; i-- {
		style, ok := r.styles.ValueOf(run.StyleNames[i])
		if !ok || style.Tag == "" {
			return nil, errors.Wrapf(ErrUnknownMapping, "inline style %q", run.StyleNames[i])
		}
		content = Element(style.Tag, style.Attrs, content)
	}

	return content, nil
}

// markDirection tags every element above right-to-left text with
// dir="rtl", up to the top-level element. The direction latch restarts
// with every block.
func (r *renderer) markDirection(el, root *html.Node) {
	r.direction.Reset()

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if r.direction.Update(n.Data) == bidi.RTL {
				for p := n.Parent; p != nil && p != root; p = p.Parent {
					setAttr(p, "dir", "rtl")
				}
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(el)
}

// trimNewlines drops newlines ending the block and, when squeeze is
// set, newlines directly following another newline.
func trimNewlines(runs []draftjs.CharRange, squeeze bool) []draftjs.CharRange {
	for len(runs) > 0 {
		last := &runs[len(runs)-1]
		last.Text = strings.TrimRight(last.Text, "\n")
		if last.Text != "" {
			break
		}
		runs = runs[:len(runs)-1]
	}

	if !squeeze {
		return runs
	}

	var (
		result      []draftjs.CharRange
		prevNewline bool
	)
	for _, run := range runs {
		var sb strings.Builder
		for _, c := range run.Text {
			if c == '\n' && prevNewline {
				continue
			}
			prevNewline = c == '\n'
			sb.WriteRune(c)
		}
		if sb.Len() == 0 {
			continue
		}
		run.Text = sb.String()
		result = append(result, run)
	}
	return result
}

func serialize(body *html.Node) (string, error) {
	restore, err := openVoidElements(body)
	if err != nil {
		return "", err
	}
	defer restore()

	var parts []string
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		var buf bytes.Buffer
		if err := html.Render(&buf, c); err != nil {
			return "", errors.Wrap(err, "failed to render html")
		}
		parts = append(parts, buf.String())
	}
	return strings.Join(parts, "\n"), nil
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

// openVoidElements turns void elements into raw start tags written as
// <br> instead of <br/>. The returned func puts the elements back.
func openVoidElements(root *html.Node) (func(), error) {
	type saved struct {
		node *html.Node
		orig html.Node
	}
	var changed []saved
	restore := func() {
		for _, s := range changed {
			*s.node = s.orig
		}
	}

	var walk func(n *html.Node) error
	walk = func(n *html.Node) error {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Namespace == "" && c.FirstChild == nil && voidElements[c.Data] {
				var buf bytes.Buffer
				if err := html.Render(&buf, c); err != nil {
					return err
				}
				changed = append(changed, saved{node: c, orig: *c})
				c.Type = html.RawNode
				c.Data = strings.TrimSuffix(buf.String(), "/>") + ">"
				c.DataAtom = 0
				c.Attr = nil
				continue
			}
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root); err != nil {
		restore()
		return nil, errors.Wrap(err, "failed to render html")
	}
	return restore, nil
}
