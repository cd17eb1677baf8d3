// Package fromhtml converts HTML into Draft.js raw content.
//
// The input is consumed as a token stream. Open block elements are kept
// on an explicit stack, so arbitrarily deep or unbalanced markup never
// grows the call stack. Malformed HTML is normalized, never rejected.
package fromhtml

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/stateful/draftjshtml/internal/log"
	"github.com/stateful/draftjshtml/pkg/draftjs"
)

type Options struct {
	// NodeToEntity classifies elements into entities.
	// Defaults to DefaultNodeToEntity.
	NodeToEntity NodeToEntityFunc
	// SqueezeWhitespaceBlocks drops blocks made only of whitespace.
	SqueezeWhitespaceBlocks bool
	Logger                  *zap.Logger
}

// ParseString converts an HTML fragment or document.
func ParseString(s string, opts Options) (*draftjs.RawDraftJS, error) {
	return Parse(strings.NewReader(s), opts)
}

// Parse converts HTML read from r. Only errors from r are returned.
func Parse(r io.Reader, opts Options) (*draftjs.RawDraftJS, error) {
	if opts.NodeToEntity == nil {
		opts.NodeToEntity = DefaultNodeToEntity
	}

	p := &parser{
		opts:    opts,
		logger:  log.Or(opts.Logger),
		builder: draftjs.NewBuilder(),
	}
	p.stack = newDepthStack(p.builder, p.logger, opts.SqueezeWhitespaceBlocks)

	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, errors.Wrap(err, "failed to read html")
			}
			p.stack.closeAll()
			return p.builder.Raw(), nil
		case html.TextToken:
			p.text(string(z.Text()))
		case html.StartTagToken:
			tok := z.Token()
			p.startElement(tok)
			if voidElements[tok.DataAtom] {
				p.endElement(tok.Data, tok.DataAtom)
			}
		case html.SelfClosingTagToken:
			tok := z.Token()
			p.startElement(tok)
			p.endElement(tok.Data, tok.DataAtom)
		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if voidElements[a] {
				continue
			}
			p.endElement(string(name), a)
		}
	}
}

type parser struct {
	opts    Options
	logger  *zap.Logger
	builder *draftjs.Builder
	stack   *depthStack

	styles []string
	// skip counts open elements whose content is not text.
	skip int
}

func (p *parser) text(text string) {
	if p.skip > 0 {
		return
	}
	text = squeezeText(text)
	if text == "" {
		return
	}
	p.stack.current().chars.Append(text, nil, p.activeStyles())
}

func (p *parser) startElement(tok html.Token) {
	if nonContentElements[tok.DataAtom] {
		p.skip++
		return
	}
	if p.skip > 0 {
		return
	}

	switch {
	case tok.DataAtom == atom.Br:
		p.stack.current().chars.AppendChar(Char{Rune: lineBreak})
		return
	case listElements[tok.DataAtom]:
		p.stack.pushList(tok.Data)
		return
	case blockElements[tok.DataAtom]:
		p.stack.push(tok.Data)
	default:
		if style, ok := styleElements[tok.DataAtom]; ok {
			p.styles = append(p.styles, style)
		}
	}

	current := p.stack.current()
	current.pendingEntities = append(current.pendingEntities, &pendingEntity{
		tag:   tok.Data,
		start: current.chars.Size(),
		attrs: attributes(tok.Attr),
	})
}

func (p *parser) endElement(name string, a atom.Atom) {
	if nonContentElements[a] {
		if p.skip > 0 {
			p.skip--
		}
		return
	}
	if p.skip > 0 || a == atom.Br {
		return
	}

	if listElements[a] {
		p.stack.popList(name)
		return
	}

	p.resolveEntity(name)

	if blockElements[a] {
		p.stack.pop(name)
		return
	}

	if style, ok := styleElements[a]; ok {
		p.popStyle(style)
	}
}

// resolveEntity classifies the innermost element named tag that is still
// waiting in the current block. Elements that enclosed no text get a
// placeholder character so the entity has something to cover.
func (p *parser) resolveEntity(tag string) {
	current := p.stack.current()
	pending := current.takeEntity(tag)
	if pending == nil {
		return
	}

	chars := current.chars
	end := chars.Size() - 1
	content := ""
	if pending.start <= end {
		content = chars.TextRange(pending.start, end)
	}

	entity, ok := p.opts.NodeToEntity(tag, content, pending.attrs)
	if !ok {
		return
	}
	e := &entity

	switch {
	case pending.start <= end:
		chars.ApplyEntity(pending.start, end, e)
	case e.Atomic:
		chars.AppendAtomicEntity(e)
	default:
		chars.Append(string(entityPlaceholder), e, p.activeStyles())
	}
}

func (p *parser) popStyle(style string) {
	for i := len(p.styles) - 1; i >= 0; i-- {
		if p.styles[i] == style {
			p.styles = slices.Delete(p.styles, i, i+1)
			return
		}
	}
}

// activeStyles lists each open style once, outermost first.
func (p *parser) activeStyles() []string {
	var result []string
	for _, s := range p.styles {
		if !slices.Contains(result, s) {
			result = append(result, s)
		}
	}
	return result
}

func attributes(attrs []html.Attribute) map[string]string {
	result := make(map[string]string, len(attrs))
	for _, a := range attrs {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		result[key] = a.Val
	}
	return result
}
