// Package draftjshtml converts between Draft.js raw documents and HTML.
//
// It ties the document model in pkg/draftjs to the renderer in
// pkg/tohtml and the parser in pkg/fromhtml.
package draftjshtml

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/stateful/draftjshtml/pkg/draftjs"
	"github.com/stateful/draftjshtml/pkg/fromhtml"
	"github.com/stateful/draftjshtml/pkg/tohtml"
)

// ToHTML renders a raw document.
func ToHTML(raw *draftjs.RawDraftJS, opts tohtml.Options) (string, error) {
	content, err := draftjs.FromRaw(raw)
	if err != nil {
		return "", err
	}
	return tohtml.Render(content, opts)
}

// ToHTMLJSON renders a document encoded as Draft.js raw JSON.
func ToHTMLJSON(data []byte, opts tohtml.Options) (string, error) {
	content, err := draftjs.Parse(data)
	if err != nil {
		return "", err
	}
	return tohtml.Render(content, opts)
}

func FromHTML(s string, opts fromhtml.Options) (*draftjs.RawDraftJS, error) {
	return fromhtml.Parse(strings.NewReader(s), opts)
}

func FromHTMLReader(r io.Reader, opts fromhtml.Options) (*draftjs.RawDraftJS, error) {
	return fromhtml.Parse(r, opts)
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

// FromMarkdown renders CommonMark source to HTML and parses the result.
// Strikethrough (~~text~~) is recognized.
func FromMarkdown(source []byte, opts fromhtml.Options) (*draftjs.RawDraftJS, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(source, &buf); err != nil {
		return nil, errors.Wrap(err, "failed to convert markdown")
	}
	return fromhtml.Parse(&buf, opts)
}
