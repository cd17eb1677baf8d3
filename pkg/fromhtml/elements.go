package fromhtml

import (
	"golang.org/x/net/html/atom"
)

var styleElements = map[atom.Atom]string{
	atom.B:      "BOLD",
	atom.Strong: "BOLD",
	atom.I:      "ITALIC",
	atom.Em:     "ITALIC",
	atom.U:      "UNDERLINE",
	atom.Del:    "STRIKETHROUGH",
	atom.S:      "STRIKETHROUGH",
	atom.Strike: "STRIKETHROUGH",
	atom.Small:  "SMALL",
	atom.Sub:    "SUBSCRIPT",
	atom.Sup:    "SUPERSCRIPT",
	atom.Code:   "CODE",
}

var listElements = map[atom.Atom]bool{
	atom.Ol: true,
	atom.Ul: true,
}

// Elements whose content never becomes text.
var nonContentElements = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Head:     true,
	atom.Title:    true,
	atom.Template: true,
	atom.Noscript: true,
}

// Elements that open a pending block. Anything not listed here, nor
// classified above, is transparent: its text flows into the enclosing block.
var blockElements = map[atom.Atom]bool{
	atom.P:          true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Blockquote: true,
	atom.Figure:     true,
	atom.Pre:        true,
	atom.Li:         true,
	atom.Tr:         true,
	atom.Div:        true,
	atom.Section:    true,
	atom.Article:    true,
	atom.Aside:      true,
	atom.Main:       true,
	atom.Header:     true,
	atom.Footer:     true,
	atom.Nav:        true,
	atom.Address:    true,
	atom.Dd:         true,
	atom.Dl:         true,
	atom.Dt:         true,
	atom.Fieldset:   true,
	atom.Figcaption: true,
	atom.Form:       true,
	atom.Hr:         true,
	atom.Tfoot:      true,
	atom.Video:      true,
	atom.Caption:    true,
	atom.Details:    true,
	atom.Summary:    true,
}

var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// Closing a block whose parent is one of these writes it out instead of
// merging it into the parent. The empty name is the document root.
var flushBoundaries = map[string]bool{
	"":        true,
	"div":     true,
	"section": true,
	"article": true,
	"aside":   true,
	"main":    true,
	"header":  true,
	"footer":  true,
	"nav":     true,
	"ol":      true,
	"ul":      true,
	"li":      true,
	"tr":      true,
}

var blockTypes = map[string]string{
	"p":          "unstyled",
	"h1":         "header-one",
	"h2":         "header-two",
	"h3":         "header-three",
	"h4":         "header-four",
	"h5":         "header-five",
	"h6":         "header-six",
	"blockquote": "blockquote",
	"figure":     "atomic",
	"pre":        "code-block",
}

const (
	atomicBlockType   = "atomic"
	orderedListItem   = "ordered-list-item"
	unorderedListItem = "unordered-list-item"
	defaultBlockType  = "unstyled"

	entityPlaceholder = ' '
	lineBreak         = '\n'
)
