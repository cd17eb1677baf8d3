package tohtml

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/stateful/draftjshtml/pkg/draftjs"
)

// StyleTag is the element an inline style renders as.
type StyleTag struct {
	Tag   string
	Attrs []html.Attribute
}

var defaultBlockTypes = map[string]string{
	"paragraph":           "p",
	"unstyled":            "p",
	"header-one":          "h1",
	"header-two":          "h2",
	"header-three":        "h3",
	"header-four":         "h4",
	"header-five":         "h5",
	"header-six":          "h6",
	"blockquote":          "blockquote",
	"code-block":          "code",
	"ordered-list-item":   "li",
	"unordered-list-item": "li",
	"atomic":              "figure",
}

// Block types rendered inside a shared wrapper element.
var blockWrappers = map[string]string{
	"code-block":          "pre",
	"ordered-list-item":   "ol",
	"unordered-list-item": "ul",
}

var defaultStyles = map[string]StyleTag{
	"BOLD":          {Tag: "b"},
	"ITALIC":        {Tag: "i"},
	"STRIKETHROUGH": {Tag: "del"},
	"UNDERLINE":     {Tag: "u"},
	"SMALL":         {Tag: "small"},
	"SUBSCRIPT":     {Tag: "sub"},
	"SUPERSCRIPT":   {Tag: "sup"},
	"CODE":          {Tag: "code"},
	"HIGHLIGHT":     {Tag: "em"},
	"RTL":           {Tag: "div", Attrs: []html.Attribute{{Key: "dir", Val: "rtl"}}},
}

var defaultEntityRenderers = map[string]EntityRenderer{
	"LINK":  renderLink,
	"IMAGE": renderImage,
}

var entityAttributeNames = map[string]string{
	"className": "class",
	"url":       "href",
}

var (
	linkDataKeys  = []string{"url", "href", "rel", "target", "title", "className"}
	imageDataKeys = []string{"src", "alt", "className", "width", "height"}
)

func renderLink(entity *draftjs.Entity, content Node, _ *draftjs.Content) (Node, bool) {
	return Element("a", entityAttributes(entity, linkDataKeys), content), true
}

func renderImage(entity *draftjs.Entity, _ Node, _ *draftjs.Content) (Node, bool) {
	return Element("img", entityAttributes(entity, imageDataKeys), nil), true
}

func renderEntityContent(_ *draftjs.Entity, content Node, _ *draftjs.Content) (Node, bool) {
	return content, true
}

// entityAttributes picks known data keys in a fixed order, renaming
// Draft.js names to HTML ones. A later key replaces an earlier one
// mapped to the same attribute.
func entityAttributes(entity *draftjs.Entity, dataKeys []string) []html.Attribute {
	var attrs []html.Attribute
	for _, key := range dataKeys {
		v, ok := entity.Data[key]
		if !ok || v == nil {
			continue
		}

		name := key
		if renamed, ok := entityAttributeNames[key]; ok {
			name = renamed
		}

		val := fmt.Sprint(v)
		replaced := false
		for i := range attrs {
			if attrs[i].Key == name {
				attrs[i].Val = val
				replaced = true
			}
		}
		if !replaced {
			attrs = append(attrs, html.Attribute{Key: name, Val: val})
		}
	}
	return attrs
}
