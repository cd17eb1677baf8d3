package tohtml

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/stateful/draftjshtml/pkg/draftjs"
)

func render(t *testing.T, b *draftjs.Builder, opts Options) string {
	t.Helper()
	content, err := draftjs.FromRaw(b.Raw())
	require.NoError(t, err)
	out, err := Render(content, opts)
	require.NoError(t, err)
	return out
}

func TestRender(t *testing.T) {
	t.Run("Paragraphs", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("Hello world!").
			TextBlock("Winter is coming."), Options{})
		assert.Equal(t, "<p>Hello world!</p>\n<p>Winter is coming.</p>", out)
	})

	t.Run("Headers", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TypedBlock("header-one", "Title", 0).
			TypedBlock("blockquote", "Quote", 0).
			TypedBlock("paragraph", "Body", 0), Options{})
		assert.Equal(t, "<h1>Title</h1>\n<blockquote>Quote</blockquote>\n<p>Body</p>", out)
	})

	t.Run("Empty", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder(), Options{})
		assert.Equal(t, "", out)
	})

	t.Run("CodeBlocksShareWrapper", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TypedBlock("code-block", "a := 1", 0).
			TypedBlock("code-block", "b := 2", 0).
			TextBlock("after"), Options{})
		assert.Equal(t, "<pre><code>a := 1</code><code>b := 2</code></pre>\n<p>after</p>", out)
	})

	t.Run("EscapesText", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock(`puts "some code" & <b>unsafe</b>`), Options{})
		assert.Equal(t, "<p>puts &#34;some code&#34; &amp; &lt;b&gt;unsafe&lt;/b&gt;</p>", out)
	})
}

func TestRenderInlineStyles(t *testing.T) {
	t.Run("Overlapping", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("afterward").
			InlineStyle("BOLD", 5, 8).
			InlineStyle("ITALIC", 0, 5), Options{})
		assert.Equal(t, "<p><i>after</i><b><i>w</i></b><b>ard</b></p>", out)
	})

	t.Run("SameStyleOverlapping", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("abcdefg").
			InlineStyle("BOLD", 0, 3).
			InlineStyle("BOLD", 2, 5), Options{})
		assert.Equal(t, "<p><b>abcdef</b>g</p>", out)
	})

	t.Run("SameStyleDisjoint", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("abcdefg").
			InlineStyle("BOLD", 0, 1).
			InlineStyle("BOLD", 4, 5), Options{})
		assert.Equal(t, "<p><b>ab</b>cd<b>ef</b>g</p>", out)
	})

	t.Run("StyleMappingOverride", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("bold").
			InlineStyle("BOLD", 0, 3), Options{
			StyleMapping: map[string]StyleTag{
				"BOLD": {Tag: "strong", Attrs: []html.Attribute{Attr("class", "x")}},
			},
		})
		assert.Equal(t, `<p><strong class="x">bold</strong></p>`, out)
	})

	t.Run("Highlight", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("look").
			InlineStyle("HIGHLIGHT", 0, 3), Options{})
		assert.Equal(t, "<p><em>look</em></p>", out)
	})

	t.Run("DecliningRendererFallsBack", func(t *testing.T) {
		var seen [][]string
		out := render(t, draftjs.NewBuilder().
			TextBlock("plain bold").
			InlineStyle("BOLD", 6, 9), Options{
			InlineStyleRenderer: func(styles []string, _ Node, _ *draftjs.Content) (Node, bool) {
				seen = append(seen, styles)
				return nil, false
			},
		})
		assert.Equal(t, "<p>plain <b>bold</b></p>", out)
		assert.Equal(t, [][]string{{"BOLD"}}, seen)
	})
}

func TestRenderUnknownMapping(t *testing.T) {
	t.Run("BlockType", func(t *testing.T) {
		content, err := draftjs.FromRaw(draftjs.NewBuilder().TypedBlock("custom", "text", 0).Raw())
		require.NoError(t, err)

		out, err := Render(content, Options{})
		assert.True(t, errors.Is(err, ErrUnknownMapping))
		assert.Empty(t, out)

		out, err = Render(content, Options{BlockTypeMapping: map[string]string{"custom": "section"}})
		require.NoError(t, err)
		assert.Equal(t, "<section>text</section>", out)
	})

	t.Run("Style", func(t *testing.T) {
		content, err := draftjs.FromRaw(draftjs.NewBuilder().
			TextBlock("text").
			InlineStyle("SPARKLE", 0, 1).Raw())
		require.NoError(t, err)

		_, err = Render(content, Options{})
		assert.True(t, errors.Is(err, ErrUnknownMapping))
	})
}

func TestRenderEntities(t *testing.T) {
	t.Run("Link", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("Let's GO").
			ApplyEntity("LINK", 6, 7, draftjs.WithMutability(draftjs.Mutable), draftjs.WithData(map[string]interface{}{
				"url":       "https://example.com",
				"target":    "_blank",
				"className": "link",
				"ignored":   "value",
			})), Options{})
		assert.Equal(t, `<p>Let&#39;s <a href="https://example.com" target="_blank" class="link">GO</a></p>`, out)
	})

	t.Run("LinkHrefWinsOverURL", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("Hi, a").
			ApplyEntity("LINK", 4, 4, draftjs.WithData(map[string]interface{}{
				"url":  "https://example.com/old",
				"href": "https://example.com/kittens",
			})), Options{})
		assert.Equal(t, `<p>Hi, <a href="https://example.com/kittens">a</a></p>`, out)
	})

	t.Run("Image", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TypedBlock("atomic", " ", 0).
			ApplyEntity("IMAGE", 0, 0, draftjs.WithData(map[string]interface{}{
				"src":       "https://example.com/kitten.png",
				"alt":       "A kitten!",
				"className": "my-image",
				"width":     300,
			})), Options{})
		assert.Equal(t, `<figure><img src="https://example.com/kitten.png" alt="A kitten!" class="my-image" width="300"></figure>`, out)
	})

	t.Run("UnknownTypeKeepsText", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("@sansa").
			ApplyEntity("mention", 0, 5), Options{})
		assert.Equal(t, "<p>@sansa</p>", out)
	})

	t.Run("DanglingReference", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("dangling").
			EntityRange("missing", 0, 7), Options{})
		assert.Equal(t, "<p>dangling</p>", out)
	})

	t.Run("CustomNode", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("@branstark").
			ApplyEntity("mention", 0, 9, draftjs.WithData(map[string]interface{}{"url": "https://example.com/users/1"})), Options{
			EntityStyleMappings: map[string]EntityRenderer{
				"mention": func(entity *draftjs.Entity, content Node, _ *draftjs.Content) (Node, bool) {
					return Element("a", []html.Attribute{Attr("href", entity.Data["url"].(string))}, content), true
				},
			},
		})
		assert.Equal(t, `<p><a href="https://example.com/users/1">@branstark</a></p>`, out)
	})

	t.Run("EntityInsideStyles", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("go here").
			InlineStyle("BOLD", 0, 6).
			ApplyEntity("LINK", 3, 6, draftjs.WithData(map[string]interface{}{"url": "/here"})), Options{})
		assert.Equal(t, `<p><b>go </b><b><a href="/here">here</a></b></p>`, out)
	})
}

func TestRenderInjection(t *testing.T) {
	escaped := "<p>&lt;a&gt;will-be-escaped&lt;/a&gt;</p>"

	injectEntity := func(*draftjs.Entity, Node, *draftjs.Content) (Node, bool) {
		return Text("<a>will-be-escaped</a>"), true
	}
	injectStyle := func([]string, Node, *draftjs.Content) (Node, bool) {
		return Text("<a>will-be-escaped</a>"), true
	}

	t.Run("Entity", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("afterward").
			ApplyEntity("mention", 0, 8), Options{
			EntityStyleMappings: map[string]EntityRenderer{"mention": injectEntity},
		})
		assert.Equal(t, escaped, out)
	})

	t.Run("InlineStyle", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("afterward").
			InlineStyle("BOLD", 0, 8), Options{
			InlineStyleRenderer: injectStyle,
		})
		assert.Equal(t, escaped, out)
	})

	t.Run("Both", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("afterward").
			InlineStyle("BOLD", 0, 8).
			ApplyEntity("mention", 0, 8), Options{
			EntityStyleMappings: map[string]EntityRenderer{"mention": injectEntity},
			InlineStyleRenderer: injectStyle,
		})
		assert.Equal(t, escaped, out)
	})

	t.Run("RawNode", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("@rickardstark").
			InlineStyle("BOLD", 0, 12), Options{
			InlineStyleRenderer: func(_ []string, _ Node, _ *draftjs.Content) (Node, bool) {
				n := &html.Node{Type: html.ElementNode, Data: "b", DataAtom: atom.B}
				n.AppendChild(&html.Node{Type: html.TextNode, Data: "@rickardstark"})
				return Raw(n), true
			},
		})
		assert.Equal(t, "<p><b>@rickardstark</b></p>", out)
	})
}

func TestRenderVoidElements(t *testing.T) {
	t.Run("EscapedAttribute", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TypedBlock("atomic", " ", 0).
			ApplyEntity("IMAGE", 0, 0, draftjs.WithData(map[string]interface{}{
				"src": "/k.png",
				"alt": `a/>b"`,
			})), Options{})
		assert.Equal(t, `<figure><img src="/k.png" alt="a/&gt;b&#34;"></figure>`, out)
	})

	t.Run("RawNodeIsRestored", func(t *testing.T) {
		hr := &html.Node{Type: html.ElementNode, Data: "hr", DataAtom: atom.Hr, Attr: []html.Attribute{Attr("class", "rule")}}
		out := render(t, draftjs.NewBuilder().
			TextBlock("x").
			InlineStyle("BOLD", 0, 0), Options{
			InlineStyleRenderer: func(_ []string, _ Node, _ *draftjs.Content) (Node, bool) {
				return Raw(hr), true
			},
		})
		assert.Equal(t, `<p><hr class="rule"></p>`, out)
		assert.Equal(t, html.ElementNode, hr.Type)
		assert.Equal(t, "hr", hr.Data)
		assert.Equal(t, []html.Attribute{Attr("class", "rule")}, hr.Attr)
	})
}

func TestRenderNewlines(t *testing.T) {
	t.Run("EmptyBlockIsBreak", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("Gimme a").
			TextBlock(""), Options{})
		assert.Equal(t, "<p>Gimme a</p>\n<br>", out)
	})

	t.Run("EmbeddedNewlines", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("Gimme a\nGimme a\n"), Options{})
		assert.Equal(t, "<p>Gimme a<br>Gimme a</p>", out)
	})

	t.Run("TrailingNewlines", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("Valar Morghulis\n"), Options{SqueezeNewlines: true})
		assert.Equal(t, "<p>Valar Morghulis</p>", out)
	})

	t.Run("Squeeze", func(t *testing.T) {
		b := draftjs.NewBuilder().TextBlock("Winter\n\nis coming")
		assert.Equal(t, "<p>Winter<br><br>is coming</p>", render(t, b, Options{}))
		assert.Equal(t, "<p>Winter<br>is coming</p>", render(t, b, Options{SqueezeNewlines: true}))
	})

	t.Run("SqueezeAcrossStyleRanges", func(t *testing.T) {
		out := render(t, draftjs.NewBuilder().
			TextBlock("There is only one thing we say to death:\n\nNot today.").
			InlineStyle("BOLD", 42, 51), Options{SqueezeNewlines: true})
		assert.Equal(t, "<p>There is only one thing we say to death:<br><b>Not today.</b></p>", out)
	})
}

func TestRenderEncoding(t *testing.T) {
	b := draftjs.NewBuilder().TextBlock("café ☃")

	assert.Equal(t, "<p>café ☃</p>", render(t, b, Options{}))
	assert.Equal(t, "<p>caf\xe9 &#9731;</p>", render(t, b, Options{Encoding: "windows-1252"}))

	content, err := draftjs.FromRaw(b.Raw())
	require.NoError(t, err)
	_, err = Render(content, Options{Encoding: "klingon"})
	assert.Error(t, err)
}
