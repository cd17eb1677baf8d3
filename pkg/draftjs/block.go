package draftjs

import (
	"golang.org/x/exp/slices"
)

const DefaultBlockType = "unstyled"

type Block struct {
	Key   string
	Text  string
	Type  string
	Depth int
	Data  map[string]interface{}

	inlineStyles []*ApplicableRange
	entityRanges []*ApplicableRange
}

func newBlock(raw RawBlock) *Block {
	b := &Block{
		Key:   raw.Key,
		Text:  raw.Text,
		Type:  raw.Type,
		Depth: raw.Depth,
		Data:  raw.Data,
	}
	if b.Type == "" {
		b.Type = DefaultBlockType
	}
	for _, r := range raw.InlineStyleRanges {
		b.inlineStyles = append(b.inlineStyles, NewApplicableRange(r.Style, r.Offset, r.Length))
	}
	for _, r := range raw.EntityRanges {
		b.entityRanges = append(b.entityRanges, NewApplicableRange(r.Key, r.Offset, r.Length))
	}
	return b
}

// Length is the number of characters (unicode scalars) in the block.
func (b *Block) Length() int {
	return len([]rune(b.Text))
}

// Blank reports whether the block has neither text nor entities.
func (b *Block) Blank() bool {
	return b.Text == "" && len(b.entityRanges) == 0
}

func (b *Block) Plaintext() string {
	return b.Text
}

func (b *Block) InlineStyles() []*ApplicableRange {
	return b.inlineStyles
}

func (b *Block) EntityRanges() []*ApplicableRange {
	return b.entityRanges
}

// AddStyle applies a style to the inclusive range [start, end].
func (b *Block) AddStyle(name string, start, end int) {
	b.inlineStyles = append(b.inlineStyles, &ApplicableRange{Name: name, Start: start, End: end})
}

func (b *Block) addEntityRange(key string, start, end int) {
	b.entityRanges = append(b.entityRanges, &ApplicableRange{Name: key, Start: start, End: end})
}

// Char describes a single character with the styles and the entity covering it.
type Char struct {
	Char       rune
	StyleNames []string
	EntityKey  string
}

// Chars resolves styles and entities per character. Style names keep the
// order of the style ranges, each name listed once. The entity key is the
// first entity range covering the index.
func (b *Block) Chars() []Char {
	runes := []rune(b.Text)
	result := make([]Char, 0, len(runes))

	for i, r := range runes {
		var styles []string
		for _, s := range b.inlineStyles {
			if s.Covers(i) && !slices.Contains(styles, s.Name) {
				styles = append(styles, s.Name)
			}
		}

		var entityKey string
		for _, e := range b.entityRanges {
			if e.Covers(i) {
				entityKey = e.Name
				break
			}
		}

		result = append(result, Char{Char: r, StyleNames: styles, EntityKey: entityKey})
	}

	return result
}

// CharRange is a maximal run of characters sharing styles and entity.
type CharRange struct {
	Text       string
	StyleNames []string
	EntityKey  string
}

// Ranges coalesces Chars into maximal runs. A block without text
// yields a single empty run.
func (b *Block) Ranges() []CharRange {
	chars := b.Chars()
	if len(chars) == 0 {
		return []CharRange{{}}
	}

	var (
		result []CharRange
		text   []rune
	)

	for i, c := range chars {
		if i > 0 {
			prev := chars[i-1]
			if prev.EntityKey != c.EntityKey || !slices.Equal(prev.StyleNames, c.StyleNames) {
				result = append(result, CharRange{Text: string(text), StyleNames: prev.StyleNames, EntityKey: prev.EntityKey})
				text = nil
			}
		}
		text = append(text, c.Char)
	}

	last := chars[len(chars)-1]
	result = append(result, CharRange{Text: string(text), StyleNames: last.StyleNames, EntityKey: last.EntityKey})

	return result
}

func (b *Block) toRaw() RawBlock {
	raw := RawBlock{
		Key:               b.Key,
		Text:              b.Text,
		Type:              b.Type,
		Depth:             b.Depth,
		InlineStyleRanges: make([]RawInlineStyleRange, 0, len(b.inlineStyles)),
		EntityRanges:      make([]RawEntityRange, 0, len(b.entityRanges)),
		Data:              b.Data,
	}
	for _, s := range b.inlineStyles {
		raw.InlineStyleRanges = append(raw.InlineStyleRanges, RawInlineStyleRange{Style: s.Name, Offset: s.Offset(), Length: s.Length()})
	}
	for _, e := range b.entityRanges {
		raw.EntityRanges = append(raw.EntityRanges, RawEntityRange{Key: e.Name, Offset: e.Offset(), Length: e.Length()})
	}
	return raw
}
