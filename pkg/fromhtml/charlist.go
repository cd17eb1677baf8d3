package fromhtml

import (
	"strings"
	"unicode"

	"golang.org/x/exp/slices"
)

// Char is one buffered character with the attributes active when it
// was read. Entities are compared by pointer.
type Char struct {
	Rune   rune
	Styles []string
	Entity *NodeEntity
	Atomic bool
}

// CharList accumulates characters and turns their attributes back into
// ranges.
type CharList struct {
	chars []Char
}

func NewCharList() *CharList {
	return &CharList{}
}

func (l *CharList) Chars() []Char {
	return l.chars
}

// Append adds text carrying entity and styles. Text never shares a line
// with an atomic character, so a newline is inserted after one.
func (l *CharList) Append(text string, entity *NodeEntity, styles []string) {
	if l.lastAtomic() {
		l.chars = append(l.chars, Char{Rune: lineBreak})
	}

	var shared []string
	if len(styles) > 0 {
		shared = slices.Clone(styles)
	}
	for _, r := range text {
		l.chars = append(l.chars, Char{Rune: r, Styles: shared, Entity: entity})
	}
}

func (l *CharList) AppendChar(c Char) {
	l.chars = append(l.chars, c)
}

// AppendAtomicEntity adds a placeholder character on a line of its own.
func (l *CharList) AppendAtomicEntity(entity *NodeEntity) {
	if n := len(l.chars); n > 0 && l.chars[n-1].Rune != lineBreak {
		l.chars = append(l.chars, Char{Rune: lineBreak})
	}
	l.chars = append(l.chars, Char{Rune: entityPlaceholder, Entity: entity, Atomic: true})
}

// ApplyEntity attaches entity to the inclusive range [start, end].
func (l *CharList) ApplyEntity(start, end int, entity *NodeEntity) {
	start, end = l.clamp(start, end)
	for i := start; i <= end; i++ {
		l.chars[i].Entity = entity
	}
}

// AppendStyles adds styles to the inclusive range [start, end].
func (l *CharList) AppendStyles(start, end int, styles []string) {
	start, end = l.clamp(start, end)
	for i := start; i <= end; i++ {
		merged := slices.Clone(l.chars[i].Styles)
		for _, s := range styles {
			if !slices.Contains(merged, s) {
				merged = append(merged, s)
			}
		}
		l.chars[i].Styles = merged
	}
}

// Concat returns a new list with the characters of l followed by other.
func (l *CharList) Concat(other *CharList) *CharList {
	chars := make([]Char, 0, len(l.chars)+len(other.chars))
	chars = append(chars, l.chars...)
	chars = append(chars, other.chars...)
	return &CharList{chars: chars}
}

func (l *CharList) Text() string {
	return l.TextRange(0, len(l.chars)-1)
}

// TextRange returns the text of the inclusive range [start, end].
func (l *CharList) TextRange(start, end int) string {
	start, end = l.clamp(start, end)
	var sb strings.Builder
	for i := start; i <= end; i++ {
		sb.WriteRune(l.chars[i].Rune)
	}
	return sb.String()
}

func (l *CharList) Size() int {
	return len(l.chars)
}

// Atomic reports whether the list is non-empty and holds only atomic characters.
func (l *CharList) Atomic() bool {
	if len(l.chars) == 0 {
		return false
	}
	for _, c := range l.chars {
		if !c.Atomic {
			return false
		}
	}
	return true
}

func (l *CharList) MoreThanWhitespace() bool {
	for _, c := range l.chars {
		if !unicode.IsSpace(c.Rune) {
			return true
		}
	}
	return false
}

// Lines splits the list on newline characters. Every newline ends a
// line, possibly an empty one; text after the last newline forms a
// final line only when it is not empty.
func (l *CharList) Lines() []*CharList {
	var (
		lines []*CharList
		line  = NewCharList()
	)
	for _, c := range l.chars {
		if c.Rune == lineBreak {
			lines = append(lines, line)
			line = NewCharList()
			continue
		}
		line.AppendChar(c)
	}
	if line.Size() > 0 {
		lines = append(lines, line)
	}
	return lines
}

type EntityRange struct {
	Entity *NodeEntity
	Start  int
	End    int
}

// EntityRanges returns the maximal runs of characters sharing an entity.
func (l *CharList) EntityRanges() []EntityRange {
	var result []EntityRange
	for i, c := range l.chars {
		if c.Entity == nil {
			continue
		}
		if n := len(result); n > 0 && result[n-1].Entity == c.Entity && result[n-1].End == i-1 {
			result[n-1].End = i
			continue
		}
		result = append(result, EntityRange{Entity: c.Entity, Start: i, End: i})
	}
	return result
}

type StyleRange struct {
	Style string
	Start int
	End   int
}

// StyleRanges returns one range per uninterrupted run of each style,
// ordered by start and, for equal starts, by the order the styles were
// applied.
func (l *CharList) StyleRanges() []StyleRange {
	var (
		result []StyleRange
		open   = make(map[string]int)
	)
	for i, c := range l.chars {
		for style := range open {
			if !slices.Contains(c.Styles, style) {
				delete(open, style)
			}
		}
		for _, style := range c.Styles {
			if idx, ok := open[style]; ok {
				result[idx].End = i
				continue
			}
			open[style] = len(result)
			result = append(result, StyleRange{Style: style, Start: i, End: i})
		}
	}
	return result
}

func (l *CharList) lastAtomic() bool {
	n := len(l.chars)
	return n > 0 && l.chars[n-1].Atomic
}

func (l *CharList) clamp(start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end >= len(l.chars) {
		end = len(l.chars) - 1
	}
	return start, end
}
