package fromhtml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLink() *NodeEntity {
	return &NodeEntity{Type: "LINK", Data: map[string]interface{}{"href": "https://example.com"}}
}

func TestCharListAppend(t *testing.T) {
	l := NewCharList()
	l.Append("hi there!", nil, nil)

	assert.Equal(t, "hi there!", l.Text())
	assert.Equal(t, 9, l.Size())
	require.Len(t, l.Chars(), 9)
	assert.Equal(t, 'h', l.Chars()[0].Rune)
	assert.Nil(t, l.EntityRanges())
	assert.Nil(t, l.StyleRanges())
}

func TestCharListEntityRanges(t *testing.T) {
	t.Run("WholeText", func(t *testing.T) {
		entity := newLink()
		l := NewCharList()
		l.Append("hi there!", entity, nil)

		assert.Equal(t, []EntityRange{{Entity: entity, Start: 0, End: 8}}, l.EntityRanges())
	})

	t.Run("Middle", func(t *testing.T) {
		entity := newLink()
		l := NewCharList()
		l.Append("oh ", nil, nil)
		l.Append("hello", entity, nil)
		l.Append(" there!", nil, nil)

		assert.Equal(t, []EntityRange{{Entity: entity, Start: 3, End: 7}}, l.EntityRanges())
		assert.Equal(t, "oh hello there!", l.Text())
	})

	t.Run("AppliedLater", func(t *testing.T) {
		entity := newLink()
		l := NewCharList()
		l.Append("hi there!", nil, nil)
		l.ApplyEntity(0, 1, entity)

		assert.Equal(t, []EntityRange{{Entity: entity, Start: 0, End: 1}}, l.EntityRanges())
	})

	t.Run("Clamped", func(t *testing.T) {
		entity := newLink()
		l := NewCharList()
		l.Append("hi", nil, nil)
		l.ApplyEntity(-3, 10, entity)

		assert.Equal(t, []EntityRange{{Entity: entity, Start: 0, End: 1}}, l.EntityRanges())
	})

	t.Run("DistinctEntitiesSideBySide", func(t *testing.T) {
		first, second := newLink(), newLink()
		l := NewCharList()
		l.Append("ab", first, nil)
		l.Append("cd", second, nil)

		assert.Equal(t, []EntityRange{
			{Entity: first, Start: 0, End: 1},
			{Entity: second, Start: 2, End: 3},
		}, l.EntityRanges())
	})
}

func TestCharListStyleRanges(t *testing.T) {
	t.Run("Appended", func(t *testing.T) {
		l := NewCharList()
		l.Append("hi there!", nil, []string{"BOLD", "ITALIC"})

		assert.Equal(t, []StyleRange{
			{Style: "BOLD", Start: 0, End: 8},
			{Style: "ITALIC", Start: 0, End: 8},
		}, l.StyleRanges())
	})

	t.Run("AppliedLater", func(t *testing.T) {
		l := NewCharList()
		l.Append("hi there!", nil, nil)
		l.AppendStyles(0, 1, []string{"UNDERSCORE"})

		assert.Equal(t, []StyleRange{{Style: "UNDERSCORE", Start: 0, End: 1}}, l.StyleRanges())
	})

	t.Run("Overlapping", func(t *testing.T) {
		l := NewCharList()
		l.Append("hi there!", nil, nil)
		l.AppendStyles(0, 5, []string{"UNDERSCORE"})
		l.AppendStyles(4, 8, []string{"BOLD"})

		assert.Equal(t, []StyleRange{
			{Style: "UNDERSCORE", Start: 0, End: 5},
			{Style: "BOLD", Start: 4, End: 8},
		}, l.StyleRanges())
	})

	t.Run("Interrupted", func(t *testing.T) {
		l := NewCharList()
		l.Append("ab", nil, []string{"BOLD"})
		l.Append("c", nil, nil)
		l.Append("d", nil, []string{"BOLD"})

		assert.Equal(t, []StyleRange{
			{Style: "BOLD", Start: 0, End: 1},
			{Style: "BOLD", Start: 3, End: 3},
		}, l.StyleRanges())
	})

	t.Run("StylesAreNotShared", func(t *testing.T) {
		styles := []string{"BOLD"}
		l := NewCharList()
		l.Append("ab", nil, styles)
		styles[0] = "ITALIC"
		l.AppendStyles(0, 0, []string{"CODE"})

		assert.Equal(t, []string{"BOLD", "CODE"}, l.Chars()[0].Styles)
		assert.Equal(t, []string{"BOLD"}, l.Chars()[1].Styles)
	})
}

func TestCharListConcat(t *testing.T) {
	first := NewCharList()
	first.Append("hi ", nil, nil)
	first.ApplyEntity(0, 1, newLink())
	second := NewCharList()
	second.Append("there!", nil, nil)
	second.ApplyEntity(0, 1, newLink())

	l := first.Concat(second)

	assert.Equal(t, "hi there!", l.Text())
	ranges := l.EntityRanges()
	require.Len(t, ranges, 2)
	assert.Equal(t, [2]int{0, 1}, [2]int{ranges[0].Start, ranges[0].End})
	assert.Equal(t, [2]int{3, 4}, [2]int{ranges[1].Start, ranges[1].End})
	assert.Equal(t, 3, first.Size(), "receiver must not change")
}

func TestCharListLines(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		l := NewCharList()
		l.Append("line1\nline2\nline3", nil, nil)

		var texts []string
		for _, line := range l.Lines() {
			texts = append(texts, line.Text())
		}
		assert.Equal(t, []string{"line1", "line2", "line3"}, texts)
	})

	t.Run("KeepsEntities", func(t *testing.T) {
		entity := newLink()
		l := NewCharList()
		l.Append("line1\nline2\nline3", nil, nil)
		l.ApplyEntity(6, 10, entity)

		lines := l.Lines()
		require.Len(t, lines, 3)
		assert.Nil(t, lines[0].EntityRanges())
		assert.Equal(t, []EntityRange{{Entity: entity, Start: 0, End: 4}}, lines[1].EntityRanges())
		assert.Nil(t, lines[2].EntityRanges())
	})

	t.Run("EmptyLines", func(t *testing.T) {
		l := NewCharList()
		l.Append("a\n\n", nil, nil)

		lines := l.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "a", lines[0].Text())
		assert.Equal(t, "", lines[1].Text())
	})
}

func TestCharListAtomicEntity(t *testing.T) {
	t.Run("Alone", func(t *testing.T) {
		l := NewCharList()
		l.AppendAtomicEntity(newLink())

		assert.Equal(t, " ", l.Text())
		assert.True(t, l.Atomic())
	})

	t.Run("AfterText", func(t *testing.T) {
		l := NewCharList()
		l.Append("pre-entity", nil, nil)
		l.AppendAtomicEntity(newLink())

		assert.Equal(t, "pre-entity\n ", l.Text())
		assert.False(t, l.Atomic())
	})

	t.Run("BeforeText", func(t *testing.T) {
		l := NewCharList()
		l.Append("pre-entity", nil, nil)
		l.AppendAtomicEntity(newLink())
		l.Append("post-entity", nil, nil)

		assert.Equal(t, "pre-entity\n \npost-entity", l.Text())
	})

	t.Run("AfterLineBreak", func(t *testing.T) {
		l := NewCharList()
		l.Append("text", nil, nil)
		l.AppendChar(Char{Rune: '\n'})
		l.AppendAtomicEntity(newLink())

		assert.Equal(t, "text\n ", l.Text())
	})
}

func TestCharListMoreThanWhitespace(t *testing.T) {
	l := NewCharList()
	assert.False(t, l.MoreThanWhitespace())

	l.Append(" \t ", nil, nil)
	assert.False(t, l.MoreThanWhitespace())

	l.Append("x", nil, nil)
	assert.True(t, l.MoreThanWhitespace())
}
