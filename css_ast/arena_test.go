package css_ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateNodeAndChildren(t *testing.T) {
	source := "a { color: red; }"
	arena := NewArena(len(source))

	rule := arena.CreateNode(KindStyleRule, 0, int32(len(source)), 1, 1)
	selList := arena.CreateNode(KindSelectorList, 0, 1, 1, 1)
	block := arena.CreateNode(KindBlock, 2, int32(len(source))-2-1, 1, 3)
	arena.AppendChildren(rule, []Index{selList, block})

	decl := arena.CreateNode(KindDeclaration, 4, 11, 1, 5)
	arena.SetContentStartDelta(decl, 0)
	arena.SetContentLength(decl, 5)
	arena.SetValueStartDelta(decl, 7)
	arena.SetValueLength(decl, 3)
	arena.AppendChildren(block, []Index{decl})

	ruleHandle := Handle{Arena: arena, Source: source, Index: rule}
	assert.Equal(t, KindStyleRule, ruleHandle.Kind())
	assert.Equal(t, KindSelectorList, ruleHandle.FirstChild().Kind())
	assert.Equal(t, KindBlock, ruleHandle.FirstChild().NextSibling().Kind())
	assert.True(t, ruleHandle.FirstChild().NextSibling().NextSibling().IsNull())

	declHandle := Handle{Arena: arena, Source: source, Index: decl}
	assert.Equal(t, "color", declHandle.Name())
	assert.Equal(t, "red", declHandle.Value())
	assert.False(t, declHandle.Important())

	arena.SetFlag(decl, FlagImportant)
	assert.True(t, declHandle.Important())
}

func TestAttrOperatorAndCaseRoundTrip(t *testing.T) {
	arena := NewArena(16)
	attr := arena.CreateNode(KindAttributeSelector, 0, 16, 1, 1)

	arena.SetAttrOperator(attr, AttrOperatorPrefixMatch)
	arena.SetAttrCase(attr, AttrCaseInsensitive)

	h := Handle{Arena: arena, Source: "[href^=\"x\" i]", Index: attr}
	assert.Equal(t, AttrOperatorPrefixMatch, h.AttrOperator())
	assert.Equal(t, AttrCaseInsensitive, h.AttrCase())

	// Setting the operator must not disturb an already-set case flag, and
	// vice versa: they live in disjoint bit ranges of the same field.
	arena.SetAttrOperator(attr, AttrOperatorSubstring)
	assert.Equal(t, AttrOperatorSubstring, h.AttrOperator())
	assert.Equal(t, AttrCaseInsensitive, h.AttrCase())
}

func TestIsEmptyAndChildren(t *testing.T) {
	arena := NewArena(4)
	block := arena.CreateNode(KindBlock, 0, 4, 1, 1)
	h := Handle{Arena: arena, Source: "    ", Index: block}
	assert.True(t, h.IsEmpty())
	assert.Empty(t, h.Children())

	child := arena.CreateNode(KindDeclaration, 1, 1, 1, 2)
	arena.AppendChildren(block, []Index{child})
	assert.False(t, h.IsEmpty())
	assert.Len(t, h.Children(), 1)
}

func TestNullHandleNavigatesSafely(t *testing.T) {
	var h Handle
	assert.True(t, h.IsNull())
	assert.Equal(t, KindInvalid, h.Kind())
	assert.True(t, h.FirstChild().IsNull())
	assert.True(t, h.NextSibling().IsNull())
	assert.True(t, h.Parent().IsNull())
}

func TestCapacityForSource(t *testing.T) {
	assert.GreaterOrEqual(t, capacityForSource(0), 8)
	assert.Greater(t, capacityForSource(13*100), 100)
}
