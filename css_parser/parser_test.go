package css_parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/projectwallace/css-parser-sub002/css_ast"
	"github.com/projectwallace/css-parser-sub002/css_parser"
)

func TestEmptyStylesheet(t *testing.T) {
	root := css_parser.Parse("", css_parser.DefaultOptions())
	assert.Equal(t, css_ast.KindStylesheet, root.Kind())
	assert.True(t, root.IsEmpty())
}

func TestSimpleStyleRule(t *testing.T) {
	root := css_parser.Parse("body { color: red; }", css_parser.DefaultOptions())

	rule := root.FirstChild()
	assert.Equal(t, css_ast.KindStyleRule, rule.Kind())

	selList := rule.FirstChild()
	assert.Equal(t, css_ast.KindSelectorList, selList.Kind())
	assert.Equal(t, "body", selList.Text())

	block := selList.NextSibling()
	assert.Equal(t, css_ast.KindBlock, block.Kind())
	assert.True(t, block.NextSibling().IsNull())

	decl := block.FirstChild()
	assert.Equal(t, css_ast.KindDeclaration, decl.Kind())
	assert.Equal(t, "color", decl.Name())
	assert.Equal(t, "red", decl.Value())
	assert.False(t, decl.Important())

	value := decl.FirstChild()
	assert.Equal(t, css_ast.KindValue, value.Kind())
	ident := value.FirstChild()
	assert.Equal(t, css_ast.KindIdentifier, ident.Kind())
	assert.Equal(t, "red", ident.Text())
}

func TestMediaAtRule(t *testing.T) {
	root := css_parser.Parse("@media (min-width: 768px) { body { color: red; } }", css_parser.DefaultOptions())

	atRule := root.FirstChild()
	assert.Equal(t, css_ast.KindAtRule, atRule.Kind())
	assert.Equal(t, "media", atRule.Name())
	assert.True(t, atRule.HasBlock())
	assert.False(t, atRule.HasDeclarations())

	prelude := atRule.FirstChild()
	assert.Equal(t, css_ast.KindAtRulePrelude, prelude.Kind())
	assert.Equal(t, "(min-width: 768px)", prelude.Text())

	block := prelude.NextSibling()
	assert.Equal(t, css_ast.KindBlock, block.Kind())

	nested := block.FirstChild()
	assert.Equal(t, css_ast.KindStyleRule, nested.Kind())
	assert.Equal(t, "body", nested.FirstChild().Text())
}

func TestCSSNesting(t *testing.T) {
	root := css_parser.Parse(".a { .b { .c { color: red; } } }", css_parser.DefaultOptions())

	a := root.FirstChild()
	assert.Equal(t, css_ast.KindStyleRule, a.Kind())
	bBlock := a.FirstChild().NextSibling()
	b := bBlock.FirstChild()
	assert.Equal(t, css_ast.KindStyleRule, b.Kind())
	cBlock := b.FirstChild().NextSibling()
	c := cBlock.FirstChild()
	assert.Equal(t, css_ast.KindStyleRule, c.Kind())

	decl := c.FirstChild().NextSibling().FirstChild()
	assert.Equal(t, css_ast.KindDeclaration, decl.Kind())
	assert.Equal(t, "color", decl.Name())
}

func TestUnterminatedStyleRuleRecoversToEOF(t *testing.T) {
	source := "body { color: red"
	root := css_parser.Parse(source, css_parser.DefaultOptions())

	rule := root.FirstChild()
	assert.Equal(t, css_ast.KindStyleRule, rule.Kind())
	block := rule.FirstChild().NextSibling()
	assert.Equal(t, css_ast.KindBlock, block.Kind())

	decl := block.FirstChild()
	assert.Equal(t, css_ast.KindDeclaration, decl.Kind())
	assert.Equal(t, "color", decl.Name())
	assert.Equal(t, "red", decl.Value())
}

func TestImportantFlag(t *testing.T) {
	root := css_parser.Parse(".override { color: red !important; }", css_parser.DefaultOptions())
	decl := root.FirstChild().FirstChild().NextSibling().FirstChild()
	assert.Equal(t, css_ast.KindDeclaration, decl.Kind())
	assert.True(t, decl.Important())
	assert.Equal(t, "color", decl.Name())
	assert.Equal(t, "red", decl.Value())
}

func TestCustomPropertyFlag(t *testing.T) {
	root := css_parser.Parse(":root { --brand-color: blue; }", css_parser.DefaultOptions())
	decl := root.FirstChild().FirstChild().NextSibling().FirstChild()
	assert.True(t, decl.IsCustomProperty())
	assert.False(t, decl.IsVendorPrefixed())
}

func TestVendorPrefixedDeclaration(t *testing.T) {
	root := css_parser.Parse("a { -webkit-transform: none; }", css_parser.DefaultOptions())
	decl := root.FirstChild().FirstChild().NextSibling().FirstChild()
	assert.True(t, decl.IsVendorPrefixed())
	assert.False(t, decl.IsCustomProperty())
}

func TestHackPrefixDeclaration(t *testing.T) {
	root := css_parser.Parse("a { _width: 1px; }", css_parser.DefaultOptions())
	decl := root.FirstChild().FirstChild().NextSibling().FirstChild()
	assert.Equal(t, css_ast.KindDeclaration, decl.Kind())
}

func TestAttributeSelectorOperatorAndCase(t *testing.T) {
	root := css_parser.Parse(`a[href^="https" i] { color: red; }`, css_parser.DefaultOptions())
	selList := root.FirstChild().FirstChild()
	sel := selList.FirstChild()
	assert.Equal(t, css_ast.KindSelector, sel.Kind())

	var attr css_ast.Handle
	for c := sel.FirstChild(); !c.IsNull(); c = c.NextSibling() {
		if c.Kind() == css_ast.KindAttributeSelector {
			attr = c
		}
	}
	assert.Equal(t, css_ast.KindAttributeSelector, attr.Kind())
	assert.Equal(t, "href", attr.Name())
	assert.Equal(t, css_ast.AttrOperatorPrefixMatch, attr.AttrOperator())
	assert.Equal(t, css_ast.AttrCaseInsensitive, attr.AttrCase())
}

func TestCombinators(t *testing.T) {
	root := css_parser.Parse("a > b + c ~ d e { color: red; }", css_parser.DefaultOptions())
	sel := root.FirstChild().FirstChild().FirstChild()
	assert.Equal(t, css_ast.KindSelector, sel.Kind())

	var combinators []string
	for c := sel.FirstChild(); !c.IsNull(); c = c.NextSibling() {
		if c.Kind() == css_ast.KindCombinator {
			combinators = append(combinators, c.Text())
		}
	}
	assert.Len(t, combinators, 4)
}

func TestPseudoClassWithArgument(t *testing.T) {
	root := css_parser.Parse("li:nth-child(2n+1) { color: red; }", css_parser.DefaultOptions())
	sel := root.FirstChild().FirstChild().FirstChild()
	var pseudo css_ast.Handle
	for c := sel.FirstChild(); !c.IsNull(); c = c.NextSibling() {
		if c.Kind() == css_ast.KindPseudoClassSelector {
			pseudo = c
		}
	}
	assert.Equal(t, "nth-child", pseudo.Name())
	assert.Equal(t, "2n+1", pseudo.Value())
}

func TestLegacyPseudoElement(t *testing.T) {
	root := css_parser.Parse("p:before { color: red; }", css_parser.DefaultOptions())
	sel := root.FirstChild().FirstChild().FirstChild()
	var pseudo css_ast.Handle
	for c := sel.FirstChild(); !c.IsNull(); c = c.NextSibling() {
		if c.Kind() == css_ast.KindPseudoElementSelector || c.Kind() == css_ast.KindPseudoClassSelector {
			pseudo = c
		}
	}
	assert.Equal(t, css_ast.KindPseudoElementSelector, pseudo.Kind())
	assert.Equal(t, "before", pseudo.Name())
}

func TestImportAtRuleStatement(t *testing.T) {
	root := css_parser.Parse(`@import url("theme.css") layer(base);`, css_parser.DefaultOptions())
	atRule := root.FirstChild()
	assert.Equal(t, css_ast.KindAtRule, atRule.Kind())
	assert.Equal(t, "import", atRule.Name())
	assert.False(t, atRule.HasBlock())

	prelude := atRule.FirstChild()
	assert.Equal(t, css_ast.KindAtRulePrelude, prelude.Kind())
	// A quoted url(...) lexes as a function token followed by a string, not
	// a bare url token (only the unquoted form does).
	first := prelude.FirstChild()
	assert.Equal(t, css_ast.KindFunction, first.Kind())
	assert.Equal(t, "url", first.Name())
	assert.Equal(t, css_ast.KindString, first.FirstChild().Kind())
}

func TestFontFaceIsDeclarationBearing(t *testing.T) {
	root := css_parser.Parse(`@font-face { font-family: "Foo"; src: url("foo.woff"); }`, css_parser.DefaultOptions())
	atRule := root.FirstChild()
	assert.True(t, atRule.HasBlock())
	assert.True(t, atRule.HasDeclarations())
	block := atRule.FirstChild()
	assert.Equal(t, css_ast.KindBlock, block.Kind())
	decl := block.FirstChild()
	assert.Equal(t, css_ast.KindDeclaration, decl.Kind())
}

func TestKeyframesIsRuleBearing(t *testing.T) {
	root := css_parser.Parse(`@keyframes spin { from { opacity: 0; } to { opacity: 1; } }`, css_parser.DefaultOptions())
	atRule := root.FirstChild()
	assert.True(t, atRule.HasBlock())
	assert.False(t, atRule.HasDeclarations())
	assert.Equal(t, "spin", atRule.FirstChild().Text())

	block := atRule.FirstChild().NextSibling()
	rule := block.FirstChild()
	assert.Equal(t, css_ast.KindStyleRule, rule.Kind())
}

func TestUnknownAtRuleDefaultsToRuleBearing(t *testing.T) {
	root := css_parser.Parse(`@unknown-thing foo { bar { baz: 1; } }`, css_parser.DefaultOptions())
	atRule := root.FirstChild()
	assert.True(t, atRule.HasBlock())
	assert.False(t, atRule.HasDeclarations())
}

func TestHexColorValue(t *testing.T) {
	root := css_parser.Parse("a { color: #ff0000; }", css_parser.DefaultOptions())
	decl := root.FirstChild().FirstChild().NextSibling().FirstChild()
	value := decl.FirstChild()
	hex := value.FirstChild()
	assert.Equal(t, css_ast.KindHexColor, hex.Kind())
	assert.Equal(t, "#ff0000", hex.Text())
}

func TestFunctionValue(t *testing.T) {
	root := css_parser.Parse("a { color: rgba(0, 0, 0, .5); }", css_parser.DefaultOptions())
	decl := root.FirstChild().FirstChild().NextSibling().FirstChild()
	value := decl.FirstChild()
	fn := value.FirstChild()
	assert.Equal(t, css_ast.KindFunction, fn.Kind())
	assert.Equal(t, "rgba", fn.Name())
	assert.False(t, fn.IsEmpty())
}

func TestRawSelectorAndValueWhenSubParsersDisabled(t *testing.T) {
	opts := css_parser.Options{}
	root := css_parser.Parse("a.b { color: red; }", opts)
	rule := root.FirstChild()
	selList := rule.FirstChild()
	assert.Equal(t, css_ast.KindSelectorList, selList.Kind())
	assert.True(t, selList.IsEmpty())
	assert.Equal(t, "a.b", selList.Text())

	decl := rule.FirstChild().NextSibling().FirstChild()
	assert.True(t, decl.IsEmpty())
	assert.Equal(t, "red", decl.Value())
}

func TestParseSelectorListStandalone(t *testing.T) {
	h := css_parser.ParseSelectorList("a, b.c")
	assert.Equal(t, css_ast.KindSelectorList, h.Kind())
	assert.Len(t, h.Children(), 2)
}

func TestParseDeclarationStandalone(t *testing.T) {
	h := css_parser.ParseDeclaration("color: red")
	assert.Equal(t, css_ast.KindDeclaration, h.Kind())
	assert.Equal(t, "color", h.Name())
	assert.Equal(t, "red", h.Value())
}

func TestParseDeclarationStandaloneRejectsMissingColon(t *testing.T) {
	h := css_parser.ParseDeclaration("not-a-declaration")
	assert.True(t, h.IsNull())
}

func TestParseValueStandalone(t *testing.T) {
	h := css_parser.ParseValue("1px solid red")
	assert.Equal(t, css_ast.KindValue, h.Kind())
	children := h.Children()
	assert.Equal(t, css_ast.KindDimension, children[0].Kind())
	assert.Equal(t, css_ast.KindWhitespace, children[1].Kind())
	assert.Equal(t, css_ast.KindIdentifier, children[2].Kind())
}

func TestTopLevelSpansLieWithinSource(t *testing.T) {
	source := "a { color: red; } /* trailing */ @media (min-width: 1px) { b { x: 1; } }"
	root := css_parser.Parse(source, css_parser.Options{SkipComments: false, ParseValues: true, ParseSelectors: true, ParseAtRulePreludes: true})
	assert.Equal(t, css_ast.KindStylesheet, root.Kind())
	// Span coverage: every top-level child's range lies within the source.
	for c := root.FirstChild(); !c.IsNull(); c = c.NextSibling() {
		assert.GreaterOrEqual(t, c.Start(), int32(0))
		assert.LessOrEqual(t, c.Start()+c.Length(), int32(len(source)))
	}
}
