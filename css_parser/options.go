package css_parser

// Options controls which parts of a parse are performed structurally
// versus left as raw, unparsed source ranges. DefaultOptions sets all four
// fields to true; a zero-value Options (all false) keeps comments and
// does nothing but split the source into bare stylesheet/rule/declaration
// shapes.
type Options struct {
	// SkipComments causes the tokenizer to discard comment tokens as it
	// scans rather than surfacing them.
	SkipComments bool

	// ParseValues causes declaration values to be tokenized into a Value
	// tree (Identifier, Number, Dimension, ... children) rather than left
	// as an opaque source range.
	ParseValues bool

	// ParseSelectors causes selector text to be parsed into a structured
	// SelectorList tree rather than left as an opaque source range.
	ParseSelectors bool

	// ParseAtRulePreludes causes at-rule preludes to be parsed by the
	// at-rule prelude sub-parser rather than left as an opaque source
	// range.
	ParseAtRulePreludes bool
}

// DefaultOptions returns the options a bare `Parse(source)` call should
// use: every structural sub-parse enabled, comments discarded.
func DefaultOptions() Options {
	return Options{
		SkipComments:        true,
		ParseValues:         true,
		ParseSelectors:      true,
		ParseAtRulePreludes: true,
	}
}
