package css_ast

// Flags packs the small boolean/enum bits that don't warrant their own
// arena column: structural flags in the low bits, then the
// attribute-selector operator and case-sensitivity encodings from §4.4
// step 5, each in its own sub-field.
type Flags uint16

const (
	FlagHasBlock Flags = 1 << iota
	FlagHasDeclarations
	FlagImportant
	FlagCustomProperty
	FlagVendorPrefix

	attrOperatorShift = 5
	attrOperatorMask  = 0x7 << attrOperatorShift

	attrCaseShift = 8
	attrCaseMask  = 0x3 << attrCaseShift
)

// AttrOperator identifies the comparison operator of an attribute
// selector, e.g. `[href^="https"]`.
type AttrOperator uint8

const (
	AttrOperatorNone AttrOperator = iota
	AttrOperatorEquals
	AttrOperatorIncludes     // ~=
	AttrOperatorDashMatch    // |=
	AttrOperatorPrefixMatch  // ^=
	AttrOperatorSuffixMatch  // $=
	AttrOperatorSubstring    // *=
)

// AttrCase identifies the optional case-sensitivity flag of an attribute
// selector, e.g. the trailing `i` in `[href="X" i]`.
type AttrCase uint8

const (
	AttrCaseNone AttrCase = iota
	AttrCaseInsensitive    // i / I
	AttrCaseSensitive      // s / S
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

func withAttrOperator(f Flags, op AttrOperator) Flags {
	return (f &^ attrOperatorMask) | Flags(op)<<attrOperatorShift
}

func attrOperator(f Flags) AttrOperator {
	return AttrOperator((f & attrOperatorMask) >> attrOperatorShift)
}

func withAttrCase(f Flags, c AttrCase) Flags {
	return (f &^ attrCaseMask) | Flags(c)<<attrCaseShift
}

func attrCase(f Flags) AttrCase {
	return AttrCase((f & attrCaseMask) >> attrCaseShift)
}
