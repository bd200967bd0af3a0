package css_ast

// Handle is a cheap-to-construct wrapper exposing one arena node to a
// consumer: `{ arena, source, index }`. Handles borrow the Arena and
// source string; they must not outlive them. A zero-value Handle (or one
// whose Index is 0) is the "null" handle and every navigation method on
// it returns more null handles rather than panicking.
type Handle struct {
	Arena  *Arena
	Source string
	Index  Index
}

// Root returns the Handle for the Stylesheet node produced by a parse.
func Root(arena *Arena, source string) Handle {
	return Handle{Arena: arena, Source: source, Index: 1}
}

func (h Handle) IsNull() bool { return h.Arena == nil || h.Index == 0 }

func (h Handle) child(i Index) Handle {
	if i == 0 {
		return Handle{}
	}
	return Handle{Arena: h.Arena, Source: h.Source, Index: i}
}

func (h Handle) Kind() NodeKind {
	if h.IsNull() {
		return KindInvalid
	}
	return h.Arena.Kind(h.Index)
}

func (h Handle) Start() int32  { return h.Arena.Start(h.Index) }
func (h Handle) Length() int32 { return h.Arena.Length(h.Index) }
func (h Handle) Line() int32   { return h.Arena.Line(h.Index) }
func (h Handle) Column() int32 { return h.Arena.Column(h.Index) }

// Text returns the node's full source span, start..start+length.
func (h Handle) Text() string {
	start := h.Arena.Start(h.Index)
	return h.Source[start : start+h.Arena.Length(h.Index)]
}

// Name returns the node's inner "name" slice (at-rule name without `@`,
// declaration property name), or "" when the node has none.
func (h Handle) Name() string {
	start := h.Arena.Start(h.Index) + h.Arena.ContentDelta(h.Index)
	return h.Source[start : start+h.Arena.ContentLength(h.Index)]
}

// Value returns the node's inner "value" slice (at-rule prelude text,
// declaration value text), or "" when the node has none.
func (h Handle) Value() string {
	start := h.Arena.Start(h.Index) + h.Arena.ValueDelta(h.Index)
	return h.Source[start : start+h.Arena.ValueLength(h.Index)]
}

func (h Handle) FirstChild() Handle {
	if h.IsNull() {
		return Handle{}
	}
	return h.child(h.Arena.FirstChild(h.Index))
}

func (h Handle) NextSibling() Handle {
	if h.IsNull() {
		return Handle{}
	}
	return h.child(h.Arena.NextSibling(h.Index))
}

func (h Handle) Parent() Handle {
	if h.IsNull() {
		return Handle{}
	}
	return h.child(h.Arena.Parent(h.Index))
}

// IsEmpty reports whether the node has no children.
func (h Handle) IsEmpty() bool { return h.Arena.FirstChild(h.Index) == 0 }

// Children returns the node's children in source order. Prefer Walk/
// Traverse (package css_walk) over this for anything beyond a single
// level: Children allocates a slice, while the walker does not.
func (h Handle) Children() []Handle {
	var out []Handle
	for c := h.FirstChild(); !c.IsNull(); c = c.NextSibling() {
		out = append(out, c)
	}
	return out
}

func (h Handle) flags() Flags { return h.Arena.Flags(h.Index) }

// flagsOf returns the node's flags when it is of the given kind, and no
// flags otherwise (including for the null handle).
func (h Handle) flagsOf(kind NodeKind) Flags {
	if h.Kind() != kind {
		return 0
	}
	return h.flags()
}

// Important reports a Declaration's `!important` flag.
func (h Handle) Important() bool { return h.flagsOf(KindDeclaration).has(FlagImportant) }

// IsCustomProperty reports whether a Declaration's name begins with `--`.
func (h Handle) IsCustomProperty() bool { return h.flagsOf(KindDeclaration).has(FlagCustomProperty) }

// IsVendorPrefixed reports whether a Declaration's name begins with a
// vendor prefix (`-webkit-`, `-moz-`, and so on).
func (h Handle) IsVendorPrefixed() bool { return h.flagsOf(KindDeclaration).has(FlagVendorPrefix) }

// HasBlock reports whether an AtRule was followed by a `{ ... }` block.
func (h Handle) HasBlock() bool { return h.flagsOf(KindAtRule).has(FlagHasBlock) }

// HasDeclarations reports whether an AtRule's block was parsed as
// declaration-bearing rather than rule-bearing or conditional.
func (h Handle) HasDeclarations() bool { return h.flagsOf(KindAtRule).has(FlagHasDeclarations) }

// AttrOperator returns an AttributeSelector's comparison operator.
func (h Handle) AttrOperator() AttrOperator { return attrOperator(h.flagsOf(KindAttributeSelector)) }

// AttrCase returns an AttributeSelector's case-sensitivity flag.
func (h Handle) AttrCase() AttrCase { return attrCase(h.flagsOf(KindAttributeSelector)) }
