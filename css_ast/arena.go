package css_ast

// Index addresses a node inside an Arena. The zero value, 0, is reserved
// as "null" — no real node is ever created at index 0.
type Index uint32

// bytesPerNodeEstimate informs the arena's initial capacity: roughly one
// node per this many bytes of source, within the 12-16 byte range a
// typical stylesheet produces one arena slot for.
const bytesPerNodeEstimate = 13

// Arena is a struct-of-arrays store of every node produced by one parse.
// It holds no pointers and no interfaces: a node is a row index into a
// set of parallel columns, which keeps the working set flat and
// cache-friendly and makes every per-field access O(1). The arena is
// append-only during a parse and read-only afterward; nothing removes a
// row once created, and its fields are only set while the parse that
// created it is still running.
type Arena struct {
	kind []NodeKind

	start  []int32
	length []int32

	line   []int32
	column []int32

	contentDelta  []int32
	contentLength []int32

	valueDelta  []int32
	valueLength []int32

	flags []Flags

	firstChild  []Index
	nextSibling []Index
	parent      []Index
}

// capacityForSource returns a preallocation hint for a source of the
// given length. Growth past this is handled by ordinary slice append
// growth — there is no custom growth-factor tuning here.
func capacityForSource(sourceLen int) int {
	n := sourceLen/bytesPerNodeEstimate + 1
	if n < 8 {
		n = 8
	}
	return n
}

// NewArena allocates an Arena sized for source text of the given length.
// Index 0 ("null") is reserved up front so the first real node created is
// index 1.
func NewArena(sourceLen int) *Arena {
	n := capacityForSource(sourceLen)
	a := &Arena{
		kind:          make([]NodeKind, 1, n),
		start:         make([]int32, 1, n),
		length:        make([]int32, 1, n),
		line:          make([]int32, 1, n),
		column:        make([]int32, 1, n),
		contentDelta:  make([]int32, 1, n),
		contentLength: make([]int32, 1, n),
		valueDelta:    make([]int32, 1, n),
		valueLength:   make([]int32, 1, n),
		flags:         make([]Flags, 1, n),
		firstChild:    make([]Index, 1, n),
		nextSibling:   make([]Index, 1, n),
		parent:        make([]Index, 1, n),
	}
	return a
}

// Len returns the number of real nodes in the arena (excluding the
// reserved null slot).
func (a *Arena) Len() int { return len(a.kind) - 1 }

// CreateNode appends a new node and returns its index. Children, if any,
// are linked afterward via AppendChildren.
func (a *Arena) CreateNode(kind NodeKind, start, length, line, column int32) Index {
	a.kind = append(a.kind, kind)
	a.start = append(a.start, start)
	a.length = append(a.length, length)
	a.line = append(a.line, line)
	a.column = append(a.column, column)
	a.contentDelta = append(a.contentDelta, 0)
	a.contentLength = append(a.contentLength, 0)
	a.valueDelta = append(a.valueDelta, 0)
	a.valueLength = append(a.valueLength, 0)
	a.flags = append(a.flags, 0)
	a.firstChild = append(a.firstChild, 0)
	a.nextSibling = append(a.nextSibling, 0)
	a.parent = append(a.parent, 0)
	return Index(len(a.kind) - 1)
}

func (a *Arena) SetLength(i Index, length int32) { a.length[i] = length }

func (a *Arena) SetFlag(i Index, bit Flags) { a.flags[i] |= bit }

func (a *Arena) ClearFlag(i Index, bit Flags) { a.flags[i] &^= bit }

func (a *Arena) SetAttrOperator(i Index, op AttrOperator) {
	a.flags[i] = withAttrOperator(a.flags[i], op)
}

func (a *Arena) SetAttrCase(i Index, c AttrCase) {
	a.flags[i] = withAttrCase(a.flags[i], c)
}

func (a *Arena) SetContentStartDelta(i Index, delta int32) { a.contentDelta[i] = delta }
func (a *Arena) SetContentLength(i Index, length int32)    { a.contentLength[i] = length }
func (a *Arena) SetValueStartDelta(i Index, delta int32)   { a.valueDelta[i] = delta }
func (a *Arena) SetValueLength(i Index, length int32)      { a.valueLength[i] = length }

// AppendChildren links the given indices under parent in source order,
// setting each child's parent and threading next_sibling. It is only
// ever called once per parent in this parser: every parent's complete
// child list is known by the time it finishes parsing.
func (a *Arena) AppendChildren(parent Index, children []Index) {
	if len(children) == 0 {
		return
	}
	a.firstChild[parent] = children[0]
	for i, child := range children {
		a.parent[child] = parent
		if i+1 < len(children) {
			a.nextSibling[child] = children[i+1]
		}
	}
}

// AppendChild links a single additional child after the current last
// child of parent (if any), without disturbing children appended so far.
// The parser itself does not call it; it always builds a complete child
// list and links it with AppendChildren.
func (a *Arena) AppendChild(parent, child Index) {
	a.parent[child] = parent
	if a.firstChild[parent] == 0 {
		a.firstChild[parent] = child
		return
	}
	last := a.firstChild[parent]
	for a.nextSibling[last] != 0 {
		last = a.nextSibling[last]
	}
	a.nextSibling[last] = child
}

func (a *Arena) Kind(i Index) NodeKind    { return a.kind[i] }
func (a *Arena) Start(i Index) int32      { return a.start[i] }
func (a *Arena) Length(i Index) int32     { return a.length[i] }
func (a *Arena) Line(i Index) int32       { return a.line[i] }
func (a *Arena) Column(i Index) int32     { return a.column[i] }
func (a *Arena) Flags(i Index) Flags      { return a.flags[i] }
func (a *Arena) FirstChild(i Index) Index { return a.firstChild[i] }
func (a *Arena) NextSibling(i Index) Index { return a.nextSibling[i] }
func (a *Arena) Parent(i Index) Index     { return a.parent[i] }

func (a *Arena) ContentDelta(i Index) int32  { return a.contentDelta[i] }
func (a *Arena) ContentLength(i Index) int32 { return a.contentLength[i] }
func (a *Arena) ValueDelta(i Index) int32    { return a.valueDelta[i] }
func (a *Arena) ValueLength(i Index) int32   { return a.valueLength[i] }
