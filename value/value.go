package value

import "github.com/vellumjson/vellum/arena"

// Value is a tagged-union JSON value. The zero Value is Null.
type Value struct {
	kind Kind
	// arena is non-nil for arena-tied Values: mutating operations that need
	// to allocate (promotion, PushBack, key insertion) use it. Nil means
	// heap-owned; such operations fall back to plain Go allocation.
	arena *arena.Arena

	i   int64
	u   uint64
	f   float64
	b   bool
	str []byte

	arr *arrayData
	obj *objectData
}

type arrayData struct {
	items []Value
}

type objectData struct {
	keys [][]byte
	vals []Value
}

// Document is the root container produced by parse.Parse. It owns an Arena
// and the root Value parsed into it. Destruction (Close) releases the
// arena as a unit, invalidating every Value that referenced it.
type Document struct {
	a    *arena.Arena
	root Value
}

// NewDocument wraps a root value parsed into a, returning the owning
// Document. Used by package parse; not needed for heap-owned trees built
// with this package's constructors.
func NewDocument(a *arena.Arena, root Value) *Document {
	return &Document{a: a, root: root}
}

// Root returns a pointer to the document's root value.
func (d *Document) Root() *Value { return &d.root }

// Close releases the document's arena. Every Value that borrowed storage
// from it becomes invalid; using one after Close is undefined.
func (d *Document) Close() {
	if d.a != nil {
		d.a.Release()
		d.a = nil
	}
}

// Kind reports v's tag.
func (v *Value) Kind() Kind { return v.kind }

func (v *Value) IsNull() bool   { return v.kind == Null }
func (v *Value) IsBool() bool   { return v.kind == Bool }
func (v *Value) IsNumber() bool { return v.kind.IsNumber() }
func (v *Value) IsString() bool { return v.kind == String }
func (v *Value) IsArray() bool  { return v.kind == Array }
func (v *Value) IsObject() bool { return v.kind == Object }

// Len returns the number of elements for Array/Object, the byte length for
// String, and 0 otherwise.
func (v *Value) Len() int {
	switch v.kind {
	case Array:
		if v.arr == nil {
			return 0
		}
		return len(v.arr.items)
	case Object:
		if v.obj == nil {
			return 0
		}
		return len(v.obj.vals)
	case String:
		return len(v.str)
	default:
		return 0
	}
}

// Empty reports whether Len() == 0.
func (v *Value) Empty() bool { return v.Len() == 0 }

// ---- heap-owned constructors ----

func NullValue() Value { return Value{kind: Null} }

func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

func IntValue(i int64) Value { return Value{kind: Int, i: i} }

func UintValue(u uint64) Value { return Value{kind: Uint, u: u} }

func FloatValue(f float64) Value { return Value{kind: Float, f: f} }

// StringValue copies s into a new heap-owned Value.
func StringValue(s string) Value {
	return Value{kind: String, str: []byte(s)}
}

// KeyVal is one object member, used by ObjectOf and Of.
type KeyVal struct {
	Key string
	Val Value
}

// ArrayOf builds a heap-owned array from vs.
func ArrayOf(vs ...Value) Value {
	items := make([]Value, len(vs))
	copy(items, vs)
	return Value{kind: Array, arr: &arrayData{items: items}}
}

// ObjectOf builds a heap-owned object from kvs, preserving order. Does not
// dedupe; callers wanting first-match-wins semantics should do so before
// calling, matching the indexing behavior described for Field.
func ObjectOf(kvs ...KeyVal) Value {
	keys := make([][]byte, len(kvs))
	vals := make([]Value, len(kvs))
	for i, kv := range kvs {
		keys[i] = []byte(kv.Key)
		vals[i] = kv.Val
	}
	return Value{kind: Object, obj: &objectData{keys: keys, vals: vals}}
}

// Of mirrors a common literal-construction idiom: if every element of vs is
// itself a 2-element array whose first element is a string, Of builds an
// object from those pairs; otherwise it builds an array. Prefer ArrayOf or
// ObjectOf when the shape is known statically — Of exists only for the
// literal-like convenience case spec'd in the original design.
func Of(vs ...Value) Value {
	kvs := make([]KeyVal, 0, len(vs))
	for _, v := range vs {
		if v.kind != Array || v.Len() != 2 || v.arr.items[0].kind != String {
			return ArrayOf(vs...)
		}
		kvs = append(kvs, KeyVal{Key: string(v.arr.items[0].str), Val: v.arr.items[1]})
	}
	return ObjectOf(kvs...)
}
