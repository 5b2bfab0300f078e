package value

import "github.com/vellumjson/vellum/arena"

// The constructors in this file produce arena-tied Values. They exist for
// package parse's structure builder; callers assembling a tree by hand
// should use the heap-owned constructors in value.go instead.

// NewArenaString wraps b (already allocated inside a) as a string Value
// without copying.
func NewArenaString(a *arena.Arena, b []byte) Value {
	return Value{kind: String, arena: a, str: b}
}

func NewArenaInt(a *arena.Arena, i int64) Value   { return Value{kind: Int, arena: a, i: i} }
func NewArenaUint(a *arena.Arena, u uint64) Value { return Value{kind: Uint, arena: a, u: u} }
func NewArenaFloat(a *arena.Arena, f float64) Value {
	return Value{kind: Float, arena: a, f: f}
}
func NewArenaBool(a *arena.Arena, b bool) Value { return Value{kind: Bool, arena: a, b: b} }
func NewArenaNull(a *arena.Arena) Value         { return Value{kind: Null, arena: a} }

// NewArenaArray returns an array Value tied to a with the given, already
// finalized (tightly packed) item slice.
func NewArenaArray(a *arena.Arena, items []Value) Value {
	return Value{kind: Array, arena: a, arr: &arrayData{items: items}}
}

// NewArenaObject returns an object Value tied to a with the given,
// already finalized parallel key/value slices.
func NewArenaObject(a *arena.Arena, keys [][]byte, vals []Value) Value {
	return Value{kind: Object, arena: a, obj: &objectData{keys: keys, vals: vals}}
}

// Arena returns the arena this Value borrows storage from, or nil if v is
// heap-owned.
func (v *Value) Arena() *arena.Arena { return v.arena }
