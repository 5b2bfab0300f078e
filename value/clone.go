package value

import "github.com/vellumjson/vellum/arena"

// Clone deep-copies v. A heap-owned v is cloned into new heap storage. An
// arena-tied v is cloned into the same arena, when it is still reachable
// (v.arena != nil); callers that need a copy independent of the arena's
// lifetime should use CloneHeap instead.
func (v *Value) Clone() Value { return v.cloneInto(v.arena) }

// CloneHeap deep-copies v into new, arena-independent heap storage
// regardless of v's own ownership.
func (v *Value) CloneHeap() Value { return v.cloneInto(nil) }

func (v *Value) cloneInto(a *arena.Arena) Value {
	switch v.kind {
	case Null, Bool, Int, Uint, Float:
		nv := *v
		nv.arena = a
		return nv
	case String:
		var b []byte
		if a != nil {
			b = a.AllocBytes(v.str)
		} else {
			b = append([]byte(nil), v.str...)
		}
		return Value{kind: String, arena: a, str: b}
	case Array:
		var items []Value
		if a != nil {
			items = arena.AllocSlice[Value](a, len(v.arr.items))
		} else {
			items = make([]Value, len(v.arr.items))
		}
		for i := range v.arr.items {
			items[i] = v.arr.items[i].cloneInto(a)
		}
		return Value{kind: Array, arena: a, arr: &arrayData{items: items}}
	case Object:
		n := len(v.obj.vals)
		var keys [][]byte
		var vals []Value
		if a != nil {
			keys = arena.AllocSlice[[]byte](a, n)
			vals = arena.AllocSlice[Value](a, n)
		} else {
			keys = make([][]byte, n)
			vals = make([]Value, n)
		}
		for i := 0; i < n; i++ {
			if a != nil {
				keys[i] = a.AllocBytes(v.obj.keys[i])
			} else {
				keys[i] = append([]byte(nil), v.obj.keys[i]...)
			}
			vals[i] = v.obj.vals[i].cloneInto(a)
		}
		return Value{kind: Object, arena: a, obj: &objectData{keys: keys, vals: vals}}
	default:
		return Value{kind: Null, arena: a}
	}
}
