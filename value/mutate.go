package value

import (
	"fmt"

	"github.com/vellumjson/vellum/arena"
)

// Index returns a reference to the i'th array element. The reference is
// writable in place (*p = newValue) but becomes stale after any further
// structural mutation (PushBack) of the same array — the same caveat that
// applies to retaining &slice[i] across an append in plain Go.
func (v *Value) Index(i int) (*Value, error) {
	if v.kind != Array {
		return nil, fmt.Errorf("value: Index on %s: %w", v.kind, ErrWrongKind)
	}
	if i < 0 || i >= len(v.arr.items) {
		return nil, ErrIndexOutOfRange
	}
	return &v.arr.items[i], nil
}

// Field returns a reference to the value stored under key. A Null value is
// promoted to an empty object first. A missing key is inserted in
// insertion order as (key, Null) and a reference to that new slot is
// returned; the key bytes are copied into v's arena when v is arena-tied,
// or onto the heap otherwise. Calling Field on any other non-object kind
// is an error.
func (v *Value) Field(key string) (*Value, error) {
	if v.kind == Null {
		v.becomeEmptyObject()
	}
	if v.kind != Object {
		return nil, fmt.Errorf("value: Field on %s: %w", v.kind, ErrWrongKind)
	}
	for i, k := range v.obj.keys {
		if string(k) == key {
			return &v.obj.vals[i], nil
		}
	}
	var keyBytes []byte
	if v.arena != nil {
		keyBytes = v.arena.AllocString(key)
	} else {
		keyBytes = []byte(key)
	}
	newVal := Value{kind: Null, arena: v.arena}
	if v.arena != nil {
		v.obj.keys = arena.AppendSlice(v.arena, v.obj.keys, keyBytes)
		v.obj.vals = arena.AppendSlice(v.arena, v.obj.vals, newVal)
	} else {
		v.obj.keys = append(v.obj.keys, keyBytes)
		v.obj.vals = append(v.obj.vals, newVal)
	}
	return &v.obj.vals[len(v.obj.vals)-1], nil
}

// PushBack appends item to an array, promoting a Null value to an empty
// array first. Calling PushBack on any other non-array kind is an error.
func (v *Value) PushBack(item Value) error {
	if v.kind == Null {
		v.becomeEmptyArray()
	}
	if v.kind != Array {
		return fmt.Errorf("value: PushBack on %s: %w", v.kind, ErrWrongKind)
	}
	if v.arena != nil {
		item.arena = v.arena
		v.arr.items = arena.AppendSlice(v.arena, v.arr.items, item)
	} else {
		v.arr.items = append(v.arr.items, item)
	}
	return nil
}

func (v *Value) becomeEmptyArray() {
	v.kind = Array
	v.arr = &arrayData{}
}

func (v *Value) becomeEmptyObject() {
	v.kind = Object
	v.obj = &objectData{}
}
