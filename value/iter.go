package value

import "iter"

// Values iterates an array's elements in insertion order, yielding a
// reference to each. Iterating a Null or any other non-Array kind yields
// zero items.
func (v *Value) Values() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		if v.kind != Array || v.arr == nil {
			return
		}
		for i := range v.arr.items {
			if !yield(&v.arr.items[i]) {
				return
			}
		}
	}
}

// Items iterates an object's (key, value) pairs in insertion order.
// Iterating a Null or any other non-Object kind yields zero items.
func (v *Value) Items() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if v.kind != Object || v.obj == nil {
			return
		}
		for i := range v.obj.vals {
			if !yield(string(v.obj.keys[i]), &v.obj.vals[i]) {
				return
			}
		}
	}
}
