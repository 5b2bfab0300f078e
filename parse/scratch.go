package parse

import (
	"github.com/vellumjson/vellum/arena"
	"github.com/vellumjson/vellum/value"
)

// chunkSize bounds how many elements live in one scratch chunk. Chunks are
// never resized after allocation, so a *value.Value or *kvEntry returned by
// push remains valid for the whole life of the deque even as later pushes
// grow the deque's chunk list — the same guarantee a recursive-descent
// parser gets for free from the call stack, reproduced here for an
// iterative one.
const chunkSize = 128

type valueChunk [chunkSize]value.Value

// arrayDeque accumulates an array's elements during parsing without ever
// relocating an already-pushed element.
type arrayDeque struct {
	chunks []*valueChunk
	n      int
}

func (d *arrayDeque) push() *value.Value {
	ci, off := d.n/chunkSize, d.n%chunkSize
	if ci == len(d.chunks) {
		d.chunks = append(d.chunks, new(valueChunk))
	}
	p := &d.chunks[ci][off]
	d.n++
	return p
}

func (d *arrayDeque) commit(a *arena.Arena) []value.Value {
	out := arena.AllocSlice[value.Value](a, d.n)
	for i := 0; i < d.n; i++ {
		out[i] = d.chunks[i/chunkSize][i%chunkSize]
	}
	return out
}

type kvEntry struct {
	key []byte
	val value.Value
}

type kvChunk [chunkSize]kvEntry

// objectDeque accumulates an object's (key, value) pairs during parsing
// with the same stable-address guarantee as arrayDeque.
type objectDeque struct {
	chunks []*kvChunk
	n      int
}

func (d *objectDeque) push() *kvEntry {
	ci, off := d.n/chunkSize, d.n%chunkSize
	if ci == len(d.chunks) {
		d.chunks = append(d.chunks, new(kvChunk))
	}
	p := &d.chunks[ci][off]
	d.n++
	return p
}

func (d *objectDeque) commit(a *arena.Arena) ([][]byte, []value.Value) {
	keys := arena.AllocSlice[[]byte](a, d.n)
	vals := arena.AllocSlice[value.Value](a, d.n)
	for i := 0; i < d.n; i++ {
		e := d.chunks[i/chunkSize][i%chunkSize]
		keys[i] = e.key
		vals[i] = e.val
	}
	return keys, vals
}
