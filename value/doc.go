// Package value defines the in-memory JSON value tree: a tagged Value
// type, the Document that owns it, typed extraction, mutation, and
// iteration.
//
// # Overview
//
// A Value is a compact tagged union. Its Kind selects the active payload:
// a scalar (Bool, Int, Uint, Float), a byte slice (String), or a pointer to
// a growable sequence (Array, Object). Non-scalar Values additionally carry
// an ownership flag: arena-tied Values borrow their backing storage from
// the *arena.Arena of the Document that parsed them; heap-owned Values
// (built with Of, ArrayOf, ObjectOf, StringValue, ...) own independent Go
// memory and may outlive any Document.
//
// Values produced by parse.Parse are arena-tied and are only valid for the
// lifetime of their Document; calling Document.Close invalidates them.
// Values built directly by this package's constructors are heap-owned.
package value
