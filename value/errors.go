package value

import "errors"

// ErrIndexOutOfRange is returned by Index when i is out of [0, Len()).
var ErrIndexOutOfRange = errors.New("value: index out of range")

// ErrWrongKind is returned by Index, Field, and PushBack when called on a
// Value whose Kind cannot support the operation (and, for Field/PushBack,
// is not Null — Null promotes instead of failing).
var ErrWrongKind = errors.New("value: wrong kind for operation")
