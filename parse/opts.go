package parse

import "github.com/vellumjson/vellum/arena"

type parseOpts struct {
	maxDepth int
	arena    *arena.Arena
}

// Option configures a Parse call.
type Option func(*parseOpts)

// MaxDepth caps array/object nesting depth. A value of 0 (the default)
// means no explicit cap beyond what the host can allocate.
func MaxDepth(n int) Option {
	return func(o *parseOpts) { o.maxDepth = n }
}

// WithArena parses into a caller-supplied arena instead of one allocated
// internally. Document.Close still releases it, same as an internally
// allocated one, so a shared arena must not be reused across documents.
func WithArena(a *arena.Arena) Option {
	return func(o *parseOpts) { o.arena = a }
}
