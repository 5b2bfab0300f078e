package encode

type encState struct {
	pretty bool
	indent int
	colors *Colors
	depth  int
}

// Option configures an Encode or String call.
type Option func(*encState)

// Pretty switches on multi-line output with a 2-space indent step by
// default; Indent overrides the step size.
func Pretty(v bool) Option {
	return func(es *encState) { es.pretty = v }
}

// Indent sets the per-level indent width used when Pretty is enabled.
func Indent(n int) Option {
	return func(es *encState) { es.indent = n }
}

// WithColors attaches a Colors table used to syntax-highlight the output.
// Most callers should only pass this when writing to an interactive
// terminal; see cmd/vellum for the isatty-gated wiring.
func WithColors(c *Colors) Option {
	return func(es *encState) { es.colors = c }
}
