package value

// ExprRef is a first-class reference to an expression, optionally closing
// over a prefix of bound arguments (the result of a partial application).
//
// A bare reference has Bound == nil. The compiled handle is attached lazily
// by whoever compiles the text; the ref itself never evaluates anything.
type ExprRef struct {
	// Text is the expression source in the embedded query grammar.
	Text string
	// Bound is the prefix of pre-bound arguments, nil for a bare reference.
	Bound []Value

	handle interface{}
}

// NewExprRef creates a bare, unbound expression reference.
func NewExprRef(text string) *ExprRef {
	return &ExprRef{Text: text}
}

// WithBound returns a new reference closing over the receiver's bound
// arguments followed by args. The receiver is not modified.
func (r *ExprRef) WithBound(args ...Value) *ExprRef {
	bound := make([]Value, 0, len(r.Bound)+len(args))
	bound = append(bound, r.Bound...)
	bound = append(bound, args...)
	return &ExprRef{Text: r.Text, Bound: bound, handle: r.handle}
}

// Handle returns the opaque compiled form, or nil if not yet attached.
func (r *ExprRef) Handle() interface{} {
	return r.handle
}

// SetHandle attaches the opaque compiled form for later reuse.
func (r *ExprRef) SetHandle(h interface{}) {
	r.handle = h
}

// MarshalJSON encodes an expression reference as null, matching how the
// engine projects exprefs into plain JSON.
func (r *ExprRef) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}
