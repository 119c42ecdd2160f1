package funcptrs

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrDuplicateOp = errors.New("operation already registered")
	ErrNilOp       = errors.New("nil operation")
	ErrEmptyName   = errors.New("empty operation name")
	ErrUnknownOp   = errors.New("unknown operation")
)

// UnknownOpError carries the name that failed to resolve. It matches
// ErrUnknownOp under errors.Is.
type UnknownOpError struct {
	Name string
}

func (e *UnknownOpError) Error() string {
	return fmt.Sprintf("operation %q: %v", e.Name, ErrUnknownOp)
}

func (e *UnknownOpError) Unwrap() error { return ErrUnknownOp }

// Registry maps names to operations so the operation applied can be chosen
// from data (a flag, a config value) instead of code.
//
// A Registry is built once and then read; it is not safe for concurrent
// Register calls.
type Registry struct {
	ops map[string]BinaryOp
}

func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]BinaryOp)}
}

// DefaultRegistry holds "sum" and "sub".
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister("sum", Sum)
	r.MustRegister("sub", Sub)
	return r
}

func (r *Registry) Register(name string, op BinaryOp) error {
	switch {
	case name == "":
		return ErrEmptyName
	case op == nil:
		return fmt.Errorf("register %q: %w", name, ErrNilOp)
	}
	if _, exists := r.ops[name]; exists {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateOp)
	}
	r.ops[name] = op
	return nil
}

// MustRegister panics if Register fails. Use it for static tables.
func (r *Registry) MustRegister(name string, op BinaryOp) {
	if err := r.Register(name, op); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(name string) (BinaryOp, error) {
	op, ok := r.ops[name]
	if !ok {
		return nil, &UnknownOpError{Name: name}
	}
	return op, nil
}

// Apply runs the named operation through Calculator.
func (r *Registry) Apply(name string, x, y int32) (int32, error) {
	op, err := r.Lookup(name)
	if err != nil {
		return 0, err
	}
	return Calculator(x, y, op), nil
}

// Handle returns the comparable identity of the named operation.
func (r *Registry) Handle(name string) (Handle, error) {
	op, err := r.Lookup(name)
	if err != nil {
		return Handle{}, err
	}
	return MustHandle(op), nil
}

// Names returns registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Coincide returns every pair of distinct registered operations whose results
// agree at (x, y). Pairs are ordered by name, and so is each pair's content.
func (r *Registry) Coincide(x, y int32) [][2]string {
	names := r.Names()
	var out [][2]string
	for i, a := range names {
		ra := Calculator(x, y, r.ops[a])
		for _, b := range names[i+1:] {
			if ra == Calculator(x, y, r.ops[b]) {
				out = append(out, [2]string{a, b})
			}
		}
	}
	return out
}
