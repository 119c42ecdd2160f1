package funcptrs

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// ── Handles ───────────────────────────────────────────────────────────────────
// Go function values are copyable but NOT comparable: `f == g` only compiles
// when one side is nil. Handle is the comparable view of a function value,
// keyed on its code address.
//
// Closures created from the same literal share code, so they share a Handle
// regardless of what they capture.

type Handle struct {
	name string
	addr uintptr
}

// HandleOf returns the Handle of f. ok is false when f is nil or not a
// function.
func HandleOf(f any) (h Handle, ok bool) {
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func || v.IsNil() {
		return Handle{}, false
	}
	pc := v.Pointer()
	name := "func"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	return Handle{name: name, addr: pc}, true
}

// MustHandle is HandleOf for values known to be functions.
func MustHandle(f any) Handle {
	h, ok := HandleOf(f)
	if !ok {
		panic(fmt.Sprintf("funcptrs: %T is not a non-nil function", f))
	}
	return h
}

// Name is the fully qualified symbol, e.g. "github.com/x/funcptrs.Sum".
func (h Handle) Name() string { return h.name }

// ShortName drops the import path: "funcptrs.Sum".
func (h Handle) ShortName() string {
	if i := strings.LastIndex(h.name, "/"); i >= 0 {
		return h.name[i+1:]
	}
	return h.name
}

func (h Handle) Addr() uintptr { return h.addr }

// IsZero reports whether h was never bound to a function.
func (h Handle) IsZero() bool { return h == Handle{} }

func (h Handle) String() string {
	if h.IsZero() {
		return "<nil>"
	}
	return fmt.Sprintf("%s@%#x", h.ShortName(), h.addr)
}
