// Package tagset checks declared enumerations against the discriminant rules
// of a tagged union, at declaration time rather than at use.
//
// Rules:
//   - a variant without an explicit tag gets 0 when it is first, otherwise the
//     previous variant's tag plus one (explicit or not);
//   - names and tags are unique within a set;
//   - only fieldless variants may carry an explicit tag;
//   - only fieldless variants may be cast to a number, and the cast wraps to
//     the width of the target type.
package tagset

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	ErrEmpty          = errors.New("no variants declared")
	ErrEmptyName      = errors.New("empty variant name")
	ErrDuplicateName  = errors.New("duplicate variant name")
	ErrDuplicateTag   = errors.New("duplicate discriminant")
	ErrPayloadTag     = errors.New("explicit discriminant on variant with payload")
	ErrTagOverflow    = errors.New("discriminant overflows int64")
	ErrPayloadCast    = errors.New("cannot cast variant with payload to a number")
	ErrUnknownVariant = errors.New("unknown variant")
)

// DeclError reports which variant of which set broke a rule. Err is one of
// the sentinels above.
type DeclError struct {
	Set     string
	Variant string
	Err     error
}

func (e *DeclError) Error() string {
	if e.Variant == "" {
		return fmt.Sprintf("tagset %q: %v", e.Set, e.Err)
	}
	return fmt.Sprintf("tagset %q: variant %q: %v", e.Set, e.Variant, e.Err)
}

func (e *DeclError) Unwrap() error { return e.Err }

type Variant struct {
	Name    string
	Tag     *int64 // nil: implicit
	Payload bool
}

// Unit declares a fieldless variant with an implicit tag.
func Unit(name string) Variant { return Variant{Name: name} }

// Tagged declares a fieldless variant with an explicit tag.
func Tagged(name string, tag int64) Variant { return Variant{Name: name, Tag: &tag} }

// WithPayload declares a variant that carries data.
func WithPayload(name string) Variant { return Variant{Name: name, Payload: true} }

// Set is a validated declaration. Tags are assigned to every variant,
// payload or not, but only fieldless ones can be read back as numbers.
type Set struct {
	name     string
	variants []Variant
	tags     []int64
	index    map[string]int
}

func Declare(name string, variants ...Variant) (*Set, error) {
	if len(variants) == 0 {
		return nil, &DeclError{Set: name, Err: ErrEmpty}
	}

	s := &Set{
		name:     name,
		variants: make([]Variant, len(variants)),
		tags:     make([]int64, len(variants)),
		index:    make(map[string]int, len(variants)),
	}
	owner := make(map[int64]string, len(variants))

	var next int64
	overflowed := false
	for i, v := range variants {
		fail := func(err error) (*Set, error) {
			return nil, &DeclError{Set: name, Variant: v.Name, Err: err}
		}

		switch {
		case v.Name == "":
			return fail(ErrEmptyName)
		case v.Payload && v.Tag != nil:
			return fail(ErrPayloadTag)
		}
		if _, dup := s.index[v.Name]; dup {
			return fail(ErrDuplicateName)
		}

		tag := next
		if v.Tag != nil {
			tag = *v.Tag
			v.Tag = &tag
		} else if overflowed {
			return fail(ErrTagOverflow)
		}
		if prev, dup := owner[tag]; dup {
			return fail(fmt.Errorf("%w %d (also %q)", ErrDuplicateTag, tag, prev))
		}

		owner[tag] = v.Name
		s.index[v.Name] = i
		s.tags[i] = tag
		s.variants[i] = v
		overflowed = tag == math.MaxInt64
		next = tag + 1
	}
	return s, nil
}

// MustDeclare panics if Declare fails. Use it for package-level sets.
func MustDeclare(name string, variants ...Variant) *Set {
	s, err := Declare(name, variants...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Set) Name() string { return s.name }

// Variants returns the declaration in order. The result, explicit tags
// included, is a copy: changing it does not affect s.
func (s *Set) Variants() []Variant {
	out := make([]Variant, len(s.variants))
	for i, v := range s.variants {
		if v.Tag != nil {
			tag := *v.Tag
			v.Tag = &tag
		}
		out[i] = v
	}
	return out
}

// Fieldless reports whether no variant carries a payload, i.e. the whole set
// is castable.
func (s *Set) Fieldless() bool {
	for _, v := range s.variants {
		if v.Payload {
			return false
		}
	}
	return true
}

// Tag returns the discriminant assigned to name.
func (s *Set) Tag(name string) (int64, error) {
	i, ok := s.index[name]
	if !ok {
		return 0, fmt.Errorf("%s::%s: %w", s.name, name, ErrUnknownVariant)
	}
	return s.tags[i], nil
}

// Cast converts the tag of a fieldless variant to T. The conversion is
// modular: 405 cast to uint8 is 149.
func Cast[T constraints.Unsigned](s *Set, name string) (T, error) {
	tag, err := s.Tag(name)
	if err != nil {
		return 0, err
	}
	if s.variants[s.index[name]].Payload {
		return 0, fmt.Errorf("%s::%s: %w", s.name, name, ErrPayloadCast)
	}
	return T(tag), nil
}

// String lists variants with their tags, e.g.
// "Lang{Rust=1, Java=2, Rest(..)=3}".
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteString(s.name)
	sb.WriteByte('{')
	for i, v := range s.variants {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.Name)
		if v.Payload {
			sb.WriteString("(..)")
		}
		fmt.Fprintf(&sb, "=%d", s.tags[i])
	}
	sb.WriteByte('}')
	return sb.String()
}
