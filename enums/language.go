package enums

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// ProgramLanguage mixes fieldless variants (Rust, Java) with a variant that
// carries data (Rest). The unexported method seals the set: only this package
// can add variants.
type ProgramLanguage interface {
	fmt.Stringer
	isProgramLanguage()
}

// Discriminator is implemented only by fieldless variants. A variant with a
// payload has no numeric form, so converting one does not compile:
//
//	var d Discriminator = Rest{"Ruok", 3} // compile error: missing method Discriminant
type Discriminator interface {
	Discriminant() uint8
}

// LanguageTag holds the fieldless variants, stored in 8 bits.
type LanguageTag uint8

const (
	Rust LanguageTag = 1
	Java LanguageTag = 2
)

func (LanguageTag) isProgramLanguage()    {}
func (l LanguageTag) Discriminant() uint8 { return uint8(l) }

func (l LanguageTag) String() string {
	switch l {
	case Rust:
		return "Top1: Rust"
	case Java:
		return "Top2: Java"
	default:
		return fmt.Sprintf("LanguageTag(%d)", uint8(l))
	}
}

// Rest is any language outside the fixed top two.
type Rest struct {
	Name string
	Rank uint
}

func (Rest) isProgramLanguage() {}

func (r Rest) String() string { return fmt.Sprintf("Top%d: %s", r.Rank, r.Name) }

// Ordinal spells the rank for prose: "3rd".
func (r Rest) Ordinal() string { return humanize.Ordinal(int(r.Rank)) }

var (
	_ ProgramLanguage = Rust
	_ ProgramLanguage = Rest{}
	_ Discriminator   = Java
)
