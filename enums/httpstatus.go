// Package enums models closed sets of alternatives in Go: typed constants for
// fieldless variants, and sealed interfaces for variants that carry data.
package enums

import "fmt"

// ── Typed constants with explicit values ──────────────────────────────────────
// The first variant defaults to 0 via iota. A later variant with no value of
// its own is the previous value plus one.
//
// Go gotcha: a constant line with the expression omitted REPEATS the previous
// expression. Writing just `GatewayTimeout` below would make it 404, not 405,
// so the increment is spelled out.

type HTTPStatusCode int

const (
	SwitchProtocol HTTPStatusCode = iota // 0
	NotFound       HTTPStatusCode = 404
	GatewayTimeout                = NotFound + 1 // 405
)

// Uint8 narrows the code to 8 bits. Conversion of a non-constant integer
// wraps modulo 256: GatewayTimeout (405) becomes 149.
func (c HTTPStatusCode) Uint8() uint8 { return uint8(c) }

func (c HTTPStatusCode) String() string {
	switch c {
	case SwitchProtocol:
		return "SwitchProtocol"
	case NotFound:
		return "NotFound"
	case GatewayTimeout:
		return "GatewayTimeout"
	default:
		return fmt.Sprintf("HTTPStatusCode(%d)", int(c))
	}
}
