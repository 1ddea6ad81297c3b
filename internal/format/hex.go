package format

import "fmt"

// Arrow is the glyph joining the decimal and hexadecimal halves of a
// display record.
const Arrow = "→"

// Hex renders a normalized value as uppercase hexadecimal with the 0x prefix,
// zero-padded to at least two digits. Values above 0xFF keep their natural
// width; normalization guarantees they never occur, but the branch documents
// the [0,255] invariant rather than silently truncating.
//
// Parameters:
//   - n: The normalized value to render.
//
// Returns:
//   - string: The hexadecimal rendering, e.g. "0x05" or "0x1B".
func Hex(n int64) string {
	if n > 0xFF {
		return fmt.Sprintf("0x%X", n)
	}
	return fmt.Sprintf("0x%02X", n)
}

// DisplayRecord renders the canonical one-line form of a normalized value:
// the decimal value, the arrow glyph, and the hexadecimal rendering.
// A negative value yields the error form instead; the normalization step
// makes that branch unreachable, and it is kept as an assertion of the
// invariant.
//
// Parameters:
//   - n: The normalized value to render.
//
// Returns:
//   - string: A line such as "27 → 0x1B", or "-1 → ERROR: negative".
func DisplayRecord(n int64) string {
	if n < 0 {
		return fmt.Sprintf("%d %s ERROR: negative", n, Arrow)
	}
	return fmt.Sprintf("%d %s %s", n, Arrow, Hex(n))
}
