// Package packed provides a growable packed binary coded decimal digit store.
//
// Digits are appended from the least significant end (like pushing on a
// stack) and stored two per byte. The first byte also carries the sign of the
// number in its low nibble.
//
// Layout
//
// Digit k (counting from the least significant digit, starting at 0) lives in
// byte (k+1)/2. Even digits use the high nibble, odd digits use the low
// nibble. The low nibble of byte 0 is reserved for the sign.
//
//  | byte | high nibble (7..4) | low nibble (3..0) |
//  |------|--------------------|-------------------|
//  |  0   | digit 0            | sign              |
//  |  1   | digit 2            | digit 1           |
//  |  2   | digit 4            | digit 3           |
//  | ...  | ...                | ...               |
//  |------|--------------------|-------------------|
//
// When the last byte has no digit for its high nibble the end marker (0xB) is
// stored there instead. An empty store is a single byte holding the end marker
// and the sign.
//
// Sign
//
//  | nibble | meaning  |
//  |--------|----------|
//  | 0xC    | positive |
//  | 0xD    | negative |
//  |--------|----------|
//
// Any other value in the sign nibble means no sign was set. New stores are
// always positive.
//
// Examples
//
// +7 (1 byte)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 1 . 1 . 1 | 1 . 1 . 0 . 0 | Digit 7, positive.
//  |---------------|---------------|
//
// -1234 (3 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 . 1 . 0 . 0 | 1 . 1 . 0 . 1 | Digit 4, negative.
//  | 0 . 0 . 1 . 0 | 0 . 0 . 1 . 1 | Digits 2 and 3.
//  | 1 . 0 . 1 . 1 | 0 . 0 . 0 . 1 | End marker and digit 1.
//  |---------------|---------------|
//
package packed
