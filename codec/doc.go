// Package codec implements the run-length bitmap compression used by the
// ^GF graphic field command: hex nibbles with letter-based repeat counts
// (G..Y for 1..19, g..z for multiples of 20) and row-control shortcuts
// (`:` repeat previous row, `,` zero-fill the row, `!` one-fill the row).
//
// Decode is total: malformed input degrades to partial output and the
// decoded size is hard-capped, so adversarial payloads cannot exhaust
// memory. Encode is the inverse; Decode(Encode(img)) reproduces the
// image's exact 1-bit-per-pixel bitmap.
package codec
