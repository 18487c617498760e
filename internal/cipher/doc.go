// Package cipher implements the dynamic, layered substitution engine behind
// obscura.
//
// Nothing here is cryptography. Every transform is a reversible visual
// disguise with an exact inverse, and every call is a pure function of its
// input and configuration.
//
// Key components:
//   - GenerateShift: position-dependent shift amounts (even-odd, fibonacci,
//     prime, progressive, custom)
//   - TableSet: ordered alphabet tables selected by position, with a rune
//     lookup index built once per distinct set of tables
//   - MultiTable: per-position table and shift substitution
//   - Polyalphabetic: keyword-driven table and shift substitution
//   - Layer / Pipeline: table, shift, reverse and transpose steps applied in
//     order to encode and in mirrored order to decode
//
// Positions are always rune indexes into the original string. Characters that
// are not ASCII letters are never substituted, but they still advance the
// position, so the decoder derives the same table and shift at every index as
// the encoder did.
package cipher
