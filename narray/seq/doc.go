// Package seq provides Seq, a bounds-checked view over a numeric slice,
// and a Pool for reusing scratch sequences.
//
// The narray operations take a raw slice plus an explicit count and trust
// the caller to keep the two consistent. Seq methods derive every count
// from the sequence lengths instead, size destination sequences before
// writing, and check single-element access. Use Values() to bridge to the
// raw API.
package seq
