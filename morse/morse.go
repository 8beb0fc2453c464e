// Package morse provides on/off patterns for International Morse code.
//
// A dot is one active step followed by one inactive step (0b10), a dash is
// two active steps followed by one inactive (0b110), so every symbol
// already carries its trailing element gap.
package morse

import (
	"github.com/jamesmunns/blinq/pattern"
)

// Basic elements.
var (
	Dot  = pattern.FromBits(0b10, 2)
	Dash = pattern.FromBits(0b110, 3)
)

// Letters.
var (
	A = pattern.FromBits(0b10110, 5)
	B = pattern.FromBits(0b110101010, 9)
	C = pattern.FromBits(0b1101011010, 10)
	D = pattern.FromBits(0b1101010, 7)
	E = pattern.FromBits(0b10, 2)
	F = pattern.FromBits(0b101011010, 9)
	G = pattern.FromBits(0b11011010, 8)
	H = pattern.FromBits(0b10101010, 8)
	I = pattern.FromBits(0b1010, 4)
	J = pattern.FromBits(0b10110110110, 11)
	K = pattern.FromBits(0b11010110, 8)
	L = pattern.FromBits(0b101101010, 9)
	M = pattern.FromBits(0b110110, 6)
	N = pattern.FromBits(0b11010, 5)
	O = pattern.FromBits(0b110110110, 9)
	P = pattern.FromBits(0b1011011010, 10)
	Q = pattern.FromBits(0b11011010110, 11)
	R = pattern.FromBits(0b1011010, 7)
	S = pattern.FromBits(0b101010, 6)
	T = pattern.FromBits(0b110, 3)
	U = pattern.FromBits(0b1010110, 7)
	V = pattern.FromBits(0b101010110, 9)
	W = pattern.FromBits(0b10110110, 8)
	X = pattern.FromBits(0b1101010110, 10)
	Y = pattern.FromBits(0b11010110110, 11)
	Z = pattern.FromBits(0b1101101010, 10)
)

// Digits.
var (
	Zero  = pattern.FromBits(0b110110110110110, 15)
	One   = pattern.FromBits(0b10110110110110, 14)
	Two   = pattern.FromBits(0b1010110110110, 13)
	Three = pattern.FromBits(0b101010110110, 12)
	Four  = pattern.FromBits(0b10101010110, 11)
	Five  = pattern.FromBits(0b1010101010, 10)
	Six   = pattern.FromBits(0b11010101010, 11)
	Seven = pattern.FromBits(0b110110101010, 12)
	Eight = pattern.FromBits(0b1101101101010, 13)
	Nine  = pattern.FromBits(0b11011011011010, 14)
)

// Punctuation and prosigns.
var (
	FullStop      = pattern.FromBits(0b101101011010110, 15)
	Comma         = pattern.FromBits(0b1101101010110110, 16)
	Colon         = pattern.FromBits(0b110110110101010, 15)
	QuestionMark  = pattern.FromBits(0b10101101101010, 14)
	Apostrophe    = pattern.FromBits(0b1011011011011010, 16)
	Hyphen        = pattern.FromBits(0b11010101010110, 14)
	FractionBar   = pattern.FromBits(0b110101011010, 12)
	Brackets      = pattern.FromBits(0b1101011011010110, 16)
	QuotationMark = pattern.FromBits(0b10110101011010, 14)
	AtSign        = pattern.FromBits(0b101101101011010, 15)
	EqualsSign    = pattern.FromBits(0b110101010110, 12)
	Error         = pattern.FromBits(0b1010101010101010, 16)
)

// SOS is the distress signal, run together as a single procedural sign.
var SOS = S.Append(O).Append(S)
