// Package bidi classifies text by its first strong directional character.
package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

type Direction int

const (
	Neutral Direction = iota
	LTR
	RTL
)

func (d Direction) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	default:
		return "neutral"
	}
}

// IsStrongRTL reports whether r has a right-to-left bidi class (R or AL).
func IsStrongRTL(r rune) bool {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.R, bidi.AL:
		return true
	}
	return false
}

// IsStrongLTR reports whether r has the left-to-right bidi class.
func IsStrongLTR(r rune) bool {
	props, _ := bidi.LookupRune(r)
	return props.Class() == bidi.L
}

// Detect returns the direction of the first strong character in text.
func Detect(text string) Direction {
	for _, r := range text {
		if IsStrongRTL(r) {
			return RTL
		}
		if IsStrongLTR(r) {
			return LTR
		}
	}
	return Neutral
}

// CurrentDirection latches the last strong direction seen.
// Neutral text keeps the previous direction.
type CurrentDirection struct {
	initial Direction
	current Direction
}

func NewCurrentDirection(initial Direction) *CurrentDirection {
	if initial == Neutral {
		initial = LTR
	}
	return &CurrentDirection{initial: initial, current: initial}
}

func (d *CurrentDirection) Update(text string) Direction {
	if dir := Detect(text); dir != Neutral {
		d.current = dir
	}
	return d.current
}

func (d *CurrentDirection) Get() Direction {
	return d.current
}

func (d *CurrentDirection) Reset() {
	d.current = d.initial
}
