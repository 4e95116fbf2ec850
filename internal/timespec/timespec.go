// Package timespec parses the HH:MM:SS bounds typed into the upload form.
package timespec

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tells whether an Offset holds a value
type Kind int

const (
	// Unspecified means the field was left blank
	Unspecified Kind = iota
	// Concrete means Millis holds a parsed offset
	Concrete
	// Malformed means the text did not match HH:MM:SS within range
	Malformed
)

// Upper bounds (exclusive). Hours go past 23 because offsets are elapsed time.
const (
	maxHours   = 100
	maxMinutes = 60
	maxSeconds = 60
)

// Offset is a position inside an audio file in milliseconds
type Offset struct {
	Kind   Kind
	Millis int64
}

// None returns an unspecified offset
func None() Offset {
	return Offset{Kind: Unspecified}
}

// At returns a concrete offset of ms milliseconds
func At(ms int64) Offset {
	return Offset{Kind: Concrete, Millis: ms}
}

func (o Offset) IsSet() bool {
	return o.Kind == Concrete
}

func (o Offset) IsMalformed() bool {
	return o.Kind == Malformed
}

func (o Offset) String() string {
	switch o.Kind {
	case Unspecified:
		return "unspecified"
	case Concrete:
		return fmt.Sprintf("%dms", o.Millis)
	default:
		return "malformed"
	}
}

// Parse converts "HH:MM:SS" into an Offset
func Parse(text string) Offset {
	text = strings.TrimSpace(text)
	if text == "" {
		return None()
	}

	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return Offset{Kind: Malformed}
	}

	var v [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return Offset{Kind: Malformed}
		}
		v[i] = n
	}

	h, m, s := v[0], v[1], v[2]
	if h < 0 || h >= maxHours || m < 0 || m >= maxMinutes || s < 0 || s >= maxSeconds {
		return Offset{Kind: Malformed}
	}

	return At((h*3600 + m*60 + s) * 1000)
}
