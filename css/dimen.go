package css

import (
	"strconv"

	"github.com/npillmayer/sx/style"
	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

var relativeUnits = map[uint32]string{
	dimenEM:      "em",
	dimenEX:      "ex",
	dimenCH:      "ch",
	dimenREM:     "rem",
	dimenVW:      "vw",
	dimenVH:      "vh",
	dimenVMIN:    "vmin",
	dimenVMAX:    "vmax",
	dimenPercent: "%",
}

// DimenT is an option type for CSS dimensions. DimenT implements
// fmt.Stringer and may therefore be used as a value in style maps:
//
//     style.M{{"marginTop", css.JustDimen(10 * dimen.PT)}}   // margin-top: 10pt;
//     style.M{{"width", css.Percentage(50)}}                // width: 50%;
//
// The zero value is an unset dimension and renders as "".
type DimenT struct {
	d     dimen.DU
	rel   float64
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage n
	| FontRel n unit
	| ViewRel n unit
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n float64) DimenT {
	return DimenT{rel: n, flags: dimenPercent}
}

// Em creates a dimension relative to the font size.
func Em(n float64) DimenT {
	return DimenT{rel: n, flags: dimenEM}
}

// Rem creates a dimension relative to the font size of the root element.
func Rem(n float64) DimenT {
	return DimenT{rel: n, flags: dimenREM}
}

// VW creates a dimension relative to the viewport width.
func VW(n float64) DimenT {
	return DimenT{rel: n, flags: dimenVW}
}

// VH creates a dimension relative to the viewport height.
func VH(n float64) DimenT {
	return DimenT{rel: n, flags: dimenVH}
}

// IsNone is true for unset dimensions. Unset dimensions are skipped
// when rendering style maps.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

var _ style.Optional = DimenT{}

// String renders a dimension as a CSS value. Fixed dimensions are
// rendered in points.
func (d DimenT) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	case dimenAbsolute:
		if d.d == 0 {
			return "0"
		}
		pt := float64(d.d) / float64(dimen.PT)
		return strconv.FormatFloat(pt, 'f', -1, 64) + "pt"
	}
	if unit, ok := relativeUnits[d.flags&relativeMask]; ok {
		return strconv.FormatFloat(d.rel, 'f', -1, 64) + unit
	}
	return ""
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&kindMask != 0) && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags&relativeMask == dimenPercent) != (d.flags&relativeMask == dimenPercent) {
			return nil
		}
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.rel
		}
		return m
	}
	return nil
}
