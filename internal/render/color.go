package render

import (
	"fmt"
	"strconv"
)

// RGB is an 8-bit-per-channel fill color for raw pixel writes.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a 6-hex-digit color string such as "FF0000".
func ParseHex(s string) (RGB, error) {
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("render: color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("render: color %q: %v", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustHex is ParseHex for known-good literals; it panics on bad input.
func MustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Paint selects a fill color, either uniform or derived per entity id.
type Paint struct {
	uniform   RGB
	perEntity func(id int) RGB
}

// Uniform returns a paint that resolves to the same color for every entity.
func Uniform(c RGB) Paint { return Paint{uniform: c} }

// PerEntity returns a paint that derives the color from the entity id.
func PerEntity(fn func(id int) RGB) Paint { return Paint{perEntity: fn} }

// For resolves the fill color for the given entity id.
func (p Paint) For(id int) RGB {
	if p.perEntity != nil {
		return p.perEntity(id)
	}
	return p.uniform
}

// HashColor maps an entity id to a stable, reasonably distinct color.
// Channels stay above 40 so entities never vanish against a dark clear.
func HashColor(id int) RGB {
	h := uint32(id)*2654435761 + 0x9e3779b9
	return RGB{
		R: uint8(40 + (h>>0)%216),
		G: uint8(40 + (h>>8)%216),
		B: uint8(40 + (h>>16)%216),
	}
}
