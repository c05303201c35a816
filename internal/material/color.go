package material

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit 0xRRGGBB colour.
type Color uint32

const (
	White Color = 0xffffff
	Black Color = 0x000000
)

// RGB returns the colour as normalized floats.
func (c Color) RGB() [3]float32 {
	return [3]float32{
		float32((c>>16)&0xff) / 255,
		float32((c>>8)&0xff) / 255,
		float32(c&0xff) / 255,
	}
}

// ColorFromRGB converts normalized floats back to a Color, clamping each channel.
func ColorFromRGB(rgb [3]float32) Color {
	channel := func(v float32) Color {
		v = clamp(v, 0, 1)
		return Color(v*255 + 0.5)
	}
	return channel(rgb[0])<<16 | channel(rgb[1])<<8 | channel(rgb[2])
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts "#rrggbb", "rrggbb" or "0xrrggbb".
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	if len(s) != 6 {
		return fmt.Errorf("invalid color %q", string(text))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", string(text), err)
	}
	*c = Color(v)
	return nil
}
