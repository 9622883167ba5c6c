package termcube

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an 8-bit per channel RGB color.
type Color struct {
	R, G, B uint8
}

// RGBA implements the standard color.Color interface. Colors are opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Scale multiplies each channel by f in [0, 1].
func (c Color) Scale(f float64) Color {
	f = clamp01(f)
	return Color{
		R: uint8(math.Round(float64(c.R) * f)),
		G: uint8(math.Round(float64(c.G) * f)),
		B: uint8(math.Round(float64(c.B) * f)),
	}
}

// FromHSV creates a color from HSV values.
// hue is in degrees [0, 360], saturation and value are in [0, 1].
// Out of range inputs are clamped.
func FromHSV(hue, saturation, value float64) Color {
	hue = clamp(hue, 0, 360)
	saturation = clamp01(saturation)
	value = clamp01(value)

	sector := hue / 60
	floor := math.Floor(sector)
	fraction := sector - floor
	index := int(floor) % 6

	chromaMin := value * (1 - saturation)
	chromaQ := value * (1 - fraction*saturation)
	chromaT := value * (1 - (1-fraction)*saturation)

	var r, g, b float64
	switch index {
	case 0:
		r, g, b = value, chromaT, chromaMin
	case 1:
		r, g, b = chromaQ, value, chromaMin
	case 2:
		r, g, b = chromaMin, value, chromaT
	case 3:
		r, g, b = chromaMin, chromaQ, value
	case 4:
		r, g, b = chromaT, chromaMin, value
	case 5:
		r, g, b = value, chromaMin, chromaQ
	default:
		panic(fmt.Sprintf("termcube: hsv sector %d out of range", index))
	}

	return Color{R: channel(r), G: channel(g), B: channel(b)}
}

// channel converts a [0, 1] component to an 8-bit channel.
func channel(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

// clamp01 restricts a value to [0, 1]. NaN becomes 0.
func clamp01(x float64) float64 {
	return clamp(x, 0, 1)
}

func clamp(x, lo, hi float64) float64 {
	switch {
	case math.IsNaN(x):
		return lo
	case x < lo:
		return lo
	case x > hi:
		return hi
	}
	return x
}
