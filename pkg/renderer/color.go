package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

var intensity = core.NewInterval(0, 0.999)

// ToRGBA converts an averaged linear color to an 8-bit sRGB-ish pixel with
// gamma 2. NaN channels become 0; guarded reports whether that happened.
func ToRGBA(c core.Vec3) (pixel color.RGBA, guarded bool) {
	r, gr := channelToByte(c.X)
	g, gg := channelToByte(c.Y)
	b, gb := channelToByte(c.Z)
	return color.RGBA{R: r, G: g, B: b, A: 255}, gr || gg || gb
}

func channelToByte(x float64) (uint8, bool) {
	guarded := false
	if math.IsNaN(x) {
		x = 0
		guarded = true
	}
	return uint8(256 * intensity.Clamp(linearToGamma(x))), guarded
}

func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}
