package display

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
)

// RasterCircle renders an anti-aliased filled circle on a transparent square
// of side ceil(2*radius).
func RasterCircle(radius float64, c color.Color) (image.Image, error) {
	side := int(math.Ceil(radius * 2))
	if side < 1 {
		side = 1
	}
	dc := gg.NewContext(side, side)
	defer dc.Close()

	dc.SetColor(c)
	dc.DrawCircle(radius, radius, radius)
	if err := dc.Fill(); err != nil {
		return nil, errors.Wrap(err, "fill circle")
	}
	return dc.Image(), nil
}
