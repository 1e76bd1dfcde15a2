package thumbnail

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
)

const (
	titleSize    = 56
	subtitleSize = 28
	labelSize    = 22
	countSize    = 40
)

type GGPainter struct{}

func NewGGPainter() GGPainter {
	return GGPainter{}
}

func (GGPainter) Paint(l Layout, fonts Fonts) ([]byte, error) {
	dc := gg.NewContext(l.Width, l.Height)

	grad := gg.NewLinearGradient(0, 0, 0, float64(l.Height))
	grad.AddColorStop(0, hexColor(l.GradientTop))
	grad.AddColorStop(1, hexColor(l.GradientBottom))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(l.Width), float64(l.Height))
	dc.Fill()

	for _, e := range l.Ellipses {
		dc.SetRGBA(1, 1, 1, e.Alpha)
		dc.DrawEllipse(e.X, e.Y, e.RX, e.RY)
		dc.Fill()
	}

	cx := float64(l.Width) / 2
	if err := dc.LoadFontFace(fonts.Bold, titleSize); err != nil {
		return nil, fontError(fonts.Bold, err)
	}
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(l.Title, cx, 170, 0.5, 0.5)

	if err := dc.LoadFontFace(fonts.Regular, subtitleSize); err != nil {
		return nil, fontError(fonts.Regular, err)
	}
	dc.SetRGBA(1, 1, 1, 0.75)
	dc.DrawStringAnchored(l.Subtitle, cx, 240, 0.5, 0.5)

	dc.SetRGBA(1, 1, 1, 0.25)
	dc.SetLineWidth(2)
	dc.DrawLine(l.RuleFromX, l.RuleY, l.RuleToX, l.RuleY)
	dc.Stroke()

	for _, b := range l.Boxes {
		dc.SetRGBA(1, 1, 1, 0.08)
		dc.DrawRoundedRectangle(b.X, b.Y, b.W, b.H, 16)
		dc.Fill()

		if err := dc.LoadFontFace(fonts.Regular, labelSize); err != nil {
			return nil, fontError(fonts.Regular, err)
		}
		dc.SetRGBA(1, 1, 1, 0.85)
		dc.DrawStringAnchored(b.Label, b.X+b.W/2, b.Y+45, 0.5, 0.5)

		if err := dc.LoadFontFace(fonts.Bold, countSize); err != nil {
			return nil, fontError(fonts.Bold, err)
		}
		dc.SetColor(hexColor(b.Color))
		dc.DrawStringAnchored(b.Count, b.X+b.W/2, b.Y+100, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode thumbnail png: %w", err)
	}
	return buf.Bytes(), nil
}

func fontError(path string, err error) error {
	return domain.WrapError(domain.ErrCapabilityUnavailable, "load font "+path, err)
}

// hexColor parses #rrggbb; anything else falls back to white.
func hexColor(hex string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.White
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
