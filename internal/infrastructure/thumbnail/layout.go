package thumbnail

import (
	"fmt"

	"github.com/yeojugoodnews/subsidy-digest/internal/core/domain"
)

const (
	Width    = 1200
	Height   = 630
	MaxBoxes = 6

	boxWidth  = 160.0
	boxHeight = 150.0
	boxGap    = 24.0
	boxTop    = 380.0
)

type Ellipse struct {
	X, Y, RX, RY float64
	Alpha        float64
}

type Box struct {
	X, Y, W, H float64
	Label      string
	Count      string
	Color      string
}

type Layout struct {
	Width, Height  int
	GradientTop    string
	GradientBottom string
	Ellipses       []Ellipse
	Title          string
	Subtitle       string
	RuleY          float64
	RuleFromX      float64
	RuleToX        float64
	Boxes          []Box
}

func BuildLayout(digest domain.Digest) Layout {
	l := Layout{
		Width:          Width,
		Height:         Height,
		GradientTop:    "#1e40af",
		GradientBottom: "#0f172a",
		Ellipses: []Ellipse{
			{X: 1050, Y: 90, RX: 260, RY: 200, Alpha: 0.08},
			{X: 140, Y: 560, RX: 300, RY: 180, Alpha: 0.06},
		},
		Title:     fmt.Sprintf("%d월 정부 지원금·보조금 안내", int(digest.GeneratedAt.Month())),
		Subtitle:  fmt.Sprintf("여주시민이 받을 수 있는 지원사업 %d건", digest.Total()),
		RuleY:     300,
		RuleFromX: 240,
		RuleToX:   Width - 240,
	}

	sections := make([]domain.Section, 0, MaxBoxes)
	for _, s := range digest.Sections {
		if s.Category.CatchAll {
			continue
		}
		sections = append(sections, s)
		if len(sections) == MaxBoxes {
			break
		}
	}

	span := float64(len(sections))*boxWidth + float64(max(len(sections)-1, 0))*boxGap
	x := (float64(Width) - span) / 2
	for _, s := range sections {
		l.Boxes = append(l.Boxes, Box{
			X:     x,
			Y:     boxTop,
			W:     boxWidth,
			H:     boxHeight,
			Label: s.Category.Name,
			Count: fmt.Sprintf("%d건", s.Total()),
			Color: s.Category.Color,
		})
		x += boxWidth + boxGap
	}
	return l
}
