package stats

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"

	"pokerledger/domain/entities"
)

// ChartBar is one labelled bar of a horizontal bar chart
type ChartBar struct {
	Label      string
	Count      int
	Percentage int
	ColorHex   string
}

// ChartStyle defines the visual style of the charts
type ChartStyle struct {
	Width      int
	MinHeight  int
	Padding    int
	BarHeight  int
	BarGap     int
	LabelWidth int
}

// ChartImageGenerator renders game statistics as PNG bar charts
type ChartImageGenerator struct {
	style ChartStyle
}

// NewChartImageGenerator creates a new image generator with default style
func NewChartImageGenerator() *ChartImageGenerator {
	return &ChartImageGenerator{
		style: ChartStyle{
			Width:      480,
			MinHeight:  160,
			Padding:    15,
			BarHeight:  18,
			BarGap:     10,
			LabelWidth: 130,
		},
	}
}

// GenerateCombinationChart renders the share of each winning combination
func (g *ChartImageGenerator) GenerateCombinationChart(stats []entities.CombinationStat) ([]byte, error) {
	bars := make([]ChartBar, len(stats))
	for idx, s := range stats {
		bars[idx] = ChartBar{
			Label:      s.Combination.Label(),
			Count:      s.Count,
			Percentage: s.Percentage,
			ColorHex:   s.Color,
		}
	}
	return g.generateBarChart("Winning combinations", bars)
}

// GenerateWinnersChart renders round wins per player
func (g *ChartImageGenerator) GenerateWinnersChart(stats []entities.WinnerStat) ([]byte, error) {
	bars := make([]ChartBar, len(stats))
	for idx, s := range stats {
		bars[idx] = ChartBar{
			Label:      s.Name,
			Count:      s.Wins,
			Percentage: s.Percentage,
			ColorHex:   entities.ColorForIndex(idx),
		}
	}
	return g.generateBarChart("Round wins", bars)
}

// generateBarChart creates the actual image
func (g *ChartImageGenerator) generateBarChart(title string, bars []ChartBar) ([]byte, error) {
	start := time.Now()
	defer func() {
		log.WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("bar_count", len(bars)).
			Debug("Chart image generation completed")
	}()

	// Title (40px) + bars + bottom padding
	height := 40 + len(bars)*(g.style.BarHeight+g.style.BarGap) + g.style.Padding
	if height < g.style.MinHeight {
		height = g.style.MinHeight
	}

	dc := gg.NewContext(g.style.Width, height)

	// Vertical gradient background
	for y := 0; y < height; y++ {
		t := float64(y) / float64(height)
		dc.SetRGB(0.02+t*0.03, 0.02+t*0.05, 0.05+t*0.1)
		dc.DrawRectangle(0, float64(y), float64(g.style.Width), 1)
		dc.Fill()
	}

	titleFace, err := loadFont(gobold.TTF, 14)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	dc.SetFontFace(titleFace)
	dc.SetRGB(1, 1, 1)
	drawSharpText(dc, title, float64(g.style.Padding), 25)

	face, err := loadFont(gomono.TTF, 11)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	dc.SetFontFace(face)

	if len(bars) == 0 {
		dc.SetRGB(0.7, 0.7, 0.75)
		drawSharpText(dc, "No rounds recorded yet", float64(g.style.Padding), 60)
		return encode(dc)
	}

	maxCount := 0
	for _, b := range bars {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	barX := float64(g.style.Padding + g.style.LabelWidth)
	valueWidth := 80.0
	maxBarWidth := float64(g.style.Width) - barX - valueWidth - float64(g.style.Padding)

	y := 40.0
	for _, b := range bars {
		label := b.Label
		if len(label) > 16 {
			label = label[:15] + "…"
		}

		dc.SetRGB(0.9, 0.9, 0.95)
		drawSharpText(dc, label, float64(g.style.Padding), y+float64(g.style.BarHeight)-5)

		// Track
		dc.SetRGBA(1, 1, 1, 0.06)
		dc.DrawRoundedRectangle(barX, y, maxBarWidth, float64(g.style.BarHeight), 4)
		dc.Fill()

		width := maxBarWidth * float64(b.Count) / float64(maxCount)
		if width < 2 {
			width = 2
		}
		dc.SetHexColor(b.ColorHex)
		dc.DrawRoundedRectangle(barX, y, width, float64(g.style.BarHeight), 4)
		dc.Fill()

		dc.SetRGB(1, 1, 1)
		drawSharpText(dc, fmt.Sprintf("%d (%d%%)", b.Count, b.Percentage), barX+maxBarWidth+8, y+float64(g.style.BarHeight)-5)

		y += float64(g.style.BarHeight + g.style.BarGap)
	}

	return encode(dc)
}

func encode(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// drawSharpText draws text with a subtle shadow
func drawSharpText(dc *gg.Context, text string, x, y float64) {
	dc.Push()
	dc.SetRGBA(0, 0, 0, 0.5)
	dc.DrawString(text, x+0.5, y+0.5)
	dc.Pop()

	dc.DrawString(text, x, y)
}

func loadFont(fontData []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:       size,
		DPI:        72,
		Hinting:    font.HintingFull,
		SubPixelsX: 4,
		SubPixelsY: 4,
	})
	return face, nil
}
