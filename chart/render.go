// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/plotlessons/series"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PanelPad is the space in pixels around each panel of a multi-panel window.
const PanelPad = 4

// Render rasterizes the window at its configured pixel size.
// Rendering unchanged data produces an identical image.
func (w *Window) Render() (*image.RGBA, error) {
	// 72 dpi makes one point one pixel
	c := vgimg.NewWith(vgimg.UseWH(vg.Length(w.Size.X), vg.Length(w.Size.Y)), vgimg.UseDPI(72), vgimg.UseBackgroundColor(w.Background))
	dc := draw.New(c)

	plots := make([][]*plot.Plot, w.rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, w.cols)
		for col := range plots[r] {
			p, err := w.panels[r][col].plot(w.Background)
			if err != nil {
				return nil, fmt.Errorf("chart.Render: panel %d,%d: %w", r, col, err)
			}
			plots[r][col] = p
		}
	}

	if w.rows == 1 && w.cols == 1 {
		plots[0][0].Draw(dc)
	} else {
		t := draw.Tiles{
			Rows: w.rows, Cols: w.cols,
			PadX: PanelPad, PadY: PanelPad,
			PadTop: PanelPad, PadBottom: PanelPad, PadLeft: PanelPad, PadRight: PanelPad,
		}
		cs := plot.Align(plots, t, dc)
		for r := range plots {
			for col := range plots[r] {
				plots[r][col].Draw(cs[r][col])
			}
		}
	}
	return imagex.AsRGBA(c.Image()), nil
}

// plot builds a new gonum plot reflecting the current panel state.
func (pn *Panel) plot(bg color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.BackgroundColor = bg
	fg := pn.Foreground
	if fg == nil {
		fg = color.Gray{Y: 150}
	}

	if pn.Title.Text != "" {
		p.Title.Text = pn.Title.String()
		setTextStyle(&p.Title.TextStyle, pn.Title.Style, fg)
	}
	p.X.Label.Text = pn.XLabel.String()
	p.Y.Label.Text = pn.YLabel.String()
	setTextStyle(&p.X.Label.TextStyle, pn.XLabel.Style, fg)
	setTextStyle(&p.Y.Label.TextStyle, pn.YLabel.Style, fg)
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Color = fg
		ax.Tick.LineStyle.Color = fg
		ax.Tick.Label.Color = fg
	}

	if pn.Grid.X || pn.Grid.Y {
		g := plotter.NewGrid()
		gc := series.WithAlpha(fg, pn.Grid.Alpha)
		g.Vertical.Color, g.Horizontal.Color = nil, nil
		if pn.Grid.X {
			g.Vertical.Color = gc
		}
		if pn.Grid.Y {
			g.Horizontal.Color = gc
		}
		p.Add(g)
	}

	if pn.Legend.On {
		lg := &p.Legend
		lg.TextStyle.Color = fg
		if pn.Legend.TextSize > 0 {
			lg.TextStyle.Font.Size = vg.Points(pn.Legend.TextSize)
		}
		dx, dy := pn.Legend.Offset[0], pn.Legend.Offset[1]
		lg.Left = dx >= 0
		lg.Top = dy >= 0
		lg.XOffs = vg.Length(dx)
		lg.YOffs = vg.Length(-dy)
	}

	for _, sr := range pn.Series {
		pls, err := plotters(sr)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", sr.Name, err)
		}
		if sr.Len() > 0 {
			p.Add(pls...)
		}
		if pn.Legend.On && sr.Name != "" && len(pls) > 0 {
			ths := make([]plot.Thumbnailer, len(pls))
			for i, pl := range pls {
				ths[i] = pl.(plot.Thumbnailer)
			}
			p.Legend.Add(sr.Name, ths...)
		}
	}

	if pn.XRange.Set {
		r := pn.XRange.Padded()
		p.X.Min, p.X.Max = r.Min, r.Max
	}
	if pn.YRange.Set {
		r := pn.YRange.Padded()
		p.Y.Min, p.Y.Max = r.Min, r.Max
	}
	if pn.HideAxes {
		p.HideAxes()
	}
	return p, nil
}

func setTextStyle(ts *text.Style, st TextStyle, fg color.Color) {
	ts.Color = fg
	if st.Color != nil {
		ts.Color = st.Color
	}
	if st.Size > 0 {
		ts.Font.Size = vg.Points(st.Size)
	}
	if st.Bold {
		ts.Font.Weight = xfont.WeightBold
	}
	if st.Italic {
		ts.Font.Style = xfont.StyleItalic
	}
}

// plotters converts a series into a line and optional scatter plotter.
func plotters(sr *series.Series) ([]plot.Plotter, error) {
	data := sr.Data()
	xys := make(plotter.XYs, data.Len())
	for i := range xys {
		xys[i].X = data.X[i]
		xys[i].Y = data.Y[i]
	}
	var pls []plot.Plotter
	st := &sr.Style
	if st.Line.IsOn() {
		ln, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		ln.LineStyle.Color = st.Line.Color
		ln.LineStyle.Width = vg.Length(st.Line.Width)
		for _, d := range st.Line.Pattern.Dashes(st.Line.Width) {
			ln.LineStyle.Dashes = append(ln.LineStyle.Dashes, vg.Length(d))
		}
		pls = append(pls, ln)
	}
	if st.Point.On {
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = st.Point.Fill
		sc.GlyphStyle.Radius = vg.Length(st.Point.Size / 2)
		sc.GlyphStyle.Shape = glyph(st.Point.Shape)
		pls = append(pls, sc)
	}
	return pls, nil
}

func glyph(sh series.Shapes) draw.GlyphDrawer {
	switch sh {
	case series.Ring:
		return draw.RingGlyph{}
	case series.Square:
		return draw.SquareGlyph{}
	case series.Box:
		return draw.BoxGlyph{}
	case series.Triangle:
		return draw.TriangleGlyph{}
	case series.Pyramid:
		return draw.PyramidGlyph{}
	case series.Plus:
		return draw.PlusGlyph{}
	case series.Cross:
		return draw.CrossGlyph{}
	}
	return draw.CircleGlyph{}
}
