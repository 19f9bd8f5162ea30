package colstat

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// Geometry of the occupancy plot in pixels.
const (
	barW     = 3
	plotH    = 200
	left     = 40
	right    = 20
	top      = 40
	bottom   = 40
	minPlotW = 300
	fontSize = 12
)

var barColour = color.RGBA{0x33, 0x66, 0xcc, 0xff}

// Plot draws a bar for each column, whose height is the fraction of
// sequences with a residue there, and writes it as a png.
func (occ *Occupancy) Plot(w io.Writer, title string) error {
	ncol := len(occ.NonGap)
	width := left + right + max(ncol*barW, minPlotW)
	height := top + plotH + bottom
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	bar := image.NewUniform(barColour)
	for i, f := range occ.NonGap {
		h := int(f*plotH + 0.5)
		r := image.Rect(left+i*barW, top+plotH-h, left+(i+1)*barW-1, top+plotH)
		draw.Draw(img, r, bar, image.Point{}, draw.Src)
	}
	draw.Draw(img, image.Rect(left-1, top, left, top+plotH+1), image.Black, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(left-1, top+plotH, width-right, top+plotH+1), image.Black, image.Point{}, draw.Src)

	if err := label(img, title, ncol); err != nil {
		return err
	}
	return png.Encode(w, img)
}

func label(img *image.RGBA, title string, ncol int) error {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parsing font: %w", err)
	}
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(fontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.Black)
	for _, s := range []struct {
		txt  string
		x, y int
	}{
		{title, left, top - 15},
		{"1", left - 15, top + fontSize/2},
		{"0", left - 15, top + plotH + fontSize/2},
		{fmt.Sprintf("%d columns", ncol), left, top + plotH + 25},
	} {
		if _, err := c.DrawString(s.txt, freetype.Pt(s.x, s.y)); err != nil {
			return err
		}
	}
	return nil
}

// PlotFile writes the plot to fname.
func (occ *Occupancy) PlotFile(fname, title string) (err error) {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()
	return occ.Plot(fp, title)
}

// CSVFile writes the per column numbers to fname.
func (occ *Occupancy) CSVFile(fname string) (err error) {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()
	return occ.WriteCSV(fp)
}
