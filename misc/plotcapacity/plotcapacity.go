// plotcapacity creates a plot of cumulative watermark capacity along a
// sequence for the three reading frames.
package main

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/codonmark/codonmark/bio"
	"github.com/codonmark/codonmark/gctable"
	"github.com/codonmark/codonmark/watermark"
)

var log = logging.MustGetLogger("plotcapacity")

var (
	app     = kingpin.New("plotcapacity", "plot cumulative watermark capacity")
	seqFile = app.Arg("seq", "sequence file (FASTA or raw), the first record is used").Required().ExistingFile()
	gcodeID = app.Flag("gcode", "NCBI genetic code id, standard by default").Default("1").Int()
	outF    = app.Flag("out", "output image").Short('o').Default("capacity.png").String()
	size    = app.Flag("size", "image size in inches").Default("6").Float64()
)

// capacityLines returns the cumulative capacity in bits against the
// nucleotide position for frames 1, 2 and 3.
func capacityLines(c *watermark.Codec, seq string, gcID int) ([]plotter.XYs, error) {
	lines := make([]plotter.XYs, 3)
	for frame := 1; frame <= 3; frame++ {
		profile, err := c.Profile(seq, frame, gcID)
		if err != nil {
			return nil, err
		}
		pts := make(plotter.XYs, len(profile)+1)
		pts[0].X = float64(frame - 1)
		total := 0
		for i, bits := range profile {
			total += bits
			pts[i+1].X = float64(frame - 1 + 3*(i+1))
			pts[i+1].Y = float64(total)
		}
		lines[frame-1] = pts
	}
	return lines, nil
}

// newPlot plots the capacity lines.
func newPlot(title string, lines []plotter.XYs) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	p.X.Label.Text = "position"
	p.Y.Label.Text = "capacity, bits"

	vs := make([]interface{}, 0, 2*len(lines))
	for i, pts := range lines {
		vs = append(vs, fmt.Sprintf("frame %d", i+1), pts)
	}
	if err = plotutil.AddLines(p, vs...); err != nil {
		return nil, err
	}
	return p, nil
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	logging.SetBackend(logging.NewLogBackend(os.Stderr, "", 0))
	logging.SetFormatter(logging.MustStringFormatter(`%{message}`))
	logging.SetLevel(logging.WARNING, "gctable")
	logging.SetLevel(logging.WARNING, "watermark")

	f, err := os.Open(*seqFile)
	if err != nil {
		log.Fatal(err)
	}
	seqs, err := bio.ParseSequences(f, *seqFile)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}
	if len(seqs) == 0 {
		log.Fatal("No sequences")
	}

	lines, err := capacityLines(watermark.New(gctable.NCBI()), seqs[0].Sequence, *gcodeID)
	if err != nil {
		log.Fatal(err)
	}
	for i, pts := range lines {
		log.Infof("frame %d: %v bits", i+1, pts[len(pts)-1].Y)
	}

	p, err := newPlot(seqs[0].Name, lines)
	if err != nil {
		log.Fatal(err)
	}
	if err := p.Save(vg.Length(*size)*vg.Inch, vg.Length(*size)*vg.Inch, *outF); err != nil {
		log.Fatal(err)
	}
}
