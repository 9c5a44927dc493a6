package quality

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/TadiwanasheNdombo/aura-document-system/constants"
)

// Thresholds tuned against scanned account packages: a near-uniform
// page is blank, a page with almost no edge response is blurry.
const (
	BlankStdDevThreshold  = 10.0
	BlurVarianceThreshold = 100.0
)

// Report carries the quality verdict for one document.
type Report struct {
	Blank        bool
	Blurry       bool
	StdDev       float64
	BlurVariance float64
}

// Status renders the verdict as the single quality line written into
// triage reports.
func (r Report) Status() string {
	switch {
	case r.Blank && r.Blurry:
		return "FATAL ERROR: Document failed to provide recognizable content."
	case r.Blank:
		return "DOCUMENT BLANK/UNREADABLE: Too little text extracted."
	case r.Blurry:
		return "QUALITY FLAG: Poor text recognition. Document may be blurry or damaged."
	}
	return "OK"
}

// Issues renders the verdict as report tags.
func (r Report) Issues() []string {
	var issues []string
	if r.Blank {
		issues = append(issues, constants.IssueBlankPage)
	}
	if r.Blurry {
		issues = append(issues, constants.IssueBlurry)
	}
	return issues
}

// AnalyzeImageFile decodes and scores an image document.
func AnalyzeImageFile(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Report{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return AnalyzeImage(img), nil
}

// AnalyzeImage scores a decoded image on pixel statistics alone.
func AnalyzeImage(img image.Image) Report {
	gray := toGray(img)
	std := stdDev(gray)
	blur := laplacianVariance(gray)
	return Report{
		Blank:        std < BlankStdDevThreshold,
		Blurry:       std >= BlankStdDevThreshold && blur < BlurVarianceThreshold,
		StdDev:       std,
		BlurVariance: blur,
	}
}

type grayImage struct {
	pix  []float64
	w, h int
}

func toGray(img image.Image) grayImage {
	b := img.Bounds()
	g := grayImage{w: b.Dx(), h: b.Dy(), pix: make([]float64, b.Dx()*b.Dy())}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, gr, bl, _ := img.At(x, y).RGBA()
			// ITU-R 601 luma, scaled back to 0..255
			g.pix[i] = (0.299*float64(r) + 0.587*float64(gr) + 0.114*float64(bl)) / 257.0
			i++
		}
	}
	return g
}

func stdDev(g grayImage) float64 {
	if len(g.pix) == 0 {
		return 0
	}
	var sum float64
	for _, v := range g.pix {
		sum += v
	}
	mean := sum / float64(len(g.pix))
	var varSum float64
	for _, v := range g.pix {
		d := v - mean
		varSum += d * d
	}
	return math.Sqrt(varSum / float64(len(g.pix)))
}

// laplacianVariance convolves a 3x3 Laplacian kernel and returns the
// variance of the response. Sharp edges drive it up.
func laplacianVariance(g grayImage) float64 {
	if g.w < 3 || g.h < 3 {
		return 0
	}
	n := (g.w - 2) * (g.h - 2)
	resp := make([]float64, 0, n)
	at := func(x, y int) float64 { return g.pix[y*g.w+x] }
	for y := 1; y < g.h-1; y++ {
		for x := 1; x < g.w-1; x++ {
			v := 4*at(x, y) - at(x-1, y) - at(x+1, y) - at(x, y-1) - at(x, y+1)
			resp = append(resp, v)
		}
	}
	var sum float64
	for _, v := range resp {
		sum += v
	}
	mean := sum / float64(len(resp))
	var varSum float64
	for _, v := range resp {
		d := v - mean
		varSum += d * d
	}
	return varSum / float64(len(resp))
}
