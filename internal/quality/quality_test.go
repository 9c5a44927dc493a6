package quality

import (
	"image"
	"image/color"
	"math/rand"
	"strings"
	"testing"
)

func uniformImage(w, h int, v uint8) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// checkerboard has maximal edge response at every pixel
func checkerboard(w, h int) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

// smoothGradient varies enough to not be blank but has no sharp edges
func smoothGradient(w, h int) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x * 255) / w)})
		}
	}
	return img
}

func noisyText(w, h int) image.Image {
	rng := rand.New(rand.NewSource(42))
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		if rng.Intn(4) == 0 {
			img.Pix[i] = 0
		} else {
			img.Pix[i] = 255
		}
	}
	return img
}

func TestAnalyzeImageBlankPage(t *testing.T) {
	rep := AnalyzeImage(uniformImage(64, 64, 250))
	if !rep.Blank {
		t.Errorf("uniform page not flagged blank, stddev=%f", rep.StdDev)
	}
	if rep.Blurry {
		t.Error("blank page must not also be flagged blurry")
	}
	if got := rep.Issues(); len(got) != 1 || got[0] != "Blank Page" {
		t.Errorf("Issues() = %v, want [Blank Page]", got)
	}
}

func TestAnalyzeImageBlurry(t *testing.T) {
	rep := AnalyzeImage(smoothGradient(64, 64))
	if rep.Blank {
		t.Errorf("gradient flagged blank, stddev=%f", rep.StdDev)
	}
	if !rep.Blurry {
		t.Errorf("edgeless gradient not flagged blurry, variance=%f", rep.BlurVariance)
	}
}

func TestAnalyzeImageSharpContent(t *testing.T) {
	for _, img := range []image.Image{checkerboard(64, 64), noisyText(64, 64)} {
		rep := AnalyzeImage(img)
		if rep.Blank || rep.Blurry {
			t.Errorf("sharp content flagged: blank=%t blurry=%t stddev=%f variance=%f",
				rep.Blank, rep.Blurry, rep.StdDev, rep.BlurVariance)
		}
	}
}

func TestAnalyzeTextBlank(t *testing.T) {
	for _, text := range []string{"", "   \n\t  ", "too short"} {
		if rep := AnalyzeText(text); !rep.Blank {
			t.Errorf("AnalyzeText(%q).Blank = false, want true", text)
		}
	}
}

func TestAnalyzeTextGarbled(t *testing.T) {
	garbled := strings.Repeat("#$%^&*()!@ ab ", 10)
	rep := AnalyzeText(garbled)
	if !rep.Blurry {
		t.Error("mostly-symbol text not flagged blurry")
	}
	if rep.Blank {
		t.Error("long garbled text must not be flagged blank")
	}
}

func TestAnalyzeTextShortGarbledFlagsBoth(t *testing.T) {
	rep := AnalyzeText("#$%^&*()!@ a")
	if !rep.Blank || !rep.Blurry {
		t.Errorf("short garbled text: blank=%t blurry=%t, want both", rep.Blank, rep.Blurry)
	}
}

func TestReportStatus(t *testing.T) {
	tests := []struct {
		name string
		rep  Report
		want string
	}{
		{"clean", Report{}, "OK"},
		{"blank", Report{Blank: true}, "DOCUMENT BLANK/UNREADABLE: Too little text extracted."},
		{"blurry", Report{Blurry: true}, "QUALITY FLAG: Poor text recognition. Document may be blurry or damaged."},
		{"both", Report{Blank: true, Blurry: true}, "FATAL ERROR: Document failed to provide recognizable content."},
	}
	for _, tc := range tests {
		if got := tc.rep.Status(); got != tc.want {
			t.Errorf("%s: Status() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAnalyzeTextClean(t *testing.T) {
	clean := strings.Repeat("FULL NAME TENDAI MOYO ID 63-123456 A 42 ", 3)
	rep := AnalyzeText(clean)
	if rep.Blank || rep.Blurry {
		t.Errorf("clean text flagged: blank=%t blurry=%t", rep.Blank, rep.Blurry)
	}
}
