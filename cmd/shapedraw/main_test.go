package main

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestPrintASCII(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for j := 0; j < 2; j++ {
		img.Set(0, j, color.White)
		img.Set(1, j, color.Black)
		img.Set(2, j, color.White)
	}

	var buf bytes.Buffer
	printASCII(&buf, img)
	test.T(t, buf.String(), " $ \n $ \n")
}

func TestScale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 600, 400))
	dst := scale(img, 60, 2.0)
	test.T(t, dst.Bounds(), image.Rect(0, 0, 60, 20))

	dst = scale(img, 1, 100.0)
	test.T(t, dst.Bounds(), image.Rect(0, 0, 1, 1))
}

func TestShowRun(t *testing.T) {
	cmd := &Show{Shape: "Rectangle", Dim1: "10", Dim2: "10", Width: 200, Height: 200, Columns: 20, Ratio: 1.0}
	test.Error(t, cmd.Run())
	cmd.Columns = 0
	test.That(t, cmd.Run() != nil)
}

func TestDrawRun(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{".svg", ".pdf", ".png"} {
		t.Run(ext, func(t *testing.T) {
			filename := filepath.Join(dir, "hexagon"+ext)
			cmd := &Draw{Shape: "Hexagon", Dim1: "5", Width: 200, Height: 200, Output: filename}
			test.Error(t, cmd.Run())
			info, err := os.Stat(filename)
			test.Error(t, err)
			test.That(t, 0 < info.Size())
		})
	}

	cmd := &Draw{Shape: "Hexagon", Dim1: "5", Output: filepath.Join(dir, "hexagon.bmp")}
	test.That(t, cmd.Run() != nil)
}

func TestStderrNotifier(t *testing.T) {
	var buf bytes.Buffer
	stderrNotifier{&buf}.Notify(errString("bad"))
	test.That(t, strings.HasPrefix(buf.String(), "WARNING: bad"))
}

type errString string

func (err errString) Error() string {
	return string(err)
}
