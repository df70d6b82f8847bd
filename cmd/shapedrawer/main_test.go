package main

import (
	"testing"

	fyneTest "fyne.io/fyne/v2/test"
	"github.com/tdewolff/shapedraw"
	"github.com/tdewolff/test"
)

func TestNewDrawer(t *testing.T) {
	a := fyneTest.NewTempApp(t)
	w := a.NewWindow("Shape Drawer")

	cfg := shapedraw.DefaultConfig()
	test.That(t, newDrawer(a, w, cfg) != nil)

	cfg.Mode = shapedraw.Outline.String()
	test.That(t, newDrawer(a, w, cfg) != nil)
}
