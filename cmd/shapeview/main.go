package main

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/canvas/renderers/gio"
	"github.com/tdewolff/shapedraw"
)

type View struct {
	Shape   string `short:"s" default:"Circle" desc:"Rectangle, Triangle, Circle, Pentagon, Hexagon, Heptagon, Octagon, Nonagon, or Decagon"`
	Dim1    string `default:"10" desc:"Dimension 1 (radius/side/width)"`
	Dim2    string `default:"10" desc:"Dimension 2 (only for Rectangle/Triangle - height)"`
	Red     string `default:"255" desc:"Red (0-255)"`
	Green   string `default:"0" desc:"Green (0-255)"`
	Blue    string `default:"0" desc:"Blue (0-255)"`
	Outline bool   `desc:"Draw the outline instead of filling"`
	Legacy  bool   `desc:"Derive polygon side counts from the list index plus three"`
	Config  string `short:"c" desc:"TOML config file"`
}

func main() {
	root := argp.NewCmd(&View{}, "Show a centered shape in a window")
	root.Parse()
	root.PrintHelp()
}

func (cmd *View) Run() error {
	cfg, err := shapedraw.LoadConfig(cmd.Config)
	if err != nil {
		return err
	}
	if cmd.Outline {
		cfg.Mode = shapedraw.Outline.String()
	}
	if cmd.Legacy {
		cfg.Legacy = true
	}

	state := cfg.State()
	state.Submit(shapedraw.Form{
		Shape: cmd.Shape,
		Dim1:  cmd.Dim1,
		Dim2:  cmd.Dim2,
		Red:   cmd.Red,
		Green: cmd.Green,
		Blue:  cmd.Blue,
	}, shapedraw.NotifierFunc(func(err error) {
		fmt.Fprintln(os.Stderr, "WARNING:", err)
	}))

	go func() {
		w := new(app.Window)
		w.Option(app.Title("Shape Drawer"), app.Size(unit.Dp(cfg.Width), unit.Dp(cfg.Height)))
		if err := run(w, state); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func run(window *app.Window, state *shapedraw.State) error {
	var ops op.Ops
	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			size := gtx.Constraints.Max
			c := gio.New(gtx, float64(size.X), float64(size.Y))
			state.Render(size.X, size.Y).RenderTo(c)
			e.Frame(gtx.Ops)
		}
	}
}
