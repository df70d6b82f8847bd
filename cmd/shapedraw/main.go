package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/shapedraw"
	"golang.org/x/image/draw"
)

type Draw struct {
	Shape      string  `short:"s" default:"Rectangle" desc:"Rectangle, Triangle, Circle, Pentagon, Hexagon, Heptagon, Octagon, Nonagon, or Decagon"`
	Dim1       string  `desc:"Dimension 1 (radius/side/width)"`
	Dim2       string  `desc:"Dimension 2 (only for Rectangle/Triangle - height)"`
	Red        string  `default:"" desc:"Red (0-255)"`
	Green      string  `default:"" desc:"Green (0-255)"`
	Blue       string  `default:"" desc:"Blue (0-255)"`
	Outline    bool    `desc:"Draw the outline instead of filling"`
	Legacy     bool    `desc:"Derive polygon side counts from the list index plus three"`
	Width      int     `short:"W" desc:"Canvas width"`
	Height     int     `short:"H" desc:"Canvas height"`
	Resolution float64 `short:"r" desc:"Dots per canvas unit for raster formats"`
	Config     string  `short:"c" desc:"TOML config file"`
	Output     string  `short:"o" desc:"Output filename (PNG, JPG, GIF, TIFF, SVG, or PDF)"`
}

type Show struct {
	Shape   string  `short:"s" default:"Rectangle" desc:"Rectangle, Triangle, Circle, Pentagon, Hexagon, Heptagon, Octagon, Nonagon, or Decagon"`
	Dim1    string  `desc:"Dimension 1 (radius/side/width)"`
	Dim2    string  `desc:"Dimension 2 (only for Rectangle/Triangle - height)"`
	Outline bool    `desc:"Draw the outline instead of filling"`
	Legacy  bool    `desc:"Derive polygon side counts from the list index plus three"`
	Width   int     `short:"W" desc:"Canvas width"`
	Height  int     `short:"H" desc:"Canvas height"`
	Columns int     `default:"80" desc:"Terminal columns"`
	Ratio   float64 `default:"2.0" desc:"Character height/width ratio"`
	Config  string  `short:"c" desc:"TOML config file"`
}

func main() {
	root := argp.NewCmd(&Draw{}, "Draw a centered shape to an image or document")
	root.AddCmd(&Show{}, "show", "Show a shape in the terminal")
	root.Parse()
	root.PrintHelp()
}

// stderrNotifier reports substituted input on stderr and keeps going.
type stderrNotifier struct {
	w io.Writer
}

func (n stderrNotifier) Notify(err error) {
	fmt.Fprintln(n.w, "WARNING:", err)
}

func loadConfig(filename string, outline, legacy bool, width, height int) (shapedraw.Config, error) {
	cfg, err := shapedraw.LoadConfig(filename)
	if err != nil {
		return cfg, err
	}
	if outline {
		cfg.Mode = shapedraw.Outline.String()
	}
	if legacy {
		cfg.Legacy = true
	}
	if width != 0 {
		cfg.Width = width
	}
	if height != 0 {
		cfg.Height = height
	}
	return cfg, cfg.Validate()
}

func (cmd *Draw) Run() error {
	if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	}

	cfg, err := loadConfig(cmd.Config, cmd.Outline, cmd.Legacy, cmd.Width, cmd.Height)
	if err != nil {
		return err
	}
	if cmd.Resolution != 0.0 {
		cfg.Resolution = cmd.Resolution
	}

	form := cfg.Form()
	form.Shape, form.Dim1, form.Dim2 = cmd.Shape, cmd.Dim1, cmd.Dim2
	if cmd.Red != "" {
		form.Red = cmd.Red
	}
	if cmd.Green != "" {
		form.Green = cmd.Green
	}
	if cmd.Blue != "" {
		form.Blue = cmd.Blue
	}

	state := cfg.State()
	state.Submit(form, stderrNotifier{os.Stderr})
	if state.Shape == nil {
		fmt.Fprintln(os.Stderr, "WARNING: unknown shape", cmd.Shape)
	}
	return shapedraw.Export(cmd.Output, state, cfg.Width, cfg.Height, cfg.Resolution)
}

func (cmd *Show) Run() error {
	if cmd.Columns <= 0 {
		return fmt.Errorf("columns must be positive")
	} else if cmd.Ratio <= 0.0 {
		return fmt.Errorf("ratio must be positive")
	}

	cfg, err := loadConfig(cmd.Config, cmd.Outline, cmd.Legacy, cmd.Width, cmd.Height)
	if err != nil {
		return err
	}

	state := cfg.State()
	state.Submit(shapedraw.Form{
		Shape: cmd.Shape,
		Dim1:  cmd.Dim1,
		Dim2:  cmd.Dim2,
		Red:   "0",
		Green: "0",
		Blue:  "0",
	}, stderrNotifier{os.Stderr})

	img := rasterizer.Draw(state.Render(cfg.Width, cfg.Height), canvas.DPMM(1.0), canvas.DefaultColorSpace)
	printASCII(os.Stdout, scale(img, cmd.Columns, cmd.Ratio))
	return nil
}

// scale shrinks img to the given number of columns, compensating for characters being ratio times higher than wide.
func scale(img image.Image, columns int, ratio float64) image.Image {
	src := img.Bounds()
	rows := int(float64(src.Dy())*float64(columns)/float64(src.Dx())/ratio + 0.5)
	if rows < 1 {
		rows = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, columns, rows))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, src, draw.Over, nil)
	return dst
}

func printASCII(w io.Writer, img image.Image) {
	palette := []byte("$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. ")

	size := img.Bounds().Max
	for j := 0; j < size.Y; j++ {
		line := make([]byte, 0, size.X+1)
		for i := 0; i < size.X; i++ {
			r, g, b, _ := img.At(i, j).RGBA()
			y, _, _ := color.RGBToYCbCr(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			idx := int(float64(y)/255.0*float64(len(palette)-1) + 0.5)
			line = append(line, palette[idx])
		}
		line = append(line, '\n')
		w.Write(line)
	}
}
