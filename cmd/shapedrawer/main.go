package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/shapedraw"
	"github.com/tdewolff/shapedraw/fyneview"
)

type Drawer struct {
	Outline bool   `desc:"Draw outlines instead of filled shapes, without color input"`
	Legacy  bool   `desc:"Derive polygon side counts from the list index plus three"`
	Config  string `short:"c" desc:"TOML config file"`
}

func main() {
	root := argp.NewCmd(&Drawer{}, "Shape drawer")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Drawer) Run() error {
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

	a := app.New()
	w := a.NewWindow("Shape Drawer")
	w.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))
	w.SetContent(newDrawer(a, w, cfg))
	w.ShowAndRun()
	return nil
}

// dialogNotifier shows every invalid input in a modal dialog.
type dialogNotifier struct {
	w fyne.Window
}

func (n dialogNotifier) Notify(err error) {
	dialog.ShowInformation("Invalid input", err.Error(), n.w)
}

func newDrawer(a fyne.App, w fyne.Window, cfg shapedraw.Config) fyne.CanvasObject {
	state := cfg.State()
	form := cfg.Form()
	view := fyneview.New(state)

	shapeSelect := widget.NewSelect(shapedraw.ShapeNames, nil)
	shapeSelect.SetSelected(form.Shape)
	dim1Entry := widget.NewEntry()
	dim2Entry := widget.NewEntry()

	items := []*widget.FormItem{
		widget.NewFormItem("Choose Shape:", shapeSelect),
		widget.NewFormItem("Dimension 1 (radius/side/width):", dim1Entry),
		widget.NewFormItem("Dimension 2 (only for Rectangle/Triangle - height):", dim2Entry),
	}

	var redEntry, greenEntry, blueEntry *widget.Entry
	if state.Mode == shapedraw.Filled {
		redEntry, greenEntry, blueEntry = widget.NewEntry(), widget.NewEntry(), widget.NewEntry()
		redEntry.SetText(form.Red)
		greenEntry.SetText(form.Green)
		blueEntry.SetText(form.Blue)
		items = append(items,
			widget.NewFormItem("Red (0-255):", redEntry),
			widget.NewFormItem("Green (0-255):", greenEntry),
			widget.NewFormItem("Blue (0-255):", blueEntry),
		)
	}

	notifier := dialogNotifier{w}
	drawButton := widget.NewButton("Draw", func() {
		form.Shape = shapeSelect.Selected
		form.Dim1 = dim1Entry.Text
		form.Dim2 = dim2Entry.Text
		if redEntry != nil {
			form.Red, form.Green, form.Blue = redEntry.Text, greenEntry.Text, blueEntry.Text
		}
		state.Submit(form, notifier)
		view.Refresh()
	})
	input := container.NewVBox(widget.NewForm(items...), drawButton)

	nextButton := widget.NewButton("Next", func() {
		dialog.ShowInformation("Next", "Next button clicked!", w)
	})
	nextButton.Importance = widget.SuccessImportance
	exitButton := widget.NewButton("Exit", func() {
		a.Quit()
	})
	exitButton.Importance = widget.DangerImportance
	buttons := container.NewCenter(container.NewHBox(nextButton, exitButton))

	return container.NewBorder(input, buttons, nil, nil, view)
}
