package widget_test

import (
	"fmt"

	"github.com/matzehuels/sash/pkg/geom"
	"github.com/matzehuels/sash/pkg/layout"
	"github.com/matzehuels/sash/pkg/widget"
)

func ExampleComposite() {
	shell := widget.NewComposite("shell")
	shell.SetBounds(geom.RectOf(0, 0, 300, 90))

	for _, name := range []string{"red", "green", "blue"} {
		shell.Add(widget.NewBox(name))
	}
	if err := shell.SetLayout(layout.NewFillLayout(layout.Horizontal)); err != nil {
		fmt.Println("layout failed:", err)
		return
	}

	for _, child := range shell.Children() {
		fmt.Printf("%s %v\n", child.ID(), child.Bounds())
	}
	// Output:
	// red (0, 0, 100, 90)
	// green (100, 0, 100, 90)
	// blue (200, 0, 100, 90)
}

func ExampleComposite_grid() {
	shell := widget.NewComposite("shell")
	shell.SetBounds(geom.RectOf(0, 0, 200, 40))

	label := widget.NewBox("label")
	label.SetPreferredSize(50, 20)

	field := widget.NewBox("field")
	field.SetPreferredSize(50, 20)
	data := layout.NewGridData()
	data.HorizontalAlignment = layout.Fill
	data.GrabExcessHorizontalSpace = true
	field.SetLayoutData(data)

	shell.Add(label, field)
	if err := shell.SetLayout(layout.NewGridLayout(2)); err != nil {
		fmt.Println("layout failed:", err)
		return
	}

	fmt.Println("label", label.Bounds())
	fmt.Println("field", field.Bounds())
	// Output:
	// label (5, 5, 50, 20)
	// field (60, 5, 135, 20)
}

func ExampleComposite_form() {
	shell := widget.NewComposite("shell")
	shell.SetBounds(geom.RectOf(0, 0, 300, 100))

	ok := widget.NewBox("ok")
	ok.SetPreferredSize(60, 25)
	cancel := widget.NewBox("cancel")
	cancel.SetPreferredSize(60, 25)

	// cancel hugs the right edge; ok sits just before it.
	cancelData := layout.NewFormData()
	cancelData.Right = layout.AttachPercent(100, 0)
	cancel.SetLayoutData(cancelData)

	okData := layout.NewFormData()
	okData.Right = layout.AttachControl(cancel, 0)
	ok.SetLayoutData(okData)

	shell.Add(ok, cancel)
	form := layout.NewFormLayout()
	form.Spacing = 5
	if err := shell.SetLayout(form); err != nil {
		fmt.Println("layout failed:", err)
		return
	}

	fmt.Println("ok", ok.Bounds())
	fmt.Println("cancel", cancel.Bounds())
	// Output:
	// ok (175, 0, 60, 25)
	// cancel (240, 0, 60, 25)
}
