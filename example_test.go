package fig_test

import (
	"fmt"
	"log"
	"strings"

	"honnef.co/go/fig"
)

const drawing = `#FIG 3.2
Landscape
Center
Inches
Letter
100.00
Single
-2
1200 2
6 1200 1200 2400 2400
2 2 0 1 0 7 50 -1 -1 0.000 0 0 -1 0 0 5
	 1200 1200 2400 1200 2400 2400 1200 2400 1200 1200
4 1 0 40 -1 0 12 0.0000 4 135 450 1800 1850 box\001
-6
3 4 0 1 0 7 50 -1 -1 0.000 0 0 0 3
	 0 0 600 900 1200 0
	 0.000 1.000 0.000
`

func ExampleRead() {
	doc, err := fig.Read(strings.NewReader(drawing), nil)
	if err != nil {
		log.Fatal(err)
	}
	n := doc.Root.Count()
	fmt.Println("version:", doc.Version)
	fmt.Println("objects:", n.Objects())
	fmt.Println("compounds:", n.Compounds)
	// Version 3.2 splines are read as lines.
	fmt.Println("lines:", n.Lines, "splines:", n.Splines)
	fmt.Printf("text: %q\n", doc.Root.Compounds[0].Texts[0].String)
	// Output:
	// version: 3.2
	// objects: 3
	// compounds: 1
	// lines: 2 splines: 0
	// text: "box"
}

func ExampleEvalOpenXSpline() {
	pts := []fig.Point{fig.Pt(0, 0), fig.Pt(100, 0), fig.Pt(100, 100)}
	// Sharp points give the control polygon itself.
	out, err := fig.EvalOpenXSpline(pts, []float64{0, 0, 0}, fig.HighPrecision)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output:
	// [(0, 0) (100, 0) (100, 100)]
}
