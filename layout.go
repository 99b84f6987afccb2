package main

// page geometry, in inches
const (
	pageWidth  = 8.5
	pageHeight = 11.0
)

var (
	padding   = 0.25
	thickerLW = 0.017
	thinLW    = 0.01
	thinestLW = 0.001
)

// NOTE padding is only added on the right and bottom sides of an element
// so that it is never doubled

type bounds struct {
	top    float64
	left   float64
	bottom float64
	right  float64
}

func pageBounds() bounds {
	return bounds{padding, padding, pageHeight, pageWidth}
}

func (b bounds) Width() float64 {
	return b.right - b.left
}

func (b bounds) Height() float64 {
	return b.bottom - b.top
}

func splitBoundsIntoColumns(bnd bounds, numCols uint16) (splitBnds []bounds) {
	width := bnd.Width() / float64(numCols)
	for i := uint16(0); i < numCols; i++ {
		b := bounds{
			top:    bnd.top,
			bottom: bnd.bottom,
			left:   bnd.left + float64(i)*width,
			right:  bnd.left + float64(i+1)*width,
		}
		splitBnds = append(splitBnds, b)
	}
	return splitBnds
}
