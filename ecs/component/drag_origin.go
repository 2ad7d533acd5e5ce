package component

// DragOrigin is the cursor position the next drag delta is measured from.
// It is moved to the cursor after every applied drag step.
type DragOrigin struct {
	X float64
	Y float64
}

var DragOriginComponent = NewComponent[DragOrigin]()
