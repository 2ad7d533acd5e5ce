package component

// CursorRequest asks the host to show or hide the system cursor. The
// cursor system consumes and removes it.
type CursorRequest struct {
	Visible bool
}

var CursorRequestComponent = NewComponent[CursorRequest]()
