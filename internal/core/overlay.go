package core

import "fmt"

// DrawTooSmall replaces the whole screen with the "window too small" notice.
func DrawTooSmall(dst *Screen, needW, needH int) {
	dst.Clear()
	dst.DrawMessage("Window too small", fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()))
}

// DrawPaused draws the pause notice on top of the current frame.
func DrawPaused(dst *Screen) {
	dst.DrawMessage("Paused", "Press P to continue")
}

// TogglePause flips paused when the frame carries ActionPause.
func TogglePause(in InputFrame, paused *bool) {
	if in.Has(ActionPause) {
		*paused = !*paused
	}
}
