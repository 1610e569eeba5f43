package track

import (
	"github.com/atomicstack/timegraph/internal/capture"
	"github.com/atomicstack/timegraph/internal/geom"
)

var (
	colorGreen500  = geom.RGBA(76, 175, 80, 255)
	colorBlue500   = geom.RGBA(33, 150, 243, 255)
	colorGray600   = geom.RGBA(117, 117, 117, 255)
	colorOrange500 = geom.RGBA(255, 152, 0, 255)
	colorRed500    = geom.RGBA(244, 67, 54, 255)
	colorPurple500 = geom.RGBA(156, 39, 176, 255)
	colorBlack     = geom.RGBA(0, 0, 0, 255)
	colorBrown500  = geom.RGBA(121, 85, 72, 255)

	colorWhite           = geom.RGBA(255, 255, 255, 255)
	colorWhiteTranslucid = geom.RGBA(255, 255, 255, 190)
	colorGrey            = geom.RGBA(128, 128, 128, 255)
	colorSelection       = geom.RGBA(0, 255, 0, 255)
	colorDragRange       = geom.RGBA(0, 128, 255, 128)
	colorInactive        = geom.RGBA(100, 100, 100, 255)

	colorTrackBackground    = geom.RGBA(45, 45, 45, 255)
	colorExternalBackground = geom.RGBA(60, 40, 40, 255)
	colorTab                = geom.RGBA(70, 70, 70, 255)
	colorTabSelected        = geom.RGBA(0, 128, 255, 255)
	colorTabText            = geom.RGBA(230, 230, 230, 255)
)

// tabPickedLighten brightens the tab of a track while it is held.
const tabPickedLighten = 0.25

// StateColor is a pure function of the state; the owning thread plays no
// part.
func StateColor(s capture.ThreadState) geom.Color {
	switch s {
	case capture.StateRunning:
		return colorGreen500
	case capture.StateRunnable:
		return colorBlue500
	case capture.StateInterruptibleSleep:
		return colorGray600
	case capture.StateUninterruptibleSleep:
		return colorOrange500
	case capture.StateStopped:
		return colorRed500
	case capture.StateTraced:
		return colorPurple500
	case capture.StateDead, capture.StateZombie:
		return colorBlack
	case capture.StateParked, capture.StateIdle:
		return colorBrown500
	default:
		return colorInactive
	}
}

// StateDescription explains a state in one sentence.
func StateDescription(s capture.ThreadState) string {
	switch s {
	case capture.StateRunning:
		return "The thread is currently scheduled on the CPU."
	case capture.StateRunnable:
		return "The thread is ready to use the CPU, but is currently not scheduled."
	case capture.StateInterruptibleSleep:
		return "The thread is waiting for a resource to become available or for an event to happen."
	case capture.StateUninterruptibleSleep:
		return "The thread performed a specific system call that cannot be interrupted by any signal and is waiting for the call to complete."
	case capture.StateStopped:
		return "The execution of the thread was suspended with the SIGSTOP signal."
	case capture.StateTraced:
		return "The thread is stopped because a tracer (for example, a debugger) is attached to it."
	case capture.StateDead, capture.StateZombie:
		return "The thread has exited."
	case capture.StateParked:
		return "Parked kernel thread."
	case capture.StateIdle:
		return "Idle kernel thread."
	default:
		return ""
	}
}
