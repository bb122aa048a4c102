package lesson

import (
	"github.com/pinagook/pinagook/internal/progress"
)

// progressLoadedMsg resolves the initial storage read. A nil Saved means
// no usable snapshot exists and the run starts fresh.
type progressLoadedMsg struct {
	Saved *progress.StoredProgress
}

// progressSavedMsg confirms an autosave write completed.
type progressSavedMsg struct{}

// eventLoggedMsg confirms a telemetry append. Errors are already
// swallowed by the command; the message only unblocks the runtime.
type eventLoggedMsg struct{}
