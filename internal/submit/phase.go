// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package submit

// Phase is one discrete stage of the submission lifecycle.
type Phase string

const (
	// PhaseIdle is the initial phase, and the only phase reachable after a
	// reset.
	PhaseIdle Phase = "idle"
	// PhaseDownloading is entered on submit while the backend fetches the
	// video.
	PhaseDownloading Phase = "downloading"
	// PhaseUploading is the simulated phase for transmitting the video to
	// the model.
	PhaseUploading Phase = "uploading"
	// PhaseAnalyzing is the simulated phase for the outstanding model call.
	PhaseAnalyzing Phase = "analyzing"
	// PhaseDone is the terminal success phase.
	PhaseDone Phase = "done"
	// PhaseError is the terminal failure phase.
	PhaseError Phase = "error"
)

// Terminal reports whether the phase ends a submission. Terminal phases only
// leave through an explicit reset.
func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseError
}

// InFlight reports whether a submission is currently outstanding.
func (p Phase) InFlight() bool {
	return p != PhaseIdle && !p.Terminal()
}
