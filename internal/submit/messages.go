// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package submit

import (
	"math/rand/v2"
	"time"
)

// The backend performs all work as one opaque call; the two intermediate
// phases advance on fixed delays purely for progressive feedback.
const (
	// UploadingAfter is when the simulated uploading phase starts, measured
	// from submit.
	UploadingAfter = 3 * time.Second

	// AnalyzingAfter is when the simulated analyzing phase starts, measured
	// from submit.
	AnalyzingAfter = 8 * time.Second

	// RotateInterval is how often the status message is re-picked while a
	// phase stays active, to signal liveness during the long call.
	RotateInterval = 3 * time.Second
)

var phaseMessages = map[Phase][]string{
	PhaseDownloading: {
		"Fetching the TikTok video...",
		"Download in progress...",
		"Connecting to TikTok...",
	},
	PhaseUploading: {
		"Sending to the AI...",
		"Uploading the video...",
		"Transmission in progress...",
	},
	PhaseAnalyzing: {
		"The AI is tasting the sauce...",
		"Analyzing the ingredients...",
		"Extracting the recipe...",
		"Deciphering the steps...",
		"Estimating the quantities...",
	},
}

// pickMessage selects a status message for the phase uniformly at random.
func pickMessage(p Phase) string {
	messages := phaseMessages[p]
	if len(messages) == 0 {
		return ""
	}
	return messages[rand.IntN(len(messages))]
}
