// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

// Analysis is the configuration for video analysis.
type Analysis struct {
	// Model is the Gemini model used to analyze videos.
	Model string `koanf:"model"`
}

type Config struct {
	config.Common

	// Analysis is the configuration for video analysis.
	Analysis Analysis `koanf:"analysis"`
}
