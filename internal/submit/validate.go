// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package submit

import (
	"strings"
)

// videoHosts are the supported source platform domains, including the short
// link hosts the share sheet produces.
var videoHosts = []string{
	"tiktok.com",
	"vm.tiktok.com",
	"vt.tiktok.com",
}

// IsVideoURL reports whether the input looks like a link to the supported
// video platform. The check is intentionally loose; the backend performs the
// authoritative validation when it downloads the video.
func IsVideoURL(input string) bool {
	input = strings.ToLower(strings.TrimSpace(input))
	for _, host := range videoHosts {
		if strings.Contains(input, host) {
			return true
		}
	}
	return false
}
