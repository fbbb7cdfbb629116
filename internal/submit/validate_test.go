// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package submit

import "testing"

func TestIsVideoURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://www.tiktok.com/@x/video/1", true},
		{"https://vm.tiktok.com/ZM1234/", true},
		{"https://vt.tiktok.com/ZS1234/", true},
		{"HTTPS://WWW.TIKTOK.COM/@X/VIDEO/1", true},
		{"  https://www.tiktok.com/@x/video/1  ", true},
		{"not a url", false},
		{"https://www.youtube.com/watch?v=1", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsVideoURL(tt.input); got != tt.want {
			t.Errorf("IsVideoURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
