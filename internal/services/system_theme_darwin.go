//go:build darwin

package services

import (
	"os/exec"
	"strings"
)

// systemPrefersDark reports the macOS appearance. The key is only present
// when dark mode is active, so a read failure means light.
func systemPrefersDark() bool {
	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "Dark"
}
