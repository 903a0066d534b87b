//go:build !darwin

package services

// systemPrefersDark defaults to light where no appearance probe exists.
// Windows/Linux detection could be added later.
func systemPrefersDark() bool {
	return false
}
