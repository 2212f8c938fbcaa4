package shared

import (
	"fmt"
	"os/exec"
	"runtime"
)

// goos is swapped in tests to cover platform dispatch.
var goos = runtime.GOOS

// OpenBrowser launches the system default browser at url.
//
// Returns an error on platforms without a known opener so the caller
// can fall back to printing the URL.
func OpenBrowser(url string) error {
	var name string
	var args []string

	switch goos {
	case "darwin":
		name, args = "open", []string{url}
	case "linux":
		name, args = "xdg-open", []string{url}
	case "windows":
		name, args = "cmd", []string{"/c", "start", url}
	default:
		return fmt.Errorf("unsupported platform: %s", goos)
	}

	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}
