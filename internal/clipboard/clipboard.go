// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"os/exec"
	"runtime"
	"strings"
)

// linuxTools lists clipboard writers in preference order: Wayland first,
// then the X11 tools.
var linuxTools = [][]string{
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
}

// command returns the clipboard writer for the current platform, or nil if
// none is installed.
func command() *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		if _, err := exec.LookPath("pbcopy"); err == nil {
			return exec.Command("pbcopy")
		}
	case "windows":
		return exec.Command("cmd", "/c", "clip")
	default:
		for _, tool := range linuxTools {
			if _, err := exec.LookPath(tool[0]); err == nil {
				return exec.Command(tool[0], tool[1:]...)
			}
		}
	}
	return nil
}

// Write copies text to the system clipboard.
func Write(text string) error {
	cmd := command()
	if cmd == nil {
		return exec.ErrNotFound
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return command() != nil
}
