// Package clipboard provides cross-platform clipboard access via shell commands.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrClipboardUnavailable is returned when clipboard access is not available.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Format names the MIME flavor placed on the clipboard. Rich targets let
// word processors paste formatted citations; plain text is always safe.
type Format string

const (
	FormatPlain Format = "plain"
	FormatHTML  Format = "html"
	FormatRTF   Format = "rtf"
)

// mimeType maps a format to the X11 clipboard target.
func mimeType(f Format) string {
	switch f {
	case FormatHTML:
		return "text/html"
	case FormatRTF:
		return "text/rtf"
	default:
		return "text/plain"
	}
}

// IsAvailable checks if clipboard functionality is available on this system.
func IsAvailable() bool {
	switch runtime.GOOS {
	case "darwin":
		_, err := exec.LookPath("pbcopy")
		return err == nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return true
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return true
		}
		return false
	default:
		return false
	}
}

// Copy places plain text on the system clipboard.
func Copy(text string) error {
	return CopyAs(text, FormatPlain)
}

// CopyAs places text on the system clipboard under the given format.
// Returns ErrClipboardUnavailable if no clipboard tool is found, and an
// error for formats the platform tooling cannot carry.
func CopyAs(text string, format Format) error {
	cmd, err := copyCommand(format)
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// copyCommand builds the platform copy command for a format.
func copyCommand(format Format) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		if format != FormatPlain {
			// pbcopy only takes plain text; rich flavors need osascript
			// or textutil round-trips that mangle content
			return nil, fmt.Errorf("format %s not supported on macOS clipboard", format)
		}
		return exec.Command("pbcopy"), nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard", "-t", mimeType(format)), nil
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			if format != FormatPlain {
				return nil, fmt.Errorf("format %s requires xclip", format)
			}
			return exec.Command("xsel", "--clipboard", "--input"), nil
		}
		return nil, ErrClipboardUnavailable
	default:
		return nil, ErrClipboardUnavailable
	}
}

// FormatFor picks the clipboard flavor matching a markup formatter name,
// so copied citations paste with their formatting where possible.
func FormatFor(formatterName string) Format {
	switch strings.ToLower(formatterName) {
	case "html", "html+css", "html_css", "htmlcss":
		return FormatHTML
	case "richtext", "rtf":
		return FormatRTF
	default:
		return FormatPlain
	}
}
