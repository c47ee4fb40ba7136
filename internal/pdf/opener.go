package pdf

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Opener resolves and opens the PDF filed for a reference. PDFs live
// under a single root directory, named by citation key ("Knuth1984.pdf")
// or by an explicit relative path.
type Opener struct {
	root   string
	reader string
}

// NewOpener builds an opener over a PDF root directory. reader selects
// the viewer; "" and "system" defer to the platform default.
func NewOpener(root, reader string) *Opener {
	if reader == "" {
		reader = "system"
	}
	return &Opener{root: root, reader: reader}
}

// Resolve turns a citation key or relative path into an absolute PDF
// path under the root. A bare key resolves to "<key>.pdf".
func (o *Opener) Resolve(keyOrPath string) (string, error) {
	if o.root == "" {
		return "", fmt.Errorf("pdf_root not configured")
	}
	if keyOrPath == "" {
		return "", fmt.Errorf("no PDF specified")
	}

	rel := keyOrPath
	if !strings.EqualFold(filepath.Ext(rel), ".pdf") {
		rel += ".pdf"
	}

	full := filepath.Join(o.root, rel)
	if _, err := os.Stat(full); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("PDF not found: %s", full)
		}
		return "", fmt.Errorf("checking PDF: %w", err)
	}
	return full, nil
}

// readerCommands maps a configured reader to its launch argv per
// platform; the resolved path is appended.
var readerCommands = map[string]map[string][]string{
	"darwin": {
		"skim":    {"open", "-a", "Skim"},
		"preview": {"open", "-a", "Preview"},
		"system":  {"open"},
	},
	"linux": {
		"zathura": {"zathura"},
		"evince":  {"evince"},
		"okular":  {"okular"},
		"system":  {"xdg-open"},
	},
}

// Open launches the configured reader on an already-resolved PDF path.
// The reader process is started, not waited on.
func (o *Opener) Open(full string) error {
	if _, err := os.Stat(full); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("PDF file does not exist: %s", full)
		}
		return fmt.Errorf("checking PDF file: %w", err)
	}

	platform, ok := readerCommands[runtime.GOOS]
	if !ok {
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	argv, ok := platform[o.reader]
	if !ok {
		argv = platform["system"]
	}

	return exec.Command(argv[0], append(argv[1:], full)...).Start()
}
