package controller

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Mode selects the surface translations and reports are shown on.
type Mode string

// Modes accepted by the ui setting.
const (
	ModeAuto        Mode = "auto"
	ModePlain       Mode = "plain"
	ModeInteractive Mode = "interactive"
)

// ParseMode reads a ui setting. The empty string means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModePlain, ModeInteractive:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown ui mode %q, want auto, plain or interactive", s)
	}
}

// NewUI returns the TUI for ModeInteractive and the SimpleUI for ModePlain.
// ModeAuto picks the TUI only when both ends of cmd are terminals, so piped
// snippets and redirected reports stay plain text.
func NewUI(cmd *cobra.Command, mode Mode) UI {
	if mode == ModeAuto {
		mode = ModePlain
		if IsTTY(cmd.OutOrStdout()) && IsTTY(cmd.InOrStdin()) {
			mode = ModeInteractive
		}
	}

	if mode == ModeInteractive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether stream is a character device.
func IsTTY(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}

	info, err := file.Stat()

	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
