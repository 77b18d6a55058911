package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/polish/internal/logging"
	"github.com/aretw0/polish/internal/presentation/treeview"
	"github.com/aretw0/polish/pkg/domain"
	"golang.org/x/term"
)

// NewLogger creates the CLI logger. Debug mode lowers the level so the
// engine's per-stage logs become visible.
func NewLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// IsInteractive reports whether stdout is attached to a terminal. Banner and
// markdown rendering are only used on real terminals; pipes get plain text.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FormatPlain renders an analysis result as plain text, mirroring the four
// result lines of the interactive view plus the tree diagram.
func FormatPlain(res *domain.Analysis) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Notation: %s\n", res.Notation))
	sb.WriteString(fmt.Sprintf("Postfix:  %s\n", res.Postfix))
	sb.WriteString(fmt.Sprintf("Prefix:   %s\n", res.Prefix))
	sb.WriteString(fmt.Sprintf("Infix:    %s\n", res.Infix))
	sb.WriteString("\n")
	sb.WriteString(treeview.Render(res.Root))
	return sb.String()
}
