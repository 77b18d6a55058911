package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/polish"
	"github.com/aretw0/polish/internal/presentation/treeview"
	"github.com/aretw0/polish/internal/presentation/tui"
)

// RunSession starts the interactive analysis loop: read one expression per
// line, analyze it, render the result. A failed analysis prints only the
// error; previous results are never reused.
func RunSession(debug bool) error {
	logger := NewLogger(debug)
	interactive := IsInteractive()

	if interactive {
		tui.PrintBanner(polish.Version)
	}

	engineOpts := []polish.Option{}
	if debug {
		engineOpts = append(engineOpts, polish.WithLogger(logger))
	}
	engine := polish.New(engineOpts...)

	render := tui.NewRenderer()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		res, err := engine.Analyze(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		if interactive {
			md := tui.AnalysisMarkdown(res, treeview.Render(res.Root))
			out, renderErr := render(md)
			if renderErr != nil {
				// Fall back to plain output rather than dropping the result.
				fmt.Println(FormatPlain(res))
				continue
			}
			fmt.Print(out)
		} else {
			fmt.Println(FormatPlain(res))
		}
	}

	return scanner.Err()
}
