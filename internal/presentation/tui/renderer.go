package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/polish/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// It auto-detects light/dark terminal backgrounds.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// AnalysisMarkdown formats an analysis result as markdown for terminal
// rendering. The tree diagram goes in a fenced code block so glamour keeps
// its monospace alignment.
func AnalysisMarkdown(res *domain.Analysis, tree string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", res.Expression))
	sb.WriteString(fmt.Sprintf("**Notation:** %s\n\n", res.Notation))
	sb.WriteString(fmt.Sprintf("- Postfix: `%s`\n", res.Postfix))
	sb.WriteString(fmt.Sprintf("- Prefix: `%s`\n", res.Prefix))
	sb.WriteString(fmt.Sprintf("- Infix: `%s`\n", res.Infix))
	if tree != "" {
		sb.WriteString("\n```\n")
		sb.WriteString(tree)
		sb.WriteString("```\n")
	}
	return sb.String()
}
