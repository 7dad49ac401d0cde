package prompt

import (
	"fmt"
	"strings"

	"github.com/clinical-docs-server/internal/domain"
)

// FormatSelections projects checkbox-group selections and their narratives
// into a text block. A group with no chosen options and no narrative is
// skipped entirely. Group order follows the caller-supplied order, which
// keeps the composed prompt deterministic.
func FormatSelections(selections domain.Selections) string {
	var lines []string
	for _, g := range selections.Groups {
		if len(g.Options) == 0 && g.Narrative == "" {
			continue
		}
		entry := fmt.Sprintf("- %s: %s", g.GroupID, strings.Join(g.Options, ", "))
		if g.Narrative != "" {
			entry += fmt.Sprintf("\n  - Narrative on %s: %s", g.GroupID, g.Narrative)
		}
		lines = append(lines, entry)
	}
	return strings.Join(lines, "\n")
}
