// Package report renders a ranking as a fixed-layout text report.
package report

import (
	"fmt"
	"strings"

	"github.com/spigell/profile-ranker/internal/ranking"
)

const (
	header     = "Top Candidate Matches"
	maxEntries = 5
)

// Render formats the top entries of the ranking. Pure formatting: no I/O, no
// mutation, byte-identical output for identical input. An empty ranking
// renders just the header block.
func Render(r *ranking.Ranking) string {
	var b strings.Builder

	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	b.WriteString("\n")

	for i, c := range r.Top(maxEntries) {
		fmt.Fprintf(&b, "Candidate %d:\n", i+1)
		fmt.Fprintf(&b, "Name: %s\n", c.Name)
		fmt.Fprintf(&b, "Skill Match: %.2f%%\n", c.SkillMatch)
		fmt.Fprintf(&b, "Semantic Match: %.2f\n", c.SemanticMatch)
		fmt.Fprintf(&b, "Total Score: %.2f\n", c.TotalScore)
		b.WriteString("\n")
	}

	return b.String()
}
