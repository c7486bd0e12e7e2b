package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/spigell/profile-ranker/internal/ranking"
)

func TestRenderFormatting(t *testing.T) {
	r := &ranking.Ranking{Items: []ranking.ScoredCandidate{
		{Name: "Jane", SkillMatch: 100, SemanticMatch: 0.85, TotalScore: 94},
		{Name: "John", SkillMatch: 100.0 / 3.0, SemanticMatch: 0.5, TotalScore: 40},
	}}

	got := Render(r)

	want := "Top Candidate Matches\n" +
		strings.Repeat("=", 50) + "\n" +
		"\n" +
		"Candidate 1:\n" +
		"Name: Jane\n" +
		"Skill Match: 100.00%\n" +
		"Semantic Match: 0.85\n" +
		"Total Score: 94.00\n" +
		"\n" +
		"Candidate 2:\n" +
		"Name: John\n" +
		"Skill Match: 33.33%\n" +
		"Semantic Match: 0.50\n" +
		"Total Score: 40.00\n" +
		"\n"

	if got != want {
		t.Fatalf("unexpected report:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderEmptyRanking(t *testing.T) {
	got := Render(&ranking.Ranking{})

	want := "Top Candidate Matches\n" + strings.Repeat("=", 50) + "\n\n"
	if got != want {
		t.Fatalf("expected only the header block, got %q", got)
	}
}

func TestRenderCapsAtFiveCandidates(t *testing.T) {
	r := &ranking.Ranking{}
	for i := 0; i < 8; i++ {
		r.Items = append(r.Items, ranking.ScoredCandidate{
			Name:       fmt.Sprintf("c%d", i),
			TotalScore: float64(100 - i),
		})
	}

	got := Render(r)

	if count := strings.Count(got, "Candidate "); count != 5 {
		t.Fatalf("expected exactly 5 candidate blocks, got %d", count)
	}
	if !strings.Contains(got, "Name: c4\n") {
		t.Fatalf("expected fifth candidate present")
	}
	if strings.Contains(got, "Name: c5\n") {
		t.Fatalf("expected sixth candidate omitted")
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	r := &ranking.Ranking{Items: []ranking.ScoredCandidate{
		{Name: "Jane", SkillMatch: 50, SemanticMatch: 0.2, TotalScore: 38},
	}}

	if Render(r) != Render(r) {
		t.Fatalf("expected byte-identical output for repeated rendering")
	}
}
