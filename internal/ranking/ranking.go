// Package ranking scores candidate profiles against job requirements and
// produces a total-ordered ranking.
package ranking

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/spigell/profile-ranker/internal/profile"
	"github.com/spigell/profile-ranker/internal/similarity"
)

// Fusion weights. Skill match lives on a 0-100 scale and contributes up to
// 60 points; semantic match lives on a roughly 0-1 scale and is multiplied by
// 40. The asymmetry is part of the scoring contract, not an accident.
const (
	skillWeight    = 0.6
	semanticWeight = 40.0
)

// Requirements describes the job the candidates are ranked against.
type Requirements struct {
	RequiredSkills []string `mapstructure:"required-skills" json:"required_skills"`
	Description    string   `mapstructure:"description" json:"description"`
}

// ScoredCandidate is one ranked entry. Immutable once produced.
type ScoredCandidate struct {
	Name          string  `json:"name"`
	SkillMatch    float64 `json:"skill_match"`
	SemanticMatch float64 `json:"semantic_match"`
	TotalScore    float64 `json:"total_score"`
}

// Ranking holds scored candidates in descending total-score order.
type Ranking struct {
	Items []ScoredCandidate
}

// Rank scores every profile against the requirements and returns the ranking,
// descending by total score. The sort is stable: candidates with equal totals
// keep their input order. Input profiles are never mutated.
//
// A similarity failure for any single candidate aborts the whole call; there
// are no partial rankings.
func Rank(ctx context.Context, profiles []profile.RawProfile, req Requirements, scorer similarity.Scorer, logger *zap.Logger) (*Ranking, error) {
	scored := make([]ScoredCandidate, 0, len(profiles))

	for _, p := range profiles {
		name := profile.Normalize(p).Name

		skillMatch := SkillMatch(profile.SkillNames(p), req.RequiredSkills)

		semanticMatch, err := scorer.Similarity(ctx, profile.Narrative(p), req.Description)
		if err != nil {
			return nil, fmt.Errorf("semantic score for candidate %q: %w", name, err)
		}

		total := skillMatch*skillWeight + semanticMatch*semanticWeight

		logger.Debug("scored candidate",
			zap.String("name", name),
			zap.Float64("skill_match", skillMatch),
			zap.Float64("semantic_match", semanticMatch),
			zap.Float64("total_score", total),
		)

		scored = append(scored, ScoredCandidate{
			Name:          name,
			SkillMatch:    skillMatch,
			SemanticMatch: semanticMatch,
			TotalScore:    total,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})

	logger.Info("ranking completed",
		zap.Int("candidates", len(scored)),
	)

	return &Ranking{Items: scored}, nil
}

func (r *Ranking) Len() int {
	return len(r.Items)
}

// Top returns the first n entries, or all of them when fewer exist.
func (r *Ranking) Top(n int) []ScoredCandidate {
	if n > len(r.Items) {
		n = len(r.Items)
	}
	if n < 0 {
		n = 0
	}
	return r.Items[:n]
}

// FindByName returns the first candidate with the given name, or nil.
func (r *Ranking) FindByName(name string) *ScoredCandidate {
	for i := range r.Items {
		if r.Items[i].Name == name {
			return &r.Items[i]
		}
	}
	return nil
}

// DumpToTmpFile writes the full ranking as indented JSON to a temp file and
// returns its name.
func (r *Ranking) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "ranking_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
