package profile

import (
	"fmt"
	"strings"
)

// Normalize converts a raw profile into its canonical form. The
// transformation is pure and never fails: missing fields become empty strings
// or empty sequences.
//
// Skills keep their insertion order and their duplicates. Deduplication
// happens later, in the skill matcher, and only there; collapsing here would
// change the normalized form without changing any score.
func Normalize(p RawProfile) NormalizedProfile {
	n := NormalizedProfile{
		Name:     p.stringField("name"),
		Headline: p.stringField("headline"),
		Summary:  p.stringField("summary"),
	}

	for _, e := range p.experienceEntries() {
		n.Experience = append(n.Experience, fmt.Sprintf("%s at %s - %s", e.Title, e.Company, e.Description))
	}

	n.Skills = SkillNames(p)

	for _, e := range p.educationEntries() {
		n.Education = append(n.Education, fmt.Sprintf("%s from %s", e.Degree, e.School))
	}

	return n
}

// SkillNames extracts the lower-cased skill names from the raw skills field.
// Entries without a name are dropped; duplicates are kept in order.
func SkillNames(p RawProfile) []string {
	var names []string
	for _, s := range p.skillEntries() {
		name := strings.ToLower(s.Name)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Narrative assembles the candidate's free-text narrative: every raw
// experience entry's description joined with single spaces, immediately
// followed by the raw summary. There is deliberately no separator between the
// joined experience text and the summary; downstream similarity scores depend
// on this exact concatenation.
func Narrative(p RawProfile) string {
	entries := p.experienceEntries()
	descriptions := make([]string, 0, len(entries))
	for _, e := range entries {
		descriptions = append(descriptions, e.Description)
	}
	return strings.Join(descriptions, " ") + p.stringField("summary")
}
