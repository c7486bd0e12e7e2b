package profile

import "testing"

func TestNormalizeFullProfile(t *testing.T) {
	raw := RawProfile{
		"name":     "Jane Doe",
		"headline": "Backend Engineer",
		"summary":  "Builds services.",
		"experience": []any{
			map[string]any{"title": "Engineer", "company": "Acme", "description": "Wrote Go"},
			map[string]any{"title": "Intern", "company": "Globex", "description": "Fixed bugs"},
		},
		"skills": []any{
			map[string]any{"name": "Go"},
			map[string]any{"name": "SQL"},
			map[string]any{"name": "go"},
		},
		"education": []any{
			map[string]any{"degree": "BSc", "school": "MIT"},
		},
	}

	n := Normalize(raw)

	if n.Name != "Jane Doe" {
		t.Fatalf("unexpected name: %q", n.Name)
	}
	if n.Headline != "Backend Engineer" {
		t.Fatalf("unexpected headline: %q", n.Headline)
	}
	if len(n.Experience) != 2 {
		t.Fatalf("expected 2 experience lines, got %d", len(n.Experience))
	}
	if n.Experience[0] != "Engineer at Acme - Wrote Go" {
		t.Fatalf("unexpected experience line: %q", n.Experience[0])
	}
	if len(n.Skills) != 3 {
		t.Fatalf("expected duplicates preserved, got %v", n.Skills)
	}
	if n.Skills[0] != "go" || n.Skills[1] != "sql" || n.Skills[2] != "go" {
		t.Fatalf("expected lower-cased skills in order, got %v", n.Skills)
	}
	if len(n.Education) != 1 || n.Education[0] != "BSc from MIT" {
		t.Fatalf("unexpected education: %v", n.Education)
	}
	if n.Summary != "Builds services." {
		t.Fatalf("unexpected summary: %q", n.Summary)
	}
}

func TestNormalizeEmptyProfile(t *testing.T) {
	n := Normalize(RawProfile{})

	if n.Name != "" || n.Headline != "" || n.Summary != "" {
		t.Fatalf("expected empty string fields, got %+v", n)
	}
	if len(n.Experience) != 0 || len(n.Skills) != 0 || len(n.Education) != 0 {
		t.Fatalf("expected empty sequences, got %+v", n)
	}
}

func TestNormalizeKeepsEntriesWithMissingSubfields(t *testing.T) {
	raw := RawProfile{
		"experience": []any{
			map[string]any{"title": "Engineer"},
			map[string]any{},
		},
		"education": []any{
			map[string]any{"school": "MIT"},
		},
	}

	n := Normalize(raw)

	if len(n.Experience) != 2 {
		t.Fatalf("expected no experience entry dropped, got %d", len(n.Experience))
	}
	if n.Experience[0] != "Engineer at  - " {
		t.Fatalf("unexpected formatting with missing subfields: %q", n.Experience[0])
	}
	if n.Experience[1] != " at  - " {
		t.Fatalf("unexpected formatting for empty entry: %q", n.Experience[1])
	}
	if n.Education[0] != " from MIT" {
		t.Fatalf("unexpected education formatting: %q", n.Education[0])
	}
}

func TestSkillNamesDropsNamelessEntries(t *testing.T) {
	raw := RawProfile{
		"skills": []any{
			map[string]any{"name": "Python"},
			map[string]any{"name": ""},
			map[string]any{"level": "senior"},
			map[string]any{"name": "Python"},
		},
	}

	names := SkillNames(raw)
	if len(names) != 2 {
		t.Fatalf("expected nameless entries dropped and duplicates kept, got %v", names)
	}
	if names[0] != "python" || names[1] != "python" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestNarrativeConcatenation(t *testing.T) {
	raw := RawProfile{
		"summary": "A summary.",
		"experience": []any{
			map[string]any{"description": "Did X"},
			map[string]any{"description": "Did Y"},
		},
	}

	// No separator between the joined experience text and the summary.
	if got := Narrative(raw); got != "Did X Did YA summary." {
		t.Fatalf("unexpected narrative: %q", got)
	}
}

func TestNarrativeWithoutExperience(t *testing.T) {
	raw := RawProfile{"summary": "Only a summary."}
	if got := Narrative(raw); got != "Only a summary." {
		t.Fatalf("unexpected narrative: %q", got)
	}

	if got := Narrative(RawProfile{}); got != "" {
		t.Fatalf("expected empty narrative, got %q", got)
	}
}

func TestWeakTypingCoercesNonStringFields(t *testing.T) {
	raw := RawProfile{
		"name": 42,
		"experience": []any{
			map[string]any{"description": 7},
		},
		"summary": true,
	}

	n := Normalize(raw)
	if n.Name != "42" {
		t.Fatalf("expected numeric name coerced to string, got %q", n.Name)
	}
	if got := Narrative(raw); got != "71" {
		t.Fatalf("expected weakly coerced narrative, got %q", got)
	}
}
