package ranking

import "strings"

// SkillMatch returns the percentage of required skills present in the
// candidate's skill names. Comparison is case-insensitive and set-based:
// duplicate candidate skills collapse here, even though the profile
// normalizer keeps them. The two views stay separate on purpose; unifying
// them would change every score.
//
// An empty required set yields 0, not an error and not 100.
func SkillMatch(candidate []string, required []string) float64 {
	req := make(map[string]struct{}, len(required))
	for _, r := range required {
		r = strings.ToLower(strings.TrimSpace(r))
		if r == "" {
			continue
		}
		req[r] = struct{}{}
	}

	if len(req) == 0 {
		return 0
	}

	have := make(map[string]struct{}, len(candidate))
	for _, name := range candidate {
		name = strings.ToLower(name)
		if name == "" {
			continue
		}
		have[name] = struct{}{}
	}

	matched := 0
	for name := range have {
		if _, ok := req[name]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(req)) * 100
}
