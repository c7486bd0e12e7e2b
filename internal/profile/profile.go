package profile

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

// RawProfile is a candidate record as delivered by whatever directory the
// profiles were fetched from. Every field is optional and loosely typed;
// absent or oddly-typed fields degrade to empty defaults, never to errors.
type RawProfile map[string]any

// NormalizedProfile is the canonical structured form of a RawProfile.
type NormalizedProfile struct {
	Name       string
	Headline   string
	Experience []string
	Skills     []string
	Education  []string
	Summary    string
}

type experienceEntry struct {
	Title       string `mapstructure:"title"`
	Company     string `mapstructure:"company"`
	Description string `mapstructure:"description"`
}

type skillEntry struct {
	Name string `mapstructure:"name"`
}

type educationEntry struct {
	Degree string `mapstructure:"degree"`
	School string `mapstructure:"school"`
}

// decodeWeak decodes input into target with weak typing, so numeric or
// boolean values appearing where strings are expected are stringified instead
// of rejected. Decoding failures leave the target at its zero value.
func decodeWeak(input any, target any) {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return
	}
	_ = decoder.Decode(input)
}

func (p RawProfile) stringField(key string) string {
	var s string
	decodeWeak(p[key], &s)
	return s
}

func (p RawProfile) experienceEntries() []experienceEntry {
	var entries []experienceEntry
	decodeWeak(p["experience"], &entries)
	return entries
}

func (p RawProfile) skillEntries() []skillEntry {
	var entries []skillEntry
	decodeWeak(p["skills"], &entries)
	return entries
}

func (p RawProfile) educationEntries() []educationEntry {
	var entries []educationEntry
	decodeWeak(p["education"], &entries)
	return entries
}

// FromFile loads a list of raw profiles from a JSON file containing an array
// of profile objects.
func FromFile(path string) ([]RawProfile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var profiles []RawProfile
	if err := json.NewDecoder(file).Decode(&profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
