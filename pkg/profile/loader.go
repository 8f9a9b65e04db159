package profile

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed default_profile.yaml
var defaultProfile []byte

// Load reads a profile from a YAML (or JSON) file and validates it.
func Load(path string) (p Profile, err error) {
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read profile file: %s", path)
		return p, err
	}

	p, err = Parse(fileData)
	if err != nil {
		err = errors.Wrapf(err, "failed to load profile: %s", path)
		return p, err
	}

	return p, err
}

// Default returns the sample profile compiled into the binary.
func Default() (p Profile, err error) {
	p, err = Parse(defaultProfile)
	if err != nil {
		err = errors.Wrap(err, "embedded profile is invalid")
		return p, err
	}
	return p, err
}

// WriteDefault copies the sample profile to path. It refuses to overwrite an existing file.
func WriteDefault(path string) (err error) {
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("profile file already exists: %s", path)
		return err
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create profile directory: %s", dir)
		return err
	}

	err = os.WriteFile(path, defaultProfile, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write profile file: %s", path)
		return err
	}

	return err
}

// Parse decodes and validates profile data.
func Parse(data []byte) (p Profile, err error) {
	err = yaml.Unmarshal(data, &p)
	if err != nil {
		err = errors.Wrap(err, "failed to parse profile")
		return p, err
	}

	err = p.Validate()
	if err != nil {
		err = errors.Wrap(err, "profile validation failed")
		return p, err
	}

	return p, err
}

// Validate checks the profile invariants the pipeline relies on.
func (p *Profile) Validate() (err error) {
	if strings.TrimSpace(p.Name) == "" {
		err = errors.New("profile name is required")
		return err
	}

	if p.YearsExperience <= 0 {
		err = errors.New("years_experience must be positive")
		return err
	}

	for _, focus := range Foci {
		if strings.TrimSpace(p.SummaryVariants[focus]) == "" {
			err = errors.Errorf("summary variant %q is missing", focus)
			return err
		}
	}
	for focus := range p.SummaryVariants {
		if !focus.Valid() {
			err = errors.Errorf("unknown summary variant %q", focus)
			return err
		}
	}

	err = p.validateExperience()
	if err != nil {
		return err
	}

	err = p.Skills.Validate()
	return err
}

func (p *Profile) validateExperience() (err error) {
	seen := make(map[string]int, len(p.Experience))

	for i, exp := range p.Experience {
		if exp.Company == "" {
			err = errors.Errorf("experience at index %d missing company", i)
			return err
		}
		if exp.Title == "" {
			err = errors.Errorf("experience at index %d (%s) missing title", i, exp.Company)
			return err
		}

		if prev, dup := seen[exp.Key()]; dup {
			err = errors.Errorf("experience at index %d duplicates index %d (%s, %s, %s)",
				i, prev, exp.Company, exp.Title, exp.Period)
			return err
		}
		seen[exp.Key()] = i

		for j, achievement := range exp.Achievements {
			if strings.TrimSpace(achievement.Text) == "" {
				err = errors.Errorf("achievement %d of %s has no text", j, exp.Company)
				return err
			}
			if len(achievement.Tags) == 0 {
				err = errors.Errorf("achievement %d of %s has no tags", j, exp.Company)
				return err
			}
			for _, tag := range achievement.Tags {
				if strings.TrimSpace(tag) == "" {
					err = errors.Errorf("achievement %d of %s has an empty tag", j, exp.Company)
					return err
				}
			}
			if !achievement.Impact.Valid() {
				err = errors.Errorf("achievement %d of %s has unknown impact category %q",
					j, exp.Company, achievement.Impact)
				return err
			}
		}
	}

	return err
}

// Validate rejects duplicate entries within a tier.
func (s *Skills) Validate() (err error) {
	tiers := []struct {
		name   string
		skills []string
	}{
		{"core", s.Core},
		{"experience", s.Experience},
		{"exposure", s.Exposure},
		{"all_skills", s.All},
	}

	for _, tier := range tiers {
		seen := make(map[string]bool, len(tier.skills))
		for _, skill := range tier.skills {
			if strings.TrimSpace(skill) == "" {
				err = errors.Errorf("empty skill in %s tier", tier.name)
				return err
			}
			if seen[skill] {
				err = errors.Errorf("duplicate skill %q in %s tier", skill, tier.name)
				return err
			}
			seen[skill] = true
		}
	}

	return err
}
