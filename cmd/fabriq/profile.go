package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Profile is the credential record login writes under the user's home
// directory. Every other command reads it to authenticate against the API.
type Profile struct {
	PAT   string `yaml:"pat"`
	Login string `yaml:"login"`
}

const (
	profileDirName  = ".fabriq"
	profileFileName = "config.yaml"
)

func profilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, profileDirName, profileFileName), nil
}

// loadProfile reads the stored profile. A missing file is not an error: the
// zero profile comes back and callers decide whether a token is required.
func loadProfile() (*Profile, error) {
	path, err := profilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Profile{}, nil
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	return &profile, nil
}

// saveProfile writes the profile, creating ~/.fabriq when needed. The file
// holds a personal access token, so permissions stay owner-only.
func saveProfile(profile *Profile) (string, error) {
	path, err := profilePath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("creating profile directory: %w", err)
	}

	data, err := yaml.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("encoding profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing profile: %w", err)
	}
	return path, nil
}
