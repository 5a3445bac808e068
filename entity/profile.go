package entity

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/femnad/mare"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxListed = 20
	DefaultZipPath   = ".artifacts/deploy/familyscheduler-api.zip"
)

var defaultRequiredEntries = []string{"host.json", "package.json", "dist/index.js"}

// Profile is the set of rules an archive is verified against.
type Profile struct {
	MaxListed int      `yaml:"max_listed"`
	Patterns  []string `yaml:"patterns"`
	Prefixes  []string `yaml:"prefixes"`
	Required  []string `yaml:"required"`
}

func DefaultRequiredEntries() []string {
	entries := make([]string, len(defaultRequiredEntries))
	copy(entries, defaultRequiredEntries)
	return entries
}

func DefaultProfile() Profile {
	return Profile{
		MaxListed: DefaultMaxListed,
		Required:  DefaultRequiredEntries(),
	}
}

func (p Profile) withDefaults() Profile {
	if p.Required == nil {
		p.Required = DefaultRequiredEntries()
	}
	if p.MaxListed <= 0 {
		p.MaxListed = DefaultMaxListed
	}
	return p
}

func (p Profile) Validate() error {
	var errs []error
	for _, pattern := range p.Patterns {
		if _, err := path.Match(pattern, ""); err != nil {
			errs = append(errs, fmt.Errorf("invalid pattern %q: %w", pattern, err))
		}
	}

	return errors.Join(errs...)
}

func ReadProfile(file string) (Profile, error) {
	var p Profile
	f, err := os.Open(mare.ExpandUser(file))
	if err != nil {
		return p, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	err = decoder.Decode(&p)
	if err != nil && !errors.Is(err, io.EOF) {
		return p, fmt.Errorf("error decoding profile %s: %w", file, err)
	}

	p = p.withDefaults()
	return p, p.Validate()
}
