package profile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

// Registry maps folded profile names to profiles.
type Registry struct {
	profiles map[string]Profile
}

// New builds a registry from profiles, validating each configuration.
func New(profiles ...Profile) (*Registry, error) {
	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}

	r := &Registry{profiles: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if p.Name == "" {
			return nil, errors.Join(ErrInvalidProfile, errors.New("profile name is empty"))
		}
		key := foldName(p.Name)
		if _, exists := r.profiles[key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateProfile, p.Name)
		}
		built, err := p.build()
		if err != nil {
			return nil, errors.Join(fmt.Errorf("%w: %q", ErrInvalidProfile, p.Name), err)
		}
		r.profiles[key] = built
	}
	return r, nil
}

type document struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Parse builds a registry from YAML content.
func Parse(ctx context.Context, content []byte) (*Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var doc document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	names := make([]string, 0, len(doc.Profiles))
	for name := range doc.Profiles {
		names = append(names, name)
	}
	slices.Sort(names)

	profiles := make([]Profile, 0, len(names))
	for _, name := range names {
		p := doc.Profiles[name]
		p.Name = name
		profiles = append(profiles, p)
	}
	return New(profiles...)
}

// LoadFile reads and parses a YAML profiles file.
func LoadFile(ctx context.Context, path string) (*Registry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(ctx, content)
}

// Get returns the profile registered under name, ignoring case.
func (r *Registry) Get(name string) (Profile, error) {
	p, ok := r.profiles[foldName(name)]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return p, nil
}

// Names returns registered profile names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.profiles))
	for _, p := range r.profiles {
		names = append(names, p.Name)
	}
	slices.Sort(names)
	return names
}

// All returns every profile sorted by name.
func (r *Registry) All() []Profile {
	out := make([]Profile, 0, len(r.profiles))
	for _, name := range r.Names() {
		out = append(out, r.profiles[foldName(name)])
	}
	return out
}

// Len returns the number of registered profiles.
func (r *Registry) Len() int {
	return len(r.profiles)
}

// foldName creates a fresh Caser per call; Casers are stateful.
func foldName(name string) string {
	return cases.Fold().String(name)
}
