package profile

import (
	"github.com/dmitrymomot/numvalid/pkg/numvalidator"
)

// Profile is a named validator configuration.
type Profile struct {
	Name         string `json:"name" yaml:"-"`
	Description  string `json:"description,omitempty" yaml:"description"`
	Precision    int    `json:"precision" yaml:"precision"`
	Scale        int    `json:"scale" yaml:"scale"`
	OnlyPositive bool   `json:"only_positive" yaml:"only_positive"`

	validator *numvalidator.Validator
}

// Validator returns the validator built for the profile.
func (p Profile) Validator() *numvalidator.Validator {
	return p.validator
}

func (p Profile) build() (Profile, error) {
	v, err := numvalidator.New(p.Precision, p.Scale, p.OnlyPositive)
	if err != nil {
		return p, err
	}
	p.validator = v
	return p, nil
}

// Default returns the built-in profiles.
func Default() *Registry {
	r, err := New(
		Profile{Name: "money", Description: "Signed monetary amount", Precision: 17, Scale: 2},
		Profile{Name: "price", Description: "Non-negative price", Precision: 17, Scale: 2, OnlyPositive: true},
		Profile{Name: "integer", Description: "Signed whole number", Precision: 19, Scale: 0},
		Profile{Name: "percent", Description: "Percentage with two decimals", Precision: 5, Scale: 2, OnlyPositive: true},
	)
	if err != nil {
		panic(err)
	}
	return r
}
