// Package profile provides named, preconfigured number validators.
//
// Profiles are declared in YAML:
//
//	profiles:
//	  money:
//	    description: Signed monetary amount
//	    precision: 17
//	    scale: 2
//	  price:
//	    precision: 17
//	    scale: 2
//	    only_positive: true
//
// Every profile is built through numvalidator.New while loading, so a
// registry never holds an impossible configuration. Lookups fold case with
// golang.org/x/text/cases, making "Money" and "money" the same profile.
//
// A Registry is read-only after construction and safe for concurrent use.
package profile
