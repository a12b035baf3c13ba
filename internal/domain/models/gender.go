// internal/domain/models/gender.go
package models

import (
	"fmt"
	"strings"
)

// Gender is stored by the backend as the upper-case enum name.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Genders lists the values offered in student forms, in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// ParseGender accepts any letter case and surrounding whitespace.
func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Genders {
		if g == known {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown gender %q", s)
}

// Label is the form/list display text ("Male", "Female", "Other").
func (g Gender) Label() string {
	if g == "" {
		return ""
	}
	s := strings.ToLower(string(g))
	return strings.ToUpper(s[:1]) + s[1:]
}
