// internal/domain/models/student.go
package models

// Student mirrors the backend student resource. Cohort is resolved server-side.
type Student struct {
	ID      int     `json:"id,omitempty"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Gender  Gender  `json:"gender,omitempty"`
	Address string  `json:"address,omitempty"`
	DOB     Date    `json:"dob"`
	Cohort  *Cohort `json:"cohort,omitempty"`
}

// CohortName returns the cohort's name, or "" when the student has none.
func (s Student) CohortName() string {
	if s.Cohort == nil {
		return ""
	}
	return s.Cohort.Name
}
