// internal/domain/models/cohort.go
package models

// Cohort is a group of students associated with a faculty.
type Cohort struct {
	ID       int       `json:"id,omitempty"`
	Name     string    `json:"name"`
	Faculty  *Faculty  `json:"faculty,omitempty"`
	Students []Student `json:"students,omitempty"`
}

// FacultyName returns the owning faculty's name, or "" when none is attached.
func (c Cohort) FacultyName() string {
	if c.Faculty == nil {
		return ""
	}
	return c.Faculty.Name
}
