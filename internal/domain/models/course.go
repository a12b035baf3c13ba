// internal/domain/models/course.go
package models

// Course is offered by a faculty.
type Course struct {
	ID      int      `json:"id,omitempty"`
	Name    string   `json:"name"`
	Faculty *Faculty `json:"faculty,omitempty"`
}

// FacultyName returns the offering faculty's name, or "".
func (c Course) FacultyName() string {
	if c.Faculty == nil {
		return ""
	}
	return c.Faculty.Name
}
