// internal/domain/models/faculty.go
package models

// Faculty is an academic department offering courses and owning cohorts.
type Faculty struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}
