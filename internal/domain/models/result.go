// internal/domain/models/result.go
package models

// ResultID is the composite key of a result: one grade per student per course.
type ResultID struct {
	StudentID int `json:"studentId"`
	CourseID  int `json:"courseId"`
}

// Result is a grade record linking a student and a course.
type Result struct {
	ID      ResultID `json:"id"`
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
	Grade   int      `json:"grade"`
}

func (r Result) StudentName() string {
	if r.Student == nil {
		return ""
	}
	return r.Student.Name
}

func (r Result) CourseName() string {
	if r.Course == nil {
		return ""
	}
	return r.Course.Name
}

// Key returns the composite key, falling back to the nested student and
// course ids when the backend omits the embedded id.
func (r Result) Key() ResultID {
	k := r.ID
	if k.StudentID == 0 && r.Student != nil {
		k.StudentID = r.Student.ID
	}
	if k.CourseID == 0 && r.Course != nil {
		k.CourseID = r.Course.ID
	}
	return k
}
