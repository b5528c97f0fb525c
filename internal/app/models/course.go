package models

// Course represents a course taught by one teacher. Courses are reference
// data: they are seeded at startup and never mutated by the dashboard.
type Course struct {
	ID         int64  `json:"id" example:"101"`
	Name       string `json:"name" example:"Introduction to Paleontology"`
	Department string `json:"department" example:"Biology"`
	TeacherID  int64  `json:"teacherId" example:"2"` // References User.ID where role=teacher
}

// CourseEnrollment links a student to a course. Like courses, enrollments
// are immutable reference data in this core.
type CourseEnrollment struct {
	ID        int64 `json:"id" example:"1"`
	CourseID  int64 `json:"courseId" example:"101"`
	StudentID int64 `json:"studentId" example:"3"`
}
