package models

// User defines an account known to the dashboard. Email is the
// case-insensitive login key and must be unique across the collection.
type User struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Prof. Alan Grant"`
	Email string `json:"email" example:"a.grant@university.edu"`
	Role  Role   `json:"role" example:"teacher"`
}
