package student

import "time"

type Student struct {
	ID          string
	FirstName   string
	LastName    string
	Phone       *string
	ParentPhone *string
	BranchID    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
