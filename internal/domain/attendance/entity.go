package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
)

func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Attendance is unique per (student, group, date); marking the same triple
// again overwrites status and note instead of inserting.
type Attendance struct {
	ID        string
	StudentID string
	GroupID   string
	Date      time.Time
	Status    Status
	Note      *string
	BranchID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
