package model

// Stats are the figures derived from the course list.
type Stats struct {
	TotalCredits int `json:"total_credits"`
	// Average is nil when no course carries a numeric grade.
	Average *float64 `json:"average"`
	// ProgressPercent is nil when the student has no target defined.
	ProgressPercent *float64 `json:"progress_percent"`
}

// Overview is a read-only snapshot of the whole record.
type Overview struct {
	Student Student  `json:"student"`
	Courses []Course `json:"courses"`
	Stats   Stats    `json:"stats"`
}
