package internal

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // bcrypt hash
	FirstName string    `json:"first_name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

type SkinProfile struct {
	UserID       string    `json:"user_id"`
	SkinType     string    `json:"skin_type"` // "normale", "grasse", "sèche", "mixte", "sensible", ...
	MainConcerns []string  `json:"main_concerns"`
	StressLevel  int       `json:"stress_level"` // 1–10 scale
	CreatedAt    time.Time `json:"created_at"`
}

// CheckIn is a daily self-report. The ID is derived from user and date, so a
// later check-in on the same calendar day overwrites the earlier one.
type CheckIn struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Date          string    `json:"date"`           // YYYY-MM-DD, UTC
	SkinCondition int       `json:"skin_condition"` // 1–10 scale
	StressLevel   int       `json:"stress_level"`
	SleepHours    int       `json:"sleep_hours"`
	CreatedAt     time.Time `json:"created_at"`
}

type Photo struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Filename   string    `json:"filename"`
	Type       string    `json:"type"` // progress, before, after
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"upload_date"`
}
