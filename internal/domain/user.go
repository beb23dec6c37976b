package domain

import "time"

// User is a Telegram chat that has tried to open a practice session
type User struct {
	UserID     int64
	Authorized bool
	CreatedAt  time.Time
}
