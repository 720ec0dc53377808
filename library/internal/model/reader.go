package model

import "time"

const (
	DefaultReaderName = "Anonymous"
	DefaultReaderType = "Learn something new"
)

type Reader struct {
	ID            string    `json:"id" db:"id"`
	FullName      string    `json:"fullName" db:"full_name" validate:"required,max=255"`
	ReaderType    string    `json:"readerType" db:"reader_type" validate:"required,max=255"`
	Address       string    `json:"address" db:"address" validate:"required,max=255"`
	DateOfBirth   Date      `json:"dateOfBirth" db:"date_of_birth"`
	CardCreatedAt time.Time `json:"cardCreatedAt" db:"card_created_at"`
	ExpiredDate   time.Time `json:"expiredDate" db:"expired_date"`
	Email         string    `json:"email" db:"email" validate:"required,email"`
	UserID        *string   `json:"user,omitempty" db:"user_id" validate:"omitempty,uuid"`
}

// Age in full years at now.
func Age(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}
