package model

const (
	DefaultAgeMin          = 18
	DefaultAgeMax          = 55
	DefaultExpiredMonth    = 6
	DefaultNumberOfBooks   = 100
	DefaultPublicationYear = 8
)

// Regulations are the runtime-adjustable validation bounds.
type Regulations struct {
	AgeMin          int `json:"ageMin"`
	AgeMax          int `json:"ageMax"`
	ExpiredMonth    int `json:"expiredMonth"`
	NumberOfBooks   int `json:"numberOfBooks"`
	PublicationYear int `json:"publicationYear"`
}

func DefaultRegulations() Regulations {
	return Regulations{
		AgeMin:          DefaultAgeMin,
		AgeMax:          DefaultAgeMax,
		ExpiredMonth:    DefaultExpiredMonth,
		NumberOfBooks:   DefaultNumberOfBooks,
		PublicationYear: DefaultPublicationYear,
	}
}

type RegulationsRequest struct {
	AgeMin          *int `json:"ageMin" validate:"omitempty,gt=0"`
	AgeMax          *int `json:"ageMax" validate:"omitempty,gt=0"`
	ExpiredMonth    *int `json:"expiredMonth" validate:"omitempty,gt=0"`
	NumberOfBooks   *int `json:"numberOfBooks" validate:"omitempty,gt=0"`
	PublicationYear *int `json:"publicationYear" validate:"omitempty,gt=0"`
}
