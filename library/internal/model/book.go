package model

import (
	"fmt"
	"time"
)

type BookType string

const (
	BookTypeA BookType = "A"
	BookTypeB BookType = "B"
	BookTypeC BookType = "C"
)

const MaxBookPhotos = 3

type Book struct {
	ID                string    `json:"id" db:"id"`
	Name              string    `json:"nameBook" db:"name" validate:"required,max=255"`
	Type              BookType  `json:"typeBook" db:"type" validate:"required,oneof=A B C"`
	Author            string    `json:"author" db:"author" validate:"required,max=255"`
	PhotoURLs         []string  `json:"photoUrls" db:"photo_urls"`
	PublicationYear   int       `json:"publicationYear" db:"publication_year" validate:"required"`
	Publisher         string    `json:"publisher" db:"publisher" validate:"required,max=255"`
	DateOfAcquisition time.Time `json:"dateOfAcquisition" db:"date_of_acquisition"`
	Price             string    `json:"price" db:"price" validate:"required,price"`
	RatingsAverage    float64   `json:"ratingsAverage" db:"ratings_average" validate:"gte=0,lte=5"`
	RatingsQuantity   int       `json:"ratingsQuantity" db:"ratings_quantity" validate:"gte=0"`
	Description       string    `json:"description" db:"description"`
}

// PhotoURL is where the i-th photo of a book is served from.
func PhotoURL(appURL, bookID string, i int) string {
	return fmt.Sprintf("%s/api/v1/books/%s/images/%d", appURL, bookID, i)
}

func PhotoURLs(appURL, bookID string, count int) []string {
	urls := make([]string, 0, count)
	for i := 0; i < count; i++ {
		urls = append(urls, PhotoURL(appURL, bookID, i))
	}
	return urls
}

type Review struct {
	ID        string    `json:"id" db:"id"`
	Review    string    `json:"review" db:"review" validate:"required"`
	Rating    int       `json:"rating" db:"rating" validate:"required,min=1,max=5"`
	BookID    string    `json:"book" db:"book_id" validate:"required,uuid"`
	UserID    string    `json:"user" db:"user_id" validate:"required,uuid"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
