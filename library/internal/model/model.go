package model

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

type Docs[T any] struct {
	Docs []T `json:"docs"`
}

type Doc[T any] struct {
	Doc T `json:"doc"`
}

type Response struct {
	Status  string `json:"status"`
	Results *int   `json:"results,omitempty"`
	Data    any    `json:"data"`
}

func NewListResponse[T any](docs []T) Response {
	if docs == nil {
		docs = []T{}
	}
	n := len(docs)
	return Response{Status: StatusSuccess, Results: &n, Data: Docs[T]{Docs: docs}}
}

func NewDocResponse[T any](doc T) Response {
	return Response{Status: StatusSuccess, Data: Doc[T]{Doc: doc}}
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Date is a calendar day, "2006-01-02" on the wire.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), "\"")
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return err
		}
	}
	*d = NewDate(t)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

func (d Date) DateValue() (pgtype.Date, error) {
	return pgtype.Date{Time: d.Time, Valid: !d.IsZero()}, nil
}
