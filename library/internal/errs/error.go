package errs

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = New(http.StatusNotFound, "No document found with that ID")
	ErrBadRequest   = New(http.StatusBadRequest, "bad request")
	ErrUnauthorized = New(http.StatusUnauthorized, "Incorrect email or password")
	ErrNotLoggedIn  = New(http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
	ErrForbidden    = New(http.StatusForbidden, "You do not have permission to perform this action")
	ErrConflict     = New(http.StatusConflict, "conflict")

	ErrFinancialsNotFound = New(http.StatusNotFound, "Can't find the userFinancial")
	ErrOverpaid           = New(http.StatusBadRequest, "Amount paid cannot be greater than total debt")
	ErrNoMoney            = New(http.StatusBadRequest, "Please add money.")
	ErrPasswordUpdate     = New(http.StatusBadRequest, "This route is not for password updates. Please use /update-my-password")
	ErrNoAvatar           = New(http.StatusNotFound, "User not found!")
	ErrNoPhoto            = New(http.StatusNotFound, "No photo found with that index")
	ErrUserGone           = New(http.StatusUnauthorized, "The user belonging to this token does no longer exist.")
	ErrWrongPassword      = New(http.StatusUnauthorized, "Your current password is wrong.")
)

// Error is a domain error that knows its HTTP status.
type Error struct {
	Code    int
	Message string
}

func New(code int, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error with the same code and message, so sentinels
// survive being rebuilt with New.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func BadRequest(msg string) *Error {
	return New(http.StatusBadRequest, msg)
}

func NotFound(msg string) *Error {
	return New(http.StatusNotFound, msg)
}

// Code returns the HTTP status carried by err, 500 if none.
func Code(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}
