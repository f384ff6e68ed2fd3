package util

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

// NewUnknownStudent reports an enrollment write referencing a missing student.
func NewUnknownStudent(studentID int64) error {
	return NewDomainError(
		"UNKNOWN_STUDENT",
		fmt.Sprintf("student %d does not exist", studentID),
		http.StatusBadRequest,
		map[string]any{"studentId": studentID},
	)
}

// NewUnknownCourse reports an enrollment write referencing a missing course.
func NewUnknownCourse(courseID int64) error {
	return NewDomainError(
		"UNKNOWN_COURSE",
		fmt.Sprintf("course %d does not exist", courseID),
		http.StatusBadRequest,
		map[string]any{"courseId": courseID},
	)
}

// NewDuplicateEnrollment reports a second enrollment of the same student in
// the same course.
func NewDuplicateEnrollment(studentID, courseID int64) error {
	return NewDomainError(
		"DUPLICATE_ENROLLMENT",
		fmt.Sprintf("student %d is already enrolled in course %d", studentID, courseID),
		http.StatusConflict,
		map[string]any{"studentId": studentID, "courseId": courseID},
	)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, sql.ErrNoRows) {
		if de, ok := NewNotFound("resource", nil).(*DomainError); ok {
			return de
		}
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
