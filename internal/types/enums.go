package types

import (
	"errors"
	"strings"
)

// ApplicationStatus is the lifecycle stage of an application.
type ApplicationStatus string

// Application Status values
const (
	StatusNew        ApplicationStatus = "new"
	StatusInProgress ApplicationStatus = "in_progress"
	StatusCompleted  ApplicationStatus = "completed"
	StatusCancelled  ApplicationStatus = "cancelled"
)

var ErrUnknownStatus = errors.New("unknown application status")

// Valid status values, in the order they are presented to callers
var ValidApplicationStatuses = []ApplicationStatus{
	StatusNew, StatusInProgress, StatusCompleted, StatusCancelled,
}

// ParseApplicationStatus accepts only the exact lowercase values above.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	for _, status := range ValidApplicationStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", ErrUnknownStatus
}

func IsValidApplicationStatus(status string) bool {
	_, err := ParseApplicationStatus(status)
	return err == nil
}

// AllowedStatusList renders the allow-list as "new, in_progress, ...".
func AllowedStatusList() string {
	names := make([]string, len(ValidApplicationStatuses))
	for i, s := range ValidApplicationStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func (s ApplicationStatus) String() string {
	return string(s)
}
