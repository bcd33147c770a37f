package models

import (
	"fmt"
	"strings"
)

// Role defines the closed set of account roles.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleInstructor Role = "INSTRUCTOR"
	RoleStudent    Role = "STUDENT"
)

// ParseRole normalizes a role string to one of the Role constants.
// Legacy data uses mixed-case names and "Teacher" as an alias for
// Instructor, so both are accepted on the way in.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ADMIN":
		return RoleAdmin, nil
	case "INSTRUCTOR", "TEACHER":
		return RoleInstructor, nil
	case "STUDENT", "":
		return RoleStudent, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// CanManageRecords reports whether the role may create, edit or delete
// students and courses.
func (r Role) CanManageRecords() bool {
	return r == RoleAdmin || r == RoleInstructor
}

// IsAdmin reports whether the role is exactly Admin.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// EnrollmentStatus defines the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentDropped   EnrollmentStatus = "DROPPED"
)
