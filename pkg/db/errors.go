package db

import "strings"

// IsUniqueViolation reports whether err looks like a uniqueness violation.
// When constraintName is given the error text must mention that constraint.
// Both the Postgres and SQLite phrasings are recognized since dev and test
// runs use the sqlite driver.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if constraintName != "" {
		return strings.Contains(msg, constraintName)
	}
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
