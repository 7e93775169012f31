package helper

import "strings"

// EsUniqueViolation detecta violación de restricción UNIQUE sin depender del
// driver: chequeo por substring (postgres "duplicate key", mysql
// "duplicate entry", sqlite "unique constraint failed").
func EsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "duplicate entry") ||
		strings.Contains(s, "unique constraint")
}
