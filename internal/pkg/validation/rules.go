package validation

import (
	"regexp"
)

// Identifier patterns for records crossing the import boundary.
var (
	// Employee IDs: optional leading letter plus 3-8 digits, e.g. E1001.
	EmployeeIDPattern = `^[A-Z]?\d{3,8}$`

	// Registration numbers: year, programme code, serial, e.g. 21BCE1001.
	RegNoPattern = `^\d{2}[A-Z]{2,4}\d{3,5}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	EmployeeID *regexp.Regexp
	RegNo      *regexp.Regexp
}{
	EmployeeID: regexp.MustCompile(EmployeeIDPattern),
	RegNo:      regexp.MustCompile(RegNoPattern),
}

// ValidEmployeeID reports whether s is a well-formed employee ID.
func ValidEmployeeID(s string) bool {
	return CompiledPatterns.EmployeeID.MatchString(s)
}

// ValidRegNo reports whether s is a well-formed student registration number.
func ValidRegNo(s string) bool {
	return CompiledPatterns.RegNo.MatchString(s)
}
