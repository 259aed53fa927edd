package core

import "strings"

// Severity classifies the importance of a diagnostic message using the
// loader's native bit layout. A message carries exactly one bit; a
// recorder's severity filter may carry any union of bits.
type Severity uint32

const (
	// SeverityVerbose for chatty diagnostic detail
	SeverityVerbose Severity = 1 << iota
	// SeverityInfo for general informational messages
	SeverityInfo
	// SeverityWarning for recoverable problems
	SeverityWarning
	// SeverityError for failures
	SeverityError
)

// AllSeverities is the filter that accepts every severity bit.
const AllSeverities = SeverityVerbose | SeverityInfo | SeverityWarning | SeverityError

// String returns the name of the severity. Unions of bits render as a
// pipe-separated list in ascending bit order.
func (s Severity) String() string {
	switch s {
	case SeverityVerbose:
		return "VERBOSE"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case 0:
		return "NONE"
	}
	var parts []string
	for _, bit := range []Severity{SeverityVerbose, SeverityInfo, SeverityWarning, SeverityError} {
		if s&bit != 0 {
			parts = append(parts, bit.String())
		}
	}
	if len(parts) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(parts, "|")
}

// Category classifies the subject matter of a diagnostic message. A
// message may carry several category bits at once; a recorder's
// category filter must contain all of them for the recorder to fire.
type Category uint32

const (
	// CategoryGeneral for events with no more specific classification
	CategoryGeneral Category = 1 << iota
	// CategorySpecification for violations of the API specification
	CategorySpecification
	// CategoryPerformance for suboptimal-usage diagnostics
	CategoryPerformance
)

// AllCategories is the filter that accepts every category bit.
const AllCategories = CategoryGeneral | CategorySpecification | CategoryPerformance

// String returns the name of the category. Unions of bits render as a
// pipe-separated list in ascending bit order.
func (c Category) String() string {
	switch c {
	case CategoryGeneral:
		return "GENERAL"
	case CategorySpecification:
		return "SPECIFICATION"
	case CategoryPerformance:
		return "PERFORMANCE"
	case 0:
		return "NONE"
	}
	var parts []string
	for _, bit := range []Category{CategoryGeneral, CategorySpecification, CategoryPerformance} {
		if c&bit != 0 {
			parts = append(parts, bit.String())
		}
	}
	if len(parts) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(parts, "|")
}
