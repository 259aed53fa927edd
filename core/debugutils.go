package core

// DebugUtilsSeverity is the debug-utils extension's severity
// vocabulary. The bit layout is fixed by the extension and differs
// from the native Severity layout, so values must pass through the
// translation functions below rather than being cast.
type DebugUtilsSeverity uint32

const (
	DebugUtilsSeverityVerbose DebugUtilsSeverity = 0x00000001
	DebugUtilsSeverityInfo    DebugUtilsSeverity = 0x00000010
	DebugUtilsSeverityWarning DebugUtilsSeverity = 0x00000100
	DebugUtilsSeverityError   DebugUtilsSeverity = 0x00001000
)

// DebugUtilsType is the debug-utils extension's message-type
// vocabulary. The extension calls the specification-conformance bit
// "validation"; the native vocabulary calls it SPECIFICATION. The
// renaming is deliberate and both names are kept.
type DebugUtilsType uint32

const (
	DebugUtilsTypeGeneral     DebugUtilsType = 0x00000001
	DebugUtilsTypeValidation  DebugUtilsType = 0x00000002
	DebugUtilsTypePerformance DebugUtilsType = 0x00000004
)

// AllDebugUtilsSeverities accepts every debug-utils severity bit.
const AllDebugUtilsSeverities = DebugUtilsSeverityVerbose | DebugUtilsSeverityInfo |
	DebugUtilsSeverityWarning | DebugUtilsSeverityError

// AllDebugUtilsTypes accepts every debug-utils type bit.
const AllDebugUtilsTypes = DebugUtilsTypeGeneral | DebugUtilsTypeValidation | DebugUtilsTypePerformance

// SeverityFromDebugUtils maps debug-utils severity bits onto the
// native vocabulary. Unknown bits are dropped.
func SeverityFromDebugUtils(du DebugUtilsSeverity) Severity {
	var s Severity
	if du&DebugUtilsSeverityVerbose != 0 {
		s |= SeverityVerbose
	}
	if du&DebugUtilsSeverityInfo != 0 {
		s |= SeverityInfo
	}
	if du&DebugUtilsSeverityWarning != 0 {
		s |= SeverityWarning
	}
	if du&DebugUtilsSeverityError != 0 {
		s |= SeverityError
	}
	return s
}

// SeverityToDebugUtils maps native severity bits onto the debug-utils
// vocabulary. Unknown bits are dropped.
func SeverityToDebugUtils(s Severity) DebugUtilsSeverity {
	var du DebugUtilsSeverity
	if s&SeverityVerbose != 0 {
		du |= DebugUtilsSeverityVerbose
	}
	if s&SeverityInfo != 0 {
		du |= DebugUtilsSeverityInfo
	}
	if s&SeverityWarning != 0 {
		du |= DebugUtilsSeverityWarning
	}
	if s&SeverityError != 0 {
		du |= DebugUtilsSeverityError
	}
	return du
}

// CategoryFromDebugUtilsTypes maps debug-utils type bits onto the
// native category vocabulary. The validation bit becomes
// CategorySpecification; unknown bits are dropped.
func CategoryFromDebugUtilsTypes(du DebugUtilsType) Category {
	var c Category
	if du&DebugUtilsTypeGeneral != 0 {
		c |= CategoryGeneral
	}
	if du&DebugUtilsTypeValidation != 0 {
		c |= CategorySpecification
	}
	if du&DebugUtilsTypePerformance != 0 {
		c |= CategoryPerformance
	}
	return c
}

// CategoryToDebugUtilsTypes maps native category bits onto the
// debug-utils vocabulary. CategorySpecification becomes the validation
// bit; unknown bits are dropped.
func CategoryToDebugUtilsTypes(c Category) DebugUtilsType {
	var du DebugUtilsType
	if c&CategoryGeneral != 0 {
		du |= DebugUtilsTypeGeneral
	}
	if c&CategorySpecification != 0 {
		du |= DebugUtilsTypeValidation
	}
	if c&CategoryPerformance != 0 {
		du |= DebugUtilsTypePerformance
	}
	return du
}
