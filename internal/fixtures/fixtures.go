// Package fixtures embeds static test inputs consumed by the external
// diagnostics suite. The Python fixture is intentionally broken; each finding
// category it must trigger is enumerated here so integration tests can assert
// full coverage.
package fixtures

import (
	_ "embed"
)

//go:embed python/errors.py
var pythonErrors string

// PythonErrors returns the broken Python source fixture.
func PythonErrors() string {
	return pythonErrors
}

// FindingCategory identifies one class of diagnostic the Python fixture is
// required to trigger.
type FindingCategory string

// Categories a conforming diagnostics tool must report at least once when
// run against the Python fixture.
const (
	UndefinedName    FindingCategory = "undefined-name"
	UnresolvedImport FindingCategory = "unresolved-import"
	TypeMismatch     FindingCategory = "type-mismatch"
	IndentationError FindingCategory = "indentation-error"
	SyntaxError      FindingCategory = "syntax-error"
	AttributeError   FindingCategory = "attribute-error"
	MissingArgument  FindingCategory = "missing-argument"
	DivisionByZero   FindingCategory = "division-by-zero"
	UnreachableCode  FindingCategory = "unreachable-code"
	UnusedVariable   FindingCategory = "unused-variable"
	Redefinition     FindingCategory = "redefinition"
	MissingReturn    FindingCategory = "missing-return"
)

// ExpectedFinding couples a category with the minimum number of findings and
// a marker string present on the offending fixture line.
type ExpectedFinding struct {
	Category FindingCategory
	MinCount int
	Marker   string
}

// PythonExpectations enumerates every finding the Python fixture must
// produce. The attribute-error category appears twice by design of the
// fixture.
func PythonExpectations() []ExpectedFinding {
	return []ExpectedFinding{
		{UndefinedName, 1, "missing_name"},
		{UnresolvedImport, 1, "no_such_package"},
		{TypeMismatch, 1, "# type mismatch"},
		{IndentationError, 1, "# IndentationError"},
		{SyntaxError, 1, "# SyntaxError"},
		{AttributeError, 2, "# AttributeError"},
		{MissingArgument, 1, "# TypeError: missing positional argument"},
		{DivisionByZero, 1, "ratio(4, 0)"},
		{UnreachableCode, 1, "# unreachable"},
		{UnusedVariable, 1, "# unused"},
		{Redefinition, 1, "# redefined as str"},
		{MissingReturn, 1, "# missing return"},
	}
}
