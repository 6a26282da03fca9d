package dag

import "fmt"

// DependencyNotFoundError reports an application dependency that does not
// resolve within the discovered set.
type DependencyNotFoundError struct {
	// Name is the missing application.
	Name string
	// RequiredBy is the application that declared the dependency.
	RequiredBy string
}

func (e *DependencyNotFoundError) Error() string {
	return fmt.Sprintf("application dependency %q for %q not found", e.Name, e.RequiredBy)
}

// PathDependencyNotFoundError reports a path dependency whose target does
// not exist on disk.
type PathDependencyNotFoundError struct {
	Path       string
	RequiredBy string
}

func (e *PathDependencyNotFoundError) Error() string {
	return fmt.Sprintf("path dependency %q for %q not found", e.Path, e.RequiredBy)
}

// CycleError reports a cycle among application dependencies. Member names one
// application known to be on the cycle, to aid debugging.
type CycleError struct {
	Member string
}

func (e *CycleError) Error() string {
	if e.Member == "" {
		return "circular dependency detected"
	}
	return fmt.Sprintf("circular dependency detected involving %q", e.Member)
}
