package engine

import "fmt"

// NoApplicationsFoundError reports a scan that discovered zero manifests.
// An empty monorepo scan almost always means a wrong root path, so it is a
// usage error rather than a legitimate empty result.
type NoApplicationsFoundError struct {
	Root string
}

func (e *NoApplicationsFoundError) Error() string {
	return fmt.Sprintf("no applications found under %s", e.Root)
}

// ApplicationNotFoundError reports a requested application name absent from
// the discovered set. Distinct from the discovery-time errors: the scan
// itself succeeded.
type ApplicationNotFoundError struct {
	Name string
}

func (e *ApplicationNotFoundError) Error() string {
	return fmt.Sprintf("application %q not found", e.Name)
}

// IncorrectOrderError reports a dependency digest missing from the result map
// during a fold. With a valid graph and schedule this cannot happen; seeing
// it means the scheduler itself is broken, not the user's configuration.
type IncorrectOrderError struct {
	App        string
	Dependency string
}

func (e *IncorrectOrderError) Error() string {
	return fmt.Sprintf("dependency %q of %q was not processed before its dependent", e.Dependency, e.App)
}
