package domain

import "context"

// CourseProvision maps a purchasable item code to the enrollment credentials
// delivered after settlement. Read-only from the reconciliation core.
type CourseProvision struct {
	Item          string
	EnrollmentKey string
	CourseLink    string
}

type CatalogRepository interface {
	ListCourseProvisions(ctx context.Context) ([]CourseProvision, error)
}
