package domain

// Aircraft is a schedulable fleet resource. Read-only for this service;
// the fleet service owns its lifecycle.
type Aircraft struct {
	ID                 int64
	RegistrationNumber string
}
