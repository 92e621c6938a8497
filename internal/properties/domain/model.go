package domain

import "strings"

// Status is the two-valued lifecycle flag of a listing.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether s is one of the allowed statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Property is a single real-estate listing. It is storage-agnostic and
// shared by the repository and HTTP layers.
type Property struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Address string `json:"address"`
	Status  Status `json:"status"`
}

// PropertyInput carries the mutable fields for create and update.
type PropertyInput struct {
	Title   string
	Address string
	Status  Status
}

// Normalize trims surrounding whitespace from the text fields.
func (in PropertyInput) Normalize() PropertyInput {
	return PropertyInput{
		Title:   strings.TrimSpace(in.Title),
		Address: strings.TrimSpace(in.Address),
		Status:  Status(strings.TrimSpace(string(in.Status))),
	}
}

// Validate returns a *ValidationError for the first offending field.
func (in PropertyInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if strings.TrimSpace(in.Address) == "" {
		return &ValidationError{Field: "address", Reason: "is required"}
	}
	if in.Status == "" {
		return &ValidationError{Field: "status", Reason: "is required"}
	}
	if !in.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "must be one of: active, inactive"}
	}
	return nil
}

// Apply returns p with the mutable fields replaced by in. The id is kept.
func (p Property) Apply(in PropertyInput) Property {
	p.Title = in.Title
	p.Address = in.Address
	p.Status = in.Status
	return p
}
