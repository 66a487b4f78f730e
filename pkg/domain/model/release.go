package model

import (
	"fmt"
	"time"
)

// Release represents a single published version of a registry package
type Release struct {
	Vendor        string    // Package vendor, e.g. "laravel"
	Name          string    // Package name, e.g. "laravel"
	Version       string    // Version string as published, e.g. "v11.2.0"
	DistURL       string    // Distribution archive URL
	DistType      string    // Distribution type reported by the registry, e.g. "zip"
	DistReference string    // Commit or reference the distribution was built from
	PublishedAt   time.Time // Publish timestamp
}

// FullName returns "vendor/name"
func (r *Release) FullName() string {
	return fmt.Sprintf("%s/%s", r.Vendor, r.Name)
}
