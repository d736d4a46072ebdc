package models

// Coordinates is an immutable latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is a human-readable city/country label for a coordinate pair.
type Place struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// GeoPlace is a single geocoding result. Immutable once constructed.
// Two GeoPlace values are duplicates when their normalized name and
// country match; region is excluded from the identity key because
// providers report it inconsistently.
type GeoPlace struct {
	Name        string  `json:"name"`
	Region      string  `json:"region"`
	Country     string  `json:"country"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	FeatureCode string  `json:"feature_code"`
}

// LocationSource identifies which input produced the current location.
type LocationSource string

const (
	SourceNone   LocationSource = "none"
	SourceCache  LocationSource = "cache"
	SourceGPS    LocationSource = "gps"
	SourceManual LocationSource = "manual"
)

// ErrorKind is a recoverable error signal surfaced in component state
// instead of being propagated as a failure.
type ErrorKind string

const (
	ErrNone               ErrorKind = ""
	ErrPermissionDenied   ErrorKind = "permission_denied"
	ErrAcquisitionFailure ErrorKind = "acquisition_failure"
	ErrNetworkFailure     ErrorKind = "network_failure"
)

// LocationState is the arbiter-owned view of the current location.
// Mutated only by the location arbiter.
type LocationState struct {
	Coordinates *Coordinates   `json:"coordinates,omitempty"`
	Place       *Place         `json:"place,omitempty"`
	Source      LocationSource `json:"source"`
	Err         ErrorKind      `json:"error,omitempty"`
}
