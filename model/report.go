// Package model - Report defines the loosely typed view of a Trivy JSON scan report
package model

// Field names of the Trivy JSON report that the converter reads
const (
	FieldResults         = "Results"
	FieldVulnerabilities = "Vulnerabilities"
	FieldVulnerabilityID = "VulnerabilityID"
	FieldTitle           = "Title"
	FieldPkgIdentifier   = "PkgIdentifier"
	FieldPURL            = "PURL"
)

// Record is a decoded JSON object whose fields may be missing or of the wrong type
type Record map[string]any

// AsRecord returns v as a Record when it is a JSON object
func AsRecord(v any) (Record, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Record(m), true
}

// String returns the field value when it is a JSON string
func (r Record) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// List returns the field value when it is a JSON array
func (r Record) List(key string) ([]any, bool) {
	l, ok := r[key].([]any)
	return l, ok
}

// Object returns the field value when it is a JSON object
func (r Record) Object(key string) (Record, bool) {
	return AsRecord(r[key])
}

// Finding is one reported vulnerability record from a scan result
type Finding struct {
	Record
}

// NewFinding wraps a vulnerability record
func NewFinding(r Record) Finding {
	return Finding{Record: r}
}

// ID returns the raw VulnerabilityID when it is a string
func (f Finding) ID() (string, bool) {
	return f.String(FieldVulnerabilityID)
}

// Title returns the raw Title when it is a string
func (f Finding) Title() (string, bool) {
	return f.String(FieldTitle)
}
