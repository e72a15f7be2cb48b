// Package model - Suppression defines the entries written to a .trivyignore.yaml file
package model

// SuppressionEntry is one ignored vulnerability with its statement, package scope and expiry
type SuppressionEntry struct {
	ID        string   `yaml:"id" json:"id"`
	Statement string   `yaml:"statement" json:"statement"`
	PURLs     []string `yaml:"purls,omitempty" json:"purls,omitempty"` // sorted, nil when unscoped
	ExpiredAt string   `yaml:"expired_at" json:"expired_at"`          // YYYY-MM-DD
}

// NewSuppressionEntry creates a new SuppressionEntry without package scope
func NewSuppressionEntry(id, statement, expiredAt string) *SuppressionEntry {
	return &SuppressionEntry{
		ID:        id,
		Statement: statement,
		ExpiredAt: expiredAt,
	}
}

// IgnoreFile is the document root of a .trivyignore.yaml file
type IgnoreFile struct {
	Vulnerabilities []SuppressionEntry `yaml:"vulnerabilities" json:"vulnerabilities"`
}
