// Package ignorefile renders, writes and reads .trivyignore.yaml suppression files.
//
// The writer emits a fixed layout rather than going through a YAML encoder so that
// indentation, key order and quoting stay byte-stable:
//
//	vulnerabilities:
//	  - id: CVE-2024-0001
//	    statement: "Issue A"
//	    purls:
//	      - "pkg:pypi/bar@2.0"
//	    expired_at: 2027-04-15
package ignorefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/ortelius/trivy2ignore/model"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Render serializes the entries in order, ending with a single newline
func Render(entries []model.SuppressionEntry) []byte {
	var buf bytes.Buffer

	buf.WriteString("vulnerabilities:\n")
	for _, entry := range entries {
		fmt.Fprintf(&buf, "  - id: %s\n", entry.ID)
		fmt.Fprintf(&buf, "    statement: %s\n", Quote(entry.Statement))
		if len(entry.PURLs) > 0 {
			buf.WriteString("    purls:\n")
			for _, purl := range entry.PURLs {
				fmt.Fprintf(&buf, "      - %s\n", Quote(purl))
			}
		}
		fmt.Fprintf(&buf, "    expired_at: %s\n", entry.ExpiredAt)
	}

	return buf.Bytes()
}

// Quote returns s as a JSON string literal restricted to ASCII.
// Runes outside printable ASCII become \uXXXX escapes (surrogate pairs above U+FFFF)
// and HTML characters are left as-is.
func Quote(s string) string {
	var encoded bytes.Buffer
	enc := json.NewEncoder(&encoded)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// strings always encode
		panic(err)
	}

	var out strings.Builder
	for _, r := range strings.TrimSuffix(encoded.String(), "\n") {
		switch {
		case r == 0x7f:
			fmt.Fprintf(&out, `\u%04x`, r)
		case r < 0x80:
			out.WriteRune(r)
		case r > 0xffff:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&out, `\u%04x\u%04x`, r1, r2)
		default:
			fmt.Fprintf(&out, `\u%04x`, r)
		}
	}
	return out.String()
}

// Write renders the entries to path, creating missing parent directories and
// replacing any existing file
func Write(fs afero.Fs, entries []model.SuppressionEntry, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := fs.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := afero.WriteFile(fs, path, Render(entries), filePerm); err != nil {
		return fmt.Errorf("failed to write suppression file %s: %w", path, err)
	}
	return nil
}

// Decode parses a suppression file document
func Decode(data []byte) (*model.IgnoreFile, error) {
	var doc model.IgnoreFile
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ReadFile reads and parses the suppression file at path
func ReadFile(fs afero.Fs, path string) (*model.IgnoreFile, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suppression file %s: %w", path, err)
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("suppression file %s is not valid YAML: %w", path, err)
	}
	return doc, nil
}
