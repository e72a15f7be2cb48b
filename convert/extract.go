// Package convert turns a Trivy JSON report into de-duplicated suppression entries.
package convert

import (
	"strings"

	"github.com/ortelius/trivy2ignore/model"
)

// ExtractFindings collects every vulnerability record from every result of a decoded report.
// Branches with missing or wrong-typed fields contribute nothing.
func ExtractFindings(report any) []model.Finding {
	root, ok := model.AsRecord(report)
	if !ok {
		return nil
	}

	results, ok := root.List(model.FieldResults)
	if !ok {
		return nil
	}

	var findings []model.Finding
	for _, item := range results {
		result, ok := model.AsRecord(item)
		if !ok {
			continue
		}

		vulns, ok := result.List(model.FieldVulnerabilities)
		if !ok {
			continue
		}

		for _, v := range vulns {
			if rec, ok := model.AsRecord(v); ok {
				findings = append(findings, model.NewFinding(rec))
			}
		}
	}

	return findings
}

// ExtractLocator returns the trimmed PkgIdentifier.PURL of a finding, if it has one
func ExtractLocator(finding model.Finding) (string, bool) {
	identifier, ok := finding.Object(model.FieldPkgIdentifier)
	if !ok {
		return "", false
	}

	purl, ok := identifier.String(model.FieldPURL)
	if !ok {
		return "", false
	}

	purl = strings.TrimSpace(purl)
	if purl == "" {
		return "", false
	}
	return purl, true
}
