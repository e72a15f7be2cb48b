package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/ortelius/trivy2ignore/config"
	"github.com/ortelius/trivy2ignore/ignorefile"
	"github.com/ortelius/trivy2ignore/model"
	"github.com/ortelius/trivy2ignore/util"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

var (
	// ErrInputNotFound is returned when the input path is missing or not a regular file
	ErrInputNotFound = errors.New("input file not found")
	// ErrInvalidInput is returned when the input is not valid JSON
	ErrInvalidInput = errors.New("input file is not valid JSON")
)

// Converter reads a Trivy JSON report and writes a .trivyignore.yaml file
type Converter struct {
	Fs           afero.Fs
	Logger       *zap.Logger
	Now          func() time.Time
	ExpiryMonths int
}

// Summary describes what a conversion run produced
type Summary struct {
	Findings  int
	Entries   []model.SuppressionEntry
	Locators  int
	PURLTypes map[string]int
	ExpiresOn string
}

// NewConverter creates a Converter on the OS filesystem with the default expiry
func NewConverter(logger *zap.Logger) *Converter {
	return &Converter{
		Fs:           afero.NewOsFs(),
		Logger:       logger,
		Now:          time.Now,
		ExpiryMonths: config.DefaultExpiryMonths,
	}
}

// Run converts the report at input and writes the suppression file to output.
// Nothing is written unless the input exists and parses.
func (c *Converter) Run(input, output string) (*Summary, error) {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	info, err := c.Fs.Stat(input)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, input)
	}

	data, err := afero.ReadFile(c.Fs, input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", input, err)
	}

	var report any
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInput, input, err)
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	expiresOn := util.FormatDate(util.AddMonths(now(), c.ExpiryMonths))

	findings := ExtractFindings(report)
	b := newEntryBuilder(logger, expiresOn)
	for _, f := range findings {
		b.add(f)
	}
	entries := b.result()

	if err := ignorefile.Write(c.Fs, entries, output); err != nil {
		return nil, err
	}
	verifyRoundTrip(logger, entries)

	summary := &Summary{
		Findings:  len(findings),
		Entries:   entries,
		PURLTypes: b.types,
		ExpiresOn: expiresOn,
	}
	for _, e := range entries {
		summary.Locators += len(e.PURLs)
	}

	logger.Info("wrote suppression file",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("findings", summary.Findings),
		zap.Int("entries", len(entries)),
		zap.Int("purls", summary.Locators),
		zap.Any("purl_types", summary.PURLTypes),
		zap.String("expired_at", expiresOn))

	return summary, nil
}

// verifyRoundTrip warns when the written document would not read back as the same entries,
// e.g. ids carrying YAML syntax since ids are written unquoted
func verifyRoundTrip(logger *zap.Logger, entries []model.SuppressionEntry) {
	doc, err := ignorefile.Decode(ignorefile.Render(entries))
	if err != nil {
		logger.Warn("suppression file is not valid YAML", zap.Error(err))
		return
	}
	if len(entries) == 0 && len(doc.Vulnerabilities) == 0 {
		return
	}
	if !reflect.DeepEqual(entries, doc.Vulnerabilities) {
		logger.Warn("suppression file does not read back to the written entries")
	}
}
