package convert

import (
	"sort"
	"strings"

	"github.com/ortelius/trivy2ignore/model"
	"github.com/ortelius/trivy2ignore/util"
	"go.uber.org/zap"
)

// entryBuilder accumulates entries keyed by vulnerability id in first-seen order
type entryBuilder struct {
	logger    *zap.Logger
	expiresOn string
	order     []string
	entries   map[string]*model.SuppressionEntry
	purls     map[string]map[string]bool
	types     map[string]int // valid locators per purl type
}

func newEntryBuilder(logger *zap.Logger, expiresOn string) *entryBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &entryBuilder{
		logger:    logger,
		expiresOn: expiresOn,
		entries:   make(map[string]*model.SuppressionEntry),
		purls:     make(map[string]map[string]bool),
		types:     make(map[string]int),
	}
}

func (b *entryBuilder) add(finding model.Finding) {
	id, ok := finding.ID()
	if !ok || util.IsEmpty(id) {
		return
	}
	title, ok := finding.Title()
	if !ok || util.IsEmpty(title) {
		return
	}

	key := strings.TrimSpace(id)
	if _, exists := b.entries[key]; !exists {
		b.entries[key] = model.NewSuppressionEntry(key, strings.TrimSpace(title), b.expiresOn)
		b.purls[key] = make(map[string]bool)
		b.order = append(b.order, key)
	}

	purl, ok := ExtractLocator(finding)
	if !ok || b.purls[key][purl] {
		return
	}
	b.purls[key][purl] = true

	// Invalid package URLs are still emitted verbatim
	typ, err := util.PURLType(purl)
	if err != nil {
		b.logger.Debug("locator is not a valid package URL",
			zap.String("id", key), zap.String("purl", purl), zap.Error(err))
		return
	}
	b.types[typ]++
}

func (b *entryBuilder) result() []model.SuppressionEntry {
	out := make([]model.SuppressionEntry, 0, len(b.order))
	for _, key := range b.order {
		entry := *b.entries[key]
		if set := b.purls[key]; len(set) > 0 {
			entry.PURLs = make([]string, 0, len(set))
			for purl := range set {
				entry.PURLs = append(entry.PURLs, purl)
			}
			sort.Strings(entry.PURLs)
		}
		out = append(out, entry)
	}
	return out
}

// BuildEntries de-duplicates findings by vulnerability id. The first finding for an id
// supplies the statement, locators from all findings for that id are merged and sorted.
// Findings without an id or title are dropped.
func BuildEntries(findings []model.Finding, expiresOn string) []model.SuppressionEntry {
	b := newEntryBuilder(nil, expiresOn)
	for _, f := range findings {
		b.add(f)
	}
	return b.result()
}
