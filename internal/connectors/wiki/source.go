// Package wiki collects supplementary service documentation from a local
// markdown tree. Design and build pages are combined into one document per
// service so retrieval surfaces them alongside the generated API documents.
package wiki

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/abdomohamed/apim-swagger-downloader/internal/core/domain"
	"github.com/abdomohamed/apim-swagger-downloader/internal/core/ports/driven"
	"github.com/abdomohamed/apim-swagger-downloader/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.WikiSource = (*Source)(nil)

// Patterns locating a service name inside a page when the path carries
// none.
var (
	servicePattern = regexp.MustCompile(`[Ss]ervice:\s*([^\n]+)`)
	apiPattern     = regexp.MustCompile(`(?i)api:\s*([^\n]+)`)
	titlePattern   = regexp.MustCompile(`(?m)^#\s+(.+)$`)
)

// Source reads a wiki markdown tree.
type Source struct {
	dir     string
	baseURL string

	// clock supplies LastUpdated timestamps; replaceable for tests.
	clock func() time.Time
}

// Option configures the source.
type Option func(*Source)

// WithClock overrides the timestamp source. Used in tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Source) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New creates a wiki source rooted at dir. The base URL, when set, turns
// page paths into document references.
func New(dir, baseURL string, opts ...Option) *Source {
	s := &Source{dir: dir, baseURL: baseURL, clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Documents walks the wiki tree and returns one combined document per
// service, ordered by service name. A missing tree is logged and yields
// zero documents.
func (s *Source) Documents(_ context.Context) ([]domain.Document, error) {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		logger.Warn("Wiki directory not found: %s", s.dir)
		return nil, nil
	}

	designs := map[string][]string{}
	builds := map[string][]string{}

	err := filepath.WalkDir(s.dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		rel, err := filepath.Rel(s.dir, path)
		if err != nil {
			return err
		}
		service, err := s.serviceName(path, rel)
		if err != nil {
			return err
		}

		lower := strings.ToLower(rel)
		if strings.Contains(lower, "design") {
			designs[service] = append(designs[service], path)
		}
		if strings.Contains(lower, "build") {
			builds[service] = append(builds[service], path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk wiki tree %s: %w", s.dir, err)
	}

	services := make([]string, 0, len(designs)+len(builds))
	seen := map[string]bool{}
	for service := range designs {
		seen[service] = true
	}
	for service := range builds {
		seen[service] = true
	}
	for service := range seen {
		services = append(services, service)
	}
	sort.Strings(services)

	docs := make([]domain.Document, 0, len(services))
	for _, service := range services {
		doc, err := s.combine(service, designs[service], builds[service])
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// serviceName resolves the owning service of one page: the top-level
// directory when there is one, otherwise a Service/API/title marker in the
// page, otherwise the file name.
func (s *Source) serviceName(path, rel string) (string, error) {
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) > 1 {
		name := strings.ReplaceAll(parts[0], "-", " ")
		return strings.ReplaceAll(name, "_", " "), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	for _, pattern := range []*regexp.Regexp{servicePattern, apiPattern, titlePattern} {
		if m := pattern.FindSubmatch(content); m != nil {
			return strings.TrimSpace(string(m[1])), nil
		}
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), nil
}

// combine merges a service's design and build pages into one document.
func (s *Source) combine(service string, designPaths, buildPaths []string) (domain.Document, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", service)

	reference := ""

	if len(designPaths) > 0 {
		b.WriteString("## Design Documentation\n\n")
		for _, path := range designPaths {
			body, err := s.pageBody(path)
			if err != nil {
				return domain.Document{}, err
			}
			b.WriteString(body + "\n\n")
		}
		reference = s.pageReference(designPaths[0])
	}

	if len(buildPaths) > 0 {
		b.WriteString("## Build Documentation\n\n")
		for _, path := range buildPaths {
			body, err := s.pageBody(path)
			if err != nil {
				return domain.Document{}, err
			}
			b.WriteString(body + "\n\n")
		}
	}

	if reference == "" && len(buildPaths) > 0 {
		reference = s.pageReference(buildPaths[0])
	}

	return domain.Document{
		ID:           "wiki-" + slug(service),
		Title:        service,
		Content:      b.String(),
		APIName:      service,
		DocumentType: domain.DocumentTypeWiki,
		LastUpdated:  s.clock(),
		Reference:    reference,
	}, nil
}

// pageBody reads one page, dropping its leading title line. The combined
// document carries the service heading instead.
func (s *Source) pageBody(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	lines := strings.Split(string(content), "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "# ") {
		lines = lines[1:]
	}
	return strings.Join(lines, "\n"), nil
}

// pageReference maps a page path onto the published wiki URL. Without a
// base URL the tree-relative path stands in.
func (s *Source) pageReference(path string) string {
	rel, err := filepath.Rel(s.dir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = filepath.ToSlash(strings.TrimSuffix(rel, ".md"))

	if s.baseURL == "" {
		return rel
	}
	return strings.TrimSuffix(s.baseURL, "/") + "/" + rel
}

// slug derives a stable document ID fragment from a service name.
func slug(name string) string {
	out := []rune(strings.ToLower(name))
	for i, r := range out {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		default:
			out[i] = '-'
		}
	}
	return string(out)
}
