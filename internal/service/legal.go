package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/templui/goalboard/internal/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrPageNotFound = errors.New("page not found")

type LegalPage struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Content     string `json:"html"`
	LastUpdated string `json:"last_updated"`
}

// LegalService serves the markdown pages under <content>/legal, such as
// the privacy policy Kakao requires for login review.
type LegalService struct {
	contentDir string
	parser     *markdown.Parser

	mu    sync.RWMutex
	pages map[string]*LegalPage
}

func NewLegalService(contentDir string) *LegalService {
	return &LegalService{
		contentDir: filepath.Join(contentDir, "legal"),
		parser:     markdown.NewParser(),
		pages:      make(map[string]*LegalPage),
	}
}

func (s *LegalService) LoadPages() error {
	files, err := os.ReadDir(s.contentDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read legal directory: %w", err)
	}

	pages := make(map[string]*LegalPage)
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
			continue
		}

		slug := strings.TrimSuffix(file.Name(), ".md")
		page, err := s.loadPage(slug)
		if err != nil {
			return fmt.Errorf("failed to load page %s: %w", slug, err)
		}

		pages[slug] = page
	}

	s.mu.Lock()
	s.pages = pages
	s.mu.Unlock()

	return nil
}

func (s *LegalService) loadPage(slug string) (*LegalPage, error) {
	filePath := filepath.Join(s.contentDir, slug+".md")
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	html, meta, err := s.parser.ParseWithFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markdown: %w", err)
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	title, _ := meta["title"].(string)
	if title == "" {
		title = cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
	}

	lastUpdated := ""
	if value, ok := meta["lastUpdated"]; ok {
		lastUpdated = formatPageDate(value)
	}
	if lastUpdated == "" {
		lastUpdated = info.ModTime().Format(time.DateOnly)
	}

	return &LegalPage{
		Title:       title,
		Slug:        slug,
		Content:     string(html),
		LastUpdated: lastUpdated,
	}, nil
}

// Page reloads the directory so edits show up without a restart.
func (s *LegalService) Page(slug string) (*LegalPage, error) {
	err := s.LoadPages()
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	page, ok := s.pages[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
	}

	return page, nil
}

// Slugs lists the loaded pages in alphabetical order.
func (s *LegalService) Slugs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slugs := make([]string, 0, len(s.pages))
	for slug := range s.pages {
		slugs = append(slugs, slug)
	}
	slices.Sort(slugs)
	return slugs
}

// formatPageDate normalizes a frontmatter date to YYYY-MM-DD.
func formatPageDate(value any) string {
	var dateStr string

	switch v := value.(type) {
	case string:
		dateStr = v
	case time.Time:
		return v.Format(time.DateOnly)
	default:
		return ""
	}

	formats := []string{
		time.DateOnly,
		"2006/01/02",
		"2006.01.02",
		"January 2, 2006",
		time.RFC3339,
	}

	for _, format := range formats {
		t, err := time.Parse(format, dateStr)
		if err == nil {
			return t.Format(time.DateOnly)
		}
	}

	return dateStr
}
