package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/oliverDX1234/news-aggregator/repository"
)

// bylinePrefix matches a leading case-insensitive "By " boilerplate prefix.
var bylinePrefix = regexp.MustCompile(`(?i)^by\s+`)

// authorResolverService implementation.
type authorResolverService struct {
	authors repository.AuthorRepository
	logger  *slog.Logger
}

// NewAuthorResolverService creates a new author resolver service.
func NewAuthorResolverService(authors repository.AuthorRepository, logger *slog.Logger) AuthorResolverService {
	return &authorResolverService{
		authors: authors,
		logger:  logger,
	}
}

// Resolve strips byline boilerplate and resolves the canonical name to an
// author ID via an atomic find-or-create. An absent byline resolves to no
// author, which is not an error.
func (s *authorResolverService) Resolve(ctx context.Context, rawName string) (*string, error) {
	name := CanonicalAuthorName(rawName)
	if name == "" {
		return nil, nil
	}

	authorID, err := s.authors.FindOrCreateByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve author %q: %w", name, err)
	}

	return &authorID, nil
}

// CanonicalAuthorName strips the leading "By " prefix and surrounding
// whitespace from a raw byline string.
func CanonicalAuthorName(rawName string) string {
	trimmed := strings.TrimSpace(rawName)
	return strings.TrimSpace(bylinePrefix.ReplaceAllString(trimmed, ""))
}
