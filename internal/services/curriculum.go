package services

import (
	"context"
	"strings"

	"github.com/sdejt/planaula-backend/internal/logger"
	"github.com/sdejt/planaula-backend/internal/normalization"
	"github.com/sdejt/planaula-backend/internal/repos"
	"github.com/sdejt/planaula-backend/internal/types"
)

// maxSnippets caps how many curricular snippets enter the prompt.
const maxSnippets = 6

type CurriculumService interface {
	// Block returns the textual curriculum block for the query, one snippet
	// per line prefixed with "- ". Empty when nothing matches.
	Block(ctx context.Context, discipline, grade, unit, topic string) (string, error)
}

type curriculumService struct {
	log         *logger.Logger
	snippetRepo repos.SnippetRepo
}

func NewCurriculumService(log *logger.Logger, snippetRepo repos.SnippetRepo) CurriculumService {
	return &curriculumService{
		log:         log.With("service", "CurriculumService"),
		snippetRepo: snippetRepo,
	}
}

func (s *curriculumService) Block(ctx context.Context, discipline, grade, unit, topic string) (string, error) {
	snippets, err := s.snippetRepo.ListByDisciplineGrade(ctx, nil, discipline, grade)
	if err != nil {
		return "", err
	}
	return buildBlock(selectSnippets(snippets, unit, topic)), nil
}

// selectSnippets ranks snippets into four specificity tiers on the normalized
// (unit, topic) pair and concatenates them in tier order. Input order (newest
// first) is preserved within each tier. The result is capped at maxSnippets.
func selectSnippets(snippets []*types.CurriculumSnippet, unit, topic string) []*types.CurriculumSnippet {
	u := normalization.Normalize(unit)
	t := normalization.Normalize(topic)

	tiers := make([][]*types.CurriculumSnippet, 4)
	for _, snippet := range snippets {
		us := normalization.Normalize(snippet.Unit)
		ts := normalization.Normalize(snippet.Topic)
		switch {
		case us == u && ts == t && u != "" && t != "":
			tiers[0] = append(tiers[0], snippet)
		case us == u && ts == "" && u != "":
			tiers[1] = append(tiers[1], snippet)
		case us == "" && ts == t && t != "":
			tiers[2] = append(tiers[2], snippet)
		case us == "" && ts == "":
			tiers[3] = append(tiers[3], snippet)
		}
	}

	var ranked []*types.CurriculumSnippet
	for _, tier := range tiers {
		ranked = append(ranked, tier...)
	}
	if len(ranked) > maxSnippets {
		ranked = ranked[:maxSnippets]
	}
	return ranked
}

func buildBlock(snippets []*types.CurriculumSnippet) string {
	if len(snippets) == 0 {
		return ""
	}
	lines := make([]string, 0, len(snippets))
	for _, snippet := range snippets {
		lines = append(lines, "- "+snippet.Text)
	}
	return strings.Join(lines, "\n")
}
