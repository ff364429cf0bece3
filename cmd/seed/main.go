package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sdejt/planaula-backend/internal/db"
	"github.com/sdejt/planaula-backend/internal/logger"
	"github.com/sdejt/planaula-backend/internal/repos"
	"github.com/sdejt/planaula-backend/internal/types"
)

type seedSnippet struct {
	Discipline string `yaml:"discipline"`
	Grade      string `yaml:"grade"`
	Unit       string `yaml:"unit"`
	Topic      string `yaml:"topic"`
	Text       string `yaml:"text"`
	Source     string `yaml:"source"`
}

type seedFile struct {
	Snippets []seedSnippet `yaml:"snippets"`
}

// Seeds curriculum snippets from a YAML file into the snippet table.
// Usage: seed <file.yaml>
func main() {
	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if len(os.Args) < 2 {
		log.Fatal("Usage: seed <snippets.yaml>")
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal("Failed to read seed file", "path", os.Args[1], "error", err)
	}
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		log.Fatal("Failed to parse seed file", "error", err)
	}
	if len(file.Snippets) == 0 {
		log.Warn("Seed file has no snippets, nothing to do")
		return
	}

	dataStore, err := db.NewDataStoreService(log)
	if err != nil {
		log.Fatal("Data store init failed", "error", err)
	}
	if err := dataStore.AutoMigrateAll(); err != nil {
		log.Fatal("Data store migration failed", "error", err)
	}
	snippetRepo := repos.NewSnippetRepo(dataStore.DB(), log)

	now := time.Now()
	snippets := make([]*types.CurriculumSnippet, 0, len(file.Snippets))
	for _, s := range file.Snippets {
		if s.Discipline == "" || s.Grade == "" || s.Text == "" {
			log.Warn("Skipping snippet without discipline/grade/text", "snippet", s)
			continue
		}
		snippets = append(snippets, &types.CurriculumSnippet{
			Discipline: s.Discipline,
			Grade:      s.Grade,
			Unit:       s.Unit,
			Topic:      s.Topic,
			Text:       s.Text,
			Source:     s.Source,
			CreatedAt:  now,
		})
	}

	ctx := context.Background()
	if _, err := snippetRepo.Create(ctx, nil, snippets); err != nil {
		log.Fatal("Failed to insert snippets", "error", err)
	}
	log.Info("Seeded snippets", "count", len(snippets))
}
