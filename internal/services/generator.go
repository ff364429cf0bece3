package services

import (
	"context"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/sdejt/planaula-backend/internal/clients/gemini"
	"github.com/sdejt/planaula-backend/internal/clients/rediscache"
	"github.com/sdejt/planaula-backend/internal/logger"
	"github.com/sdejt/planaula-backend/internal/pkg/apierr"
	"github.com/sdejt/planaula-backend/internal/utils"
)

type GeneratorService interface {
	// Generate returns the raw model output for the prompt. Results are
	// cached by content key for 24 hours; the cache is only ever populated
	// with non-empty successful generations.
	Generate(ctx context.Context, cacheKey, prompt string) (string, error)
}

type generatorService struct {
	log       *logger.Logger
	cache     rediscache.GenerationCache
	llm       gemini.Client
	modelName string
	group     singleflight.Group
}

func NewGeneratorService(log *logger.Logger, cache rediscache.GenerationCache, llm gemini.Client) GeneratorService {
	modelName := utils.GetEnv("LLM_MODEL_NAME", gemini.DefaultModelName, log)
	return &generatorService{
		log:       log.With("service", "GeneratorService"),
		cache:     cache,
		llm:       llm,
		modelName: modelName,
	}
}

func (s *generatorService) Generate(ctx context.Context, cacheKey, prompt string) (string, error) {
	if text, ok, err := s.cache.Get(ctx, cacheKey); err != nil {
		s.log.Warn("Cache lookup failed, falling through to model", "error", err)
	} else if ok {
		s.log.Debug("Generation cache hit", "cache_key", cacheKey)
		return text, nil
	}

	// Racing misses on the same key collapse into one model call.
	result, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		text, err := s.llm.GenerateContent(ctx, s.modelName, prompt)
		if err != nil {
			return "", apierr.New(apierr.KindGenerationFailed, err)
		}
		if strings.TrimSpace(text) == "" {
			return "", apierr.Newf(apierr.KindGenerationFailed, "model returned empty text")
		}
		if err := s.cache.Set(ctx, cacheKey, text, rediscache.GenerationTTL); err != nil {
			s.log.Warn("Failed to populate generation cache", "cache_key", cacheKey, "error", err)
		}
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}
