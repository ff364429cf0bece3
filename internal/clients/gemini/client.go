package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/sdejt/planaula-backend/internal/logger"
	"github.com/sdejt/planaula-backend/internal/utils"
)

const DefaultModelName = "models/gemini-1.5-flash"

const generateTimeout = 60 * time.Second

// Client is the synchronous generate_content surface of the external model.
type Client interface {
	GenerateContent(ctx context.Context, modelName, prompt string) (string, error)
	Close() error
}

type client struct {
	log    *logger.Logger
	client *genai.Client
}

func NewClient(log *logger.Logger) (Client, error) {
	apiKey := utils.GetEnv("LLM_API_KEY", "", log)
	if apiKey == "" {
		return nil, fmt.Errorf("missing LLM_API_KEY")
	}

	ctx := context.Background()
	genaiClient, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &client{
		log:    log.With("service", "GeminiClient"),
		client: genaiClient,
	}, nil
}

func (c *client) GenerateContent(ctx context.Context, modelName, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	model := c.client.GenerativeModel(modelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		break
	}
	return sb.String(), nil
}

func (c *client) Close() error {
	return c.client.Close()
}
