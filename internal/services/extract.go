package services

import (
	"encoding/json"
	"strings"

	"github.com/sdejt/planaula-backend/internal/pkg/apierr"
)

// ExtractJSON parses the model output into an object. Strict parse first;
// when that fails, the substring between the first "{" and the last "}" gets
// one more attempt. Anything beyond that is malformed output.
func ExtractJSON(text string) (map[string]any, error) {
	trimmed := strings.TrimSpace(text)

	var obj map[string]any
	if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
		return obj, nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start < 0 || end < 0 || end <= start {
		return nil, apierr.Newf(apierr.KindMalformedOutput, "no JSON object found in model output")
	}
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &obj); err != nil {
		return nil, apierr.New(apierr.KindMalformedOutput, err)
	}
	return obj, nil
}
