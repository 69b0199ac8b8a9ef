package factory

import (
	"fmt"

	"collegeplan-be/pkg/llm"
	"collegeplan-be/pkg/llm/gemini"
)

func NewProvider(providerType, apiKey string) (llm.Provider, error) {
	switch providerType {
	case "gemini", "":
		return gemini.NewGeminiProvider(apiKey), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", providerType)
	}
}
