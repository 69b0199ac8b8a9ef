package gemini

import (
	"testing"
)

func TestSelectModel(t *testing.T) {
	tests := []struct {
		name              string
		webSearch         bool
		extendedReasoning bool
		want              string
	}{
		{name: "default", want: ModelDefault},
		{name: "web search", webSearch: true, want: ModelWebSearch},
		{name: "extended reasoning", extendedReasoning: true, want: ModelReasoning},
		{name: "reasoning wins over search", webSearch: true, extendedReasoning: true, want: ModelReasoning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectModel(tt.webSearch, tt.extendedReasoning)
			if got != tt.want {
				t.Errorf("SelectModel(%v, %v) = %q, want %q", tt.webSearch, tt.extendedReasoning, got, tt.want)
			}
		})
	}
}
