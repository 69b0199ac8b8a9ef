package service

import (
	"testing"

	"collegeplan-be/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare json untouched",
			in:   `[{"name":"MIT"}]`,
			want: `[{"name":"MIT"}]`,
		},
		{
			name: "json fence stripped",
			in:   "```json\n[{\"name\":\"MIT\"}]\n```",
			want: `[{"name":"MIT"}]`,
		},
		{
			name: "plain fence stripped",
			in:   "```\n[{\"name\":\"MIT\"}]\n```",
			want: `[{"name":"MIT"}]`,
		},
		{
			name: "surrounding whitespace removed",
			in:   "  \n[{\"name\":\"MIT\"}]\n  ",
			want: `[{"name":"MIT"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripJSONFences(tt.in))
		})
	}
}

func TestGeneratedRecommendationParsing(t *testing.T) {
	raw := "```json\n" + `[
		{"name": "Carleton College", "description": "Small liberal arts school.", "reason": "Strong advising culture.", "acceptance_rate": 17.5},
		{"name": "Macalester College", "description": "Urban liberal arts school.", "reason": "Fits stated location preference.", "acceptance_rate": null},
		{"name": "Grinnell College", "description": "Rural liberal arts school.", "reason": "Generous need-based aid.", "acceptance_rate": 11}
	]` + "\n```"

	items, err := parseGeneratedRecommendations(raw)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Carleton College", items[0].Name)
	require.NotNil(t, items[0].AcceptanceRate)
	assert.InDelta(t, 17.5, *items[0].AcceptanceRate, 0.001)
	assert.Nil(t, items[1].AcceptanceRate)
	assert.Equal(t, "Generous need-based aid.", items[2].Reason)
}

func TestGeneratedRecommendationBatchSize(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{
			name: "too few",
			in:   `[{"name": "Carleton College", "description": "d", "reason": "r", "acceptance_rate": null}]`,
		},
		{
			name: "too many",
			in: `[
				{"name": "A", "description": "d", "reason": "r", "acceptance_rate": null},
				{"name": "B", "description": "d", "reason": "r", "acceptance_rate": null},
				{"name": "C", "description": "d", "reason": "r", "acceptance_rate": null},
				{"name": "D", "description": "d", "reason": "r", "acceptance_rate": null}
			]`,
		},
		{
			name: "empty array",
			in:   `[]`,
		},
		{
			name: "not json",
			in:   "Here are some colleges you might like.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := parseGeneratedRecommendations(tt.in)
			require.Error(t, err)
			assert.Nil(t, items)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.KindUpstream, appErr.Kind)
		})
	}
}
