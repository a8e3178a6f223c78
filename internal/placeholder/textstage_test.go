package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_ai_server/internal/types"
)

func TestBuildTextPromptEmbedsContext(t *testing.T) {
	doc := &types.FinalJson{
		Business: &types.BusinessSection{Name: "Bean There", Description: "a neighborhood espresso bar"},
		Hero:     &types.HeroSection{Mood: "warm"},
		Contact:  &types.ContactSection{Phone: "02-111-2222"},
		Menu:     &types.MenuSection{Cuisine: "italian"},
		Featured: &types.FeaturedSection{Title: "Seasonal"},
	}
	bctx := types.BusinessContext{Industry: "cafe", SpecificNiche: "specialty espresso"}

	prompt := buildTextPrompt([]string{"HERO_TITLE", "CONTACT_PHONE"}, bctx, doc, "proj", "make it cozy")

	assert.Contains(t, prompt, "cafe")
	assert.Contains(t, prompt, "Bean There")
	assert.Contains(t, prompt, "a neighborhood espresso bar")
	assert.Contains(t, prompt, "make it cozy")
	assert.Contains(t, prompt, "HERO_TITLE")
	assert.Contains(t, prompt, "CONTACT_PHONE")
	// Sub-document snapshots ride along as JSON.
	assert.Contains(t, prompt, `"02-111-2222"`)
	assert.Contains(t, prompt, `"italian"`)
	assert.Contains(t, prompt, `"Seasonal"`)
}

func TestBuildTextPromptNilDocument(t *testing.T) {
	prompt := buildTextPrompt([]string{"HERO_TITLE"}, types.BusinessContext{Industry: "blog"}, nil, "proj", "")
	assert.Contains(t, prompt, "blog")
	assert.Contains(t, prompt, "proj")
	assert.Contains(t, prompt, "{}")
}

func TestParseReplacements(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected map[string]string
		wantErr  bool
	}{
		{
			name:     "plain object",
			raw:      `{"HERO_TITLE": "Hi", "CONTACT_PHONE": "123"}`,
			expected: map[string]string{"HERO_TITLE": "Hi", "CONTACT_PHONE": "123"},
		},
		{
			name:     "markdown fenced",
			raw:      "```json\n{\"HERO_TITLE\": \"Hi\"}\n```",
			expected: map[string]string{"HERO_TITLE": "Hi"},
		},
		{
			name:     "trailing comma repaired",
			raw:      `{"HERO_TITLE": "Hi",}`,
			expected: map[string]string{"HERO_TITLE": "Hi"},
		},
		{
			name:     "nulls dropped, numbers stringified",
			raw:      `{"HERO_TITLE": null, "MENU_ITEM_1_PRICE": 9.99}`,
			expected: map[string]string{"MENU_ITEM_1_PRICE": "9.99"},
		},
		{
			name:    "empty response",
			raw:     "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseReplacements(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
