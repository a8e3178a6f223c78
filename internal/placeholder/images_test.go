package placeholder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_ai_server/internal/types"
)

var allImageURLTokens = []string{
	"HERO_IMAGE_URL",
	"MENU_IMAGE_URL", "MENU_IMAGE_URL_1", "MENU_IMAGE_URL_2", "MENU_IMAGE_URL_3",
	"COFFEE_IMAGE_URL", "PRODUCT_IMAGE_URL", "SERVICE_IMAGE_URL",
	"TEAM_IMAGE_URL", "GALLERY_IMAGE_URL",
}

func TestImageURLTokenSet(t *testing.T) {
	for _, token := range allImageURLTokens {
		assert.True(t, IsImageURLToken(token), token)
	}
	// Recognition is by exact name, not pattern.
	assert.False(t, IsImageURLToken("BANNER_IMAGE_URL"))
	assert.False(t, IsImageURLToken("MENU_IMAGE_URL_4"))
	assert.False(t, IsImageURLToken("HERO_IMAGE_ALT"))
}

func TestImageAltTokens(t *testing.T) {
	assert.True(t, IsImageAltToken("HERO_IMAGE_ALT"))
	assert.True(t, IsImageAltToken("MENU_IMAGE_ALT_2"))
	assert.False(t, IsImageAltToken("HERO_IMAGE_URL"))
	assert.False(t, IsImageAltToken("BANNER_IMAGE_ALT"))
}

func TestFallbackAssetPerCategory(t *testing.T) {
	for _, token := range allImageURLTokens {
		asset := FallbackAsset(token)
		require.NotEmpty(t, asset, token)
		assert.True(t, strings.HasPrefix(asset, "/assets/placeholders/"), asset)
	}
}

func TestImagePromptUsesHintsAndSuffix(t *testing.T) {
	bctx := types.BusinessContext{Industry: "cafe", SpecificNiche: "specialty espresso"}
	doc := &types.FinalJson{
		Business: &types.BusinessSection{Name: "Bean There"},
		Menu:     &types.MenuSection{Cuisine: "italian"},
		Team:     &types.TeamSection{Department: "baristas"},
	}

	hero := ImagePrompt("HERO_IMAGE_URL", bctx, doc, "fallback-name")
	assert.Contains(t, hero, "Bean There")
	assert.Contains(t, hero, "cafe")
	assert.Contains(t, hero, "website hero banner")

	menu := ImagePrompt("MENU_IMAGE_URL_1", bctx, doc, "fallback-name")
	assert.Contains(t, menu, "italian cuisine")
	assert.Contains(t, menu, "professional food photography")

	team := ImagePrompt("TEAM_IMAGE_URL", bctx, doc, "fallback-name")
	assert.Contains(t, team, "baristas team")
}

func TestAltTextDeterministicAndTotal(t *testing.T) {
	bctx := types.BusinessContext{Industry: "cafe"}
	doc := &types.FinalJson{Business: &types.BusinessSection{Name: "Bean There"}}

	altTokens := []string{
		"HERO_IMAGE_ALT", "MENU_IMAGE_ALT", "MENU_IMAGE_ALT_1", "COFFEE_IMAGE_ALT",
		"PRODUCT_IMAGE_ALT", "SERVICE_IMAGE_ALT", "TEAM_IMAGE_ALT", "GALLERY_IMAGE_ALT",
	}
	for _, token := range altTokens {
		first := AltText(token, bctx, doc, "proj")
		second := AltText(token, bctx, doc, "proj")
		require.NotEmpty(t, first, token)
		assert.Equal(t, first, second, token)
	}

	assert.Contains(t, AltText("HERO_IMAGE_ALT", bctx, doc, "proj"), "Bean There")
}
