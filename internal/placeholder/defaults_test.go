package placeholder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownTextTokens = func() []string {
	tokens := []string{
		"HERO_TITLE", "HERO_SUBTITLE", "HERO_DESCRIPTION",
		"CONTACT_PHONE", "CONTACT_EMAIL", "CONTACT_ADDRESS", "CONTACT_HOURS",
		"MENU_BUTTON_TEXT", "ORDER_BUTTON_TEXT", "CONTACT_BUTTON_TEXT", "LEARN_MORE_BUTTON_TEXT",
		"FEATURED_TITLE", "ABOUT_TITLE", "SERVICES_TITLE",
	}
	for i := 1; i <= 3; i++ {
		tokens = append(tokens,
			fmt.Sprintf("MENU_ITEM_%d_NAME", i),
			fmt.Sprintf("MENU_ITEM_%d_DESCRIPTION", i),
			fmt.Sprintf("MENU_ITEM_%d_PRICE", i),
			fmt.Sprintf("FEATURE_%d_TITLE", i),
			fmt.Sprintf("FEATURE_%d_DESCRIPTION", i),
		)
	}
	return tokens
}()

func TestDefaultForTotality(t *testing.T) {
	industries := []Industry{
		IndustryGeneric, IndustryCafe, IndustryRestaurant, IndustryRetail,
		IndustryBlog, IndustryPortfolio, IndustryFitness, IndustrySalon, IndustryTech,
		// An out-of-range tag must still resolve via the generic set.
		Industry(999),
	}

	for _, ind := range industries {
		for _, token := range knownTextTokens {
			value, ok := DefaultFor(ind, token)
			require.True(t, ok, "industry %s token %s not recognized", ind, token)
			assert.NotEmpty(t, value, "industry %s token %s returned empty default", ind, token)
		}
	}
}

func TestDefaultForUnknownCategory(t *testing.T) {
	_, ok := DefaultFor(IndustryCafe, "TOTALLY_BOGUS_TOKEN")
	assert.False(t, ok)

	// Out-of-range ordinals are not a known category.
	_, ok = DefaultFor(IndustryCafe, "MENU_ITEM_4_NAME")
	assert.False(t, ok)
	_, ok = DefaultFor(IndustryCafe, "MENU_ITEM_0_NAME")
	assert.False(t, ok)
}

func TestDefaultForSpecValues(t *testing.T) {
	v, ok := DefaultFor(IndustryCafe, "HERO_TITLE")
	require.True(t, ok)
	assert.Equal(t, "Artisan Coffee Experience", v)

	v, ok = DefaultFor(IndustryCafe, "CONTACT_PHONE")
	require.True(t, ok)
	assert.Equal(t, "02-123-4567", v)

	// Industries without menu content fall back to the generic item names.
	v, ok = DefaultFor(IndustryBlog, "MENU_ITEM_2_NAME")
	require.True(t, ok)
	assert.Equal(t, "Item 2", v)
}

func TestParseIndustry(t *testing.T) {
	tests := []struct {
		raw      string
		expected Industry
	}{
		{"cafe", IndustryCafe},
		{"Specialty Coffee Shop", IndustryCafe},
		{"thai restaurant", IndustryRestaurant},
		{"online store", IndustryRetail},
		{"personal blog", IndustryBlog},
		{"photography portfolio", IndustryPortfolio},
		{"crossfit gym", IndustryFitness},
		{"nail salon", IndustrySalon},
		{"saas startup", IndustryTech},
		{"", IndustryGeneric},
		{"zeppelin rental", IndustryGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseIndustry(tt.raw))
		})
	}
}
