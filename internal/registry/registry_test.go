package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_ai_server/internal/placeholder"
)

func TestBundleFallsBackToGeneric(t *testing.T) {
	reg := New()

	cafe := reg.Bundle("specialty coffee shop")
	assert.Contains(t, cafe.EssentialFiles, "src/components/Menu.tsx")

	generic := reg.Bundle("zeppelin rental")
	assert.NotContains(t, generic.EssentialFiles, "src/components/Menu.tsx")
	assert.Contains(t, generic.EssentialFiles, "src/App.tsx")
}

func TestEveryEssentialFileHasTemplate(t *testing.T) {
	reg := New()
	for _, industry := range []string{"cafe", "restaurant", "unknown"} {
		bundle := reg.Bundle(industry)
		require.NotEmpty(t, bundle.EssentialFiles, industry)
		for _, filename := range bundle.EssentialFiles {
			tmpl, ok := bundle.Template(filename)
			require.True(t, ok, "%s: missing template for %s", industry, filename)
			assert.NotEmpty(t, tmpl)
		}
	}
}

func TestTemplateTokensAreKnownCategories(t *testing.T) {
	// Every token a bundle ships must resolve offline, so generated trees
	// never carry leftover brackets.
	reg := New()
	for _, industry := range []string{"cafe", "restaurant", "unknown"} {
		bundle := reg.Bundle(industry)
		for _, filename := range bundle.EssentialFiles {
			tmpl, _ := bundle.Template(filename)
			for _, token := range placeholder.ScanTokens(tmpl) {
				if placeholder.IsImageURLToken(token) || placeholder.IsImageAltToken(token) {
					continue
				}
				_, known := placeholder.DefaultFor(placeholder.ParseIndustry(industry), token)
				assert.True(t, known, "%s/%s: token %s has no default", industry, filename, token)
			}
		}
	}
}

func TestConfigFilesCarryNoTokens(t *testing.T) {
	reg := New()
	bundle := reg.Bundle("cafe")
	for _, filename := range []string{"package.json", "vite.config.ts"} {
		tmpl, ok := bundle.Template(filename)
		require.True(t, ok)
		assert.Empty(t, placeholder.ScanTokens(tmpl), filename)
	}
}
