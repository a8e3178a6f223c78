package placeholder

import (
	"fmt"
	"strings"

	"sitegen_ai_server/internal/types"
)

// imageSpec describes one image placeholder category: its fixed style
// suffix, requested size, local fallback asset, and the builders for the
// generation prompt subject and the deterministic alt text.
type imageSpec struct {
	asset  string
	suffix string
	size   string
	hint   func(doc *types.FinalJson) string
	alt    func(industry, name string) string
}

// imageURLSpecs is the fixed, enumerated set of recognized image-URL tokens.
// Recognition is by exact name, not pattern.
var imageURLSpecs = map[string]imageSpec{
	"HERO_IMAGE_URL": {
		asset:  "/assets/placeholders/hero.jpg",
		suffix: "cinematic lighting, 16:9, website hero banner",
		size:   "1792x1024",
		hint: func(doc *types.FinalJson) string {
			if doc != nil && doc.Hero != nil && doc.Hero.Mood != "" {
				return doc.Hero.Mood + " mood"
			}
			return ""
		},
		alt: func(industry, name string) string {
			return fmt.Sprintf("Hero banner for %s, a %s business", name, industry)
		},
	},
	"COFFEE_IMAGE_URL": {
		asset:  "/assets/placeholders/coffee.jpg",
		suffix: "latte art, warm tones, professional cafe photography",
		size:   "1024x1024",
		alt: func(industry, name string) string {
			return fmt.Sprintf("Freshly brewed coffee at %s", name)
		},
	},
	"PRODUCT_IMAGE_URL": {
		asset:  "/assets/placeholders/product.jpg",
		suffix: "studio lighting, clean background, product photography",
		size:   "1024x1024",
		alt: func(industry, name string) string {
			return fmt.Sprintf("Featured product from %s", name)
		},
	},
	"SERVICE_IMAGE_URL": {
		asset:  "/assets/placeholders/service.jpg",
		suffix: "candid, natural light, professional service photography",
		size:   "1024x1024",
		alt: func(industry, name string) string {
			return fmt.Sprintf("Professional %s service at %s", industry, name)
		},
	},
	"TEAM_IMAGE_URL": {
		asset:  "/assets/placeholders/team.jpg",
		suffix: "group portrait, friendly, natural light",
		size:   "1024x1024",
		hint: func(doc *types.FinalJson) string {
			if doc != nil && doc.Team != nil && doc.Team.Department != "" {
				return doc.Team.Department + " team"
			}
			return ""
		},
		alt: func(industry, name string) string {
			return fmt.Sprintf("The team behind %s", name)
		},
	},
	"GALLERY_IMAGE_URL": {
		asset:  "/assets/placeholders/gallery.jpg",
		suffix: "editorial style, high resolution",
		size:   "1024x1024",
		hint: func(doc *types.FinalJson) string {
			if doc != nil && doc.Gallery != nil && doc.Gallery.Theme != "" {
				return doc.Gallery.Theme
			}
			return ""
		},
		alt: func(industry, name string) string {
			return fmt.Sprintf("Gallery image from %s", name)
		},
	},
}

func init() {
	menuSpec := imageSpec{
		asset:  "/assets/placeholders/menu.jpg",
		suffix: "appetizing, professional food photography",
		size:   "1024x1024",
		hint: func(doc *types.FinalJson) string {
			if doc != nil && doc.Menu != nil && doc.Menu.Cuisine != "" {
				return doc.Menu.Cuisine + " cuisine"
			}
			return ""
		},
		alt: func(industry, name string) string {
			return fmt.Sprintf("Menu dish at %s", name)
		},
	}
	imageURLSpecs["MENU_IMAGE_URL"] = menuSpec
	for i := 1; i <= 3; i++ {
		imageURLSpecs[fmt.Sprintf("MENU_IMAGE_URL_%d", i)] = menuSpec
	}
}

// IsImageURLToken reports whether the token is one of the enumerated
// image-URL categories.
func IsImageURLToken(token string) bool {
	_, ok := imageURLSpecs[token]
	return ok
}

// IsImageAltToken reports whether the token is the alt-text counterpart of
// an image category (e.g. HERO_IMAGE_ALT, MENU_IMAGE_ALT_2). Alt tokens are
// never sent to the text-generation call; they always resolve through the
// deterministic builder.
func IsImageAltToken(token string) bool {
	_, ok := imageURLSpecs[altToURLToken(token)]
	return ok && strings.Contains(token, "_IMAGE_ALT")
}

func altToURLToken(token string) string {
	return strings.Replace(token, "_IMAGE_ALT", "_IMAGE_URL", 1)
}

// ImagePrompt composes the category-specific generation prompt from the
// industry, business name, document hints, and the category's fixed style
// suffix.
func ImagePrompt(token string, bctx types.BusinessContext, doc *types.FinalJson, projectName string) string {
	spec := imageURLSpecs[token]
	name := doc.BusinessName(projectName)

	parts := []string{fmt.Sprintf("Photo for %s, a %s business", name, bctx.Industry)}
	if bctx.SpecificNiche != "" {
		parts = append(parts, bctx.SpecificNiche)
	}
	if spec.hint != nil {
		if h := spec.hint(doc); h != "" {
			parts = append(parts, h)
		}
	}
	parts = append(parts, spec.suffix)
	return strings.Join(parts, ", ")
}

// ImageSize returns the generation size requested for the category.
func ImageSize(token string) string {
	return imageURLSpecs[token].size
}

// FallbackAsset returns the fixed local placeholder asset path used when
// image generation fails for the category.
func FallbackAsset(token string) string {
	return imageURLSpecs[token].asset
}

// AltText builds the deterministic alt text for an alt token.
func AltText(token string, bctx types.BusinessContext, doc *types.FinalJson, projectName string) string {
	spec, ok := imageURLSpecs[altToURLToken(token)]
	if !ok {
		return ""
	}
	return spec.alt(bctx.Industry, doc.BusinessName(projectName))
}
