package placeholder

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"go.uber.org/zap"

	"sitegen_ai_server/internal/metrics"
	"sitegen_ai_server/internal/types"
)

// Result is the produced contract of the pipeline. Confidence is coarse:
// 1.0 for a no-op template, 0.9 when generation covered every non-image
// placeholder, 0.5 when the fallback tier filled any of them.
type Result struct {
	ReplacedTemplate string            `json:"replacedTemplate"`
	Replacements     map[string]string `json:"replacements"`
	Confidence       float64           `json:"confidence"`
	FallbackUsed     bool              `json:"fallbackUsed"`
}

// cacheEntry is what the cache stores per key, so a hit replays the original
// confidence and fallback signal alongside the resolved template.
type cacheEntry struct {
	Template     string  `json:"template"`
	Confidence   float64 `json:"confidence"`
	FallbackUsed bool    `json:"fallbackUsed"`
}

// Resolver sequences scan -> cache lookup -> text/image generation ->
// fallback merge -> cache store. It is the only component exposed to
// callers; capability failures never escape it as errors.
type Resolver struct {
	text   TextGenerator
	images ImageGenerator
	cache  Cache
	log    *zap.Logger
}

func NewResolver(text TextGenerator, images ImageGenerator, cache Cache, log *zap.Logger) *Resolver {
	return &Resolver{text: text, images: images, cache: cache, log: log}
}

// Resolve fills every recognized placeholder in the template. It always
// returns a complete result; generation failures surface only through
// FallbackUsed and Confidence. Caller-supplied objects are never mutated.
func (r *Resolver) Resolve(ctx context.Context, template string, doc *types.FinalJson, bctx types.BusinessContext, projectName, userIntent string) Result {
	tokens := ScanTokens(template)
	if len(tokens) == 0 {
		// Fast path for config/static files: no tokens, no external calls.
		metrics.ResolutionsTotal.WithLabelValues(metrics.OutcomeNoop).Inc()
		return Result{
			ReplacedTemplate: template,
			Replacements:     map[string]string{},
			Confidence:       1.0,
			FallbackUsed:     false,
		}
	}

	key := cacheKey(template, bctx.Industry, projectName)
	if raw, ok := r.cache.Get(ctx, key); ok {
		var entry cacheEntry
		if err := json.Unmarshal([]byte(raw), &entry); err == nil {
			metrics.ResolutionsTotal.WithLabelValues(metrics.OutcomeCacheHit).Inc()
			return Result{
				ReplacedTemplate: entry.Template,
				Replacements:     map[string]string{},
				Confidence:       entry.Confidence,
				FallbackUsed:     entry.FallbackUsed,
			}
		}
		r.log.Warn("discarding unreadable cache entry", zap.String("key", key))
	}

	var textTokens, imageTokens, altTokens []string
	for _, tok := range tokens {
		switch {
		case IsImageURLToken(tok):
			imageTokens = append(imageTokens, tok)
		case IsImageAltToken(tok):
			altTokens = append(altTokens, tok)
		default:
			textTokens = append(textTokens, tok)
		}
	}

	// Text stage and each image category are independent external calls
	// with no data dependency; run them concurrently, errors isolated
	// per task so one failure cannot poison the others.
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		textRepl  map[string]string
		textErr   error
		imageURLs = make(map[string]string, len(imageTokens))
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		textRepl, textErr = runTextStage(ctx, r.text, textTokens, bctx, doc, projectName, userIntent)
	}()

	for _, tok := range imageTokens {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			url, err := r.images.GenerateImage(ctx, ImagePrompt(token, bctx, doc, projectName), ImageSize(token))
			if err != nil {
				metrics.GenerationFailuresTotal.WithLabelValues("image").Inc()
				r.log.Warn("image generation failed, using placeholder asset",
					zap.String("token", token), zap.Error(err))
				return
			}
			mu.Lock()
			imageURLs[token] = url
			mu.Unlock()
		}(tok)
	}

	wg.Wait()

	if textErr != nil {
		metrics.GenerationFailuresTotal.WithLabelValues("text").Inc()
		r.log.Warn("text generation failed, falling back to default content",
			zap.String("industry", bctx.Industry), zap.Error(textErr))
	}

	replaced := template
	replacements := make(map[string]string, len(tokens))

	for token, value := range textRepl {
		replaced = strings.ReplaceAll(replaced, bracketed(token), value)
		replacements[token] = value
	}
	for token, url := range imageURLs {
		replaced = strings.ReplaceAll(replaced, bracketed(token), url)
		replacements[token] = url
	}

	// Alt text is always deterministic, regardless of whether the image
	// itself was generated or fell back.
	for _, token := range altTokens {
		alt := AltText(token, bctx, doc, projectName)
		replaced = strings.ReplaceAll(replaced, bracketed(token), alt)
		replacements[token] = alt
	}

	replaced, textFallback := r.mergeFallback(replaced, bctx, replacements)

	fallbackUsed := textErr != nil || textFallback
	confidence := 0.9
	if fallbackUsed {
		confidence = 0.5
	}
	// Image-only fallbacks deliberately do not downgrade confidence or set
	// FallbackUsed; image degradation is surfaced via metrics instead.

	if entry, err := json.Marshal(cacheEntry{Template: replaced, Confidence: confidence, FallbackUsed: fallbackUsed}); err == nil {
		r.cache.Set(ctx, key, string(entry))
	}

	if fallbackUsed {
		metrics.ResolutionsTotal.WithLabelValues(metrics.OutcomeFallback).Inc()
	} else {
		metrics.ResolutionsTotal.WithLabelValues(metrics.OutcomeGenerated).Inc()
	}

	return Result{
		ReplacedTemplate: replaced,
		Replacements:     replacements,
		Confidence:       confidence,
		FallbackUsed:     fallbackUsed,
	}
}

// mergeFallback fills every remaining recognized token from the default
// content table (or the placeholder asset for image categories). It reports
// whether any known text-category token was filled this way. Tokens outside
// every known category stay as literal text: a template typo degrades to
// visible-but-harmless output instead of an error.
func (r *Resolver) mergeFallback(template string, bctx types.BusinessContext, replacements map[string]string) (string, bool) {
	industry := ParseIndustry(bctx.Industry)
	textFallback := false

	for _, token := range ScanTokens(template) {
		switch {
		case IsImageURLToken(token):
			asset := FallbackAsset(token)
			template = strings.ReplaceAll(template, bracketed(token), asset)
			replacements[token] = asset
			metrics.ImageFallbacksTotal.Inc()
		default:
			if value, ok := DefaultFor(industry, token); ok {
				template = strings.ReplaceAll(template, bracketed(token), value)
				replacements[token] = value
				textFallback = true
			}
		}
	}
	return template, textFallback
}
