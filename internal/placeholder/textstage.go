package placeholder

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"

	"sitegen_ai_server/internal/types"
)

// TextGenerator is the consumed text-generation capability. The returned
// string is expected to be a flat JSON object keyed by placeholder name; any
// error or unparseable output degrades to the fallback tier.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator is the consumed image-generation capability, returning a
// hosted image URL.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt, size string) (string, error)
}

const textPromptTemplate = `You are filling content placeholders for a website of a %s business.

Business name: %s
Description: %s
User intent: %s

Structured business data:
%s

Fill in concrete, on-brand content for each of the following placeholders.
Respond with a single flat JSON object whose keys are exactly the placeholder
names below and whose values are plain strings. No markdown, no explanations.

Placeholders:
%s`

// buildTextPrompt embeds the business context, document snapshots and the
// bracket-less placeholder names into one contextual prompt. Image URL and
// alt tokens must already be excluded by the caller.
func buildTextPrompt(tokens []string, bctx types.BusinessContext, doc *types.FinalJson, projectName, userIntent string) string {
	description := ""
	if doc != nil && doc.Business != nil {
		description = doc.Business.Description
	}
	if bctx.SpecificNiche != "" {
		description = strings.TrimSpace(description + " " + bctx.SpecificNiche)
	}

	return fmt.Sprintf(textPromptTemplate,
		bctx.Industry,
		doc.BusinessName(projectName),
		description,
		userIntent,
		documentSnapshot(doc),
		strings.Join(tokens, "\n"),
	)
}

// documentSnapshot serializes the prompt-relevant sub-documents. Sections
// absent from the document are simply omitted.
func documentSnapshot(doc *types.FinalJson) string {
	if doc == nil {
		return "{}"
	}
	snapshot := map[string]interface{}{}
	if doc.Hero != nil {
		snapshot["hero"] = doc.Hero
	}
	if doc.Contact != nil {
		snapshot["contact"] = doc.Contact
	}
	if doc.Menu != nil {
		snapshot["menu"] = doc.Menu
	}
	if doc.Featured != nil {
		snapshot["featured"] = doc.Featured
	}
	b, err := json.Marshal(snapshot)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// parseReplacements turns the raw model output into placeholder/value pairs.
// Markdown fences are stripped and malformed JSON is repaired before the
// parse; non-string values are stringified rather than dropped.
func parseReplacements(raw string) (map[string]string, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return nil, fmt.Errorf("empty generation response")
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		repaired, repairErr := jsonrepair.RepairJSON(cleaned)
		if repairErr != nil {
			return nil, fmt.Errorf("failed to parse generation response: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse repaired generation response: %w", err)
		}
	}

	replacements := make(map[string]string, len(parsed))
	for k, v := range parsed {
		switch val := v.(type) {
		case string:
			replacements[k] = val
		case nil:
			// Treat explicit nulls as "not provided".
		default:
			replacements[k] = fmt.Sprintf("%v", val)
		}
	}
	return replacements, nil
}

// runTextStage invokes the text capability once and maps the answer back to
// the requested tokens. On any failure it returns an empty map and the
// error; the resolver proceeds to the fallback merge unconditionally.
func runTextStage(ctx context.Context, gen TextGenerator, tokens []string, bctx types.BusinessContext, doc *types.FinalJson, projectName, userIntent string) (map[string]string, error) {
	if len(tokens) == 0 {
		return map[string]string{}, nil
	}
	raw, err := gen.GenerateText(ctx, buildTextPrompt(tokens, bctx, doc, projectName, userIntent))
	if err != nil {
		return map[string]string{}, err
	}
	parsed, err := parseReplacements(raw)
	if err != nil {
		return map[string]string{}, err
	}

	// Only keep values for placeholders we actually asked about.
	requested := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		requested[t] = struct{}{}
	}
	replacements := make(map[string]string, len(parsed))
	for k, v := range parsed {
		if _, ok := requested[k]; ok && v != "" {
			replacements[k] = v
		}
	}
	return replacements, nil
}
