package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sitegen_ai_server/internal/placeholder"
	"sitegen_ai_server/internal/registry"
	"sitegen_ai_server/internal/types"
	"sitegen_ai_server/internal/utils"
)

// Params carries everything the builder needs for one generation run.
type Params struct {
	ProjectName string
	UserIntent  string
	Context     types.BusinessContext
	FinalJson   *types.FinalJson
}

// SiteResult is the output of one generation run: the resolved project tree
// plus signals aggregated across files (minimum confidence, any fallback).
type SiteResult struct {
	ProjectID    string                `json:"projectId"`
	Files        []types.GeneratedFile `json:"files"`
	Confidence   float64               `json:"confidence"`
	FallbackUsed bool                  `json:"fallbackUsed"`
}

// Builder drives every essential file of an industry bundle through the
// placeholder resolution pipeline.
type Builder struct {
	registry *registry.Registry
	resolver *placeholder.Resolver
	log      *zap.Logger
}

func NewBuilder(reg *registry.Registry, resolver *placeholder.Resolver, log *zap.Logger) *Builder {
	return &Builder{registry: reg, resolver: resolver, log: log}
}

// GenerateSite resolves the full project tree for the requested industry.
func (b *Builder) GenerateSite(ctx context.Context, params Params) (*SiteResult, error) {
	projectID := uuid.New().String()
	bundle := b.registry.Bundle(params.Context.Industry)

	b.log.Info("generating site",
		zap.String("projectId", projectID),
		zap.String("industry", params.Context.Industry),
		zap.Int("files", len(bundle.EssentialFiles)))

	result := &SiteResult{
		ProjectID:  projectID,
		Confidence: 1.0,
	}

	for _, filename := range bundle.EssentialFiles {
		template, ok := bundle.Template(filename)
		if !ok {
			return nil, fmt.Errorf("bundle for industry %q is missing template %q", params.Context.Industry, filename)
		}

		resolved := b.resolver.Resolve(ctx, template, params.FinalJson, params.Context, params.ProjectName, params.UserIntent)

		result.Files = append(result.Files, types.GeneratedFile{
			Filename:     filename,
			Type:         utils.DetermineFileType(filename),
			Content:      resolved.ReplacedTemplate,
			Confidence:   resolved.Confidence,
			FallbackUsed: resolved.FallbackUsed,
		})
		if resolved.Confidence < result.Confidence {
			result.Confidence = resolved.Confidence
		}
		if resolved.FallbackUsed {
			result.FallbackUsed = true
		}
	}

	return result, nil
}

// SaveFilesDisk writes a generated tree under dir/<projectID>/. Individual
// write failures are logged and skipped so one bad path does not lose the
// rest of the tree.
func (b *Builder) SaveFilesDisk(dir, projectID string, files []types.GeneratedFile) {
	saved := 0
	for _, file := range files {
		fullDir := filepath.Join(dir, projectID, filepath.Dir(file.Filename))
		if err := os.MkdirAll(fullDir, os.ModePerm); err != nil {
			b.log.Warn("failed to create directory", zap.String("dir", fullDir), zap.Error(err))
			continue
		}
		path := filepath.Join(dir, projectID, file.Filename)
		if err := os.WriteFile(path, []byte(file.Content), 0644); err != nil {
			b.log.Warn("failed to write file", zap.String("path", path), zap.Error(err))
			continue
		}
		saved++
	}
	b.log.Info("saved project to disk",
		zap.String("projectId", projectID),
		zap.Int("saved", saved),
		zap.Int("total", len(files)))
}
