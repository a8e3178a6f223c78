package utils

import (
	"errors"
	"path/filepath"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ShouldRetry reports whether a generation-capability error looks transient
// enough to warrant a single retry.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "500 internal server error") ||
		strings.Contains(errMsg, "502 bad gateway") ||
		strings.Contains(errMsg, "503 service unavailable") ||
		strings.Contains(errMsg, "504 gateway timeout") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "connection reset by peer") ||
		strings.Contains(errMsg, "context deadline exceeded") {
		return true
	}
	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		if openAIErr.HTTPStatusCode >= 500 || openAIErr.HTTPStatusCode == 429 {
			return true
		}
	}
	return false
}

// DetermineFileType infers a display type from the filename when the
// template bundle does not carry one.
func DetermineFileType(filename string) string {
	lowerFilename := strings.ToLower(filename)
	ext := filepath.Ext(lowerFilename)
	switch ext {
	case ".html":
		return "HTML"
	case ".css":
		return "CSS"
	case ".js":
		return "JavaScript"
	case ".jsx":
		return "JSX"
	case ".ts":
		return "TypeScript"
	case ".tsx":
		return "TSX"
	case ".json":
		return "JSON"
	case ".md":
		return "Markdown"
	case ".svg":
		return "SVG"
	case ".yaml", ".yml":
		return "YAML"
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return "Image"
	default:
		base := filepath.Base(lowerFilename)
		if strings.Contains(base, "vite.config") {
			return "Config"
		}
		if strings.Contains(base, "tailwind.config") {
			return "Config"
		}
		if strings.Contains(base, "package.json") || strings.Contains(base, "tsconfig.json") {
			return "JSON"
		}
		return "Unknown"
	}
}
