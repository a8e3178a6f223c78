package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sitegen_ai_server/internal/placeholder"
	"sitegen_ai_server/internal/site"
	"sitegen_ai_server/internal/types"
)

// APIHandler holds dependencies for the API endpoints.
type APIHandler struct {
	builder   *site.Builder
	resolver  *placeholder.Resolver
	outputDir string
	saveDisk  bool
	log       *zap.Logger
}

func NewAPIHandler(builder *site.Builder, resolver *placeholder.Resolver, outputDir string, saveDisk bool, log *zap.Logger) *APIHandler {
	return &APIHandler{
		builder:   builder,
		resolver:  resolver,
		outputDir: outputDir,
		saveDisk:  saveDisk,
		log:       log,
	}
}

// --- Structs for API Requests/Responses ---

type GenerateRequest struct {
	ProjectName string                `json:"projectName"`
	UserIntent  string                `json:"userIntent"`
	Context     types.BusinessContext `json:"context" binding:"required"`
	FinalJson   *types.FinalJson      `json:"finalJson"`
}

type ResolveRequest struct {
	Template    string                `json:"template" binding:"required"`
	ProjectName string                `json:"projectName"`
	UserIntent  string                `json:"userIntent"`
	Context     types.BusinessContext `json:"context" binding:"required"`
	FinalJson   *types.FinalJson      `json:"finalJson"`
}

// --- API Handlers ---

// POST /project/generate
func (h *APIHandler) GenerateSite(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if req.Context.Industry == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "context.industry is required"})
		return
	}

	result, err := h.builder.GenerateSite(c.Request.Context(), site.Params{
		ProjectName: req.ProjectName,
		UserIntent:  req.UserIntent,
		Context:     req.Context,
		FinalJson:   req.FinalJson,
	})
	if err != nil {
		h.log.Error("site generation failed",
			zap.String("industry", req.Context.Industry), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate site"})
		return
	}

	if h.saveDisk {
		h.builder.SaveFilesDisk(h.outputDir, result.ProjectID, result.Files)
	}

	h.log.Info("site generation complete",
		zap.String("projectId", result.ProjectID),
		zap.Float64("confidence", result.Confidence),
		zap.Bool("fallbackUsed", result.FallbackUsed))
	c.JSON(http.StatusCreated, result)
}

// POST /template/resolve
func (h *APIHandler) ResolveTemplate(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result := h.resolver.Resolve(c.Request.Context(), req.Template, req.FinalJson, req.Context, req.ProjectName, req.UserIntent)
	c.JSON(http.StatusOK, result)
}
