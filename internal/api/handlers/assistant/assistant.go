package assistant

import (
	"net/http"

	"recipe-assistant/internal/api/handlers"
	"recipe-assistant/internal/core/parser"
	"recipe-assistant/internal/core/recipe"
	"recipe-assistant/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

// Handler 食譜相關端點的處理器
type Handler struct {
	createSvc *recipe.CreateService
	modifySvc *recipe.ModifyService
	parser    *parser.Parser
}

// NewHandler 創建處理器
func NewHandler(createSvc *recipe.CreateService, modifySvc *recipe.ModifyService, p *parser.Parser) *Handler {
	return &Handler{
		createSvc: createSvc,
		modifySvc: modifySvc,
		parser:    p,
	}
}

// CreateRequest 生成食譜請求
type CreateRequest struct {
	Message string `json:"message" binding:"required"`
}

// ModifyRequest 修改食譜請求
type ModifyRequest struct {
	Recipe  common.RecipeDetails `json:"recipe" binding:"required"`
	Message string               `json:"message" binding:"required"`
}

// ParseRequest 解析文字請求
type ParseRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create 依使用者需求生成食譜
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.WriteBindError(c)
		return
	}

	details, raw, err := h.createSvc.CreateRecipe(c.Request.Context(), req.Message)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"recipe": details, "raw": raw},
	})
}

// Modify 修改既有食譜
func (h *Handler) Modify(c *gin.Context) {
	var req ModifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.WriteBindError(c)
		return
	}

	details, raw, err := h.modifySvc.ModifyRecipe(c.Request.Context(), req.Recipe, req.Message)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"recipe": details, "raw": raw},
	})
}

// Parse 將自由文字食譜解析為結構化資料，不經過 LLM
func (h *Handler) Parse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.WriteBindError(c)
		return
	}

	parsed, err := h.parser.Parse(req.Text)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	common.LogParseResult(len(parsed.Ingredients), len(parsed.Steps), len(parsed.ParseErrors), requestid.Get(c))

	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{
			"recipe":       parsed,
			"parse_errors": parsed.ParseErrors,
		},
	})
}
