package grocery

import (
	"net/http"

	"recipe-assistant/internal/api/handlers"
	"recipe-assistant/internal/core/recipe"
	"recipe-assistant/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Handler 購物清單端點的處理器
type Handler struct {
	grocerySvc *recipe.GroceryService
}

// NewHandler 創建處理器
func NewHandler(grocerySvc *recipe.GroceryService) *Handler {
	return &Handler{grocerySvc: grocerySvc}
}

// SendRequest 寄送購物清單請求
type SendRequest struct {
	Recipes []common.GroceryRecipe `json:"recipes" binding:"required"`
	Email   string                 `json:"email" binding:"required,email"`
}

// Send 合併食譜食材並寄送購物清單郵件
func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlers.WriteBindError(c)
		return
	}

	if err := h.grocerySvc.SendGroceryList(c.Request.Context(), req.Recipes, req.Email); err != nil {
		handlers.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"message": "Grocery list sent to your email"},
	})
}
