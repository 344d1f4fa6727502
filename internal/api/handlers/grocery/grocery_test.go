package grocery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	aiservice "recipe-assistant/internal/core/ai/service"
	"recipe-assistant/internal/core/recipe"
	"recipe-assistant/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAI struct {
	content string
}

func (s *stubAI) ProcessRequest(ctx context.Context, prompt string) (*aiservice.Response, error) {
	return &aiservice.Response{Content: s.content}, nil
}

func (s *stubAI) ProcessWithModel(ctx context.Context, prompt string, model string) (*aiservice.Response, error) {
	return s.ProcessRequest(ctx, prompt)
}

type stubMailer struct {
	sent bool
	to   []string
}

func (s *stubMailer) Send(to []string, subject string, htmlBody string) error {
	s.sent = true
	s.to = to
	return nil
}

func newTestRouter(ai *stubAI, mailer *stubMailer) *gin.Engine {
	cfg := &config.Config{
		OpenRouter: config.OpenRouterConfig{Model: "openai/gpt-3.5-turbo"},
		Grocery: config.GroceryConfig{
			Departments: []string{"Produce", "Pantry", "Other"},
			MaxRecipes:  50,
		},
	}
	h := NewHandler(recipe.NewGroceryService(cfg, ai, mailer))

	r := gin.New()
	r.POST("/api/grocery/send", h.Send)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/grocery/send", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSendEndpoint(t *testing.T) {
	mailer := &stubMailer{}
	r := newTestRouter(&stubAI{content: "<h2>Pantry</h2><ul><li>2 cup flour</li></ul>"}, mailer)

	body := `{
		"recipes": [
			{"name": "Pasta", "ingredients": [{"quantity":"2","measurement":"cup","name":"flour"}]}
		],
		"email": "user@example.com"
	}`
	w := doRequest(t, r, body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Grocery list sent to your email")
	assert.True(t, mailer.sent)
	assert.Equal(t, []string{"user@example.com"}, mailer.to)
}

func TestSendEndpointRejectsMissingEmail(t *testing.T) {
	mailer := &stubMailer{}
	r := newTestRouter(&stubAI{content: "x"}, mailer)

	w := doRequest(t, r, `{"recipes":[{"name":"Pasta","ingredients":[{"name":"flour"}]}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mailer.sent)
}

func TestSendEndpointRejectsEmptyIngredients(t *testing.T) {
	mailer := &stubMailer{}
	r := newTestRouter(&stubAI{content: "x"}, mailer)

	w := doRequest(t, r, `{"recipes":[{"name":"Pasta","ingredients":[]}],"email":"user@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mailer.sent)
}
