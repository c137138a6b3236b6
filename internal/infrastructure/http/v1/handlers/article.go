package handlers

import (
	"github.com/gin-gonic/gin"

	"inventaro/internal/domain/article"
	"inventaro/internal/infrastructure/http/v1/dto"
)

// ArticleHandler serves the /articles resource.
type ArticleHandler struct {
	*BaseHandler
	service *article.Service
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(base *BaseHandler, service *article.Service) *ArticleHandler {
	return &ArticleHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /articles.
func (h *ArticleHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromArticles(items))
}

// Create handles POST /articles.
func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, "/articles/"+created.ID.String(), dto.FromArticle(created))
}

// Get handles GET /articles/:id.
func (h *ArticleHandler) Get(c *gin.Context) {
	articleID, ok := h.ParseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), articleID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromArticle(a))
}

// Update handles PUT /articles/:id. Replaces name, unit and threshold; quantity is kept.
func (h *ArticleHandler) Update(c *gin.Context) {
	articleID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.UpdateMetadata(c.Request.Context(), articleID, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromArticle(updated))
}

// UpdateQuantity handles PATCH /articles/:id/quantity.
func (h *ArticleHandler) UpdateQuantity(c *gin.Context) {
	articleID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req dto.UpdateQuantityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.UpdateQuantity(c.Request.Context(), articleID, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromArticle(updated))
}

// Delete handles DELETE /articles/:id.
func (h *ArticleHandler) Delete(c *gin.Context) {
	articleID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), articleID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}
