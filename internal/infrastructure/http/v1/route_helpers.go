package v1

import (
	"github.com/gin-gonic/gin"
)

// ArticleRouteHandler defines the handler set behind the /articles resource.
type ArticleRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	UpdateQuantity(c *gin.Context)
	Delete(c *gin.Context)
}

// RegisterArticleRoutes registers the article CRUD routes on group.
//
// Usage:
//
//	handler := handlers.NewArticleHandler(baseHandler, service)
//	RegisterArticleRoutes(router.Group("/articles"), handler)
func RegisterArticleRoutes(group *gin.RouterGroup, handler ArticleRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
	group.PATCH("/:id/quantity", handler.UpdateQuantity)
}
