// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"inventaro/internal/domain/article"
)

// --- Request DTOs ---

// CreateArticleRequest is the request body for POST /articles.
// Numeric fields are pointers so that an absent field is told apart from zero.
// Values outside the int32 range fail to decode.
type CreateArticleRequest struct {
	Name              string `json:"name"`
	Quantity          *int32 `json:"quantity"`
	Unit              string `json:"unit"`
	LowStockThreshold *int32 `json:"lowStockThreshold"`
}

// ToInput converts DTO to domain input.
func (r *CreateArticleRequest) ToInput() article.CreateInput {
	return article.CreateInput{
		Name:              r.Name,
		Quantity:          r.Quantity,
		Unit:              r.Unit,
		LowStockThreshold: r.LowStockThreshold,
	}
}

// UpdateArticleRequest is the request body for PUT /articles/:id.
// Quantity is not part of it; stock level changes go through the quantity endpoint.
type UpdateArticleRequest struct {
	Name              string `json:"name"`
	Unit              string `json:"unit"`
	LowStockThreshold *int32 `json:"lowStockThreshold"`
}

// ToInput converts DTO to domain input.
func (r *UpdateArticleRequest) ToInput() article.MetadataInput {
	return article.MetadataInput{
		Name:              r.Name,
		Unit:              r.Unit,
		LowStockThreshold: r.LowStockThreshold,
	}
}

// UpdateQuantityRequest is the request body for PATCH /articles/:id/quantity.
type UpdateQuantityRequest struct {
	Quantity *int32 `json:"quantity"`
}

// ToInput converts DTO to domain input.
func (r *UpdateQuantityRequest) ToInput() article.QuantityInput {
	return article.QuantityInput{Quantity: r.Quantity}
}

// --- Response DTOs ---

// ArticleResponse is the wire form of an article.
type ArticleResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Quantity          int32  `json:"quantity"`
	Unit              string `json:"unit"`
	LowStockThreshold int32  `json:"lowStockThreshold"`
}

// FromArticle converts domain entity to response DTO.
func FromArticle(a *article.Article) ArticleResponse {
	return ArticleResponse{
		ID:                a.ID.String(),
		Name:              a.Name,
		Quantity:          a.Quantity,
		Unit:              a.Unit,
		LowStockThreshold: a.LowStockThreshold,
	}
}

// FromArticles converts a list, always returning a non-nil slice so it encodes as [].
func FromArticles(items []*article.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromArticle(a))
	}
	return out
}
