package dto

import (
	"time"

	"github.com/casaplex/casaplex/internal/domain/article"
)

// CategoryResponse is the API shape of an article category.
type CategoryResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCategoryResponse maps a category entity.
func NewCategoryResponse(c *article.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID(), Title: c.Title(), CreatedAt: c.CreatedAt()}
}

// NewCategoryResponses maps the category catalog.
func NewCategoryResponses(categories []*article.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}

// ArticleResponse is the API shape of a blog article. List views omit the
// body fields; Categories and the author fields are denormalized by the
// use cases.
type ArticleResponse struct {
	SID          string             `json:"sid"`
	Title        string             `json:"title"`
	Body         string             `json:"body,omitempty"`
	BodyHTML     string             `json:"body_html,omitempty"`
	ImageURL     string             `json:"image_url,omitempty"`
	Categories   []CategoryResponse `json:"categories"`
	AuthorSID    string             `json:"author_sid,omitempty"`
	AuthorName   string             `json:"author_name,omitempty"`
	PublishAt    time.Time          `json:"publish_at"`
	Status       string             `json:"status"`
	RevisionNote string             `json:"revision_note,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// NewArticleResponse maps an article entity with its full body.
func NewArticleResponse(a *article.Article, categories []*article.Category) ArticleResponse {
	return ArticleResponse{
		SID:          a.SID(),
		Title:        a.Title(),
		Body:         a.Body(),
		BodyHTML:     a.BodyHTML(),
		ImageURL:     a.ImageURL(),
		Categories:   NewCategoryResponses(categories),
		PublishAt:    a.PublishAt(),
		Status:       a.Status().String(),
		RevisionNote: a.RevisionNote(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

// NewArticleSummary maps an article entity for list views, dropping the
// body fields to keep pages light.
func NewArticleSummary(a *article.Article, categoryIndex map[uint]*article.Category) ArticleResponse {
	resp := ArticleResponse{
		SID:        a.SID(),
		Title:      a.Title(),
		ImageURL:   a.ImageURL(),
		Categories: make([]CategoryResponse, 0, len(a.CategoryIDs())),
		PublishAt:  a.PublishAt(),
		Status:     a.Status().String(),
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
	for _, cid := range a.CategoryIDs() {
		if c, ok := categoryIndex[cid]; ok {
			resp.Categories = append(resp.Categories, NewCategoryResponse(c))
		}
	}
	return resp
}

// NewArticleSummaries maps an article page for list views.
func NewArticleSummaries(articles []*article.Article, categoryIndex map[uint]*article.Category) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, NewArticleSummary(a, categoryIndex))
	}
	return out
}
