package handlers

import (
	"log"
	"net/http"

	"github.com/Praveenkumar07007/BlogApp/internal/auth"
	dom "github.com/Praveenkumar07007/BlogApp/internal/domain"
	"github.com/Praveenkumar07007/BlogApp/internal/dto"
	"github.com/Praveenkumar07007/BlogApp/internal/service"
	"github.com/Praveenkumar07007/BlogApp/internal/tasks"

	"github.com/gin-gonic/gin"
)

// BlogHandler handles blog post creation and listing.
type BlogHandler struct {
	svc   *service.BlogService
	queue *tasks.Queue
}

// NewBlogHandler returns a new BlogHandler.
func NewBlogHandler(svc *service.BlogService, queue *tasks.Queue) *BlogHandler {
	return &BlogHandler{svc: svc, queue: queue}
}

// Create godoc
// @Summary      Create a blog post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateBlogRequest  true  "Post body"
// @Success      201   {object}  dto.BlogResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /posts [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	b, err := h.svc.Create(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	// Fire-and-forget: a queue failure must not fail the created post.
	if h.queue != nil {
		if _, err := h.queue.EnqueueEmail(c.Request.Context(), b.Title, b.Description, claims.Email); err != nil {
			log.Printf("enqueue email for post %d: %v", b.ID, err)
		}
	}

	c.JSON(http.StatusCreated, blogToResponse(b))
}

// List godoc
// @Summary      List all blog posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  dto.ListBlogsResponse
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *BlogHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list posts"})
		return
	}
	c.JSON(http.StatusOK, dto.ListBlogsResponse{Items: blogsToResponses(list)})
}

func blogToResponse(b dom.Blog) dto.BlogResponse {
	return dto.BlogResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}

func blogsToResponses(list []dom.Blog) []dto.BlogResponse {
	out := make([]dto.BlogResponse, len(list))
	for i := range list {
		out[i] = blogToResponse(list[i])
	}
	return out
}
