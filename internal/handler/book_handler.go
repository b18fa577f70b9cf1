package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/model"
	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/repository"
	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/service"
)

// BookHandler ties the catalog endpoints to the CatalogService.
type BookHandler struct {
	Catalog *service.CatalogService
}

// RegisterRoutes registers:
//
//	GET  /books
//	POST /books
//	GET  /books/isbn/:isbn
//	GET  /books/author/:author
//	GET  /books/title/:title
func (h *BookHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/books", h.ListBooks)
	r.POST("/books", h.AddBook)
	r.GET("/books/isbn/:isbn", h.GetBookByISBN)
	r.GET("/books/author/:author", h.SearchByAuthor)
	r.GET("/books/title/:title", h.SearchByTitle)
}

// GET /books
func (h *BookHandler) ListBooks(c *gin.Context) {
	books := h.Catalog.ListBooks(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "books": books})
}

// GET /books/isbn/:isbn
func (h *BookHandler) GetBookByISBN(c *gin.Context) {
	book, err := h.Catalog.GetBook(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "book": book})
}

// GET /books/author/:author
// An empty result is a success with an empty list, never a 404.
func (h *BookHandler) SearchByAuthor(c *gin.Context) {
	found := h.Catalog.SearchByAuthor(c.Request.Context(), c.Param("author"))
	if found == nil {
		found = []model.Book{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "results": found})
}

// GET /books/title/:title
func (h *BookHandler) SearchByTitle(c *gin.Context) {
	found := h.Catalog.SearchByTitle(c.Request.Context(), c.Param("title"))
	if found == nil {
		found = []model.Book{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "results": found})
}

// AddBookRequestDTO is the JSON payload for inserting a book.
type AddBookRequestDTO struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// POST /books
func (h *BookHandler) AddBook(c *gin.Context) {
	var req AddBookRequestDTO
	// An absent or malformed body counts as an empty object; the service
	// reports the missing fields.
	_ = c.ShouldBindJSON(&req)

	book, err := h.Catalog.AddBook(c.Request.Context(), req.ISBN, req.Title, req.Author)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "isbn, title, author required"})
	case errors.Is(err, repository.ErrBookExists):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Book already exists"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "book": book})
	}
}
