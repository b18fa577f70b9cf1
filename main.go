package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/handler"
	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/model"
	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/repository"
	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file")
	}

	// Stores are constructed once here and handed down explicitly; state
	// is in-memory only and lost on restart.
	books := repository.NewBookRepository()
	seedCatalog(books)
	users := repository.NewUserRepository()
	reviews := repository.NewReviewRepository(books)

	catalogSvc := service.NewCatalogService(books)
	userSvc := service.NewUserService(users)
	reviewSvc := service.NewReviewService(reviews)

	r := handler.NewRouter(catalogSvc, userSvc, reviewSvc, users)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("Bookstore service running on :%s …", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func seedCatalog(books *repository.BookRepository) {
	books.Seed(model.Book{
		ISBN:   "9780140449136",
		Title:  "The Odyssey",
		Author: "Homer",
		Reviews: map[string]string{
			"alice": "A timeless classic.",
		},
	})
	books.Seed(model.Book{
		ISBN:   "9780261103573",
		Title:  "The Lord of the Rings",
		Author: "J.R.R. Tolkien",
	})
}
