package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-michi/michi"
	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"

	"ezelectronics/database"
	ezhandlers "ezelectronics/handlers"
	"ezelectronics/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Fatal(utils.ErrorWithTrace(err, err.Error()))
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		log.Fatal("DATABASE_PATH not set in .env file")
	}
	migRoot := os.Getenv("MIGRATIONS_ROOT")
	if migRoot == "" {
		log.Fatal("MIGRATIONS_ROOT not set in .env file")
	}

	// Connect to the database and run migrations
	db, err := database.Connect(dbPath)
	if err != nil {
		log.Fatal(utils.ErrorWithTrace(err, err.Error()))
	}
	defer db.Close()

	if err := database.Migrate(dbPath, migRoot); err != nil {
		log.Fatal(utils.ErrorWithTrace(err, err.Error()))
	}

	h := ezhandlers.New(db)

	// Initialize the router and define routes
	r := michi.NewRouter()
	r.Route("/ezelectronics", func(sub *michi.Router) {
		sub.HandleFunc("POST sessions", h.Login)
		sub.HandleFunc("GET sessions/current", h.CurrentSession)
		sub.HandleFunc("DELETE sessions/current", h.Logout)

		sub.HandleFunc("POST users", h.CreateUser)
		sub.HandleFunc("GET users", h.GetUsers)
		sub.HandleFunc("GET users/roles/{role}", h.GetUsersByRole)
		sub.HandleFunc("GET users/{username}", h.GetUser)
		sub.HandleFunc("PATCH users/{username}", h.UpdateUser)
		sub.HandleFunc("DELETE users/{username}", h.DeleteUser)
		sub.HandleFunc("DELETE users", h.DeleteAllUsers)

		sub.HandleFunc("POST products", h.RegisterProducts)
		sub.HandleFunc("GET products", h.GetProducts)
		sub.HandleFunc("GET products/available", h.GetAvailableProducts)
		sub.HandleFunc("PATCH products/{model}", h.ChangeProductQuantity)
		sub.HandleFunc("PATCH products/{model}/sell", h.SellProduct)
		sub.HandleFunc("DELETE products/{model}", h.DeleteProduct)
		sub.HandleFunc("DELETE products", h.DeleteAllProducts)

		sub.HandleFunc("GET carts", h.GetCart)
		sub.HandleFunc("POST carts", h.AddToCart)
		sub.HandleFunc("PATCH carts", h.CheckoutCart)
		sub.HandleFunc("GET carts/history", h.GetCartHistory)
		sub.HandleFunc("DELETE carts/products/{model}", h.RemoveProductFromCart)
		sub.HandleFunc("DELETE carts/current", h.ClearCart)
		sub.HandleFunc("GET carts/all", h.GetAllCarts)
		sub.HandleFunc("DELETE carts", h.DeleteAllCarts)

		sub.HandleFunc("POST reviews/{model}", h.AddReview)
		sub.HandleFunc("GET reviews/{model}", h.GetProductReviews)
		sub.HandleFunc("DELETE reviews/{model}", h.DeleteReview)
		sub.HandleFunc("DELETE reviews/{model}/all", h.DeleteReviewsOfProduct)
		sub.HandleFunc("DELETE reviews", h.DeleteAllReviews)
	})

	// Enable CORS
	corsOptions := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	fmt.Println("Server running on port 8000 🚀")
	if err := http.ListenAndServe(":8000", corsOptions(r)); err != nil {
		log.Fatal(utils.ErrorWithTrace(err, err.Error()))
	}
}
