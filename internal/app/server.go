package app

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/GurshaanDaula/Assignment2-Database/internal/handler"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	router *mux.Router
}

func NewServer(userHandler *handler.UserHandler, roomHandler *handler.RoomHandler) *Server {
	router := mux.NewRouter()

	// Routes
	router.HandleFunc("/ping", handler.Ping).Methods("GET")
	userHandler.RegisterRoutes(router)
	roomHandler.RegisterRoutes(router)

	// Настройка Swagger
	swaggerHandler := httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Важно: относительный путь
	)

	// Явно обслуживаем doc.json, роут должен стоять раньше PathPrefix
	router.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.json")
	})

	router.PathPrefix("/swagger/").Handler(swaggerHandler)

	return &Server{router: router}
}

func (s *Server) Run(port string) {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
	)

	srv := &http.Server{
		Handler:      handlers.LoggingHandler(os.Stdout, cors(s.router)),
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(srv.ListenAndServe())
}
