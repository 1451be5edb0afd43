package httptransport

import (
	"net/http"

	"serviceatlas/internal/config"
	"serviceatlas/internal/httpx"
	"serviceatlas/internal/service"
	"serviceatlas/internal/storage/providers"

	"github.com/gorilla/mux"
)

func Router(allProviders *providers.Providers, cfg *config.Config) *mux.Router {
	catalogService := service.NewCatalogService(allProviders.CatalogProvider)
	authService := service.NewAuthService(cfg.Admin.Username, cfg.Admin.Password, cfg.JWT.Secret)

	return routerFor(catalogService, authService, cfg.JWT.Secret)
}

func routerFor(catalog CatalogServices, auth AuthServices, jwtSecret string) *mux.Router {
	catalogHandler := NewCatalogHandlers(catalog)
	authHandler := NewAuthHandlers(auth)

	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Backend is running"))
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/services", catalogHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/services/{id:[0-9]+}/faqs", catalogHandler.ServiceFaqs).Methods(http.MethodGet)

	// Mutations sit behind the bearer credential; public reads stay above so
	// they match before this subrouter does.
	admin := api.PathPrefix("/services").Subrouter()
	admin.Use(httpx.Protected(jwtSecret))
	admin.HandleFunc("", catalogHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/{id:[0-9]+}", catalogHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/{id:[0-9]+}", catalogHandler.Delete).Methods(http.MethodDelete)

	return router
}
