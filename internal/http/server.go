package httpapi

import (
	"net/http"

	"inventaris-backend-go/internal/config"
	"inventaris-backend-go/internal/services"
	"inventaris-backend-go/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	DB         *sqlx.DB
	Config     config.Config
	Validate   *validator.Validate
	Gate       session.Gate
	MetricsHub *services.MetricsHub
}

func NewServer(db *sqlx.DB, cfg config.Config, hub *services.MetricsHub) *Server {
	return &Server{
		DB:         db,
		Config:     cfg,
		Validate:   validator.New(),
		Gate:       session.DefaultGate(),
		MetricsHub: hub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", s.Login)
		api.Post("/auth/register", s.Register)

		api.Route("/barang", func(barang chi.Router) {
			barang.Get("/", s.ListBarang)
			barang.Post("/", s.CreateBarang)
			barang.Put("/", s.UpdateBarang)
			barang.Delete("/", s.DeleteBarang)
		})

		api.Route("/kategori", func(kategori chi.Router) {
			kategori.Get("/", s.ListKategori)
			kategori.Post("/", s.CreateKategori)
			kategori.Put("/", s.UpdateKategori)
			kategori.Delete("/", s.DeleteKategori)
		})

		api.Route("/lokasi", func(lokasi chi.Router) {
			lokasi.Get("/", s.ListLokasi)
			lokasi.Post("/", s.CreateLokasi)
			lokasi.Put("/", s.UpdateLokasi)
			lokasi.Delete("/", s.DeleteLokasi)
		})

		api.Route("/peminjaman", func(peminjaman chi.Router) {
			peminjaman.Get("/", s.ListPeminjaman)
			peminjaman.Post("/", s.CreatePeminjaman)
		})

		api.Post("/pegawai", s.CreatePegawai)

		api.Get("/admin/metrics/history", s.MetricsHistory)
	})

	r.Group(func(pages chi.Router) {
		pages.Use(SessionGate(s.Gate))
		pages.Get("/dashboard", s.AdminDashboard)
		pages.Get("/user-dashboard", s.UserDashboard)
	})

	r.Get("/ws/metrics", s.MetricsSocket)
	return r
}
