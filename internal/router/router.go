package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "shelter-admin/docs"
	mem "shelter-admin/internal/adapters/storage/memory"
	pg "shelter-admin/internal/adapters/storage/postgres"
	"shelter-admin/internal/config"
	"shelter-admin/internal/domain/adopters"
	"shelter-admin/internal/domain/animals"
	"shelter-admin/internal/domain/applications"
	"shelter-admin/internal/domain/demotable"
	"shelter-admin/internal/domain/donors"
	"shelter-admin/internal/domain/events"
	"shelter-admin/internal/domain/health"
	"shelter-admin/internal/domain/projection"
	"shelter-admin/internal/domain/shelters"
	"shelter-admin/internal/middleware"
	"shelter-admin/internal/platform/logger"
	"shelter-admin/web"
)

type Options struct {
	Logger logger.Logger

	// Opcional: si viene, usa Postgres. Si no, Store (o uno sembrado con datos de ejemplo).
	DB    *pg.DB
	Store *mem.Store

	HTTP config.HTTPConfig
}

type repos struct {
	animals      animals.Repository
	applications applications.Repository
	donors       donors.Repository
	events       events.Repository
	shelters     shelters.Repository
	adopters     adopters.Repository
	projection   projection.Repository
	demotable    demotable.Repository
	pinger       health.Pinger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.Metrics)

	if len(opts.HTTP.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.HTTP.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader},
			MaxAge:         300,
		}))
	}
	if opts.HTTP.RateLimitRequests > 0 {
		window := opts.HTTP.RateLimitWindow
		if window <= 0 {
			window = time.Minute
		}
		r.Use(httprate.LimitByIP(opts.HTTP.RateLimitRequests, window))
	}

	rp := buildRepos(opts, log)

	// Rutas por módulo
	health.RegisterRoutes(r, rp.pinger, log)
	animals.RegisterRoutes(r, animals.NewService(rp.animals), log)
	applications.RegisterRoutes(r, applications.NewService(rp.applications), log)
	donors.RegisterRoutes(r, donors.NewService(rp.donors), log)
	events.RegisterRoutes(r, events.NewService(rp.events), log)
	shelters.RegisterRoutes(r, shelters.NewService(rp.shelters), log)
	adopters.RegisterRoutes(r, adopters.NewService(rp.adopters), log)
	projection.RegisterRoutes(r, projection.NewService(rp.projection), log)
	demotable.RegisterRoutes(r, demotable.NewService(rp.demotable), log)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Get("/*", http.FileServer(http.FS(web.Static())).ServeHTTP)

	return r
}

func buildRepos(opts Options, log logger.Logger) repos {
	if db := opts.DB; db != nil {
		return repos{
			animals:      pg.NewAnimalsRepo(db),
			applications: pg.NewApplicationsRepo(db),
			donors:       pg.NewDonorsRepo(db),
			events:       pg.NewEventsRepo(db),
			shelters:     pg.NewSheltersRepo(db),
			adopters:     pg.NewAdoptersRepo(db),
			projection:   pg.NewProjectionRepo(db),
			demotable:    pg.NewDemoTableRepo(db),
			pinger:       db,
		}
	}

	store := opts.Store
	if store == nil {
		log.Warn("no database configured, using seeded in-memory store", nil)
		store = mem.NewSeededStore()
	}
	return repos{
		animals:      mem.NewAnimalsRepo(store),
		applications: mem.NewApplicationsRepo(store),
		donors:       mem.NewDonorsRepo(store),
		events:       mem.NewEventsRepo(store),
		shelters:     mem.NewSheltersRepo(store),
		adopters:     mem.NewAdoptersRepo(store),
		projection:   mem.NewProjectionRepo(store),
		demotable:    mem.NewDemoTableRepo(store),
		pinger:       store,
	}
}
