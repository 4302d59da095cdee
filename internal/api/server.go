package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/wordbook/internal/metrics"
	"github.com/limbo/wordbook/internal/service"
	"github.com/limbo/wordbook/pkg/cleanup"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	handlerTimeout    = time.Second * 10
	defaultTokenTTL   = time.Second * 600
	readHeaderTimeout = time.Second * 5
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	bookService      service.BookServiceI
	wordService      service.WordServiceI
	dailyPlanService service.DailyPlanServiceI
	jwtService       JWTServiceI
	tokenTTL         time.Duration
	gatherer         prometheus.Gatherer
	shutdownTimeout  time.Duration
}

type ServicesList struct {
	UserService      service.UserServiceI
	BookService      service.BookServiceI
	WordService      service.WordServiceI
	DailyPlanService service.DailyPlanServiceI
	JWTService       JWTServiceI
	TokenTTL         time.Duration
	// Metrics are served on /metrics when set
	Gatherer        prometheus.Gatherer
	ShutdownTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		bookService:      servicesOptions.BookService,
		wordService:      servicesOptions.WordService,
		dailyPlanService: servicesOptions.DailyPlanService,
		jwtService:       servicesOptions.JWTService,
		tokenTTL:         servicesOptions.TokenTTL,
		gatherer:         servicesOptions.Gatherer,
		shutdownTimeout:  servicesOptions.ShutdownTimeout,
	}
	if s.tokenTTL <= 0 {
		s.tokenTTL = defaultTokenTTL
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = handlerTimeout
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, metrics.Middleware)
	if s.gatherer != nil {
		s.mx.Method(http.MethodGet, "/metrics", metrics.Handler(s.gatherer))
	}
	s.mx.Route("/api", func(r chi.Router) {
		r.Post("/token", s.Token)
		r.Post("/user", s.Register)
		r.Post("/user/add", s.Register)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Get("/user", s.Me)
			r.Get("/user/me", s.Me)
			r.Patch("/user", s.EditMe)
			r.Post("/user/edit", s.EditMe)
			r.Delete("/user", s.DeleteMe)
			r.Post("/user/delete", s.DeleteMe)

			r.Get("/books", s.ListBooks)
			r.Get("/book/{name}", s.GetBook)
			r.Get("/book-by-id/{id}", s.GetBook)

			r.Get("/words/{book}", s.ListWords)
			r.Get("/word/{book}/{word_id}", s.GetWord)

			r.Get("/daily-plans", s.ListDailyPlans)
			r.Get("/daily-plan/{book}", s.GetDailyPlan)
			r.Post("/daily-plan/{book}", s.CreateDailyPlan)
			r.Patch("/daily-plan/{book}", s.EditDailyPlan)
			r.Delete("/daily-plan/{book}", s.DeleteDailyPlan)
			r.Get("/daily-plan/{book}/word", s.TodayWord)
			r.Post("/daily-plan/{book}/word", s.SubmitWord)
			r.Get("/daily-plan/{book}/evaluations", s.ListEvaluations)

			r.Group(func(r chi.Router) {
				r.Use(s.RequireAdminMiddleware)

				r.Get("/users", s.ListUsers)

				r.Post("/book", s.CreateBook)
				r.Patch("/book/{name}", s.EditBook)
				r.Patch("/book-by-id/{id}", s.EditBook)
				r.Delete("/book/{name}", s.DeleteBook)
				r.Delete("/book-by-id/{id}", s.DeleteBook)

				r.Delete("/words/{book}", s.ClearWords)
				r.Post("/word/{book}", s.CreateWord)
				r.Patch("/word/{book}/{word_id}", s.EditWord)
				r.Delete("/word/{book}/{word_id}", s.DeleteWord)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

func (s *Server) Run(address string) error {
	l, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// Serve blocks until the server is shut down through the cleanup registry
// and in-flight requests are drained.
func (s *Server) Serve(l net.Listener) error {
	srv := &http.Server{
		Handler:           s.mx,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	drained := make(chan struct{})
	cleanup.Register(&cleanup.Job{
		Name: "shutting down api server",
		F: func() error {
			defer close(drained)
			ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
	slog.Info("api server started", slog.String("address", l.Addr().String()))
	if err := srv.Serve(l); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-drained
	return nil
}
