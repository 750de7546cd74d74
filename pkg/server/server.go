package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/folioboard/folioboard/pkg/server/middleware"
	"github.com/folioboard/folioboard/pkg/server/store"
	gormstore "github.com/folioboard/folioboard/pkg/server/store/gorm"
	"github.com/folioboard/folioboard/pkg/session"
)

type Server struct {
	Router   *mux.Router
	DB       *gorm.DB
	Sessions *session.Issuer
	Auth     *middleware.SessionAuthenticator

	UsersStore         store.UsersStore
	ProjectsStore      store.ProjectsStore
	CompaniesStore     store.CompaniesStore
	JobsStore          store.JobsStore
	ApplicationsStore  store.ApplicationsStore
	BlogStore          store.BlogStore
	CommentsStore      store.CommentsStore
	SubscriptionsStore store.SubscriptionsStore

	srv *http.Server
}

func NewServer(
	sessions *session.Issuer,
	db *gorm.DB,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:   router,
		DB:       db,
		Sessions: sessions,
		Auth:     middleware.NewSessionAuthenticator(sessions),

		UsersStore:         gormstore.NewUsersStore(db),
		ProjectsStore:      gormstore.NewProjectsStore(db),
		CompaniesStore:     gormstore.NewCompaniesStore(db),
		JobsStore:          gormstore.NewJobsStore(db),
		ApplicationsStore:  gormstore.NewApplicationsStore(db),
		BlogStore:          gormstore.NewBlogStore(db),
		CommentsStore:      gormstore.NewCommentsStore(db),
		SubscriptionsStore: gormstore.NewSubscriptionsStore(db),

		srv: srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
