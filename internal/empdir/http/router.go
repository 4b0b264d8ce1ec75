package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"

	"github.com/aussiebroadwan/empdir/internal/empdir/store"
	"github.com/aussiebroadwan/empdir/pkg/jwtx"
	"github.com/aussiebroadwan/empdir/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []Middleware

	schema       graphql.Schema
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
}

func NewRouter(
	schema graphql.Schema,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		schema:       schema,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
	}

	r.middlewares = []Middleware{
		slogx.HTTPMiddleware(r.logger),
		IdentityMiddleware(r.verifier),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	gql := handler.New(&handler.Config{
		Schema:   &r.schema,
		Pretty:   true,
		GraphiQL: true,
	})

	r.Mux.Handle("/graphql", gql)
	r.Mux.HandleFunc("GET /livez", r.handleLivez)
	r.Mux.HandleFunc("GET /readyz", r.handleReadyz)
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}
