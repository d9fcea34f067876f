package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type Action string

type Method string

const (
	Data Action = "data"
	Api  Action = "api"

	GET  Method = "GET"
	POST Method = "POST"
)

// Handler serves a request and returns the payload with the status code.
type Handler func(r *http.Request) ([]byte, int, error)

type Route struct {
	Action Action
	Path   string
	Method Method
	Exec   Handler
}

func (r Route) pattern() string {
	if r.Path != "" {
		return fmt.Sprintf("/%s/%s", r.Action, r.Path)
	}
	return fmt.Sprintf("/%s", r.Action)
}

type Server struct {
	name   string
	port   int
	debug  bool
	mux    *http.ServeMux
	routes []Route
}

func NewServer(name string, port int) *Server {
	return &Server{
		name:   name,
		port:   port,
		mux:    http.NewServeMux(),
		routes: make([]Route, 0),
	}
}

// Debug sets the server to debug mode
func (s *Server) Debug() *Server {
	s.debug = true
	return s
}

// AddRoute adds the given route to the server
func (s *Server) AddRoute(method Method, action Action, path string, exec Handler) *Server {
	return s.Add(Route{
		Action: action,
		Path:   path,
		Method: method,
		Exec:   exec,
	})
}

// Add adds the given routes to the server
func (s *Server) Add(route ...Route) *Server {
	for _, r := range route {
		s.mux.HandleFunc(r.pattern(), s.handle(r))
	}
	s.routes = append(s.routes, route...)
	return s
}

// Handle mounts a plain http handler on the given path.
func (s *Server) Handle(path string, handler http.Handler) *Server {
	s.mux.Handle(path, handler)
	return s
}

// Handler returns the http handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) handle(route Route) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if Method(r.Method) != route.Method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		b, code, err := route.Exec(r)
		switch {
		case err != nil:
			s.error(w, err)
		case code != http.StatusOK:
			s.code(w, b, code)
		default:
			s.respond(w, b)
		}
		if s.debug {
			log.Info().
				Str("server", s.name).
				Str("route", route.pattern()).
				Str("url", r.URL.String()).
				Float64("duration", time.Since(start).Seconds()).
				Msg("served request")
		}
	}
}

// Run starts the server
func (s *Server) Run() error {
	log.Info().Str("server", s.name).Int("port", s.port).Int("routes", len(s.routes)).Msg("starting server")
	if err := http.ListenAndServe(fmt.Sprintf(":%d", s.port), s.mux); err != nil {
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

func (s *Server) code(w http.ResponseWriter, b []byte, code int) {
	w.WriteHeader(code)
	s.respond(w, b)
}

func (s *Server) respond(w http.ResponseWriter, b []byte) {
	_, err := w.Write(b)
	if err != nil {
		log.Error().Err(err).Msg("could not write response")
	}
}

func (s *Server) error(w http.ResponseWriter, err error) {
	log.Error().Err(err).Str("server", s.name).Msg("error for http request")
	s.code(w, []byte(err.Error()), http.StatusInternalServerError)
}

func Live() Route {
	return Route{
		Action: Data,
		Method: GET,
		Exec: func(r *http.Request) (payload []byte, code int, err error) {
			return []byte{}, http.StatusOK, nil
		},
	}
}

// Json encodes the value as the payload of a successful response.
func Json(v interface{}) ([]byte, int, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("could not encode response: %w", err)
	}
	return b, http.StatusOK, nil
}
