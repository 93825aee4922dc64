package pprof

import (
	"expvar"
	"fmt"
	"net/http"
	"net/http/pprof"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// NewHandler exposes the runtime profiles under prefix. Every endpoint is
// wrapped by the given middlewares, outermost first.
func NewHandler(prefix string, middlewares ...func(http.Handler) http.Handler) *Handler {
	mux := &http.ServeMux{}

	guard := func(h http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}

	mux.Handle(fmt.Sprintf("GET %s/", prefix), guard(http.HandlerFunc(pprof.Index)))
	mux.Handle(fmt.Sprintf("GET %s/cmdline", prefix), guard(http.HandlerFunc(pprof.Cmdline)))
	mux.Handle(fmt.Sprintf("GET %s/profile", prefix), guard(http.HandlerFunc(pprof.Profile)))
	mux.Handle(fmt.Sprintf("%s/symbol", prefix), guard(http.HandlerFunc(pprof.Symbol)))
	mux.Handle(fmt.Sprintf("GET %s/trace", prefix), guard(http.HandlerFunc(pprof.Trace)))
	mux.Handle(fmt.Sprintf("GET %s/vars", prefix), guard(expvar.Handler()))

	mux.Handle(fmt.Sprintf("GET %s/{name}", prefix), guard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		pprof.Handler(name).ServeHTTP(w, r)
	})))

	return &Handler{mux}
}

var _ http.Handler = &Handler{}
