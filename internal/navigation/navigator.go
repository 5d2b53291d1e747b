package navigation

import (
	"context"
	"errors"
	"strings"
	"sync"
)

const (
	RouteHome  = "/"
	RouteLogin = "/login"
)

var ErrNoRouter = errors.New("navigation: no router in context")

// Navigator moves the visitor to route. Implementations decide how a route is
// delivered: an HTTP redirect, a recorded intent, a test spy.
type Navigator interface {
	Navigate(ctx context.Context, route string) error
}

type NavigatorFunc func(ctx context.Context, route string) error

func (f NavigatorFunc) Navigate(ctx context.Context, route string) error {
	return f(ctx, route)
}

// Recorder collects the routes requested while serving one request. The HTTP
// layer turns the last one into a redirect.
type Recorder struct {
	mu     sync.Mutex
	routes []string
}

func (r *Recorder) record(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

func (r *Recorder) Routes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.routes...)
}

// Last returns the most recent route, if any.
func (r *Recorder) Last() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.routes) == 0 {
		return "", false
	}
	return r.routes[len(r.routes)-1], true
}

type recorderKey struct{}

func WithRecorder(ctx context.Context) (context.Context, *Recorder) {
	rec := &Recorder{}
	return context.WithValue(ctx, recorderKey{}, rec), rec
}

func RecorderFromContext(ctx context.Context) (*Recorder, bool) {
	rec, ok := ctx.Value(recorderKey{}).(*Recorder)
	return rec, ok && rec != nil
}

// ContextNavigator records routes on the Recorder carried by ctx.
type ContextNavigator struct{}

func (ContextNavigator) Navigate(ctx context.Context, route string) error {
	rec, ok := RecorderFromContext(ctx)
	if !ok {
		return ErrNoRouter
	}
	rec.record(Normalize(route))
	return nil
}

// Normalize trims route and maps an empty route to the placeholder.
func Normalize(route string) string {
	trimmed := strings.TrimSpace(route)
	if trimmed == "" {
		return "#"
	}
	return trimmed
}
