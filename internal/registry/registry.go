// Package registry provides the route table of the application screens.
// Screens register their path at startup; the terminal UI resolves a path
// to a route without hardcoding the screen list.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownRoute is returned when a path does not resolve to a route.
var ErrUnknownRoute = errors.New("registry: unknown route")

// Well-known routes.
const (
	RouteExercise       = "exercise"
	RouteAdministration = "administration"
)

// Route describes a registered screen.
type Route struct {
	Name  string // Stable identifier, e.g. "exercise"
	Path  string // URL-like path, e.g. "/exercise"
	Title string // Human-readable name
	Order int    // Position in navigation
}

var (
	routes    = make(map[string]Route) // keyed by path
	redirects = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a route. Panics if the path is already registered.
func Register(r Route) {
	mu.Lock()
	defer mu.Unlock()

	r.Path = normalize(r.Path)
	if _, exists := routes[r.Path]; exists {
		panic(fmt.Sprintf("registry: route %q already registered", r.Path))
	}
	routes[r.Path] = r
}

// Redirect makes from resolve to the route registered at to.
func Redirect(from, to string) {
	mu.Lock()
	defer mu.Unlock()

	redirects[normalize(from)] = normalize(to)
}

// Resolve returns the route for a path or a route name, following redirects.
func Resolve(path string) (Route, error) {
	mu.RLock()
	defer mu.RUnlock()

	p := normalize(path)
	for i := 0; i <= len(redirects); i++ {
		if r, ok := routes[p]; ok {
			return r, nil
		}
		next, ok := redirects[p]
		if !ok {
			break
		}
		p = next
	}
	return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
}

// List returns all routes in navigation order.
func List() []Route {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Route, 0, len(routes))
	for _, r := range routes {
		result = append(result, r)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].Path < result[j].Path
	})

	return result
}

// Exists checks if a path resolves to a route.
func Exists(path string) bool {
	_, err := Resolve(path)
	return err == nil
}

// normalize turns "exercise", "/exercise/" and "/exercise" into "/exercise".
func normalize(path string) string {
	p := strings.Trim(strings.TrimSpace(path), "/")
	return "/" + p
}

func init() {
	Register(Route{Name: RouteExercise, Path: "/exercise", Title: "Exercise", Order: 0})
	Register(Route{Name: RouteAdministration, Path: "/administration", Title: "Administration", Order: 1})
	Redirect("/", "/exercise")
	Redirect("/admin", "/administration")
}
