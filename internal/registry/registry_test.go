package registry

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/exercise", RouteExercise},
		{"exercise", RouteExercise},
		{"/exercise/", RouteExercise},
		{"/", RouteExercise},
		{"", RouteExercise},
		{"/administration", RouteAdministration},
		{"admin", RouteAdministration},
	}

	for _, tt := range tests {
		r, err := Resolve(tt.path)
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", tt.path, err)
			continue
		}
		if r.Name != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.path, r.Name, tt.want)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("/settings")
	if !errors.Is(err, ErrUnknownRoute) {
		t.Errorf("Expected ErrUnknownRoute, got %v", err)
	}
	if Exists("/settings") {
		t.Error("Exists() should be false for unknown route")
	}
}

func TestListOrder(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("Expected at least 2 routes, got %d", len(list))
	}
	if list[0].Name != RouteExercise || list[1].Name != RouteAdministration {
		t.Errorf("Unexpected order: %+v", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	Register(Route{Name: "dup", Path: "exercise"})
}

func TestRedirectLoopTerminates(t *testing.T) {
	Redirect("/loop-a", "/loop-b")
	Redirect("/loop-b", "/loop-a")

	if _, err := Resolve("/loop-a"); !errors.Is(err, ErrUnknownRoute) {
		t.Errorf("Expected ErrUnknownRoute for redirect loop, got %v", err)
	}
}
