package theme

import (
	"context"
	"fmt"

	"anoa.com/askify/pkg/kvstore"
)

// ThemeKey is the per-client key holding "light" or "dark".
const ThemeKey = "theme"

const (
	Light = "light"
	Dark  = "dark"
)

type State struct {
	Theme  string `json:"theme"`
	IsDark bool   `json:"isDark"`
}

func stateOf(theme string) State {
	return State{Theme: theme, IsDark: theme == Dark}
}

type ThemeService interface {
	// Resolve returns the persisted theme, falling back to the platform
	// preference when nothing valid is stored.
	Resolve(ctx context.Context, scope string, prefersDark bool) (State, error)
	// Toggle flips the resolved theme and persists the result.
	Toggle(ctx context.Context, scope string, prefersDark bool) (State, error)
}

type themeService struct {
	store kvstore.Store
}

func NewThemeService(store kvstore.Store) ThemeService {
	return &themeService{store: store}
}

func (s *themeService) Resolve(ctx context.Context, scope string, prefersDark bool) (State, error) {
	saved, ok, err := s.store.Get(ctx, kvstore.Key(scope, ThemeKey))
	if err != nil {
		return State{}, fmt.Errorf("load theme: %w", err)
	}
	if ok && (saved == Light || saved == Dark) {
		return stateOf(saved), nil
	}
	if prefersDark {
		return stateOf(Dark), nil
	}
	return stateOf(Light), nil
}

func (s *themeService) Toggle(ctx context.Context, scope string, prefersDark bool) (State, error) {
	current, err := s.Resolve(ctx, scope, prefersDark)
	if err != nil {
		return State{}, err
	}

	next := Dark
	if current.IsDark {
		next = Light
	}

	if err := s.store.Set(ctx, kvstore.Key(scope, ThemeKey), next); err != nil {
		return State{}, fmt.Errorf("save theme: %w", err)
	}
	return stateOf(next), nil
}
