package cli

import (
	"context"
	"testing"

	"wallmagic/internal/client/client"
)

func TestHealth_OK(t *testing.T) {
	f := &fakeAPI{healthOut: &client.HealthStatus{Status: "healthy", AppName: "WallMagic", Version: "1.0.0"}}
	a := &App{api: f}

	if err := a.Health(context.Background()); err != nil {
		t.Fatalf("Health err: %v", err)
	}
}

func TestHealth_Unavailable(t *testing.T) {
	f := &fakeAPI{healthErr: client.ErrUnavailable}
	a := &App{api: f}

	if err := a.Health(context.Background()); err == nil {
		t.Fatalf("want error when server is unavailable")
	}
}
