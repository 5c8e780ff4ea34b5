package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"wallmagic/internal/client/client"
)

func TestMe_PrintsAccount(t *testing.T) {
	name := "Alice Liddell"
	f := &fakeAPI{meOut: &client.UserView{
		ID:        7,
		Email:     "alice@example.org",
		Username:  "alice",
		FullName:  &name,
		CreatedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	}}
	a := &App{api: f}

	if err := a.Me(context.Background()); err != nil {
		t.Fatalf("Me err: %v", err)
	}
}

func TestMe_UnauthorizedIsHandled(t *testing.T) {
	f := &fakeAPI{meErr: fmt.Errorf("%w: Could not validate credentials", client.ErrUnauthorized)}
	a := &App{api: f}

	if err := a.Me(context.Background()); err != nil {
		t.Fatalf("unauthorized should be handled in place, got: %v", err)
	}
}

func TestMe_OtherErrorsPropagate(t *testing.T) {
	f := &fakeAPI{meErr: errors.New("boom")}
	a := &App{api: f}

	if err := a.Me(context.Background()); err == nil {
		t.Fatalf("want error from Me")
	}
}
