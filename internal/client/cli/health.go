package cli

import (
	"context"
	"fmt"
	"log"
)

// Health queries the server health endpoint and prints the result.
func (a *App) Health(ctx context.Context) error {
	h, err := a.api.Health(ctx)
	if err != nil {
		log.Printf("Server unavailable: %s", err.Error())
		return err
	}

	fmt.Printf("%s %s: %s\n", h.AppName, h.Version, h.Status)
	return nil
}
