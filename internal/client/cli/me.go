package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"wallmagic/internal/client/client"
)

// Me fetches the current account from the server and prints its details.
// An expired or missing token is reported as a hint to log in again.
func (a *App) Me(ctx context.Context) error {
	user, err := a.api.Me(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Println("Not logged in, use 'login' first")
			return nil
		}
		log.Printf("Request unsuccessfull: %s", err.Error())
		return err
	}

	fmt.Printf("ID:       %d\n", user.ID)
	fmt.Printf("Email:    %s\n", user.Email)
	fmt.Printf("Username: %s\n", user.Username)
	if user.FullName != nil {
		fmt.Printf("Name:     %s\n", *user.FullName)
	}
	fmt.Printf("Since:    %s\n", user.CreatedAt.Format("2006-01-02"))
	return nil
}
