package cli

import (
	"bufio"
	"context"
	"os"

	"wallmagic/internal/client/client"
	"wallmagic/internal/client/config"
)

// apiClient defines the minimal backend surface the CLI needs. The HTTP
// client in internal/client/client satisfies it; tests can provide a stub.
type apiClient interface {
	Register(ctx context.Context, email string, username string, password []byte, fullName string) (*client.AuthResult, error)
	Login(ctx context.Context, email string, password []byte) (*client.AuthResult, error)
	Logout()
	Me(ctx context.Context) (*client.UserView, error)
	Health(ctx context.Context) (*client.HealthStatus, error)
}

type App struct {
	config   *config.Config
	api      apiClient
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewWallMagicClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}
