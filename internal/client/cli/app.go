package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/foundrmate/internal/client/client"
	"github.com/dmitrijs2005/foundrmate/internal/client/config"
	"github.com/dmitrijs2005/foundrmate/internal/client/models"
	"github.com/dmitrijs2005/foundrmate/internal/client/services"
)

type App struct {
	config      *config.Config
	repos       *client.Repositories
	authService services.AuthService
	ideaService services.IdeaService
	taskService services.TaskService
	user        *models.User
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	repos, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)

	as := services.NewAuthService(apiClient, repos.Metadata)

	return &App{
		config:      c,
		repos:       repos,
		authService: as,
		ideaService: services.NewIdeaService(apiClient, as, repos.Metadata),
		taskService: services.NewTaskService(repos.Tasks),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run restores a stored session, then serves the REPL until exit.
func (a *App) Run(ctx context.Context) {
	defer a.repos.Close()

	if s, err := a.authService.Current(ctx); err == nil {
		a.user = &s.User
	}

	printlnFn("Welcome to FoundrMate (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return "guest"
	}
	return a.user.Email
}

// report prints a failed command and keeps the app state in line with it.
func (a *App) report(err error) error {
	switch {
	case errors.Is(err, client.ErrTokenExpired):
		a.user = nil
		printlnFn("Your session has expired. Please log in again.")
	case errors.Is(err, services.ErrNotLoggedIn):
		a.user = nil
		printlnFn("Please log in first.")
	case errors.Is(err, client.ErrUnavailable):
		printlnFn("Server unavailable:", client.Message(err))
	default:
		printlnFn("Error:", client.Message(err))
	}
	return err
}
