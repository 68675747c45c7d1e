package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/foundrmate/internal/client/client"
	"github.com/dmitrijs2005/foundrmate/internal/client/models"
)

type fakeClient struct {
	session   *models.Session
	user      *models.User
	analysis  *models.Analysis
	err       error
	gotToken  string
	gotPass   string
	healthErr error
}

func (f *fakeClient) Register(_ context.Context, fullName, email, password string) (*models.Session, error) {
	f.gotPass = password
	return f.session, f.err
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*models.Session, error) {
	f.gotPass = password
	return f.session, f.err
}

func (f *fakeClient) Verify(_ context.Context, token string) (*models.User, error) {
	f.gotToken = token
	return f.user, f.err
}

func (f *fakeClient) SubmitIdea(_ context.Context, token, message string) (*models.Analysis, error) {
	f.gotToken = token
	return f.analysis, f.err
}

func (f *fakeClient) Health(context.Context) error { return f.healthErr }

func openRepos(t *testing.T) *client.Repositories {
	t.Helper()
	repos, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}
