// Package services contains the application services of the portal client:
// the authentication/guard service and the profile service shared by the
// self and stranger editors, the roster and the provisioning form.
package services

import (
	"context"
	"io"

	"github.com/ErikMirg/BSC-Portal/internal/client/api"
	"github.com/ErikMirg/BSC-Portal/internal/client/models"
)

// Gateway is the slice of the API client the services depend on.
// *api.Client satisfies it; tests substitute fakes.
type Gateway interface {
	Login(ctx context.Context, login, password string) (*api.TokenResponse, error)

	MyProfile(ctx context.Context) (*models.Profile, error)
	UpdateMyProfile(ctx context.Context, p *models.Profile) (*models.Profile, error)
	ProfileByID(ctx context.Context, id int) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id int, p *models.Profile) (*models.Profile, error)
	Profiles(ctx context.Context) ([]models.Profile, error)
	UploadMyPhoto(ctx context.Context, filename string, content io.Reader) error
	UploadPhoto(ctx context.Context, id int, filename string, content io.Reader) error

	CreateUser(ctx context.Context, req models.NewUserRequest) error
	DeleteUser(ctx context.Context, id int) error

	PhotoURL(ref string) string
}

var _ Gateway = (*api.Client)(nil)
