package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/ErikMirg/BSC-Portal/internal/client/api"
	"github.com/ErikMirg/BSC-Portal/internal/client/models"
	"github.com/ErikMirg/BSC-Portal/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

// fakeSession is an in-memory session.Store.
type fakeSession struct {
	token    string
	editMode bool
}

func (f *fakeSession) Token() (string, bool)    { return f.token, f.token != "" }
func (f *fakeSession) SetToken(t string) error  { f.token = t; return nil }
func (f *fakeSession) ClearToken() error        { f.token = ""; return nil }
func (f *fakeSession) EditMode() bool           { return f.editMode }
func (f *fakeSession) SetEditMode(b bool) error { f.editMode = b; return nil }

// fakeGateway records calls and returns canned responses.
type fakeGateway struct {
	loginResp *api.TokenResponse
	loginErr  error
	loginN    int

	myProfile    *models.Profile
	myProfileErr error
	myProfileN   int

	byID    map[int]*models.Profile
	byIDErr error

	updateResp *models.Profile
	updateErr  error
	updateN    int

	uploadErr error
	uploadN   int

	profiles    []models.Profile
	profilesErr error

	createErr error
	createN   int

	deleteErr error
	deletedID int
	deleteN   int
}

func (f *fakeGateway) Login(_ context.Context, login, password string) (*api.TokenResponse, error) {
	f.loginN++
	return f.loginResp, f.loginErr
}

func (f *fakeGateway) MyProfile(context.Context) (*models.Profile, error) {
	f.myProfileN++
	return f.myProfile, f.myProfileErr
}

func (f *fakeGateway) UpdateMyProfile(_ context.Context, p *models.Profile) (*models.Profile, error) {
	f.updateN++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateResp != nil {
		return f.updateResp, nil
	}
	return p.Clone(), nil
}

func (f *fakeGateway) ProfileByID(_ context.Context, id int) (*models.Profile, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID[id], nil
}

func (f *fakeGateway) UpdateProfile(_ context.Context, id int, p *models.Profile) (*models.Profile, error) {
	f.updateN++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateResp != nil {
		return f.updateResp, nil
	}
	return p.Clone(), nil
}

func (f *fakeGateway) Profiles(context.Context) ([]models.Profile, error) {
	return f.profiles, f.profilesErr
}

func (f *fakeGateway) UploadMyPhoto(_ context.Context, filename string, _ io.Reader) error {
	f.uploadN++
	return f.uploadErr
}

func (f *fakeGateway) UploadPhoto(_ context.Context, id int, filename string, _ io.Reader) error {
	f.uploadN++
	return f.uploadErr
}

func (f *fakeGateway) CreateUser(_ context.Context, req models.NewUserRequest) error {
	f.createN++
	return f.createErr
}

func (f *fakeGateway) DeleteUser(_ context.Context, id int) error {
	f.deleteN++
	f.deletedID = id
	return f.deleteErr
}

func (f *fakeGateway) PhotoURL(ref string) string {
	if ref == "" {
		return ""
	}
	return "http://test/uploads/" + ref
}
