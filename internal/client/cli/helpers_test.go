package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/ErikMirg/BSC-Portal/internal/client/api"
	"github.com/ErikMirg/BSC-Portal/internal/client/models"
	"github.com/ErikMirg/BSC-Portal/internal/client/services"
	"github.com/ErikMirg/BSC-Portal/internal/logging"
)

// stubInputs replaces the interactive input seams: getSimpleText pops the
// next queued text answer, getPassword always returns password.
func stubInputs(t *testing.T, texts []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		v := texts[i]
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeStore struct {
	token    string
	editMode bool
}

func (f *fakeStore) Token() (string, bool)    { return f.token, f.token != "" }
func (f *fakeStore) SetToken(t string) error  { f.token = t; return nil }
func (f *fakeStore) ClearToken() error        { f.token = ""; return nil }
func (f *fakeStore) EditMode() bool           { return f.editMode }
func (f *fakeStore) SetEditMode(b bool) error { f.editMode = b; return nil }

type fakeAuth struct {
	checkState services.AuthState

	loginResp *api.TokenResponse
	loginErr  error
	loginN    int
	loginUser string
	loginPass string

	logoutN   int
	logoutErr error
}

func (f *fakeAuth) Check(context.Context) services.AuthState { return f.checkState }

func (f *fakeAuth) Login(_ context.Context, login, password string) (*api.TokenResponse, error) {
	f.loginN++
	f.loginUser, f.loginPass = login, password
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Logout() error {
	f.logoutN++
	return f.logoutErr
}

type fakeProfiles struct {
	profile *models.Profile
	loadErr error

	saveResp  *models.Profile
	saveErr   error
	saveN     int
	savePhoto string

	list    []models.Profile
	listErr error

	created   []models.NewUserRequest
	createErr error

	deletedID int
	deleteErr error
}

func (f *fakeProfiles) Load(_ context.Context, _ services.Subject) (*models.Profile, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.profile.Clone(), nil
}

func (f *fakeProfiles) Save(_ context.Context, _ services.Subject, draft *models.Profile, photoPath string) (*models.Profile, error) {
	f.saveN++
	f.savePhoto = photoPath
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	if f.saveResp != nil {
		return f.saveResp, nil
	}
	return draft.Clone(), nil
}

func (f *fakeProfiles) List(context.Context) ([]models.Profile, error) { return f.list, f.listErr }

func (f *fakeProfiles) CreateUser(_ context.Context, req models.NewUserRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, req)
	return nil
}

func (f *fakeProfiles) Delete(_ context.Context, id int) error {
	f.deletedID = id
	return f.deleteErr
}

func (f *fakeProfiles) PhotoURL(ref string) string {
	if ref == "" {
		return ""
	}
	return "http://test/uploads/" + ref
}

// newTestApp builds an App whose screens read commands from input.
func newTestApp(input string, fa services.AuthService, fp services.ProfileService, store *fakeStore) *App {
	return &App{
		session:  store,
		auth:     fa,
		profiles: fp,
		state:    services.StateAnonymous,
		reader:   bufio.NewReader(strings.NewReader(input)),
		log:      logging.NewTextLogger(io.Discard, slog.LevelError),
	}
}

func testProfile() *models.Profile {
	return &models.Profile{
		ID:         1,
		FirstName:  "Anna",
		LastName:   "Petrova",
		Phone:      "+79991234567",
		Email:      "anna@example.com",
		Department: "Engineering",
		Projects:   []string{"portal"},
	}
}
