package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ErikMirg/BSC-Portal/internal/client/models"
	"github.com/ErikMirg/BSC-Portal/internal/logging"
)

// Subject identifies whose profile an editor operates on: the current user
// or an explicit account id. The zero value is the current user.
type Subject struct {
	id int
}

// Self returns the current-user subject.
func Self() Subject { return Subject{} }

// ByID returns the subject for another user's account.
func ByID(id int) Subject { return Subject{id: id} }

// IsSelf reports whether the subject is the current user.
func (s Subject) IsSelf() bool { return s.id == 0 }

// ID returns the explicit account id; 0 for the current user.
func (s Subject) ID() int { return s.id }

func (s Subject) String() string {
	if s.IsSelf() {
		return "me"
	}
	return fmt.Sprintf("user %d", s.id)
}

// ProfileService implements the shared load/save contract of both profile
// editors plus the roster fetch, provisioning and account deletion.
type ProfileService interface {
	// Load fetches the subject's profile.
	Load(ctx context.Context, sub Subject) (*models.Profile, error)
	// Save uploads the pending photo (if any) and then submits the full
	// field set. A failed photo upload aborts the save; the field update
	// is not sent. Returns the server's representation of the profile.
	Save(ctx context.Context, sub Subject, draft *models.Profile, photoPath string) (*models.Profile, error)
	// List fetches the full roster.
	List(ctx context.Context) ([]models.Profile, error)
	// CreateUser provisions a new account.
	CreateUser(ctx context.Context, req models.NewUserRequest) error
	// Delete irreversibly removes an account.
	Delete(ctx context.Context, id int) error
	// PhotoURL resolves a photo reference against the backend.
	PhotoURL(ref string) string
}

type profileService struct {
	gw  Gateway
	log logging.Logger
}

// NewProfileService constructs a ProfileService bound to the gateway.
func NewProfileService(gw Gateway, log logging.Logger) ProfileService {
	return &profileService{gw: gw, log: log}
}

func (s *profileService) Load(ctx context.Context, sub Subject) (*models.Profile, error) {
	if sub.IsSelf() {
		return s.gw.MyProfile(ctx)
	}
	return s.gw.ProfileByID(ctx, sub.ID())
}

func (s *profileService) Save(ctx context.Context, sub Subject, draft *models.Profile, photoPath string) (*models.Profile, error) {
	if photoPath != "" {
		if err := s.uploadPhoto(ctx, sub, photoPath); err != nil {
			return nil, fmt.Errorf("upload photo: %w", err)
		}
	}

	var (
		updated *models.Profile
		err     error
	)
	if sub.IsSelf() {
		updated, err = s.gw.UpdateMyProfile(ctx, draft)
	} else {
		updated, err = s.gw.UpdateProfile(ctx, sub.ID(), draft)
	}
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info(ctx, "profile updated", "subject", sub.String())
	return updated, nil
}

func (s *profileService) uploadPhoto(ctx context.Context, sub Subject, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if sub.IsSelf() {
		return s.gw.UploadMyPhoto(ctx, filepath.Base(path), f)
	}
	return s.gw.UploadPhoto(ctx, sub.ID(), filepath.Base(path), f)
}

func (s *profileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.gw.Profiles(ctx)
}

func (s *profileService) CreateUser(ctx context.Context, req models.NewUserRequest) error {
	return s.gw.CreateUser(ctx, req)
}

func (s *profileService) Delete(ctx context.Context, id int) error {
	if err := s.gw.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "user deleted", "id", id)
	return nil
}

func (s *profileService) PhotoURL(ref string) string {
	return s.gw.PhotoURL(ref)
}
