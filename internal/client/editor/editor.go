// Package editor implements the view/edit state machine shared by the own
// and stranger profile screens: draft isolation, photo preview staging,
// project-tag edits and the validated save.
package editor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ErikMirg/BSC-Portal/internal/client/models"
	"github.com/ErikMirg/BSC-Portal/internal/client/services"
	"github.com/ErikMirg/BSC-Portal/internal/client/session"
	"github.com/ErikMirg/BSC-Portal/internal/client/validation"
	"github.com/ErikMirg/BSC-Portal/internal/logging"
)

// ErrNotEditing is returned by operations that require an active draft.
var ErrNotEditing = fmt.Errorf("not in edit mode")

// ErrNotAnImage is returned when an attached file does not look like an image.
var ErrNotAnImage = fmt.Errorf("not an image file")

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// Editor drives one profile screen. In view mode the committed profile is
// shown; Edit opens an isolated draft which Save commits or Cancel discards.
// Only the own-profile editor persists its edit flag across restarts.
type Editor struct {
	subject services.Subject
	svc     services.ProfileService
	session session.Store
	log     logging.Logger

	profile *models.Profile
	draft   *models.Profile
	editing bool

	pendingPhoto string // source path chosen by the user, sent on Save
	preview      string // staged temp copy, removed on Cancel/Save/Close

	errs validation.Errors
}

// New constructs an editor for the given subject.
func New(sub services.Subject, svc services.ProfileService, sess session.Store, log logging.Logger) *Editor {
	return &Editor{subject: sub, svc: svc, session: sess, log: log, errs: validation.Errors{}}
}

// Load fetches the subject's profile. For the own profile a persisted edit
// flag reopens edit mode so an interrupted session resumes where it left off.
func (e *Editor) Load(ctx context.Context) error {
	p, err := e.svc.Load(ctx, e.subject)
	if err != nil {
		return err
	}
	e.profile = p
	e.draft = nil
	e.editing = false
	e.errs = validation.Errors{}

	if e.subject.IsSelf() && e.session.EditMode() {
		e.draft = e.profile.Clone()
		e.editing = true
	}
	return nil
}

// Subject returns whose profile this editor operates on.
func (e *Editor) Subject() services.Subject { return e.subject }

// Editing reports whether a draft is open.
func (e *Editor) Editing() bool { return e.editing }

// Profile returns the draft while editing, the committed profile otherwise.
func (e *Editor) Profile() *models.Profile {
	if e.editing {
		return e.draft
	}
	return e.profile
}

// Errors returns the field errors of the last failed Save attempt.
func (e *Editor) Errors() validation.Errors { return e.errs }

// PendingPhoto returns the staged preview path, "" when none is attached.
func (e *Editor) PendingPhoto() string { return e.preview }

// CanDelete reports whether the account behind this editor may be removed.
// The own account is never deletable from its own screen.
func (e *Editor) CanDelete() bool { return !e.subject.IsSelf() }

// Edit opens a draft copy of the committed profile. For the own profile the
// edit flag is persisted so the mode survives a restart.
func (e *Editor) Edit() error {
	if e.editing || e.profile == nil {
		return nil
	}
	e.draft = e.profile.Clone()
	e.editing = true
	e.errs = validation.Errors{}
	if e.subject.IsSelf() {
		return e.session.SetEditMode(true)
	}
	return nil
}

// Cancel discards the draft and any staged photo and returns to view mode.
// The committed profile is untouched.
func (e *Editor) Cancel() error {
	if !e.editing {
		return nil
	}
	e.draft = nil
	e.editing = false
	e.errs = validation.Errors{}
	e.revokePreview()
	e.pendingPhoto = ""
	if e.subject.IsSelf() {
		return e.session.SetEditMode(false)
	}
	return nil
}

// AttachPhoto stages path as the pending photo: the file is copied to a
// uniquely named temp file for preview, replacing any earlier one. Nothing
// is uploaded until Save.
func (e *Editor) AttachPhoto(path string) error {
	if !e.editing {
		return ErrNotEditing
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !imageExts[ext] {
		return fmt.Errorf("%s: %w", path, ErrNotAnImage)
	}

	staged, err := stageCopy(path, ext)
	if err != nil {
		return err
	}
	e.revokePreview()
	e.pendingPhoto = path
	e.preview = staged
	return nil
}

// AddTag appends a project tag to the draft. Duplicates and blanks are
// rejected with ok=false.
func (e *Editor) AddTag(tag string) (ok bool, err error) {
	if !e.editing {
		return false, ErrNotEditing
	}
	tags, changed := models.ProjectTags(e.draft.Projects).Add(tag)
	e.draft.Projects = tags
	return changed, nil
}

// RemoveTag drops the project tag at position i from the draft.
func (e *Editor) RemoveTag(i int) error {
	if !e.editing {
		return ErrNotEditing
	}
	e.draft.Projects = models.ProjectTags(e.draft.Projects).RemoveAt(i)
	return nil
}

// Save validates the draft and, when clean, submits it: a pending photo is
// uploaded first, then the full field set. On success the editor commits the
// server's representation and returns to view mode. A non-empty Errors
// result means the draft was not submitted; a non-nil error means the server
// rejected or never received it, and the draft stays open either way.
func (e *Editor) Save(ctx context.Context) (validation.Errors, error) {
	if !e.editing {
		return nil, ErrNotEditing
	}

	e.errs = validation.ValidateProfile(e.draft)
	if !e.errs.OK() {
		return e.errs, nil
	}

	updated, err := e.svc.Save(ctx, e.subject, e.draft, e.pendingPhoto)
	if err != nil {
		return nil, err
	}

	e.profile = updated
	e.draft = nil
	e.editing = false
	e.revokePreview()
	e.pendingPhoto = ""
	if e.subject.IsSelf() {
		if err := e.session.SetEditMode(false); err != nil {
			e.log.Error(ctx, "persist edit flag failed", "err", err)
		}
	}
	return nil, nil
}

// Delete removes the account behind this editor. Only valid for another
// user's profile.
func (e *Editor) Delete(ctx context.Context) error {
	if !e.CanDelete() {
		return fmt.Errorf("cannot delete own account")
	}
	return e.svc.Delete(ctx, e.subject.ID())
}

// PhotoURL resolves the committed photo reference, "" when none is set.
func (e *Editor) PhotoURL() string {
	p := e.Profile()
	if p == nil || p.PhotoThumb == "" {
		return ""
	}
	return e.svc.PhotoURL(p.PhotoThumb)
}

// Close releases the staged preview file, if any.
func (e *Editor) Close() {
	e.revokePreview()
}

func (e *Editor) revokePreview() {
	if e.preview == "" {
		return
	}
	if err := os.Remove(e.preview); err != nil && !os.IsNotExist(err) {
		e.log.Warn(context.Background(), "remove preview failed", "path", e.preview, "err", err)
	}
	e.preview = ""
}

// stageCopy copies src into the temp dir under a unique name and returns
// the new path.
func stageCopy(src, ext string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	dst := filepath.Join(os.TempDir(), "portal-preview-"+uuid.NewString()+ext)
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("stage preview: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("stage preview: %w", err)
	}
	return dst, nil
}
