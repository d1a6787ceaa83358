package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ErikMirg/BSC-Portal/internal/client/models"
)

// MyProfile fetches the caller's own profile. This is also the endpoint the
// auth guard probes to validate a stored credential.
func (c *Client) MyProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.getJSON(ctx, "/profiles/me", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateMyProfile submits the full field set of the caller's profile and
// returns the server's representation, the source of truth after a save.
func (c *Client) UpdateMyProfile(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	var updated models.Profile
	if err := c.sendJSON(ctx, http.MethodPut, "/profiles/me", p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ProfileByID fetches another user's profile.
func (c *Client) ProfileByID(ctx context.Context, id int) (*models.Profile, error) {
	q := url.Values{}
	q.Set("user_id", strconv.Itoa(id))

	var p models.Profile
	if err := c.getJSON(ctx, "/profiles/profileStranger", q, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile submits the full field set of another user's profile.
func (c *Client) UpdateProfile(ctx context.Context, id int, p *models.Profile) (*models.Profile, error) {
	var updated models.Profile
	if err := c.sendJSON(ctx, http.MethodPut, "/profiles/"+strconv.Itoa(id), p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Profiles fetches the full roster.
func (c *Client) Profiles(ctx context.Context) ([]models.Profile, error) {
	var list []models.Profile
	if err := c.getJSON(ctx, "/profiles/viewProfiles", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// UploadMyPhoto uploads a new photo for the caller's profile.
func (c *Client) UploadMyPhoto(ctx context.Context, filename string, content io.Reader) error {
	return c.uploadPhoto(ctx, "/profiles/me/photo", filename, content)
}

// UploadPhoto uploads a new photo for another user's profile.
func (c *Client) UploadPhoto(ctx context.Context, id int, filename string, content io.Reader) error {
	return c.uploadPhoto(ctx, "/profiles/"+strconv.Itoa(id)+"/photo", filename, content)
}

// uploadPhoto sends a multipart form with a single part named "file",
// matching the backend's upload contract.
func (c *Client) uploadPhoto(ctx context.Context, path, filename string, content io.Reader) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("copy photo content: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf, w.FormDataContentType())
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
