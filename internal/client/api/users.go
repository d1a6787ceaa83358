package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ErikMirg/BSC-Portal/internal/client/models"
)

// CreateUser provisions a new account with the given role.
func (c *Client) CreateUser(ctx context.Context, req models.NewUserRequest) error {
	return c.sendJSON(ctx, http.MethodPost, "/users/", req, nil)
}

// DeleteUser irreversibly removes an account and its profile.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	r, err := c.newRequest(ctx, http.MethodDelete, "/users/"+strconv.Itoa(id), nil, nil, "")
	if err != nil {
		return err
	}
	return c.do(r, nil)
}
