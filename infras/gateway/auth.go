package gateway

import (
	"context"
	"net/http"
)

func (c *Client) Login(ctx context.Context, req LoginRequest) (Response, error) {
	r, err := jsonRequest(http.MethodPost, "/auth/login", req)
	if err != nil {
		return Response{}, err
	}

	r.public = true

	return c.envelope(ctx, r)
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (Response, error) {
	r, err := jsonRequest(http.MethodPost, "/auth/register", req)
	if err != nil {
		return Response{}, err
	}

	r.public = true

	return c.envelope(ctx, r)
}
