package service

import (
	"context"
	"net/url"

	"menuqr-dashboard/dashboard-svc/internal/transport"
)

func fetchOne[T any](ctx context.Context, c *transport.Client, method, path string, query url.Values, body any) (*T, error) {
	var out T
	decoded, err := c.JSON(ctx, method, path, query, body, &out)
	if err != nil || !decoded {
		return nil, err
	}
	return &out, nil
}

func fetchList[T any](ctx context.Context, c *transport.Client, method, path string, query url.Values, body any) ([]T, error) {
	var out []T
	if _, err := c.JSON(ctx, method, path, query, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func send(ctx context.Context, c *transport.Client, method, path string, body any) error {
	_, err := c.JSON(ctx, method, path, nil, body, nil)
	return err
}

func segment(id string) string {
	return "/" + url.PathEscape(id)
}
