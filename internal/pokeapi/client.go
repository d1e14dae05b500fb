package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"battlesim/internal/config"
)

// ErrNotFound is returned when PokéAPI answers 404.
var ErrNotFound = errors.New("pokeapi: not found")

type Client struct {
	baseURL string
	client  *fasthttp.Client
	timeout time.Duration
}

func NewClient(settings *config.Settings) *Client {
	return newClient(settings.PokeAPIBaseURL, &fasthttp.Client{
		MaxConnsPerHost:     32,
		ReadTimeout:         settings.RequestTimeout,
		WriteTimeout:        settings.RequestTimeout,
		MaxIdleConnDuration: 1 * time.Minute,
	}, settings.RequestTimeout)
}

func newClient(baseURL string, hc *fasthttp.Client, timeout time.Duration) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: hc, timeout: timeout}
}

func (c *Client) GetPokemon(ctx context.Context, nameOrID string) (*PokemonResponse, error) {
	u := fmt.Sprintf("%s/pokemon/%s", c.baseURL, url.PathEscape(strings.ToLower(nameOrID)))
	return doRequest[PokemonResponse](ctx, c, u)
}

func (c *Client) GetMove(ctx context.Context, name string) (*MoveResponse, error) {
	u := fmt.Sprintf("%s/move/%s", c.baseURL, url.PathEscape(strings.ToLower(name)))
	return doRequest[MoveResponse](ctx, c, u)
}

func doRequest[T any](ctx context.Context, c *Client, u string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(u)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else if c.timeout > 0 {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			return nil, err
		}
	} else if err := c.client.Do(req, resp); err != nil {
		return nil, err
	}

	switch code := resp.StatusCode(); {
	case code == fasthttp.StatusNotFound:
		return nil, ErrNotFound
	case code != fasthttp.StatusOK:
		return nil, fmt.Errorf("API error: %d", code)
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode %s: %w", u, err)
	}
	return &result, nil
}
