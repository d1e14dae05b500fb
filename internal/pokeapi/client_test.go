package pokeapi

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

func fakeAPI(t *testing.T, routes map[string]string) *Client {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{Handler: func(ctx *fasthttp.RequestCtx) {
		body, ok := routes[string(ctx.Path())]
		if !ok {
			ctx.SetStatusCode(fasthttp.StatusNotFound)
			ctx.SetBodyString("Not Found")
			return
		}
		if body == "boom" {
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
			return
		}
		ctx.SetContentType("application/json")
		ctx.SetBodyString(body)
	}}
	go srv.Serve(ln) //nolint:errcheck
	t.Cleanup(func() { ln.Close() })

	hc := &fasthttp.Client{Dial: func(string) (net.Conn, error) { return ln.Dial() }}
	return newClient("http://pokeapi.test/api/v2/", hc, time.Second)
}

func TestClientFetches(t *testing.T) {
	c := fakeAPI(t, map[string]string{
		"/api/v2/pokemon/pikachu":     pikachuJSON,
		"/api/v2/move/thunder-shock": thunderShockJSON,
	})
	ctx := context.Background()

	p, err := c.GetPokemon(ctx, "Pikachu")
	require.NoError(t, err)
	assert.Equal(t, 25, p.ID)

	m, err := c.GetMove(ctx, "thunder-shock")
	require.NoError(t, err)
	assert.Equal(t, "thunder-shock", m.Name)
	require.NotNil(t, m.Meta)
	assert.Equal(t, "paralysis", m.Meta.Ailment.Name)
}

func TestClientErrors(t *testing.T) {
	c := fakeAPI(t, map[string]string{
		"/api/v2/pokemon/broken": "boom",
		"/api/v2/pokemon/garbled": "{not json",
	})
	ctx := context.Background()

	_, err := c.GetPokemon(ctx, "missingno")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.GetPokemon(ctx, "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "500")

	_, err = c.GetPokemon(ctx, "garbled")
	assert.Error(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = c.GetPokemon(cancelled, "pikachu")
	assert.ErrorIs(t, err, context.Canceled)
}
