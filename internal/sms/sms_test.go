package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTwiML(t *testing.T) {
	out, err := RenderTwiML("Dumela! Re amogetse molaetsa wa gago.")

	require.NoError(t, err)
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, "<Response>")
	assert.Contains(t, out, "<Message>Dumela! Re amogetse molaetsa wa gago.</Message>")
}

func TestRenderTwiML_EscapesXML(t *testing.T) {
	out, err := RenderTwiML(`use <soap> & water`)

	require.NoError(t, err)
	assert.Contains(t, out, "use &lt;soap&gt; &amp; water")
	assert.NotContains(t, out, "<soap>")
}

func TestNewTwilioSender_RequiresCredentials(t *testing.T) {
	_, err := NewTwilioSender(TwilioConfig{AccountSID: "AC123"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestTwilioSender_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "token", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+27820000001", r.PostForm.Get("To"))
		assert.Equal(t, "+27110000000", r.PostForm.Get("From"))
		assert.Equal(t, "Dumela", r.PostForm.Get("Body"))

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	cfg := DefaultTwilioConfig()
	cfg.Endpoint = srv.URL
	cfg.AccountSID = "AC123"
	cfg.AuthToken = "token"
	cfg.FromNumber = "+27110000000"

	sender, err := NewTwilioSender(cfg)
	require.NoError(t, err)

	assert.NoError(t, sender.Send(context.Background(), "+27820000001", "Dumela"))
}

func TestTwilioSender_SendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code": 20003}`))
	}))
	defer srv.Close()

	cfg := DefaultTwilioConfig()
	cfg.Endpoint = srv.URL
	cfg.AccountSID = "AC123"
	cfg.AuthToken = "bad"
	cfg.FromNumber = "+27110000000"

	sender, err := NewTwilioSender(cfg)
	require.NoError(t, err)

	err = sender.Send(context.Background(), "+27820000001", "Dumela")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
