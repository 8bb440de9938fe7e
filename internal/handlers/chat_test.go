package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallAssistantSuccess(t *testing.T) {
	var gotAuth string
	var gotPayload struct {
		Messages []chatUpstreamMessage `json:"messages"`
	}

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"Brush twice a day."}`))
	}))
	defer upstream.Close()

	messages := []chatUpstreamMessage{
		{Role: "user", Content: "How often should I brush?"},
	}
	reply, err := callAssistant(upstream.Client(), upstream.URL, "secret-key", messages)
	require.NoError(t, err)

	assert.Equal(t, "Brush twice a day.", reply)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	require.Len(t, gotPayload.Messages, 1)
	assert.Equal(t, "user", gotPayload.Messages[0].Role)
}

func TestCallAssistantNoAPIKeyOmitsHeader(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"text":"ok"}`))
	}))
	defer upstream.Close()

	_, err := callAssistant(upstream.Client(), upstream.URL, "", nil)
	require.NoError(t, err)
}

func TestCallAssistantUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"error":"model overloaded"}`))
	}))
	defer upstream.Close()

	_, err := callAssistant(upstream.Client(), upstream.URL, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestCallAssistantBadStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	_, err := callAssistant(upstream.Client(), upstream.URL, "", nil)
	assert.Error(t, err)
}

func TestCallAssistantMalformedBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway timeout</html>`))
	}))
	defer upstream.Close()

	_, err := callAssistant(upstream.Client(), upstream.URL, "", nil)
	assert.Error(t, err)
}
