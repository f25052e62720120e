package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pinpost/internal/apperrors"
	"pinpost/internal/auth"
	"pinpost/pkg/apiclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRegisterAdoptsIdentity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "u1", "name": body["name"]})
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	user, err := client.Register(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "alice", client.Identity())
}

func TestClientAttachesIdentityHeader(t *testing.T) {
	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(auth.HeaderName)
		json.NewEncoder(w).Encode([]interface{}{})
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	client.SetIdentity("alice")

	_, err := client.ListImages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", gotHeader)
}

func TestClientUpdateOmitsNilCoordinates(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{"id": "t1", "x": 10.0, "y": 50.0})
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	client.SetIdentity("alice")

	x := 10.0
	thread, err := client.UpdateThreadPosition(context.Background(), "t1", &x, nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, thread.X)

	assert.Contains(t, gotBody, "x")
	assert.NotContains(t, gotBody, "y")
}

func TestClientDecodesDomainErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "You can only delete your own threads"})
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	client.SetIdentity("bob")

	err := client.DeleteThread(context.Background(), "t1")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	assert.Contains(t, err.Error(), "your own threads")
}

func TestClientDecodesNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Image not found"})
	}))
	defer server.Close()

	client := apiclient.New(server.URL)
	client.SetIdentity("alice")

	_, err := client.ListThreads(context.Background(), "missing")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
