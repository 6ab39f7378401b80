package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bCtx "github.com/nftgallery/goapi/base/ctx"
	"github.com/stretchr/testify/require"
)

func Test_httpReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	body := `{"name":"Cat#2"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(body))
	}))
	defer srv.Close()

	r := NewHttpReaderRepo(http.Client{}, 10*time.Second, nil)

	b, err := r.Get(ctx, srv.URL+"/meta.json")
	req.NoError(err)
	req.Equal([]byte(body), b)

	_, err = r.Get(ctx, srv.URL+"/missing")
	req.Error(err)
}

func Test_httpReaderRepo_Get_headers(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "secret" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	r := NewHttpReaderRepo(http.Client{}, 10*time.Second, map[string]string{"X-Api-Key": "secret"})
	b, err := r.Get(ctx, srv.URL)
	req.NoError(err)
	req.Equal([]byte("ok"), b)
}
