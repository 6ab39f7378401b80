package repository

import (
	"testing"

	bCtx "github.com/nftgallery/goapi/base/ctx"
	"github.com/stretchr/testify/require"
)

func Test_dataUriReaderRepo_Get(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    []byte
		wantErr bool
	}{
		{
			name: "base64",
			uri:  "data:application/json;base64,eyJuYW1lIjoiQ2F0IzIifQ==",
			want: []byte(`{"name":"Cat#2"}`),
		},
		{
			name: "plain text",
			uri:  `data:application/json,{"name":"Cat#2"}`,
			want: []byte(`{"name":"Cat#2"}`),
		},
		{
			name:    "not a data uri",
			uri:     "https://example.com/meta.json",
			wantErr: true,
		},
		{
			name:    "no data part",
			uri:     "data:application/json;base64,",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			r := NewDataUriReaderRepo()
			got, err := r.Get(bCtx.Background(), tt.uri)
			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}
