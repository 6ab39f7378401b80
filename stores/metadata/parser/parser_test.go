package parser

import (
	"testing"

	bCtx "github.com/nftgallery/goapi/base/ctx"
	"github.com/nftgallery/goapi/domain"
	"github.com/nftgallery/goapi/domain/nftitem"
	"github.com/stretchr/testify/require"
)

func Test_attributesParser_Parse(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    nftitem.Attributes
		wantErr error
	}{
		{
			name: "string and numeric values",
			data: []byte(`{"attributes":[{"trait_type":"Fur","value":"Robot"},{"trait_type":"Level","value":3}]}`),
			want: nftitem.Attributes{
				{TraitType: "Fur", Value: "Robot"},
				{TraitType: "Level", Value: "3"},
			},
		},
		{
			name:    "no attributes",
			data:    []byte(`{"name":"Cat#2"}`),
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "attributes is not a list",
			data:    []byte(`{"attributes":{"Fur":"Robot"}}`),
			wantErr: domain.ErrInvalidJsonFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := NewAttributesParser().Parse(bCtx.Background(), domain.TokenId("1"), tt.data)
			if tt.wantErr != nil {
				req.Equal(tt.wantErr, err)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}

func Test_propertiesParser_Parse(t *testing.T) {
	req := require.New(t)

	data := []byte(`{"properties":{"Background":"Orange","Generation":2}}`)
	got, err := NewPropertiesParser().Parse(bCtx.Background(), domain.TokenId("1"), data)
	req.NoError(err)
	req.ElementsMatch(nftitem.Attributes{
		{TraitType: "Background", Value: "Orange"},
		{TraitType: "Generation", Value: "2"},
	}, got)

	_, err = NewPropertiesParser().Parse(bCtx.Background(), domain.TokenId("1"), []byte(`{}`))
	req.Equal(domain.ErrNotFound, err)
}

func Test_propertyDetailParser_Parse(t *testing.T) {
	req := require.New(t)

	data := []byte(`{"properties":{"bg":{"name":"Background","value":"Orange"}}}`)
	got, err := NewPropertyDetailParser().Parse(bCtx.Background(), domain.TokenId("1"), data)
	req.NoError(err)
	req.Equal(nftitem.Attributes{{TraitType: "Background", Value: "Orange"}}, got)
}
