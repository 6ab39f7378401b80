package parser

import (
	"encoding/json"

	"github.com/nftgallery/goapi/base/ctx"
	"github.com/nftgallery/goapi/domain"
	"github.com/nftgallery/goapi/domain/nftitem"
)

// MetadataParser extracts display attributes from one of the metadata
// shapes seen in the wild. Parsers return domain.ErrNotFound when the
// document simply lacks their shape, which tells the caller to try the
// next one.
type MetadataParser interface {
	Name() string
	Parse(c ctx.Ctx, tokenId domain.TokenId, data []byte) (nftitem.Attributes, error)
}

// DefaultParsers is the lookup order used for uncategorized collections.
func DefaultParsers() []MetadataParser {
	return []MetadataParser{
		NewAttributesParser(),
		NewPropertiesParser(),
		NewPropertyDetailParser(),
	}
}

func stringify(v interface{}) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	str, err := json.Marshal(v)
	if err != nil {
		return "", domain.ErrInvalidJsonFormat
	}
	return string(str), nil
}

type attributesParser struct{}

func NewAttributesParser() MetadataParser {
	return &attributesParser{}
}

func (im *attributesParser) Name() string {
	return "Attributes Parser"
}

func (im *attributesParser) Parse(c ctx.Ctx, _ domain.TokenId, data []byte) (nftitem.Attributes, error) {
	type metadata struct {
		Attributes []nftitem.RawAttribute `json:"attributes"`
	}

	meta := &metadata{}

	if err := json.Unmarshal(data, meta); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}

	if len(meta.Attributes) == 0 {
		return nil, domain.ErrNotFound
	}

	attrs := nftitem.Attributes{}

	for _, v := range meta.Attributes {
		str, err := stringify(v.Value)
		if err != nil {
			return nil, err
		}

		attrs = append(attrs, nftitem.Attribute{TraitType: v.TraitType, Value: str})
	}

	return attrs, nil
}

type propertiesParser struct{}

func NewPropertiesParser() MetadataParser {
	return &propertiesParser{}
}

func (im *propertiesParser) Name() string {
	return "Properties Parser"
}

func (im *propertiesParser) Parse(c ctx.Ctx, _ domain.TokenId, data []byte) (nftitem.Attributes, error) {
	type metadata struct {
		Properties nftitem.Properties `json:"properties"`
	}

	meta := &metadata{}

	if err := json.Unmarshal(data, meta); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}

	if len(meta.Properties) == 0 {
		return nil, domain.ErrNotFound
	}

	attrs := nftitem.Attributes{}

	for k, v := range meta.Properties {
		str, err := stringify(v)
		if err != nil {
			return nil, err
		}

		attrs = append(attrs, nftitem.Attribute{TraitType: k, Value: str})
	}

	return attrs, nil
}

type propertyDetailParser struct{}

func NewPropertyDetailParser() MetadataParser {
	return &propertyDetailParser{}
}

func (im *propertyDetailParser) Name() string {
	return "PropertyDetail Parser"
}

func (im *propertyDetailParser) Parse(c ctx.Ctx, _ domain.TokenId, data []byte) (nftitem.Attributes, error) {
	type metadata struct {
		Properties nftitem.PropertyDetails `json:"properties"`
	}

	meta := &metadata{}

	if err := json.Unmarshal(data, meta); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}

	if len(meta.Properties) == 0 {
		return nil, domain.ErrNotFound
	}

	attrs := nftitem.Attributes{}

	for _, v := range meta.Properties {
		str, err := stringify(v.Value)
		if err != nil {
			return nil, err
		}

		attrs = append(attrs, nftitem.Attribute{TraitType: v.Name, Value: str})
	}

	return attrs, nil
}
