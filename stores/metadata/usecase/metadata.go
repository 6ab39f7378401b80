package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	bCtx "github.com/nftgallery/goapi/base/ctx"
	"github.com/nftgallery/goapi/base/log"
	"github.com/nftgallery/goapi/domain"
	"github.com/nftgallery/goapi/domain/keys"
	"github.com/nftgallery/goapi/domain/nftitem"
	"github.com/nftgallery/goapi/service/cache"
	"github.com/nftgallery/goapi/stores/metadata/parser"
)

type MetadataUseCaseCfg struct {
	WebResource      domain.WebResourceUseCase
	Cache            cache.Service
	IpfsGateway      string
	PlaceholderImage string
	Parsers          []parser.MetadataParser
}

type metadataUseCase struct {
	webResource      domain.WebResourceUseCase
	cache            cache.Service
	ipfsGateway      string
	placeholderImage string
	parsers          []parser.MetadataParser
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	parsers := cfg.Parsers
	if len(parsers) == 0 {
		parsers = parser.DefaultParsers()
	}
	return &metadataUseCase{
		webResource:      cfg.WebResource,
		cache:            cfg.Cache,
		ipfsGateway:      strings.TrimSuffix(cfg.IpfsGateway, "/"),
		placeholderImage: cfg.PlaceholderImage,
		parsers:          parsers,
	}
}

func (u *metadataUseCase) Resolve(c bCtx.Ctx, tokenId domain.TokenId, tokenUri string) (*nftitem.Nft, error) {
	if u.cache == nil {
		return u.resolve(c, tokenId, tokenUri)
	}

	nft := &nftitem.Nft{}
	key := keys.CacheKey(tokenId.String(), keys.MD5(tokenUri))
	err := u.cache.GetByFunc(c, key, nft, func() (interface{}, error) {
		return u.resolve(c, tokenId, tokenUri)
	})
	if err != nil {
		return nil, err
	}
	return nft, nil
}

func (u *metadataUseCase) resolve(c bCtx.Ctx, tokenId domain.TokenId, tokenUri string) (*nftitem.Nft, error) {
	data, err := u.webResource.GetJson(c, tokenUri)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId":  tokenId,
			"tokenUri": tokenUri,
			"err":      err,
		}).Error("failed to fetch metadata")
		return nil, domain.ErrUnresolvable
	}

	doc := &struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}{}
	if err := json.Unmarshal(data, doc); err != nil {
		c.WithFields(log.Fields{
			"tokenId":  tokenId,
			"tokenUri": tokenUri,
			"err":      err,
		}).Error("failed to unmarshal metadata")
		return nil, domain.ErrUnresolvable
	}

	nft := &nftitem.Nft{
		Id:          tokenId.String(),
		Name:        doc.Name,
		Description: doc.Description,
		Image:       u.toDisplayUrl(doc.Image),
		Attributes:  u.parseAttributes(c, tokenId, data),
	}
	if len(nft.Name) == 0 {
		nft.Name = nftitem.DefaultName
	}
	if len(nft.Description) == 0 {
		nft.Description = nftitem.DefaultDescription
	}

	return nft, nil
}

// toDisplayUrl rewrites ipfs uris to the configured http gateway so a
// browser can load them directly
func (u *metadataUseCase) toDisplayUrl(image string) string {
	if len(image) == 0 {
		return u.placeholderImage
	}
	if !strings.HasPrefix(image, "ipfs://") {
		return image
	}
	cid := strings.TrimPrefix(image, "ipfs://")
	cid = strings.TrimPrefix(cid, "ipfs/")
	return fmt.Sprintf("%s/%s", u.ipfsGateway, cid)
}

// parseAttributes never fails the record. A document without any known
// attribute shape renders with an empty list.
func (u *metadataUseCase) parseAttributes(c bCtx.Ctx, tokenId domain.TokenId, data []byte) nftitem.Attributes {
	for _, p := range u.parsers {
		attrs, err := p.Parse(c, tokenId, data)
		if err == nil {
			return attrs
		}
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"tokenId": tokenId,
				"parser":  p.Name(),
				"err":     err,
			}).Warn("failed to parse attributes")
		}
	}
	return nftitem.Attributes{}
}
