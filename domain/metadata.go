package domain

import (
	"github.com/nftgallery/goapi/base/ctx"
	"github.com/nftgallery/goapi/domain/nftitem"
)

// MetadataUseCase resolves a token URI into a render-ready NFT record.
// Resolution failures return ErrUnresolvable (possibly wrapped); missing
// optional metadata fields never fail the record.
type MetadataUseCase interface {
	Resolve(ctx.Ctx, TokenId, string) (*nftitem.Nft, error)
}
