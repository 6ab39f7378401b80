package domain

import (
	"github.com/nftgallery/goapi/base/ctx"
)

// Erc721Reader is the read side of an ERC-721 collection. TokensOfOwner
// returns the owner's token ids and their token URIs as two sequences of
// equal length, ordered by enumeration index.
type Erc721Reader interface {
	TokensOfOwner(c ctx.Ctx, chainId ChainId, contract Address, owner Address) ([]TokenId, []string, error)
}
