package ens

import (
	"github.com/nftgallery/goapi/base/ctx"
	"github.com/nftgallery/goapi/domain"
)

// ENS resolves ens names to addresses so a wallet identity may be supplied
// as a name. Unregistered names resolve to the empty address.
type ENS interface {
	Resolve(ctx.Ctx, string) (domain.Address, error)
}
