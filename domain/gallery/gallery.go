package gallery

import (
	"github.com/nftgallery/goapi/base/ctx"
	"github.com/nftgallery/goapi/domain"
	"github.com/nftgallery/goapi/domain/nftitem"
)

type Status string

const (
	StatusNotConnected Status = "not_connected"
	StatusLoading      Status = "loading"
	StatusLoaded       Status = "loaded"
	StatusErrored      Status = "errored"
)

// State is the published view state. It is replaced wholesale on each fetch
// cycle, never partially mutated. Statuses are mutually exclusive and drive
// which branch a client renders.
type State struct {
	Status  Status         `json:"status"`
	Wallet  domain.Address `json:"wallet,omitempty"`
	Items   []nftitem.Nft  `json:"items"`
	Loading bool           `json:"loading"`
	Error   *string        `json:"error,omitempty"`
	// Revision bumps only when Items is actually replaced, letting clients
	// skip redundant re-renders
	Revision int64 `json:"revision"`
}

type UseCase interface {
	// SetWallet switches the view to the given wallet and runs a fetch cycle
	// when the wallet identity changed. An empty wallet yields the
	// not-connected state without any network calls.
	SetWallet(c ctx.Ctx, wallet domain.Address) State
	// Reload re-runs the fetch cycle for the current wallet.
	Reload(c ctx.Ctx) State
	// State returns the current snapshot without side effects.
	State(c ctx.Ctx) State
}
