package usecase

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
	bCtx "github.com/nftgallery/goapi/base/ctx"
	"github.com/nftgallery/goapi/base/log"
	"github.com/nftgallery/goapi/base/ptr"
	"github.com/nftgallery/goapi/domain"
	"github.com/nftgallery/goapi/domain/gallery"
	"github.com/nftgallery/goapi/domain/nftitem"
	"github.com/viney-shih/goroutines"
)

const defaultResolveWorkers = 8

// shown to clients in place of raw upstream errors
const loadFailedMessage = "failed to load gallery"

type GalleryUseCaseCfg struct {
	Erc721         domain.Erc721Reader
	Metadata       domain.MetadataUseCase
	ChainId        domain.ChainId
	Contract       domain.Address
	ResolveWorkers int
}

type galleryUseCase struct {
	erc721   domain.Erc721Reader
	metadata domain.MetadataUseCase
	chainId  domain.ChainId
	contract domain.Address
	workers  int

	mu    sync.Mutex
	state gallery.State
}

func NewGalleryUseCase(cfg *GalleryUseCaseCfg) gallery.UseCase {
	workers := cfg.ResolveWorkers
	if workers <= 0 {
		workers = defaultResolveWorkers
	}
	return &galleryUseCase{
		erc721:   cfg.Erc721,
		metadata: cfg.Metadata,
		chainId:  cfg.ChainId,
		contract: cfg.Contract,
		workers:  workers,
		state: gallery.State{
			Status: gallery.StatusNotConnected,
			Items:  []nftitem.Nft{},
		},
	}
}

func (u *galleryUseCase) SetWallet(c bCtx.Ctx, wallet domain.Address) gallery.State {
	u.mu.Lock()
	if wallet.IsEmpty() {
		u.state.Status = gallery.StatusNotConnected
		u.state.Wallet = ""
		u.state.Loading = false
		u.state.Error = nil
		u.replaceItemsLocked([]nftitem.Nft{})
		snapshot := u.state
		u.mu.Unlock()
		return snapshot
	}
	if u.state.Wallet.Equals(wallet) {
		// same wallet, nothing to refetch
		snapshot := u.state
		u.mu.Unlock()
		return snapshot
	}
	u.state.Wallet = wallet.ToLower()
	u.mu.Unlock()

	return u.fetch(c, wallet.ToLower())
}

func (u *galleryUseCase) Reload(c bCtx.Ctx) gallery.State {
	u.mu.Lock()
	wallet := u.state.Wallet
	u.mu.Unlock()

	if wallet.IsEmpty() {
		return u.State(c)
	}
	return u.fetch(c, wallet)
}

func (u *galleryUseCase) State(c bCtx.Ctx) gallery.State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// fetch runs one full cycle: publish the loading state, enumerate and
// resolve, then publish the outcome. The lock is not held across network
// calls, so overlapping cycles race and the last writer wins.
func (u *galleryUseCase) fetch(c bCtx.Ctx, wallet domain.Address) gallery.State {
	c = bCtx.WithValues(c, map[string]interface{}{
		"cycle":  uuid.NewString(),
		"wallet": wallet,
	})

	u.mu.Lock()
	u.state.Status = gallery.StatusLoading
	u.state.Loading = true
	u.state.Error = nil
	u.mu.Unlock()

	items, err := u.loadItems(c, wallet)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.Loading = false
	if err != nil {
		c.WithField("err", err).Error("fetch cycle failed")
		u.state.Status = gallery.StatusErrored
		u.state.Error = ptr.String(loadFailedMessage)
		return u.state
	}
	u.state.Status = gallery.StatusLoaded
	u.state.Error = nil
	u.replaceItemsLocked(items)
	return u.state
}

func (u *galleryUseCase) loadItems(c bCtx.Ctx, wallet domain.Address) ([]nftitem.Nft, error) {
	tokenIds, uris, err := u.erc721.TokensOfOwner(c, u.chainId, u.contract, wallet)
	if err != nil {
		return nil, err
	}
	if len(tokenIds) == 0 {
		return []nftitem.Nft{}, nil
	}

	type resolved struct {
		index int
		nft   *nftitem.Nft
	}

	b := goroutines.NewBatch(u.workers, goroutines.WithBatchSize(len(tokenIds)))
	defer b.Close()
	for i := range tokenIds {
		idx := i
		b.Queue(func() (interface{}, error) {
			nft, err := u.metadata.Resolve(c, tokenIds[idx], uris[idx])
			if err != nil {
				// drop the token, keep the gallery
				c.WithFields(log.Fields{
					"tokenId": tokenIds[idx],
					"uri":     uris[idx],
					"err":     err,
				}).Warn("skipping unresolvable token")
				return &resolved{index: idx}, nil
			}
			return &resolved{index: idx, nft: nft}, nil
		})
	}
	b.QueueComplete()

	slots := make([]*nftitem.Nft, len(tokenIds))
	for ret := range b.Results() {
		if ret.Error() != nil {
			return nil, ret.Error()
		}
		r := ret.Value().(*resolved)
		slots[r.index] = r.nft
	}

	items := make([]nftitem.Nft, 0, len(slots))
	for _, nft := range slots {
		if nft != nil {
			items = append(items, *nft)
		}
	}
	return items, nil
}

// replaceItemsLocked swaps Items and bumps Revision only when the new list
// differs, so clients polling Revision skip redundant re-renders.
func (u *galleryUseCase) replaceItemsLocked(items []nftitem.Nft) {
	if reflect.DeepEqual(u.state.Items, items) {
		return
	}
	u.state.Items = items
	u.state.Revision++
}
