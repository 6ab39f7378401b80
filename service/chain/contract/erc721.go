package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/nftgallery/goapi/base/abi"
	bCtx "github.com/nftgallery/goapi/base/ctx"
	"github.com/nftgallery/goapi/base/log"
	"github.com/nftgallery/goapi/domain"
	"github.com/nftgallery/goapi/service/chain"
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"
)

const defaultEnumerateWorkers = 8

type Erc721 struct {
	chainService      chain.Client
	abi               ethabi.ABI
	erc721InterfaceId [4]byte
	workers           int
}

func NewErc721(chainService chain.Client) *Erc721 {
	var interfaceId [4]byte
	copy(interfaceId[:], common.Hex2Bytes("80ac58cd"))
	return &Erc721{
		abi:               baseabi.ERC721TokenABI,
		chainService:      chainService,
		erc721InterfaceId: interfaceId,
		workers:           defaultEnumerateWorkers,
	}
}

func (e *Erc721) Supports721Interface(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address) (bool, error) {
	method := "supportsInterface"
	unpacked, err := e.chainService.Call(ctx, int32(chainId), common.HexToAddress(addr.ToLowerStr()), e.abi, method, e.erc721InterfaceId)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) BalanceOf(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, owner domain.Address) (*big.Int, error) {
	method := "balanceOf"
	unpacked, err := e.chainService.Call(ctx, int32(chainId), common.HexToAddress(addr.ToLowerStr()), e.abi, method, common.HexToAddress(owner.ToLowerStr()))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc721) TokenOfOwnerByIndex(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, owner domain.Address, index *big.Int) (*big.Int, error) {
	method := "tokenOfOwnerByIndex"
	unpacked, err := e.chainService.Call(ctx, int32(chainId), common.HexToAddress(addr.ToLowerStr()), e.abi, method, common.HexToAddress(owner.ToLowerStr()), index)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc721) TokenURI(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId *big.Int) (string, error) {
	method := "tokenURI"
	unpacked, err := e.chainService.Call(ctx, int32(chainId), common.HexToAddress(addr.ToLowerStr()), e.abi, method, tokenId)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

type ownedToken struct {
	index   int
	tokenId domain.TokenId
	uri     string
}

// TokensOfOwner enumerates the owner's tokens and reads each token URI.
// Per-index reads run concurrently; results keep enumeration order. Any
// failed read fails the whole call since a partial id list would misreport
// the wallet's holdings.
func (e *Erc721) TokensOfOwner(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, owner domain.Address) ([]domain.TokenId, []string, error) {
	balance, err := e.BalanceOf(ctx, chainId, contract, owner)
	if err != nil {
		ctx.WithFields(log.Fields{
			"contract": contract,
			"owner":    owner,
			"err":      err,
		}).Error("BalanceOf failed")
		return nil, nil, err
	}

	count := int(balance.Int64())
	if count == 0 {
		return []domain.TokenId{}, []string{}, nil
	}

	b := goroutines.NewBatch(e.workers, goroutines.WithBatchSize(count))
	defer b.Close()
	for i := 0; i < count; i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			tokenId, err := e.TokenOfOwnerByIndex(ctx, chainId, contract, owner, big.NewInt(int64(idx)))
			if err != nil {
				return nil, xerrors.Errorf("tokenOfOwnerByIndex %d: %w", idx, err)
			}
			uri, err := e.TokenURI(ctx, chainId, contract, tokenId)
			if err != nil {
				return nil, xerrors.Errorf("tokenURI %s: %w", tokenId, err)
			}
			return &ownedToken{index: idx, tokenId: domain.TokenId(tokenId.String()), uri: uri}, nil
		})
	}
	b.QueueComplete()

	tokens := make([]*ownedToken, count)
	for ret := range b.Results() {
		if ret.Error() != nil {
			ctx.WithFields(log.Fields{
				"contract": contract,
				"owner":    owner,
				"err":      ret.Error(),
			}).Error("token enumeration failed")
			return nil, nil, ret.Error()
		}
		t := ret.Value().(*ownedToken)
		tokens[t.index] = t
	}

	tokenIds := make([]domain.TokenId, count)
	uris := make([]string, count)
	for i, t := range tokens {
		tokenIds[i] = t.tokenId
		uris[i] = t.uri
	}
	return tokenIds, uris, nil
}
