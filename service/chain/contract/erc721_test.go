package contract

import (
	"fmt"
	"math/big"
	"testing"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	bCtx "github.com/nftgallery/goapi/base/ctx"
	"github.com/nftgallery/goapi/domain"
	"github.com/nftgallery/goapi/service/chain"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

// fakeChainClient serves canned erc721 reads for a wallet holding ids 7,3,11
// in enumeration order
type fakeChainClient struct {
	failTokenURIFor string
}

var _ chain.Client = (*fakeChainClient)(nil)

func (f *fakeChainClient) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, _ ethabi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	switch method {
	case "balanceOf":
		return []interface{}{big.NewInt(3)}, nil
	case "tokenOfOwnerByIndex":
		ids := []int64{7, 3, 11}
		idx := params[1].(*big.Int).Int64()
		return []interface{}{big.NewInt(ids[idx])}, nil
	case "tokenURI":
		id := params[0].(*big.Int).String()
		if id == f.failTokenURIFor {
			return nil, xerrors.New("execution reverted")
		}
		return []interface{}{fmt.Sprintf("ipfs://meta/%s", id)}, nil
	}
	return nil, xerrors.Errorf("unexpected method %s", method)
}

func (f *fakeChainClient) LatestBlockNumber(ctx bCtx.Ctx, chainId int32) (uint64, error) {
	return 1, nil
}

func TestTokensOfOwnerKeepsEnumerationOrder(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	e := NewErc721(&fakeChainClient{})
	ids, uris, err := e.TokensOfOwner(ctx, 1, "0xcontract", "0xowner")
	req.NoError(err)
	req.Equal([]domain.TokenId{"7", "3", "11"}, ids)
	req.Equal([]string{"ipfs://meta/7", "ipfs://meta/3", "ipfs://meta/11"}, uris)
}

func TestTokensOfOwnerFailsWhole(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	e := NewErc721(&fakeChainClient{failTokenURIFor: "3"})
	ids, uris, err := e.TokensOfOwner(ctx, 1, "0xcontract", "0xowner")
	req.Error(err)
	req.Nil(ids)
	req.Nil(uris)
}
