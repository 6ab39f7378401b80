package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestErc721Abi(t *testing.T) {
	req := require.New(t)

	for _, method := range []string{"supportsInterface", "balanceOf", "ownerOf", "tokenOfOwnerByIndex", "tokenURI"} {
		_, ok := ERC721TokenABI.Methods[method]
		req.True(ok, method)
	}

	owner := common.HexToAddress("0xb47e3cd837ddf8e4c57f05d70ab865de6e193bbb")

	_, err := ERC721TokenABI.Pack("balanceOf", owner)
	req.NoError(err)

	_, err = ERC721TokenABI.Pack("tokenOfOwnerByIndex", owner, big.NewInt(0))
	req.NoError(err)

	_, err = ERC721TokenABI.Pack("tokenURI", big.NewInt(1))
	req.NoError(err)
}
