package usecase

import (
	"testing"

	bCtx "github.com/nftgallery/goapi/base/ctx"
	"github.com/nftgallery/goapi/domain"
	"github.com/nftgallery/goapi/domain/gallery"
	"github.com/nftgallery/goapi/domain/mocks"
	"github.com/nftgallery/goapi/domain/nftitem"
	metadatausecase "github.com/nftgallery/goapi/stores/metadata/usecase"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

const (
	testChainId  = domain.ChainId(1)
	testContract = domain.Address("0x2953399124f0cbb46d2cbacd8a89cf0599974963")
	testWallet   = domain.Address("0x7c0d186f5acbd5cda1c8d2b47654cf03c03c5f33")
)

func newGalleryUseCase(erc721 domain.Erc721Reader, metadata domain.MetadataUseCase) gallery.UseCase {
	return NewGalleryUseCase(&GalleryUseCaseCfg{
		Erc721:   erc721,
		Metadata: metadata,
		ChainId:  testChainId,
		Contract: testContract,
	})
}

func TestSetWalletEmptyMakesNoCalls(t *testing.T) {
	req := require.New(t)
	erc721 := &mocks.Erc721Reader{}
	metadata := &mocks.MetadataUseCase{}

	u := newGalleryUseCase(erc721, metadata)
	state := u.SetWallet(bCtx.Background(), "")

	req.Equal(gallery.StatusNotConnected, state.Status)
	req.Empty(state.Items)
	req.False(state.Loading)
	req.Nil(state.Error)
	erc721.AssertNotCalled(t, "TokensOfOwner", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	metadata.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetWalletLoadsItemsInOrder(t *testing.T) {
	req := require.New(t)
	erc721 := &mocks.Erc721Reader{}
	erc721.On("TokensOfOwner", mock.Anything, testChainId, testContract, testWallet).
		Return([]domain.TokenId{"7", "3"}, []string{"https://example.com/7", "https://example.com/3"}, nil)

	metadata := &mocks.MetadataUseCase{}
	metadata.On("Resolve", mock.Anything, domain.TokenId("7"), "https://example.com/7").
		Return(&nftitem.Nft{Id: "7", Name: "Cat#7"}, nil)
	metadata.On("Resolve", mock.Anything, domain.TokenId("3"), "https://example.com/3").
		Return(&nftitem.Nft{Id: "3", Name: "Cat#3"}, nil)

	u := newGalleryUseCase(erc721, metadata)
	state := u.SetWallet(bCtx.Background(), testWallet)

	req.Equal(gallery.StatusLoaded, state.Status)
	req.Len(state.Items, 2)
	req.Equal("7", state.Items[0].Id)
	req.Equal("3", state.Items[1].Id)
	req.Equal(int64(1), state.Revision)
}

func TestSetWalletDropsUnresolvableTokens(t *testing.T) {
	req := require.New(t)
	erc721 := &mocks.Erc721Reader{}
	erc721.On("TokensOfOwner", mock.Anything, testChainId, testContract, testWallet).
		Return([]domain.TokenId{"1", "2"}, []string{"a", "b"}, nil)

	webResource := &mocks.WebResourceUseCase{}
	webResource.On("GetJson", mock.Anything, "a").Return(nil, xerrors.New("504"))
	webResource.On("GetJson", mock.Anything, "b").Return([]byte(`{"name":"Cat#2","image":"ipfs://imgb"}`), nil)
	metadata := metadatausecase.NewMetadataUseCase(&metadatausecase.MetadataUseCaseCfg{
		WebResource:      webResource,
		IpfsGateway:      "https://gateway.pinata.cloud/ipfs",
		PlaceholderImage: "https://static.example.com/placeholder.png",
	})

	u := newGalleryUseCase(erc721, metadata)
	state := u.SetWallet(bCtx.Background(), testWallet)

	req.Equal(gallery.StatusLoaded, state.Status)
	req.Equal([]nftitem.Nft{
		{
			Id:          "2",
			Name:        "Cat#2",
			Description: nftitem.DefaultDescription,
			Image:       "https://gateway.pinata.cloud/ipfs/imgb",
			Attributes:  nftitem.Attributes{},
		},
	}, state.Items)
}

func TestFetchFailureKeepsPreviousItems(t *testing.T) {
	req := require.New(t)
	erc721 := &mocks.Erc721Reader{}
	erc721.On("TokensOfOwner", mock.Anything, testChainId, testContract, testWallet).
		Return([]domain.TokenId{"1"}, []string{"https://example.com/1"}, nil).Once()
	erc721.On("TokensOfOwner", mock.Anything, testChainId, testContract, testWallet).
		Return(nil, nil, xerrors.New("rpc down")).Once()

	metadata := &mocks.MetadataUseCase{}
	metadata.On("Resolve", mock.Anything, domain.TokenId("1"), "https://example.com/1").
		Return(&nftitem.Nft{Id: "1", Name: "Cat#1"}, nil)

	u := newGalleryUseCase(erc721, metadata)
	ctx := bCtx.Background()

	loaded := u.SetWallet(ctx, testWallet)
	req.Equal(gallery.StatusLoaded, loaded.Status)

	errored := u.Reload(ctx)
	req.Equal(gallery.StatusErrored, errored.Status)
	req.NotNil(errored.Error)
	req.Equal(loadFailedMessage, *errored.Error)
	// the raw upstream error never leaks to clients
	req.NotContains(*errored.Error, "rpc down")
	req.Equal(loaded.Items, errored.Items)
	req.Equal(loaded.Revision, errored.Revision)
}

func TestReloadSkipsRedundantPublish(t *testing.T) {
	req := require.New(t)
	erc721 := &mocks.Erc721Reader{}
	erc721.On("TokensOfOwner", mock.Anything, testChainId, testContract, testWallet).
		Return([]domain.TokenId{"1"}, []string{"https://example.com/1"}, nil)

	metadata := &mocks.MetadataUseCase{}
	metadata.On("Resolve", mock.Anything, domain.TokenId("1"), "https://example.com/1").
		Return(&nftitem.Nft{Id: "1", Name: "Cat#1"}, nil)

	u := newGalleryUseCase(erc721, metadata)
	ctx := bCtx.Background()

	first := u.SetWallet(ctx, testWallet)
	req.Equal(int64(1), first.Revision)

	second := u.Reload(ctx)
	req.Equal(gallery.StatusLoaded, second.Status)
	req.Equal(int64(1), second.Revision)
	req.Equal(first.Items, second.Items)
}

func TestSetWalletSameWalletDoesNotRefetch(t *testing.T) {
	erc721 := &mocks.Erc721Reader{}
	erc721.On("TokensOfOwner", mock.Anything, testChainId, testContract, testWallet).
		Return([]domain.TokenId{}, []string{}, nil)

	metadata := &mocks.MetadataUseCase{}
	u := newGalleryUseCase(erc721, metadata)
	ctx := bCtx.Background()

	u.SetWallet(ctx, testWallet)
	// same identity, different casing
	u.SetWallet(ctx, domain.Address("0x7C0D186F5ACBD5CDA1C8D2B47654CF03C03C5F33"))

	erc721.AssertNumberOfCalls(t, "TokensOfOwner", 1)
}

func TestSetWalletSwitchingWalletRefetches(t *testing.T) {
	req := require.New(t)
	other := domain.Address("0x90f79bf6eb2c4f870365e785982e1f101e93b906")

	erc721 := &mocks.Erc721Reader{}
	erc721.On("TokensOfOwner", mock.Anything, testChainId, testContract, testWallet).
		Return([]domain.TokenId{"1"}, []string{"https://example.com/1"}, nil)
	erc721.On("TokensOfOwner", mock.Anything, testChainId, testContract, other).
		Return([]domain.TokenId{}, []string{}, nil)

	metadata := &mocks.MetadataUseCase{}
	metadata.On("Resolve", mock.Anything, domain.TokenId("1"), "https://example.com/1").
		Return(&nftitem.Nft{Id: "1", Name: "Cat#1"}, nil)

	u := newGalleryUseCase(erc721, metadata)
	ctx := bCtx.Background()

	first := u.SetWallet(ctx, testWallet)
	req.Len(first.Items, 1)
	req.Equal(int64(1), first.Revision)

	second := u.SetWallet(ctx, other)
	req.Equal(gallery.StatusLoaded, second.Status)
	req.Empty(second.Items)
	req.Equal(int64(2), second.Revision)

	// disconnecting clears the view
	third := u.SetWallet(ctx, "")
	req.Equal(gallery.StatusNotConnected, third.Status)
	req.Empty(third.Items)
	req.Equal(int64(2), third.Revision)
}

func TestStateReturnsSnapshotWithoutSideEffects(t *testing.T) {
	req := require.New(t)
	erc721 := &mocks.Erc721Reader{}
	metadata := &mocks.MetadataUseCase{}

	u := newGalleryUseCase(erc721, metadata)
	state := u.State(bCtx.Background())

	req.Equal(gallery.StatusNotConnected, state.Status)
	req.Equal(int64(0), state.Revision)
	erc721.AssertNotCalled(t, "TokensOfOwner", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
