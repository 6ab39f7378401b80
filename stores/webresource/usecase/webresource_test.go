package usecase

import (
	"testing"

	bCtx "github.com/nftgallery/goapi/base/ctx"
	"github.com/nftgallery/goapi/domain"
	"github.com/nftgallery/goapi/domain/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func newUseCase() (*mocks.WebResourceReaderRepository, *mocks.WebResourceReaderRepository, *mocks.WebResourceReaderRepository, domain.WebResourceUseCase) {
	httpReader := &mocks.WebResourceReaderRepository{}
	ipfsReader := &mocks.WebResourceReaderRepository{}
	dataUriReader := &mocks.WebResourceReaderRepository{}
	u := NewWebResourceUseCase(&WebResourceUseCaseCfg{
		HttpReader:    httpReader,
		IpfsReader:    ipfsReader,
		DataUriReader: dataUriReader,
	})
	return httpReader, ipfsReader, dataUriReader, u
}

func TestGetDispatchesByScheme(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	httpReader, ipfsReader, dataUriReader, u := newUseCase()
	httpReader.On("Get", mock.Anything, "https://example.com/1").Return([]byte("h"), nil)
	ipfsReader.On("Get", mock.Anything, "QmHash/1").Return([]byte("i"), nil)
	dataUriReader.On("Get", mock.Anything, "data:,x").Return([]byte("d"), nil)

	b, err := u.Get(ctx, "https://example.com/1")
	req.NoError(err)
	req.Equal([]byte("h"), b)

	b, err = u.Get(ctx, "ipfs://QmHash/1")
	req.NoError(err)
	req.Equal([]byte("i"), b)

	b, err = u.Get(ctx, "data:,x")
	req.NoError(err)
	req.Equal([]byte("d"), b)

	_, err = u.Get(ctx, "ftp://example.com/1")
	req.Equal(domain.ErrUnsupportedSchema, err)
}

func TestGetTrimsDoubleIpfsPrefix(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	_, ipfsReader, _, u := newUseCase()
	ipfsReader.On("Get", mock.Anything, "QmHash/1").Return([]byte("i"), nil)

	b, err := u.Get(ctx, "ipfs://ipfs/QmHash/1")
	req.NoError(err)
	req.Equal([]byte("i"), b)
}

func TestGetFallsBackToIpfs(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	httpReader, ipfsReader, _, u := newUseCase()
	gatewayUrl := "https://gateway.pinata.cloud/ipfs/QmHash/1"
	httpReader.On("Get", mock.Anything, gatewayUrl).Return(nil, xerrors.New("504"))
	ipfsReader.On("Get", mock.Anything, "QmHash/1").Return([]byte("i"), nil)

	b, err := u.Get(ctx, gatewayUrl)
	req.NoError(err)
	req.Equal([]byte("i"), b)
}

func TestGetJsonRejectsInvalidJson(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	httpReader, _, _, u := newUseCase()
	httpReader.On("Get", mock.Anything, "https://example.com/html").Return([]byte("<html>"), nil)
	httpReader.On("Get", mock.Anything, "https://example.com/json").Return([]byte(`{"a":1}`), nil)

	_, err := u.GetJson(ctx, "https://example.com/html")
	req.Equal(domain.ErrInvalidJsonFormat, err)

	b, err := u.GetJson(ctx, "https://example.com/json")
	req.NoError(err)
	req.Equal([]byte(`{"a":1}`), b)
}
