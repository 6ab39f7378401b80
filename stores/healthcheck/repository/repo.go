package repository

import (
	"time"

	"github.com/nftgallery/goapi/base/ctx"
	"github.com/nftgallery/goapi/domain"
	hcdomain "github.com/nftgallery/goapi/domain/healthcheck"
	"github.com/nftgallery/goapi/service/chain"
)

type impl struct {
	chainClient chain.Client
	chainId     domain.ChainId
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(chainClient chain.Client, chainId domain.ChainId) hcdomain.HealthCheckRepo {
	return &impl{
		chainClient: chainClient,
		chainId:     chainId,
	}
}

func (im *impl) PingRpc(context ctx.Ctx) error {
	c, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if _, err := im.chainClient.LatestBlockNumber(c, int32(im.chainId)); err != nil {
		context.WithField("err", err).Error("ping rpc error")
		return err
	}
	return nil
}
