package ens

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/nftgallery/goapi/base/ctx"
	"github.com/nftgallery/goapi/base/log"
	"github.com/nftgallery/goapi/domain"
	"github.com/nftgallery/goapi/domain/keys"
	"github.com/nftgallery/goapi/service/cache"
	"github.com/nftgallery/goapi/service/cache/provider/primitive"
	goens "github.com/wealdtech/go-ens/v3"
)

type impl struct {
	client *ethclient.Client
	cache  cache.Service
}

func New(rpc string) ENS {
	client, err := ethclient.Dial(rpc)
	if err != nil {
		panic(err)
	}
	return &impl{
		client,
		cache.New(cache.ServiceConfig{
			Ttl:   30 * time.Minute,
			Pfx:   keys.PfxEns,
			Cache: primitive.NewPrimitive("ens", 64),
		}),
	}
}

func (im *impl) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	res := domain.Address("")
	key := keys.CacheKey("resolve", name)
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		addr, err := goens.Resolve(im.client, name)
		if fmt.Sprint(err) == "unregistered name" {
			val := domain.Address("")
			return &val, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"name": name,
				"err":  err,
			}).Error("failed to goens.Resolve")
			return nil, err
		}
		val := domain.Address(addr.String())
		return &val, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}

	return res, nil
}
