package healthcheck

import (
	"github.com/nftgallery/goapi/base/ctx"
)

type HealthCheckUsecase interface {
	Check(ctx.Ctx) error
}

type HealthCheckRepo interface {
	PingRpc(ctx.Ctx) error
}
