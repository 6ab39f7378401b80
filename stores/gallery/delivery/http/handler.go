package http

import (
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	bCtx "github.com/nftgallery/goapi/base/ctx"
	"github.com/nftgallery/goapi/base/delivery"
	"github.com/nftgallery/goapi/base/validator"
	"github.com/nftgallery/goapi/domain"
	"github.com/nftgallery/goapi/domain/gallery"
	"github.com/nftgallery/goapi/service/ens"
)

type handler struct {
	gallery     gallery.UseCase
	webResource domain.WebResourceUseCase
	ens         ens.ENS
}

// New registers the gallery routes. The ens service may be nil, in which
// case wallets must be supplied as hex addresses.
func New(e *echo.Echo, gu gallery.UseCase, webResource domain.WebResourceUseCase, ens ens.ENS) {
	h := &handler{
		gallery:     gu,
		webResource: webResource,
		ens:         ens,
	}
	g := e.Group("/gallery")
	g.GET("", h.getGallery)
	g.GET("/state", h.getState)
	g.POST("/reload", h.reload)

	e.GET("/image-proxy", h.imageProxy)
}

func (h *handler) getGallery(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	wallet := c.QueryParam("wallet")
	if len(wallet) == 0 {
		return delivery.MakeJsonResp(c, http.StatusOK, h.gallery.SetWallet(ctx, ""))
	}

	addr, err := h.resolveWallet(ctx, wallet)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, h.gallery.SetWallet(ctx, addr))
}

func (h *handler) getState(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	return delivery.MakeJsonResp(c, http.StatusOK, h.gallery.State(ctx))
}

func (h *handler) reload(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	return delivery.MakeJsonResp(c, http.StatusOK, h.gallery.Reload(ctx))
}

func (h *handler) resolveWallet(ctx bCtx.Ctx, wallet string) (domain.Address, error) {
	if validator.IsValidAddress(wallet) {
		return domain.Address(wallet), nil
	}
	if h.ens != nil && strings.Contains(wallet, ".") {
		addr, err := h.ens.Resolve(ctx, wallet)
		if err != nil {
			return "", domain.ErrInvalidAddress
		}
		if addr == domain.EmptyAddress || addr.IsEmpty() {
			return "", domain.ErrInvalidAddress
		}
		return addr, nil
	}
	return "", domain.ErrInvalidAddress
}

func (h *handler) imageProxy(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	url := c.QueryParam("url")
	if len(url) == 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	data, err := h.webResource.Get(ctx, url)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
	}

	return c.Blob(http.StatusOK, mimetype.Detect(data).String(), data)
}
