package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/nftgallery/goapi/base/ctx"
	"github.com/nftgallery/goapi/base/log"
	bValidator "github.com/nftgallery/goapi/base/validator"
	"github.com/nftgallery/goapi/domain"
	"github.com/nftgallery/goapi/domain/keys"
	mmiddleware "github.com/nftgallery/goapi/middleware"
	"github.com/nftgallery/goapi/service/cache"
	"github.com/nftgallery/goapi/service/cache/provider/primitive"
	"github.com/nftgallery/goapi/service/chain"
	"github.com/nftgallery/goapi/service/chain/contract"
	"github.com/nftgallery/goapi/service/ens"
	gallery_delivery "github.com/nftgallery/goapi/stores/gallery/delivery/http"
	gallery_usecase "github.com/nftgallery/goapi/stores/gallery/usecase"
	hc_delivery "github.com/nftgallery/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/nftgallery/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/nftgallery/goapi/stores/healthcheck/usecase"
	metadata_usecase "github.com/nftgallery/goapi/stores/metadata/usecase"
	webresource_repository "github.com/nftgallery/goapi/stores/webresource/repository"
	webresource_usecase "github.com/nftgallery/goapi/stores/webresource/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug()
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init chain service
	networks := viper.Sub("networks")
	netKeys := networks.AllSettings()
	rpcs := make(map[int32]string)
	for k := range netKeys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		rpcs[chainId] = rpcUrl
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls: rpcs,
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	erc721Service := contract.NewErc721(chainService)

	// init web resource readers
	httpTimeout := viper.GetDuration("http.timeout")
	httpReader := webresource_repository.NewHttpReaderRepo(http.Client{}, httpTimeout, nil)
	var ipfsReader domain.WebResourceReaderRepository
	if nodeApi := viper.GetString("ipfs.nodeApi"); len(nodeApi) > 0 {
		ipfsReader = webresource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeApi), httpTimeout)
	} else {
		ipfsReader = webresource_repository.NewIpfsGatewayReaderRepo(http.Client{}, viper.GetString("ipfs.gateway"), httpTimeout)
	}
	dataUriReader := webresource_repository.NewDataUriReaderRepo()
	webResource := webresource_usecase.NewWebResourceUseCase(&webresource_usecase.WebResourceUseCaseCfg{
		HttpReader:    httpReader,
		IpfsReader:    ipfsReader,
		DataUriReader: dataUriReader,
	})

	// init metadata resolver with local cache
	metadataCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("metadata.cacheTtl"),
		Pfx:   keys.PfxMetadata,
		Cache: primitive.NewPrimitive("metadata", viper.GetInt("metadata.cacheSizeMB")),
	})
	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		WebResource:      webResource,
		Cache:            metadataCache,
		IpfsGateway:      viper.GetString("ipfs.gateway"),
		PlaceholderImage: viper.GetString("gallery.placeholderImage"),
	})

	galleryChainId := domain.ChainId(viper.GetInt32("gallery.chainId"))
	galleryUsecase := gallery_usecase.NewGalleryUseCase(&gallery_usecase.GalleryUseCaseCfg{
		Erc721:         erc721Service,
		Metadata:       metadata,
		ChainId:        galleryChainId,
		Contract:       domain.Address(viper.GetString("gallery.contract")).ToLower(),
		ResolveWorkers: viper.GetInt("gallery.resolveWorkers"),
	})

	// ens on ethereum
	var ensService ens.ENS
	if rpc, ok := rpcs[1]; ok && len(rpc) > 0 {
		ensService = ens.New(rpc)
	}

	hcRepo := hc_repo.New(chainService, galleryChainId)
	hc := hc_usecase.New(hcRepo)

	hc_delivery.New(e, hc)
	gallery_delivery.New(e, galleryUsecase, webResource, ensService)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	c, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(c); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
