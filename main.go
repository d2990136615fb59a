package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"postpilot/infrastructure/billing"
	"postpilot/infrastructure/cache"
	"postpilot/infrastructure/clients/googlephotos"
	"postpilot/infrastructure/clients/tiktok"
	"postpilot/infrastructure/configuration"
	"postpilot/infrastructure/logger"
	"postpilot/infrastructure/persistence"
	"postpilot/infrastructure/tokenstore"
	httpHandler "postpilot/interfaces/http"
	"postpilot/server"
	"postpilot/usecase"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")
	configuration.Load()
	conf := configuration.C

	cookieStore := tokenstore.NewCookieStore()

	tiktokProvider := tiktok.NewOAuthProvider(
		conf.OAuth.TikTok.ClientID,
		conf.OAuth.TikTok.ClientSecret,
		conf.OAuth.TikTok.RedirectURI,
	)
	googleProvider := googlephotos.NewOAuthProvider(
		conf.OAuth.Google.ClientID,
		conf.OAuth.Google.ClientSecret,
		conf.OAuth.Google.RedirectURI,
	)
	logger.GetLogger().
		WithField("tiktokConfigured", tiktokProvider.Configured()).
		WithField("googleConfigured", googleProvider.Configured()).
		Info("Provider configuration state")

	integrationUC := usecase.NewIntegrationUseCase(tiktok.NewClient(), googlephotos.NewClient())
	if conf.RedisClient.Host != "" {
		redisClient, err := cache.NewCache(
			ctx,
			fmt.Sprintf("%s:%s", conf.RedisClient.Host, conf.RedisClient.Port),
			conf.RedisClient.Username,
			conf.RedisClient.Password,
		)
		if err == nil {
			integrationUC.WithCache(cache.NewIntegrationCache(redisClient))
			logger.GetLogger().Info("Redis response cache enabled")
		}
	}

	var billingUC usecase.IBillingUseCase
	if conf.Billing.StripeSecretKey != "" {
		billingUC = usecase.NewBillingUseCase(billing.NewStripeCheckout(conf.Billing.StripeSecretKey), conf.Billing.Prices)
	} else {
		logger.GetLogger().Warn("Stripe secret key not configured - checkout will fail closed")
		billingUC = usecase.NewBillingUseCase(nil, conf.Billing.Prices)
	}

	postUC := usecase.NewPostUseCase(persistence.NewPostRepository())
	mediaUC := usecase.NewMediaUseCase(persistence.NewMediaRepository())

	router := server.InitiateRouter(
		httpHandler.NewOAuthHandler(cookieStore, tiktokProvider, googleProvider),
		httpHandler.NewIntegrationHandler(integrationUC, cookieStore),
		httpHandler.NewPostHandler(postUC),
		httpHandler.NewMediaHandler(mediaUC),
		httpHandler.NewBillingHandler(billingUC),
		httpHandler.NewDashboardHandler(),
		conf.App.SecretKey,
	)

	port := conf.App.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
