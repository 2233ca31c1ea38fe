package main

import (
	"context"
	"fmt"

	"github.com/rgladkov/shopcheckout/internal/adapter/auth"
	"github.com/rgladkov/shopcheckout/internal/adapter/config"
	"github.com/rgladkov/shopcheckout/internal/adapter/gateway/paypal"
	"github.com/rgladkov/shopcheckout/internal/adapter/handler/http"
	"github.com/rgladkov/shopcheckout/internal/adapter/logger"
	"github.com/rgladkov/shopcheckout/internal/adapter/queue"
	"github.com/rgladkov/shopcheckout/internal/adapter/storage"
	"github.com/rgladkov/shopcheckout/internal/adapter/storage/repository"
	"github.com/rgladkov/shopcheckout/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	gateway, err := paypal.NewClient(conf.Gateway, log.Named("Gateway"))
	if err != nil {
		log.Error("payment gateway client creating error", zap.Error(err))
		return
	}

	tasks, err := queue.NewRedisQueue(ctx, conf.Redis, log.Named("Queue"))
	if err != nil {
		log.Error("task queue creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, gateway, tasks, conf.Checkout.TTL, log.Named("Service"))
	if err != nil {
		log.Error("checkout service creating error", zap.Error(err))
		return
	}

	svc.StartReaper(ctx, conf.Checkout.ReaperInterval)
	tasks.StartCleanupWorker(ctx, svc)

	checkoutHandler, err := http.NewCheckoutHandler(svc, log.Named("Checkout handler"))
	if err != nil {
		log.Error("checkout handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, checkoutHandler, orderHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
