package service

import (
	"time"

	"github.com/rgladkov/shopcheckout/internal/core/port"
	"go.uber.org/zap"
)

type Service struct {
	repo    port.Repository
	gateway port.PaymentGateway
	queue   port.TaskQueue
	ttl     time.Duration
	logger  *zap.Logger
}

func NewService(repo port.Repository, gateway port.PaymentGateway,
	queue port.TaskQueue, ttl time.Duration, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:    repo,
		gateway: gateway,
		queue:   queue,
		ttl:     ttl,
		logger:  logger,
	}, nil
}
