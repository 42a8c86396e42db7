// Package expiry cancels accepted bids whose payment window lapsed.
package expiry

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/marketbid/internal/domain"
)

type Repo interface {
	FindPaymentOverdue(ctx context.Context, now time.Time, limit uint32) ([]domain.Bid, error)
}

type Expirer interface {
	ExpirePayment(ctx context.Context, bid domain.Bid) (bool, error)
}

type Service struct {
	repo           Repo
	expirer        Expirer
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
	now            func() time.Time

	processing sync.Map
	done       chan struct{}
}

func New(repo Repo, expirer Expirer, updateInterval time.Duration) *Service {
	return &Service{
		repo:           repo,
		expirer:        expirer,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: updateInterval,
		now:            time.Now,
		done:           make(chan struct{}),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payment expiry sweeper started")
	go s.run(ctx)
}

// Wait blocks until the sweep loop has stopped and queued expirations are drained.
func (s *Service) Wait() {
	<-s.done
	s.workerPool.Close()
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping expiry sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	bids, err := s.repo.FindPaymentOverdue(ctx, s.now(), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch overdue bids", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, bid := range bids {
		bid := bid

		if _, loaded := s.processing.LoadOrStore(bid.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.processing.Delete(bid.ID)
				_, err := s.expirer.ExpirePayment(ctx, bid)
				return err
			})
			if err != nil {
				s.processing.Delete(bid.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error expiring bids", zap.Error(err))
	}
}
