// Package autobid lowers the price of auto-bidding offers on each bid's own interval.
package autobid

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketbid/internal/domain"
	"github.com/GlebRadaev/marketbid/pkg/money"
)

type Repo interface {
	FindByID(ctx context.Context, bidID string) (*domain.Bid, error)
	FindAutoBidEligible(ctx context.Context, limit uint32) ([]domain.Bid, error)
	DecrementPrice(ctx context.Context, bidID string, current, next decimal.Decimal, keepAutoBid bool, now time.Time) (bool, error)
}

type timer struct {
	cancel   context.CancelFunc
	interval time.Duration
}

type Scheduler struct {
	repo              Repo
	limit             uint32
	reconcileInterval time.Duration
	intervalUnit      time.Duration
	now               func() time.Time

	mu      sync.Mutex
	ctx     context.Context
	stopped bool
	timers  map[string]*timer
	wg      sync.WaitGroup
}

func New(repo Repo, reconcileInterval time.Duration) *Scheduler {
	return &Scheduler{
		repo:              repo,
		limit:             1000,
		reconcileInterval: reconcileInterval,
		intervalUnit:      time.Second,
		now:               time.Now,
		timers:            make(map[string]*timer),
	}
}

// NextPrice returns the price after one decrement and whether the floor was reached.
// The result never drops below floor.
func NextPrice(current, decrement, floor decimal.Decimal) (decimal.Decimal, bool) {
	next := money.Round(current.Sub(decrement))
	if next.LessThanOrEqual(floor) {
		return money.Round(floor), true
	}
	return next, false
}

func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	zap.L().Info("Auto-bid scheduler started")
	s.reconcile(ctx)

	s.wg.Add(1)
	go s.run(ctx)
}

// Wait blocks until the reconcile loop and every bid timer have exited.
// No timer is started once Wait has been called.
func (s *Scheduler) Wait() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.reconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping auto-bid scheduler")
			return
		case <-ticker.C:
			s.reconcile(ctx)
		}
	}
}

// reconcile picks up eligible bids that were never tracked or whose timer stopped.
func (s *Scheduler) reconcile(ctx context.Context) {
	bids, err := s.repo.FindAutoBidEligible(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch auto-bids", zap.Error(err))
		return
	}
	for _, bid := range bids {
		s.Track(bid)
	}
}

// Track starts a timer for the bid unless one with the same interval is already running.
func (s *Scheduler) Track(bid domain.Bid) {
	if !bid.AutoBidActive() || bid.AutoBid.Interval < 1 {
		return
	}
	interval := time.Duration(bid.AutoBid.Interval) * s.intervalUnit

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.ctx == nil || s.ctx.Err() != nil {
		return
	}
	if t, ok := s.timers[bid.ID]; ok {
		if t.interval == interval {
			return
		}
		t.cancel()
	}

	ctx, cancel := context.WithCancel(s.ctx)
	t := &timer{cancel: cancel, interval: interval}
	s.timers[bid.ID] = t

	s.wg.Add(1)
	go s.loop(ctx, bid.ID, t)
}

func (s *Scheduler) Untrack(bidID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[bidID]; ok {
		t.cancel()
		delete(s.timers, bidID)
	}
}

// Tracked reports whether a timer is running for the bid.
func (s *Scheduler) Tracked(bidID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[bidID]
	return ok
}

func (s *Scheduler) release(bidID string, t *timer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.cancel()
	if s.timers[bidID] == t {
		delete(s.timers, bidID)
	}
}

func (s *Scheduler) loop(ctx context.Context, bidID string, t *timer) {
	defer s.wg.Done()
	defer s.release(bidID, t)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.tick(ctx, bidID) {
				return
			}
		}
	}
}

// tick applies one decrement and reports whether the timer should keep running.
func (s *Scheduler) tick(ctx context.Context, bidID string) bool {
	bid, err := s.repo.FindByID(ctx, bidID)
	if err != nil {
		zap.L().Error("Failed to load auto-bid", zap.String("bidID", bidID), zap.Error(err))
		return false
	}
	if bid == nil || !bid.AutoBidActive() {
		return false
	}

	next, done := NextPrice(bid.TotalPrice, bid.AutoBid.Decrement, bid.AutoBid.Floor)
	if ctx.Err() != nil {
		return false
	}
	ok, err := s.repo.DecrementPrice(ctx, bid.ID, bid.TotalPrice, next, !done, s.now())
	if err != nil {
		zap.L().Error("Failed to decrement auto-bid", zap.String("bidID", bidID), zap.Error(err))
		return false
	}
	if !ok {
		zap.L().Debug("Auto-bid changed concurrently", zap.String("bidID", bidID))
		return false
	}
	if done {
		zap.L().Info("Auto-bid reached floor", zap.String("bidID", bidID), zap.String("price", next.String()))
		return false
	}
	return true
}
