package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"motolog-api/models"
	"motolog-api/repositories"
)

const recentActivityLimit = 5

// DashboardService builds the summary and activity feed shown on the dashboard.
type DashboardService struct {
	dashboard   *repositories.DashboardRepository
	motorcycles *repositories.MotorcycleRepository
	garage      *GarageService
	now         func() time.Time
}

// NewDashboardService returns a DashboardService reading the motorcycle managed by garage.
func NewDashboardService(dashboard *repositories.DashboardRepository, motorcycles *repositories.MotorcycleRepository, garage *GarageService) *DashboardService {
	return &DashboardService{
		dashboard:   dashboard,
		motorcycles: motorcycles,
		garage:      garage,
		now:         time.Now,
	}
}

// WithClock replaces the clock used for the "this month" window.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// Build bootstraps the motorcycle and assembles the dashboard. The statistics are
// queried concurrently; the first failing query cancels the others.
func (s *DashboardService) Build(ctx context.Context, ownerID string) (*models.Dashboard, error) {
	if err := s.garage.EnsureMotorcycle(ctx, ownerID); err != nil {
		return nil, err
	}

	id := s.garage.MotorcycleID()
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var (
		motorcycle                                 *models.Motorcycle
		servicesThisMonth, totalServices           int64
		totalEvents, upcomingServices              int64
		serviceCosts, eventCosts, modificationCost decimal.Decimal
		recentServices                             []models.ServiceActivity
		recentEvents                               []models.EventActivity
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		motorcycle, err = s.motorcycles.FindByID(gctx, id)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	})
	g.Go(func() (err error) {
		servicesThisMonth, err = s.dashboard.CountServicesBetween(gctx, id, monthStart.UTC(), now.UTC())
		return err
	})
	g.Go(func() (err error) {
		totalServices, err = s.dashboard.CountServices(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		totalEvents, err = s.dashboard.CountEvents(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		serviceCosts, err = s.dashboard.SumServiceCosts(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		eventCosts, err = s.dashboard.SumEventCosts(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		modificationCost, err = s.dashboard.SumModificationCosts(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		upcomingServices, err = s.dashboard.CountUpcomingServices(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		recentServices, err = s.dashboard.RecentServices(gctx, id, recentActivityLimit)
		return err
	})
	g.Go(func() (err error) {
		recentEvents, err = s.dashboard.RecentEvents(gctx, id, recentActivityLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if motorcycle == nil {
		fallback := s.garage.Profile().NewMotorcycle(ownerID)
		motorcycle = &fallback
	}

	for i := range recentServices {
		recentServices[i].ActivityType = models.ActivityService
	}
	for i := range recentEvents {
		recentEvents[i].ActivityType = models.ActivityEvent
	}

	total := serviceCosts.Add(eventCosts).Add(modificationCost)

	return &models.Dashboard{
		Motorcycle: *motorcycle,
		Stats: models.DashboardStats{
			ServicesThisMonth: servicesThisMonth,
			TotalServices:     totalServices,
			TotalEvents:       totalEvents,
			UpcomingServices:  upcomingServices,
			TotalExpenses:     total.InexactFloat64(),
			CurrentKilometers: motorcycle.CurrentKilometers,
		},
		RecentActivity: models.RecentActivity{
			Services: recentServices,
			Events:   recentEvents,
		},
	}, nil
}

// Activity returns the most recent services and events as one feed, newest first.
func (s *DashboardService) Activity(ctx context.Context, ownerID string) ([]models.Activity, error) {
	if err := s.garage.EnsureMotorcycle(ctx, ownerID); err != nil {
		return nil, err
	}

	id := s.garage.MotorcycleID()
	var (
		recentServices []models.ServiceActivity
		recentEvents   []models.EventActivity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		recentServices, err = s.dashboard.RecentServices(gctx, id, recentActivityLimit)
		return err
	})
	g.Go(func() (err error) {
		recentEvents, err = s.dashboard.RecentEvents(gctx, id, recentActivityLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return models.MergeActivity(recentServices, recentEvents, recentActivityLimit), nil
}
