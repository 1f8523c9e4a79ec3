package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type Dashboard struct {
	Motorcycle     Motorcycle     `json:"motorcycle"`
	Stats          DashboardStats `json:"stats"`
	RecentActivity RecentActivity `json:"recentActivity"`
}

type DashboardStats struct {
	ServicesThisMonth int64   `json:"servicesThisMonth"`
	TotalServices     int64   `json:"totalServices"`
	TotalEvents       int64   `json:"totalEvents"`
	UpcomingServices  int64   `json:"upcomingServices"`
	TotalExpenses     float64 `json:"totalExpenses"`
	CurrentKilometers int     `json:"currentKilometers"`
}

type RecentActivity struct {
	Services []ServiceActivity `json:"services"`
	Events   []EventActivity   `json:"events"`
}

// Activity is either a ServiceActivity or an EventActivity.
type Activity interface {
	ActivityDate() time.Time
	Kind() string
}

const (
	ActivityService = "service"
	ActivityEvent   = "event"
)

type ServiceActivity struct {
	ID             string              `json:"id"`
	Date           time.Time           `json:"date"`
	Type           ServiceType         `json:"type"`
	MotorcycleName *string             `json:"motorcycleName"`
	Kilometers     int                 `json:"kilometers"`
	Cost           decimal.NullDecimal `json:"cost"`
	ActivityType   string              `json:"activityType" gorm:"-"`
}

func (a ServiceActivity) ActivityDate() time.Time { return a.Date }
func (a ServiceActivity) Kind() string            { return ActivityService }

type EventActivity struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	Type           EventType `json:"type"`
	Title          string    `json:"title"`
	MotorcycleName *string   `json:"motorcycleName"`
	Kilometers     int       `json:"kilometers"`
	ActivityType   string    `json:"activityType" gorm:"-"`
}

func (a EventActivity) ActivityDate() time.Time { return a.Date }
func (a EventActivity) Kind() string            { return ActivityEvent }

// MergeActivity interleaves services and events newest first and keeps at most limit items.
func MergeActivity(services []ServiceActivity, events []EventActivity, limit int) []Activity {
	feed := make([]Activity, 0, len(services)+len(events))
	for _, s := range services {
		s.ActivityType = ActivityService
		feed = append(feed, s)
	}
	for _, e := range events {
		e.ActivityType = ActivityEvent
		feed = append(feed, e)
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].ActivityDate().After(feed[j].ActivityDate())
	})

	if limit >= 0 && len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}
