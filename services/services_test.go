package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"motolog-api/models"
	"motolog-api/repositories"
	"motolog-api/services"
	"motolog-api/testutil"
	"motolog-api/utils"
)

type fixture struct {
	db            *gorm.DB
	garage        *services.GarageService
	services      *services.ServiceRecordService
	events        *services.EventService
	modifications *services.ModificationService
	dashboard     *services.DashboardService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewDB(t)
	motorcycles := repositories.NewMotorcycleRepository(db)
	garage := services.NewGarageService(motorcycles, models.DefaultMotorcycleProfile(), "default-user")

	return fixture{
		db:            db,
		garage:        garage,
		services:      services.NewServiceRecordService(repositories.NewServiceRepository(db), garage),
		events:        services.NewEventService(repositories.NewEventRepository(db), garage),
		modifications: services.NewModificationService(repositories.NewModificationRepository(db), garage),
		dashboard:     services.NewDashboardService(repositories.NewDashboardRepository(db), motorcycles, garage),
	}
}

func payload(t *testing.T, body map[string]interface{}) utils.Payload {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	var p utils.Payload
	require.NoError(t, json.Unmarshal(raw, &p))
	return p
}

func TestGarageService_EnsureMotorcycleUsesFallbackOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.garage.EnsureMotorcycle(ctx, ""))
	require.NoError(t, f.garage.EnsureMotorcycle(ctx, "someone-else"))

	motorcycle, err := f.garage.GetMotorcycle(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", motorcycle.ID)
	assert.Equal(t, "default-user", motorcycle.UserID)
	assert.Equal(t, 0, motorcycle.CurrentKilometers)
	require.NotNil(t, motorcycle.EngineSize)
	assert.Equal(t, 948, *motorcycle.EngineSize)
}

func TestGarageService_UpdateMotorcycleIgnoresOtherFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	updated, err := f.garage.UpdateMotorcycle(ctx, "", payload(t, map[string]interface{}{
		"licensePlate":      "B 1234 XYZ",
		"currentKilometers": "1500",
		"name":              "Renamed",
		"brand":             "Honda",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Nyiu", updated.Name)
	assert.Equal(t, "Kawasaki", updated.Brand)
	assert.Equal(t, 1500, updated.CurrentKilometers)
	require.NotNil(t, updated.LicensePlate)
	assert.Equal(t, "B 1234 XYZ", *updated.LicensePlate)

	blank, err := f.garage.UpdateMotorcycle(ctx, "", payload(t, map[string]interface{}{"licensePlate": ""}))
	require.NoError(t, err)
	require.NotNil(t, blank.LicensePlate)
	assert.Equal(t, "", *blank.LicensePlate)

	cleared, err := f.garage.UpdateMotorcycle(ctx, "", payload(t, map[string]interface{}{"licensePlate": nil}))
	require.NoError(t, err)
	assert.Nil(t, cleared.LicensePlate)
	assert.Equal(t, 1500, cleared.CurrentKilometers)

	_, err = f.garage.UpdateMotorcycle(ctx, "", payload(t, map[string]interface{}{"currentKilometers": "lots"}))
	var validationErr *services.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestServiceRecordService_CreateValidates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.services.Create(ctx, "", payload(t, map[string]interface{}{"date": "2025-01-01", "kilometers": ""}))
	var validationErr *services.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"kilometers", "type"}, validationErr.Fields)
	assert.Equal(t, "Missing required fields: kilometers, type", validationErr.Message)

	_, err = f.services.Create(ctx, "", payload(t, map[string]interface{}{"date": "2025-01-01", "kilometers": 10, "type": "wash"}))
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"type"}, validationErr.Fields)

	_, err = f.services.Create(ctx, "", payload(t, map[string]interface{}{"date": "yesterday", "kilometers": 10, "type": "repair"}))
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"date"}, validationErr.Fields)

	var count int64
	require.NoError(t, f.db.Model(&models.Service{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestServiceRecordService_CreateCoercesNumbers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	service, err := f.services.Create(ctx, "", payload(t, map[string]interface{}{
		"date":          "2025-01-01",
		"kilometers":    "5000",
		"type":          "oil_change",
		"cost":          "12.5",
		"nextServiceKm": 11000,
		"motorcycleId":  "someone-elses-bike",
	}))
	require.NoError(t, err)
	assert.Equal(t, 5000, service.Kilometers)
	assert.True(t, service.Cost.Valid)
	assert.Equal(t, "12.5", service.Cost.Decimal.String())
	require.NotNil(t, service.NextServiceKm)
	assert.Equal(t, 11000, *service.NextServiceKm)
	assert.Equal(t, f.garage.MotorcycleID(), service.MotorcycleID)

	motorcycle, err := f.garage.GetMotorcycle(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 5000, motorcycle.CurrentKilometers)
}

func TestServiceRecordService_UpdateMergesFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.services.Create(ctx, "", payload(t, map[string]interface{}{
		"date":        "2025-01-01",
		"kilometers":  1000,
		"type":        "oil_change",
		"description": "Motul 7100",
		"location":    "Home garage",
	}))
	require.NoError(t, err)

	updated, err := f.services.Update(ctx, created.ID, payload(t, map[string]interface{}{
		"kilometers":   9000,
		"description":  nil,
		"type":         "",
		"motorcycleId": "another",
	}))
	require.NoError(t, err)
	assert.Equal(t, 9000, updated.Kilometers)
	assert.Equal(t, models.ServiceOilChange, updated.Type)
	assert.Nil(t, updated.Description)
	require.NotNil(t, updated.Location)
	assert.Equal(t, "Home garage", *updated.Location)
	assert.Equal(t, f.garage.MotorcycleID(), updated.MotorcycleID)

	motorcycle, err := f.garage.GetMotorcycle(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 9000, motorcycle.CurrentKilometers)

	_, err = f.services.Update(ctx, uuid.NewString(), payload(t, map[string]interface{}{"kilometers": 1}))
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestServiceRecordService_DeleteKeepsOdometer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.services.Create(ctx, "", payload(t, map[string]interface{}{"date": "2025-01-01", "kilometers": 7000, "type": "repair"}))
	require.NoError(t, err)
	require.NoError(t, f.services.Delete(ctx, created.ID))

	motorcycle, err := f.garage.GetMotorcycle(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 7000, motorcycle.CurrentKilometers)
}

func TestEventService_RequiresTitle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.events.Create(ctx, "", payload(t, map[string]interface{}{"date": "2025-01-01", "kilometers": 10, "type": "trip"}))
	var validationErr *services.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "Missing required fields: title", validationErr.Message)

	event, err := f.events.Create(ctx, "", payload(t, map[string]interface{}{"date": "2025-01-01", "kilometers": 10, "type": "trip", "title": "Coast ride"}))
	require.NoError(t, err)
	assert.Equal(t, "Coast ride", event.Title)
}

func TestModificationService_DoesNotTouchOdometer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	modification, err := f.modifications.Create(ctx, "", payload(t, map[string]interface{}{
		"name":        "Tank pad",
		"type":        "aesthetic",
		"installDate": "2025-02-14",
		"cost":        35,
	}))
	require.NoError(t, err)
	assert.Equal(t, "35", modification.Cost.Decimal.String())

	motorcycle, err := f.garage.GetMotorcycle(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 0, motorcycle.CurrentKilometers)
}

func TestDashboardService_Build(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 5, 15, 12, 0, 0, 0, time.UTC)
	f.dashboard.WithClock(func() time.Time { return now })

	require.NoError(t, f.garage.EnsureMotorcycle(ctx, ""))
	id := f.garage.MotorcycleID()
	next := 15000

	rows := []interface{}{
		&models.Service{ID: uuid.NewString(), MotorcycleID: id, Date: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), Kilometers: 9000, Type: models.ServiceOilChange, Cost: decimal.NewNullDecimal(decimal.RequireFromString("45.50")), NextServiceKm: &next},
		&models.Service{ID: uuid.NewString(), MotorcycleID: id, Date: time.Date(2025, 4, 30, 23, 0, 0, 0, time.UTC), Kilometers: 8000, Type: models.ServiceInspection},
		&models.Service{ID: uuid.NewString(), MotorcycleID: id, Date: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), Kilometers: 9500, Type: models.ServiceRepair},
		&models.Event{ID: uuid.NewString(), MotorcycleID: id, Date: time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), Kilometers: 9200, Type: models.EventTrip, Title: "Dolomites", Cost: decimal.NewNullDecimal(decimal.RequireFromString("100.25"))},
		&models.Modification{ID: uuid.NewString(), MotorcycleID: id, Name: "Crash bars", Type: models.ModificationProtection, InstallDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Cost: decimal.NewNullDecimal(decimal.RequireFromString("20.25"))},
	}
	for _, row := range rows {
		require.NoError(t, f.db.Create(row).Error)
	}
	require.NoError(t, f.garage.RecordKilometers(ctx, 9500))

	dashboard, err := f.dashboard.Build(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, int64(1), dashboard.Stats.ServicesThisMonth)
	assert.Equal(t, int64(3), dashboard.Stats.TotalServices)
	assert.Equal(t, int64(1), dashboard.Stats.TotalEvents)
	assert.Equal(t, int64(1), dashboard.Stats.UpcomingServices)
	assert.InDelta(t, 166.0, dashboard.Stats.TotalExpenses, 0.0001)
	assert.Equal(t, 9500, dashboard.Stats.CurrentKilometers)
	assert.Equal(t, "Nyiu", dashboard.Motorcycle.Name)

	require.Len(t, dashboard.RecentActivity.Services, 3)
	assert.Equal(t, models.ActivityService, dashboard.RecentActivity.Services[0].ActivityType)
	assert.Equal(t, 9500, dashboard.RecentActivity.Services[0].Kilometers)
	require.Len(t, dashboard.RecentActivity.Events, 1)
	assert.Equal(t, models.ActivityEvent, dashboard.RecentActivity.Events[0].ActivityType)

	feed, err := f.dashboard.Activity(ctx, "")
	require.NoError(t, err)
	require.Len(t, feed, 4)
	assert.Equal(t, models.ActivityService, feed[0].Kind())
	assert.Equal(t, models.ActivityEvent, feed[1].Kind())
}

func TestDashboardService_EmptyGarage(t *testing.T) {
	f := newFixture(t)

	dashboard, err := f.dashboard.Build(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), dashboard.Stats.TotalServices)
	assert.Equal(t, 0.0, dashboard.Stats.TotalExpenses)
	assert.NotNil(t, dashboard.RecentActivity.Services)
	assert.NotNil(t, dashboard.RecentActivity.Events)
}
