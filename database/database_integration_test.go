//go:build integration

package database_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"motolog-api/database"
	"motolog-api/models"
	"motolog-api/repositories"
)

type engine struct {
	dbType string
	image  string
	port   nat.Port
	env    map[string]string
	dsn    func(host string, port nat.Port) string
}

var engines = []engine{
	{
		dbType: "mysql",
		image:  "mysql:8.0",
		port:   "3306/tcp",
		env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret",
			"MYSQL_DATABASE":      "motolog",
		},
		dsn: func(host string, port nat.Port) string {
			return fmt.Sprintf("root:secret@tcp(%s:%s)/motolog?charset=utf8mb4&parseTime=True&loc=UTC", host, port.Port())
		},
	},
	{
		dbType: "postgres",
		image:  "postgres:16-alpine",
		port:   "5432/tcp",
		env: map[string]string{
			"POSTGRES_PASSWORD": "secret",
			"POSTGRES_USER":     "motolog",
			"POSTGRES_DB":       "motolog",
		},
		dsn: func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=motolog password=secret dbname=motolog sslmode=disable TimeZone=UTC", host, port.Port())
		},
	},
}

func startDatabase(t *testing.T, e engine) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        e.image,
			ExposedPorts: []string{string(e.port)},
			Env:          e.env,
			WaitingFor:   wait.ForListeningPort(e.port).WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate %s: %v", e.dbType, err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, e.port)
	require.NoError(t, err)

	// The port can accept connections before the server finishes its init scripts.
	var db *gorm.DB
	for i := 0; i < 30; i++ {
		db, err = database.Initialize(e.dbType, e.dsn(host, port), 10, false)
		if err == nil {
			if sqlDB, pingErr := db.DB(); pingErr == nil && sqlDB.Ping() == nil {
				break
			}
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestRepositoriesAgainstRealDatabases(t *testing.T) {
	for _, e := range engines {
		t.Run(e.dbType, func(t *testing.T) {
			db := startDatabase(t, e)
			ctx := context.Background()

			motorcycles := repositories.NewMotorcycleRepository(db)
			profile := models.DefaultMotorcycleProfile()

			var wg sync.WaitGroup
			errs := make(chan error, 20)
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					m := profile.NewMotorcycle("default-user")
					_, err := motorcycles.EnsureExists(ctx, &m)
					errs <- err
				}()
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				require.NoError(t, err)
			}

			var count int64
			require.NoError(t, db.Model(&models.Motorcycle{}).Count(&count).Error)
			assert.Equal(t, int64(1), count)

			raised, err := motorcycles.RaiseKilometers(ctx, profile.ID, 8000)
			require.NoError(t, err)
			assert.True(t, raised)
			raised, err = motorcycles.RaiseKilometers(ctx, profile.ID, 3000)
			require.NoError(t, err)
			assert.False(t, raised)

			m, err := motorcycles.FindByID(ctx, profile.ID)
			require.NoError(t, err)
			assert.Equal(t, 8000, m.CurrentKilometers)

			services := repositories.NewServiceRepository(db)
			for _, cost := range []string{"45.50", "19.99"} {
				require.NoError(t, services.Create(ctx, &models.Service{
					ID:           fmt.Sprintf("svc-%s", cost),
					MotorcycleID: profile.ID,
					Date:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
					Kilometers:   100,
					Type:         models.ServiceOilChange,
					Cost:         decimal.NewNullDecimal(decimal.RequireFromString(cost)),
				}))
			}

			total, err := repositories.NewDashboardRepository(db).SumServiceCosts(ctx, profile.ID)
			require.NoError(t, err)
			assert.Equal(t, "65.49", total.StringFixed(2))
		})
	}
}
