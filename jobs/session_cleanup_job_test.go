package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"motolog-api/models"
	"motolog-api/services"
	"motolog-api/testutil"
)

func TestSessionCleanupJobRemovesExpiredRows(t *testing.T) {
	db := testutil.NewDB(t)
	cfg := testutil.Config()

	user := models.User{ID: "u1", Name: "Rider", Email: "rider@example.com"}
	require.NoError(t, db.Create(&user).Error)

	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(time.Hour)
	require.NoError(t, db.Create(&[]models.Session{
		{ID: "old", Token: "old-token", UserID: "u1", ExpiresAt: past},
		{ID: "live", Token: "live-token", UserID: "u1", ExpiresAt: future},
	}).Error)
	require.NoError(t, db.Create(&models.Verification{ID: "v1", Identifier: "rider@example.com", Value: "123456", ExpiresAt: past}).Error)

	job := NewSessionCleanupJob(db, cfg, services.NewEmailService(cfg))
	job.Start()
	job.Stop()

	var sessions []models.Session
	require.NoError(t, db.Find(&sessions).Error)
	require.Len(t, sessions, 1)
	assert.Equal(t, "live", sessions[0].ID)

	var verifications int64
	require.NoError(t, db.Model(&models.Verification{}).Count(&verifications).Error)
	assert.Zero(t, verifications)
}
