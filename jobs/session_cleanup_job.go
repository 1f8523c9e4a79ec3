// File: /jobs/session_cleanup_job.go
package jobs

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
	"motolog-api/config"
	"motolog-api/repositories"
	"motolog-api/services"
)

// SessionCleanupJob periodically deletes expired sessions and verification codes.
type SessionCleanupJob struct {
	authService *services.AuthService
	ticker      *time.Ticker
	done        chan struct{}
	stopped     chan struct{}
}

func NewSessionCleanupJob(db *gorm.DB, cfg *config.Config, emailService *services.EmailService) *SessionCleanupJob {
	authRepo := repositories.NewAuthRepository(db)
	authService := services.NewAuthService(authRepo, emailService, cfg.SessionSecret, cfg.SessionTTL)

	return &SessionCleanupJob{
		authService: authService,
		ticker:      time.NewTicker(cfg.CleanupInterval),
		done:        make(chan struct{}),
		stopped:     make(chan struct{}),
	}
}

// Start runs a cleanup immediately and then on every tick.
func (j *SessionCleanupJob) Start() {
	log.Println("Session cleanup job started")

	go func() {
		defer close(j.stopped)

		j.cleanup()

		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				log.Println("Session cleanup job stopped")
				return
			}
		}
	}()
}

// Stop halts the ticker and waits for a running cleanup to finish.
func (j *SessionCleanupJob) Stop() {
	j.ticker.Stop()
	close(j.done)
	<-j.stopped
}

func (j *SessionCleanupJob) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sessions, verifications, err := j.authService.CleanupExpired(ctx)
	if err != nil {
		log.Printf("Error during session cleanup: %v", err)
		return
	}

	if sessions > 0 || verifications > 0 {
		log.Printf("Session cleanup removed %d sessions and %d verification codes", sessions, verifications)
	}
}
