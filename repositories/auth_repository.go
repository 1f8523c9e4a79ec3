package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"motolog-api/models"
)

// AuthRepository owns the user, account, session and verification tables.
// Their columns are camelCase, so filters go through struct conditions or
// clause expressions that gorm quotes for every dialect.
type AuthRepository struct {
	db *gorm.DB
}

// NewAuthRepository returns an AuthRepository backed by db.
func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// CreateUser stores the user together with its credential account.
// It returns ErrConflict when the email is already registered.
func (r *AuthRepository) CreateUser(ctx context.Context, user *models.User, account *models.Account) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.User{}).Where(&models.User{Email: user.Email}).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrConflict
		}

		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrConflict
			}
			return err
		}
		return tx.Create(account).Error
	})
}

func (r *AuthRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where(&models.User{Email: email}).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *AuthRepository) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *AuthRepository) MarkEmailVerified(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{"emailVerified": true, "updatedAt": time.Now()}).Error
}

// FindCredentialAccount returns the email/password account of a user.
func (r *AuthRepository) FindCredentialAccount(ctx context.Context, userID string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).
		Where(&models.Account{UserID: userID, ProviderID: models.CredentialProvider}).
		First(&account).Error
	if err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

func (r *AuthRepository) CreateSession(ctx context.Context, session *models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// FindActiveSession returns the session stored under token if it has not expired yet.
func (r *AuthRepository) FindActiveSession(ctx context.Context, token string, now time.Time) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).
		Where(&models.Session{Token: token}).
		Where(clause.Gt{Column: clause.Column{Name: "expiresAt"}, Value: now}).
		First(&session).Error
	if err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (r *AuthRepository) DeleteSessionByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where(&models.Session{Token: token}).Delete(&models.Session{}).Error
}

// ReplaceVerification drops any pending code for the identifier and stores the new one.
func (r *AuthRepository) ReplaceVerification(ctx context.Context, verification *models.Verification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(&models.Verification{Identifier: verification.Identifier}).Delete(&models.Verification{}).Error; err != nil {
			return err
		}
		return tx.Create(verification).Error
	})
}

func (r *AuthRepository) FindVerification(ctx context.Context, identifier string, now time.Time) (*models.Verification, error) {
	var verification models.Verification
	err := r.db.WithContext(ctx).
		Where(&models.Verification{Identifier: identifier}).
		Where(clause.Gt{Column: clause.Column{Name: "expiresAt"}, Value: now}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "createdAt"}, Desc: true}).
		First(&verification).Error
	if err != nil {
		return nil, translate(err)
	}
	return &verification, nil
}

func (r *AuthRepository) DeleteVerification(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Verification{}, "id = ?", id).Error
}

// DeleteExpired removes sessions and verification codes that expired before now.
func (r *AuthRepository) DeleteExpired(ctx context.Context, now time.Time) (sessions int64, verifications int64, err error) {
	expired := clause.Lt{Column: clause.Column{Name: "expiresAt"}, Value: now}

	result := r.db.WithContext(ctx).Where(expired).Delete(&models.Session{})
	if result.Error != nil {
		return 0, 0, result.Error
	}
	sessions = result.RowsAffected

	result = r.db.WithContext(ctx).Where(expired).Delete(&models.Verification{})
	if result.Error != nil {
		return sessions, 0, result.Error
	}
	return sessions, result.RowsAffected, nil
}
