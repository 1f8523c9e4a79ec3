// File: /models/user.go
package models

import (
	"time"
)

// User and the tables below keep the column layout of the session store the web client
// was built against, hence the camelCase column names.
type User struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	Name          string    `json:"name" gorm:"not null;size:255"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	EmailVerified bool      `json:"emailVerified" gorm:"column:emailVerified;default:false"`
	Image         *string   `json:"image" gorm:"size:500"`
	CreatedAt     time.Time `json:"createdAt" gorm:"column:createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"column:updatedAt"`

	Sessions []Session `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Accounts []Account `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "user"
}

type Session struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"column:expiresAt;not null"`
	Token     string    `json:"token" gorm:"uniqueIndex;not null;size:512"`
	IPAddress *string   `json:"ipAddress" gorm:"column:ipAddress;size:64"`
	UserAgent *string   `json:"userAgent" gorm:"column:userAgent;size:500"`
	UserID    string    `json:"userId" gorm:"column:userId;not null;size:191;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:createdAt"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updatedAt"`
}

func (Session) TableName() string {
	return "session"
}

// Account links a user to a login provider. Email/password logins use the "credential" provider.
type Account struct {
	ID           string     `json:"id" gorm:"primaryKey;size:191"`
	AccountID    string     `json:"accountId" gorm:"column:accountId;not null;size:191"`
	ProviderID   string     `json:"providerId" gorm:"column:providerId;not null;size:64"`
	UserID       string     `json:"userId" gorm:"column:userId;not null;size:191;index"`
	AccessToken  *string    `json:"-" gorm:"column:accessToken;type:text"`
	RefreshToken *string    `json:"-" gorm:"column:refreshToken;type:text"`
	IDToken      *string    `json:"-" gorm:"column:idToken;type:text"`
	ExpiresAt    *time.Time `json:"expiresAt" gorm:"column:expiresAt"`
	Password     *string    `json:"-" gorm:"size:255"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"column:createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" gorm:"column:updatedAt"`
}

func (Account) TableName() string {
	return "account"
}

const CredentialProvider = "credential"

type Verification struct {
	ID         string    `json:"id" gorm:"primaryKey;size:191"`
	Identifier string    `json:"identifier" gorm:"not null;size:255;index"`
	Value      string    `json:"-" gorm:"not null;size:255"`
	ExpiresAt  time.Time `json:"expiresAt" gorm:"column:expiresAt;not null"`
	CreatedAt  time.Time `json:"createdAt" gorm:"column:createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"column:updatedAt"`
}

func (Verification) TableName() string {
	return "verification"
}

// SessionView is what the client sees for the current session.
type SessionView struct {
	Session Session `json:"session"`
	User    User    `json:"user"`
}
