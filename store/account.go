package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/wandermate/wandermate-api/schema"
)

var (
	ErrAccountTaken       = fmt.Errorf("email already registered")
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")
)

// CreateAccount registers a new account with an email and password.
func (s *WanderStore) CreateAccount(email, password string, metadata map[string]interface{}) (*schema.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	accountNumber := uuid.New().String()
	a := schema.Account{
		AccountNumber: accountNumber,
		Email:         email,
		PasswordHash:  string(hash),
		Profile: schema.AccountProfile{
			AccountNumber: accountNumber,
			State: schema.ActivityState{
				LastActiveTime: time.Now(),
			},
			Metadata: schema.AccountMetadata(metadata),
		},
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		return nil, ErrAccountTaken
	}

	return &a, nil
}

// GetAccount returns an account instance of a given account number
func (s *WanderStore) GetAccount(accountNumber string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAccountByCredentials looks an account up by email and verifies the
// password against the stored bcrypt hash.
func (s *WanderStore) GetAccountByCredentials(email, password string) (*schema.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("email = ?", email).First(&a).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &a, nil
}

// UpdateAccountMetadata is to update metadata for a specific account
func (s *WanderStore) UpdateAccountMetadata(accountNumber string, metadata map[string]interface{}) error {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return err
	}

	for k, v := range metadata {
		a.Profile.Metadata[k] = v
	}

	return s.ormDB.Save(&a.Profile).Error
}

// UpdateAccountGeoPosition records the last position a client reported
// through the Geo-Position header.
func (s *WanderStore) UpdateAccountGeoPosition(accountNumber string, latitude, longitude float64) error {
	var a schema.Account
	if err := s.ormDB.Preload("Profile").Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return err
	}

	a.Profile.State.LastLocation = &schema.Location{
		Latitude:  latitude,
		Longitude: longitude,
	}
	a.Profile.State.LastActiveTime = time.Now()

	return s.ormDB.Save(&a.Profile).Error
}

// DeleteAccount removes an account from our system permanently
func (s *WanderStore) DeleteAccount(accountNumber string) error {
	if err := s.ormDB.Delete(schema.Account{}, "account_number = ?", accountNumber).Error; err != nil {
		return err
	}

	if err := s.ormDB.Delete(schema.AccountProfile{}, "account_number = ?", accountNumber).Error; err != nil {
		return err
	}

	return nil
}
