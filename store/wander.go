package store

import (
	"github.com/jinzhu/gorm"

	"github.com/wandermate/wandermate-api/schema"
)

// wandermate main datastore
type WanderCore interface {
	Ping() error

	// Account
	CreateAccount(email, password string, metadata map[string]interface{}) (*schema.Account, error)
	GetAccount(accountNumber string) (*schema.Account, error)
	GetAccountByCredentials(email, password string) (*schema.Account, error)
	UpdateAccountMetadata(accountNumber string, metadata map[string]interface{}) error
	UpdateAccountGeoPosition(accountNumber string, latitude, longitude float64) error
	DeleteAccount(accountNumber string) error
}

// WanderStore is an implementation of WanderCore
type WanderStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewWanderStore(ormDB *gorm.DB, mongo MongoStore) *WanderStore {
	return &WanderStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *WanderStore) Ping() error {
	return s.ormDB.DB().Ping()
}
