package db

import (
	"fmt"
	"net/url"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sdejt/planaula-backend/internal/logger"
	"github.com/sdejt/planaula-backend/internal/types"
	"github.com/sdejt/planaula-backend/internal/utils"
)

type DataStoreService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewDataStoreService opens the metadata store. DATA_STORE_URL is a postgres
// DSN; DATA_STORE_KEY, when set, overrides the password embedded in the URL.
// With no URL configured the store falls back to a local sqlite file, which is
// enough for development.
func NewDataStoreService(log *logger.Logger) (*DataStoreService, error) {
	serviceLog := log.With("service", "DataStoreService")

	storeURL := utils.GetEnv("DATA_STORE_URL", "", log)
	storeKey := utils.GetEnv("DATA_STORE_KEY", "", log)

	var (
		db  *gorm.DB
		err error
	)
	if storeURL != "" {
		dsn, dsnErr := buildPostgresDSN(storeURL, storeKey)
		if dsnErr != nil {
			return nil, dsnErr
		}
		serviceLog.Info("Connecting to Postgres...")
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		path := utils.GetEnv("DATA_STORE_PATH", "planaula.db", log)
		serviceLog.Info("DATA_STORE_URL not set, using local sqlite", "path", path)
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		serviceLog.Error("Failed to connect to data store", "error", err)
		return nil, fmt.Errorf("connect to data store: %w", err)
	}

	return &DataStoreService{db: db, log: serviceLog}, nil
}

func buildPostgresDSN(storeURL, storeKey string) (string, error) {
	u, err := url.Parse(storeURL)
	if err != nil {
		return "", fmt.Errorf("parse DATA_STORE_URL: %w", err)
	}
	if storeKey != "" {
		user := "postgres"
		if u.User != nil && u.User.Username() != "" {
			user = u.User.Username()
		}
		u.User = url.UserPassword(user, storeKey)
	}
	return u.String(), nil
}

func (s *DataStoreService) AutoMigrateAll() error {
	s.log.Info("Auto migrating data store tables...")
	if err := s.db.AutoMigrate(
		&types.LessonPlan{},
		&types.CurriculumSnippet{},
	); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *DataStoreService) DB() *gorm.DB {
	return s.db
}
