package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"pocket-pm-be/internal/entity"
	"pocket-pm-be/internal/repository/unitofwork"
	"pocket-pm-be/pkg/database"
	"pocket-pm-be/pkg/rice"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.FeatureRepository())
	assert.NotNil(t, uow.PrdRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Feature Repository", func(t *testing.T) {
		count, err := uow.FeatureRepository().CountByUser(context.Background(), uuid.New())
		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Transactional Feature Create", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:        uuid.New(),
			Email:     "test-integration-" + uuid.New().String() + "@example.com",
			FullName:  "Integration Test User",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		feature := &entity.Feature{
			UserId:      user.Id,
			Title:       "Integration Feature",
			Description: "Created inside a transaction",
			Reach:       5,
			Impact:      5,
			Confidence:  5,
			Effort:      5,
			Score:       rice.Score(5, 5, 5, 5),
			Order:       0,
			Priority:    rice.DefaultPriority,
			CreatedAt:   time.Now(),
		}
		err = uow.FeatureRepository().Create(ctx, feature)
		assert.NoError(t, err)
		assert.NotZero(t, feature.Id)

		err = uow.Commit()
		assert.NoError(t, err)

		found, err := uow.FeatureRepository().FindById(ctx, user.Id, feature.Id)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, "Integration Feature", found.Title)

		t.Log("Successfully created Feature in Transaction")
	})
}
