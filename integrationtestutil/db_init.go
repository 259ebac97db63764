package integrationtestutil

import (
	"context"
	"log"
	"log/slog"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/l3montree-dev/alertflow/database"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/shared"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDatabaseContainer starts a postgres container and applies the embedded migrations.
func InitDatabaseContainer() (shared.DB, func()) {
	ctx := context.Background()

	dbName := "alertflow"
	dbUser := "user"
	dbPassword := "password"

	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)

	terminate := func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if err != nil {
		slog.Info("failed to start postgres container", "err", err)
		panic(err)
	}

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432")

	db, pool, err := database.NewConnection(ctx, database.PoolConfig{
		User:            dbUser,
		Password:        dbPassword,
		Host:            host,
		Port:            port.Port(),
		DBName:          dbName,
		MaxOpenConns:    5,
		MinConns:        1,
		ConnMaxLifetime: 0,
		ConnMaxIdleTime: 0,
	})
	if err != nil {
		log.Printf("failed to connect to database: %s", err)
		panic(err)
	}

	if err := database.RunMigrationsWithDB(db); err != nil {
		log.Printf("failed to run migrations: %s", err)
		panic(err)
	}

	return db, func() {
		pool.Close()
		terminate()
	}
}

// InitSQLiteDatabase returns a fresh in memory database with the schema of all models.
// The pool is limited to a single connection, every connection of an in memory database sees its own schema.
func InitSQLiteDatabase(t *testing.T) shared.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open sqlite database: %s", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("could not get sql db: %s", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	if err := db.AutoMigrate(
		&models.Org{},
		&models.Project{},
		&models.Group{},
		&models.Integration{},
		&models.OrganizationIntegration{},
		&models.IdentityProvider{},
		&models.Identity{},
		&models.ExternalIssue{},
		&models.GroupLink{},
		&models.Rule{},
	); err != nil {
		t.Fatalf("could not migrate sqlite database: %s", err)
	}

	return db
}
