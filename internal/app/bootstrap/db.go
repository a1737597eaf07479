// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	groupstore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/groups"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/oauthstate"
	poststore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/posts"
	territorystore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/territories"
	assignstore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/territoryassign"
	userstore "github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/store/users"
	"github.com/TerryL1971/UCG-Social-Scheduler-sub001/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and verifies it with a ping.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	connectCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		logger.Error("mongo connect failed", zap.Error(err))
		return DBDeps{}, err
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, timeouts.Ping())
	defer cancelPing()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Error("mongo ping failed", zap.Error(err))
		_ = client.Disconnect(context.Background())
		return DBDeps{}, err
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes every collection relies on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	schemaCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	for name, ensure := range map[string]func(context.Context) error{
		"users":                 userstore.New(db).EnsureIndexes,
		"territories":           territorystore.New(db).EnsureIndexes,
		"territory_assignments": assignstore.New(db).EnsureIndexes,
		"groups":                groupstore.New(db).EnsureIndexes,
		"posts":                 poststore.New(db).EnsureIndexes,
		"oauth_states":          oauthstate.New(db).EnsureIndexes,
	} {
		if err := ensure(schemaCtx); err != nil {
			logger.Error("index creation failed",
				zap.String("collection", name),
				zap.Error(err))
			return err
		}
	}

	logger.Info("schema indexes ensured")
	return nil
}
