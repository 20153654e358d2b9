package main

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type App struct {
	cfg Config
	log *zap.Logger

	// mongo and db are nil when DATABASE_URL is unset or the initial
	// connect failed; handlers must check storeEnabled before writing.
	mongo    *mongo.Client
	db       *mongo.Database
	contacts *mongo.Collection
	alerts   *mongo.Collection

	weather *weatherClient // nil when no provider key is configured
	adv     *advisor
	clock   clockwork.Clock
}

// newApp connects to MongoDB and builds the handler dependencies. A missing
// connection string or a failed connect does not abort startup: the app runs
// with the store disabled and reports degraded status on /test.
func newApp(ctx context.Context, cfg Config, log *zap.Logger) *App {
	app := &App{
		cfg:   cfg,
		log:   log,
		adv:   newAdvisor(rand.New(rand.NewSource(time.Now().UnixNano())), clockwork.NewRealClock()),
		clock: clockwork.NewRealClock(),
	}

	if cfg.WeatherAPIKey != "" {
		app.weather = newWeatherClient(cfg.WeatherBaseURL, cfg.WeatherAPIKey, cfg.WeatherTimeout)
	}

	if cfg.MongoURI == "" {
		log.Warn("DATABASE_URL not set, running with store disabled")
		return app
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Warn("mongo connect failed, running with store disabled", zap.Error(err))
		return app
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Warn("mongo ping failed, running with store disabled", zap.Error(err))
		_ = client.Disconnect(context.Background())
		return app
	}

	app.mongo = client
	app.db = client.Database(cfg.MongoDB)
	app.contacts = app.db.Collection("contactsubmission")
	app.alerts = app.db.Collection("weatheralert")
	log.Info("mongo connected", zap.String("db", cfg.MongoDB))
	return app
}

func (a *App) storeEnabled() bool { return a.db != nil }

func (a *App) close(ctx context.Context) {
	if a.mongo != nil {
		_ = a.mongo.Disconnect(ctx)
	}
}

// insertDocument writes one document to a collection and returns the new id
// as a hex string. This is the only write path in the service.
func (a *App) insertDocument(ctx context.Context, coll *mongo.Collection, doc any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("store returned a non-ObjectID identifier")
	}
	return oid.Hex(), nil
}
