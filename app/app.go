// Package app assembles the application: configuration, backing services,
// gateways, repositories, and the notification listener. Screens are
// created per navigation event from the assembled repositories.
package app

import (
	"context"
	"fmt"
	"log"

	"hexgames/cache"
	"hexgames/config"
	"hexgames/connectivity"
	"hexgames/database"
	"hexgames/gateway"
	"hexgames/notifications"
	"hexgames/prefs"
	"hexgames/repository"
	"hexgames/storage"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config

	DB    *gorm.DB
	Redis *redis.Client
	Prefs *prefs.Store

	Net      connectivity.Checker
	Notifier *notifications.Notifier
	Listener *notifications.Listener

	Posts    *repository.PostRepository
	Comments *repository.CommentRepository
	Users    *repository.UserRepository
}

// New wires every layer together. Redis being unreachable is tolerated
// (feeds degrade to single snapshots); the database and preference store
// are required.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	rdb := cache.Connect(cfg.RedisURL)

	store, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		return nil, fmt.Errorf("opening preference store: %w", err)
	}

	photos, err := storage.NewS3Store(ctx, storage.Options{
		Bucket:        cfg.S3Bucket,
		Region:        cfg.S3Region,
		Endpoint:      cfg.S3Endpoint,
		PublicBaseURL: cfg.S3PublicURL,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing photo storage: %w", err)
	}

	notifier := notifications.NewNotifier(rdb)
	listener := notifications.NewListener(notifier, store, nil)

	mailer := gateway.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)

	postGW := gateway.NewStorePostGateway(db, rdb, photos, notifier)
	commentGW := gateway.NewStoreCommentGateway(db, notifier)
	userGW := gateway.NewAuthGateway(db, store, cfg.SessionSecret, mailer)

	return &App{
		Config:   cfg,
		DB:       db,
		Redis:    rdb,
		Prefs:    store,
		Net:      connectivity.NewDialChecker(cfg.ProbeAddr),
		Notifier: notifier,
		Listener: listener,
		Posts:    repository.NewPostRepository(postGW),
		Comments: repository.NewCommentRepository(commentGW),
		Users:    repository.NewUserRepository(userGW),
	}, nil
}

// Close releases the redis connection. The gorm pool is left to process
// exit, matching how the rest of the app treats it.
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			log.Printf("closing redis: %v", err)
		}
	}
}
