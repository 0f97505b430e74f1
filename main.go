package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hexgames/app"
	"hexgames/config"
	"hexgames/screen"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.Close()

	// Surface inbound push messages while the app runs
	if err := a.Listener.Start(ctx); err != nil {
		log.Printf("Notification listener unavailable: %v", err)
	}

	// Follow the home feed until interrupted
	home := screen.NewHomeViewModel(a.Net, a.Posts, a.Users)
	defer home.Close()

	go home.Load(ctx)

	for state := range home.States().Watch(ctx) {
		switch state.Kind {
		case screen.HomeLoading:
			log.Println("Loading feed...")
		case screen.HomeDisplayPosts:
			log.Printf("Feed: %d posts (logged in: %t)", len(state.Posts), state.IsUserLoggedIn)
		case screen.HomeNoPostToDisplay:
			log.Printf("Feed empty (logged in: %t)", state.IsUserLoggedIn)
		case screen.HomeInternetUnavailable:
			log.Println("No internet connection")
		}
	}

	log.Println("Shutting down gracefully...")
}
