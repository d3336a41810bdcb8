// Command cafedemo exercises the SDK end to end against a running café
// backend: it hydrates the persisted session, lists the catalog, fills a
// cart, and, when credentials are supplied, logs in and checks out.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lumacafe/cafekit/api"
	"github.com/lumacafe/cafekit/core/cart"
	"github.com/lumacafe/cafekit/core/client"
	"github.com/lumacafe/cafekit/core/config"
	"github.com/lumacafe/cafekit/core/favorites"
	"github.com/lumacafe/cafekit/core/logger"
	"github.com/lumacafe/cafekit/core/session"
	"github.com/lumacafe/cafekit/core/store"
)

type demoConfig struct {
	Client    client.Config
	StateFile string `env:"STATE_FILE" envDefault:""`
	Email     string `env:"DEMO_EMAIL" envDefault:""`
	Password  string `env:"DEMO_PASSWORD" envDefault:""`
	ClientID  int64  `env:"DEMO_CLIENT_ID" envDefault:"0"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("demo failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	var cfg demoConfig
	config.MustLoad(&cfg)

	statePath := cfg.StateFile
	if statePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		statePath = filepath.Join(home, ".cafekit", "state.json")
	}

	st, err := store.NewFile(statePath)
	if err != nil {
		return err
	}

	sessions, err := session.New(st)
	if err != nil {
		return err
	}
	if err := sessions.Hydrate(ctx); err != nil {
		return err
	}

	gateway, err := client.New(cfg.Client, st,
		client.WithLogger(log),
		client.WithLogoutFunc(func(ctx context.Context) {
			log.Warn("session expired, forcing logout")
			_ = sessions.Logout(ctx)
		}),
	)
	if err != nil {
		return err
	}
	svc := api.NewService(gateway, api.WithLogger(log))

	if s := sessions.Current(); s.IsAuthenticated() {
		log.Info("restored session",
			slog.String("email", s.Email),
			slog.String("role", s.Role.String()),
		)
	} else if cfg.Email != "" {
		tokens, err := svc.Login(ctx, api.Credentials{Email: cfg.Email, Password: cfg.Password})
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		if err := sessions.Login(ctx, tokens.AccessToken,
			session.WithRefreshToken(tokens.RefreshToken),
		); err != nil {
			return err
		}
		log.Info("logged in", slog.String("role", sessions.Current().Role.String()))
	}

	products, err := svc.Products(ctx)
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	log.Info("catalog loaded", logger.Count("products", len(products)))

	basket, err := cart.New(st)
	if err != nil {
		return err
	}
	if err := basket.Load(ctx); err != nil {
		return err
	}

	liked, err := favorites.New(st)
	if err != nil {
		return err
	}
	if err := liked.Load(ctx); err != nil {
		return err
	}

	for _, p := range products {
		if !p.Available {
			continue
		}
		fmt.Printf("%-30s %8.2f  in cart: %d  liked: %v\n",
			p.Name, p.Price.Float64(), basket.Quantity(p.ID), liked.Contains(p.ID))
	}

	if len(products) > 0 {
		first := products[0]
		if err := basket.Add(ctx, first.ID, 1); err != nil {
			return err
		}
		log.Info("added to cart",
			slog.String("product", first.Name),
			logger.Count("quantity", basket.Quantity(first.ID)),
		)
	}

	if cfg.ClientID != 0 && basket.Len() > 0 {
		lines := make([]api.OrderLine, 0, basket.Len())
		for _, it := range basket.Items() {
			if it.Quantity > 0 {
				lines = append(lines, api.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
			}
		}

		result, err := svc.CreateOrder(ctx, api.CheckoutInput{ClientID: cfg.ClientID, Items: lines})
		if err != nil {
			return fmt.Errorf("checkout: %w", err)
		}
		log.Info("order placed",
			slog.Int64("order_id", result.Order.ID),
			slog.Float64("total", result.Total.Float64()),
		)

		for _, it := range basket.Items() {
			if err := basket.Remove(ctx, it.ProductID); err != nil {
				return err
			}
		}
	}

	return nil
}
