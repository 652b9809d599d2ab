package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/streamforge/encoding-examples/internal/client"
	"github.com/streamforge/encoding-examples/internal/config"
	"github.com/streamforge/encoding-examples/internal/logging"
)

// baseURLKey is an optional, unregistered parameter resolved via the open
// lookup, mainly useful for pointing the demo at a mock API.
const baseURLKey = "BITMOVIN_API_BASE_URL"

const requestTimeout = 30 * time.Second

func main() {
	logger, err := logging.New(os.Getenv("BITMOVIN_DEBUG") != "")
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	resolver, err := config.New("encoding-info", config.WithLogger(logger))
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	apiKey, err := resolver.BitmovinAPIKey()
	if err != nil {
		var missing *config.MissingParameterError
		if errors.As(err, &missing) {
			logger.Fatal("missing required parameter",
				zap.String("key", string(missing.Key)),
				zap.String("description", missing.Description),
			)
		}
		logger.Fatal("failed to resolve api key", zap.Error(err))
	}

	opts := []client.Option{client.WithLogger(logger)}
	if baseURL, err := resolver.Get(baseURLKey); err == nil {
		opts = append(opts, client.WithBaseURL(baseURL))
	}

	api := client.New(apiKey, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	info, err := api.AccountInformation(ctx)
	if err != nil {
		logger.Fatal("failed to fetch account information", zap.Error(err))
	}

	logger.Info("account information",
		zap.String("id", info.ID),
		zap.String("email", info.Email),
	)
}
