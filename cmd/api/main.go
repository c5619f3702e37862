// Command api is the Lambda entrypoint for the site configuration API.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/sirsluginston/sitekit/admin"
	"github.com/sirsluginston/sitekit/config"
	"github.com/sirsluginston/sitekit/httpapi"
	"github.com/sirsluginston/sitekit/store"
	"github.com/sirsluginston/sitekit/users"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	settings, err := config.Load()
	if err != nil {
		logger.Error("failed to load settings", "error", err)
		os.Exit(1)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}

	st := store.New(dynamodb.NewFromConfig(awsCfg), settings.StoreConfig())
	handler := httpapi.NewHandler(
		st,
		admin.NewService(st, logger, nil),
		users.NewService(st, logger),
		logger,
	)

	lambda.Start(handler.Handle)
}
