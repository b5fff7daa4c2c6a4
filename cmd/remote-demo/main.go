// Command remote-demo sends a sample authorization through the gateway
// using credentials from the environment. It is meant to be pointed at the
// sandbox, never at production.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kevin07696/gateway-sdk/gateway"
	"github.com/kevin07696/gateway-sdk/internal/config"
	"github.com/kevin07696/gateway-sdk/payment"
	"github.com/kevin07696/gateway-sdk/pkg/observability"
	"github.com/kevin07696/gateway-sdk/validation"
)

func main() {
	// Missing .env is fine; variables may come from the environment.
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}

	logger, err := newLogger(cfg.Logger)
	if err != nil {
		zap.NewExample().Fatal("build logger", zap.Error(err))
	}
	defer logger.Sync()

	metricsServer := observability.StartMetricsServer(cfg.Metrics.Port)
	defer observability.ShutdownMetricsServer(metricsServer)

	client, err := gateway.NewClient(cfg.Gateway.Secret, gateway.Config{
		Endpoint:  cfg.Gateway.Endpoint,
		Timeout:   cfg.Gateway.Timeout,
		AllowHTTP: cfg.Gateway.AllowHTTP,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal("build gateway client", zap.Error(err))
	}

	card := &payment.Card{
		Number:         "4263971921001307",
		ExpiryDate:     "1229",
		CardHolderName: "James Mason",
		Type:           payment.Visa,
	}
	card.WithCVN("123")

	if !validation.CardNumber(card.Number) {
		logger.Fatal("card number failed the luhn check")
	}

	req := payment.NewRequest(payment.Auth).
		WithMerchantID(cfg.Gateway.MerchantID).
		WithAccount(cfg.Gateway.Account).
		WithAmount(1001, "EUR").
		WithCard(card).
		WithAutoSettle(payment.AutoSettleTrue).
		WithComment("remote-demo authorization")

	resp, err := client.Send(context.Background(), req)
	if err != nil {
		logger.Error("send failed", zap.Error(err))
		os.Exit(1)
	}

	auth := resp.(*payment.Response)
	logger.Info("authorization complete",
		zap.String("order_id", auth.OrderID),
		zap.String("result", auth.Result),
		zap.String("message", auth.Message),
		zap.String("pasref", auth.PaymentsRef),
		zap.String("auth_code", auth.AuthCode),
		zap.Bool("approved", auth.IsSuccess()),
	)
}

func newLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
