package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New instancia um logger zap de produção com saída JSON estruturada.
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// Must é um helper que entra em pânico quando o logger não pode ser criado.
func Must(logger *zap.Logger, err error) *zap.Logger {
	if err != nil {
		panic(err)
	}
	return logger
}
