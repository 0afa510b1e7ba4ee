package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/toeicprep/internal/infrastructure/config"
)

// RequestIDHeader carries the request id in and out of every call.
const RequestIDHeader = "X-Request-Id"

// InterceptorLogger adapts a logrus logger to the go-grpc-middleware logging interface.
func InterceptorLogger(logger logrus.FieldLogger) logging.Logger {
	return logging.LoggerFunc(func(_ context.Context, lvl logging.Level, msg string, fields ...any) {
		f := make(logrus.Fields, len(fields)/2)
		i := logging.Fields(fields).Iterator()
		for i.Next() {
			k, v := i.At()
			f[k] = v
		}
		entry := logger.WithFields(f)
		switch lvl {
		case logging.LevelDebug:
			entry.Debug(msg)
		case logging.LevelInfo:
			entry.Info(msg)
		case logging.LevelWarn:
			entry.Warn(msg)
		case logging.LevelError:
			entry.Error(msg)
		default:
			entry.WithField("grpc.log_level", fmt.Sprint(lvl)).Error(msg)
		}
	})
}

// Logger logs one line per unary call and echoes the request id back to the caller.
func Logger(logger logrus.FieldLogger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			requestID := req.Header().Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			start := time.Now()
			resp, err := next(ctx, req)

			duration := time.Since(start)
			code := connect.CodeOf(err)
			fields := buildLogFields(req, resp, code, duration, err)
			fields["request_id"] = requestID

			logger.WithFields(fields).Log(determineLogLevel(code, err), "request completed")

			if resp != nil {
				resp.Header().Set(RequestIDHeader, requestID)
			}
			var cerr *connect.Error
			if errors.As(err, &cerr) {
				cerr.Meta().Set(RequestIDHeader, requestID)
			}
			return resp, err
		}
	}
}

func determineLogLevel(code connect.Code, err error) logrus.Level {
	if err == nil {
		return logrus.InfoLevel
	}
	switch code {
	case connect.CodeInvalidArgument, connect.CodeFailedPrecondition, connect.CodeNotFound,
		connect.CodeAlreadyExists, connect.CodePermissionDenied, connect.CodeUnauthenticated,
		connect.CodeCanceled:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

func buildLogFields(req connect.AnyRequest, resp connect.AnyResponse, code connect.Code, duration time.Duration, err error) logrus.Fields {
	fields := requestFields(req, duration)
	if err != nil {
		fields["status"] = code.String()
		fields["error"] = err.Error()
	} else {
		fields["status"] = "ok"
	}
	for k, v := range responseFields(resp) {
		fields[k] = v
	}
	return fields
}

func requestFields(req connect.AnyRequest, duration time.Duration) logrus.Fields {
	fields := logrus.Fields{
		"procedure": req.Spec().Procedure,
		"duration":  duration.String(),
	}

	setStringField(fields, "http_method", req.HTTPMethod())
	setStringField(fields, "idempotency", req.Spec().IdempotencyLevel.String())

	peer := req.Peer()
	setStringField(fields, "peer_addr", peer.Addr)
	setStringField(fields, "protocol", peer.Protocol)

	header := req.Header()
	setStringField(fields, "user_agent", header.Get("User-Agent"))
	setStringField(fields, "client_ip", firstForwardedFor(header))
	setStringField(fields, "content_type", header.Get("Content-Type"))

	if cl := contentLength(header); cl >= 0 {
		fields["request_bytes"] = cl
	}
	return fields
}

func responseFields(resp connect.AnyResponse) logrus.Fields {
	if resp == nil {
		return nil
	}
	fields := logrus.Fields{}
	if cl := contentLength(resp.Header()); cl >= 0 {
		fields["response_bytes"] = cl
	}
	return fields
}

func setStringField(fields logrus.Fields, key, value string) {
	if value == "" {
		return
	}
	fields[key] = value
}

func firstForwardedFor(header http.Header) string {
	forwarded := header.Get("X-Forwarded-For")
	if forwarded == "" {
		return ""
	}
	for _, part := range strings.Split(forwarded, ",") {
		if candidate := strings.TrimSpace(part); candidate != "" {
			return candidate
		}
	}
	return ""
}

func contentLength(header http.Header) int {
	if header == nil {
		return -1
	}
	if cl := header.Get("Content-Length"); cl != "" {
		if parsed, err := strconv.Atoi(cl); err == nil {
			return parsed
		}
	}
	return -1
}

// NewLogger builds a configured logrus logger from application config.
func NewLogger(cfg *config.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger, nil
}
