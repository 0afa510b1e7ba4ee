package toeicv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	toeicv1 "github.com/eslsoft/toeicprep/api/toeic/v1"
)

// ProgressServiceName is the fully-qualified name of the ProgressService service.
const ProgressServiceName = "toeic.v1.ProgressService"

const (
	ProgressServiceGetStreaksProcedure = "/toeic.v1.ProgressService/GetStreaks"
)

// ProgressServiceClient is a client for the toeic.v1.ProgressService service.
type ProgressServiceClient interface {
	GetStreaks(context.Context, *connect.Request[toeicv1.GetStreaksRequest]) (*connect.Response[toeicv1.StreakSummary], error)
}

// NewProgressServiceClient constructs a client for the toeic.v1.ProgressService service.
func NewProgressServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ProgressServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &progressServiceClient{
		getStreaks: connect.NewClient[toeicv1.GetStreaksRequest, toeicv1.StreakSummary](httpClient, baseURL+ProgressServiceGetStreaksProcedure, opts...),
	}
}

type progressServiceClient struct {
	getStreaks *connect.Client[toeicv1.GetStreaksRequest, toeicv1.StreakSummary]
}

func (c *progressServiceClient) GetStreaks(ctx context.Context, req *connect.Request[toeicv1.GetStreaksRequest]) (*connect.Response[toeicv1.StreakSummary], error) {
	return c.getStreaks.CallUnary(ctx, req)
}

// ProgressServiceHandler is an implementation of the toeic.v1.ProgressService service.
type ProgressServiceHandler interface {
	GetStreaks(context.Context, *connect.Request[toeicv1.GetStreaksRequest]) (*connect.Response[toeicv1.StreakSummary], error)
}

// NewProgressServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewProgressServiceHandler(svc ProgressServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	getStreaks := connect.NewUnaryHandler(ProgressServiceGetStreaksProcedure, svc.GetStreaks, noSideEffects(opts)...)
	return "/" + ProgressServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ProgressServiceGetStreaksProcedure:
			getStreaks.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedProgressServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedProgressServiceHandler struct{}

func (UnimplementedProgressServiceHandler) GetStreaks(context.Context, *connect.Request[toeicv1.GetStreaksRequest]) (*connect.Response[toeicv1.StreakSummary], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.ProgressService.GetStreaks is not implemented"))
}
