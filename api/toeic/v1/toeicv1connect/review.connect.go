package toeicv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	toeicv1 "github.com/eslsoft/toeicprep/api/toeic/v1"
)

// ReviewServiceName is the fully-qualified name of the ReviewService service.
const ReviewServiceName = "toeic.v1.ReviewService"

const (
	ReviewServiceCreateCardProcedure = "/toeic.v1.ReviewService/CreateCard"
	ReviewServiceReviewProcedure     = "/toeic.v1.ReviewService/Review"
	ReviewServiceGetStateProcedure   = "/toeic.v1.ReviewService/GetState"
	ReviewServiceListDueProcedure    = "/toeic.v1.ReviewService/ListDue"
	ReviewServiceResetProcedure      = "/toeic.v1.ReviewService/Reset"
)

// ReviewServiceClient is a client for the toeic.v1.ReviewService service.
type ReviewServiceClient interface {
	CreateCard(context.Context, *connect.Request[toeicv1.CreateCardRequest]) (*connect.Response[toeicv1.Card], error)
	Review(context.Context, *connect.Request[toeicv1.ReviewRequest]) (*connect.Response[toeicv1.ReviewState], error)
	GetState(context.Context, *connect.Request[toeicv1.GetStateRequest]) (*connect.Response[toeicv1.ReviewState], error)
	ListDue(context.Context, *connect.Request[toeicv1.ListDueRequest]) (*connect.Response[toeicv1.ListDueResponse], error)
	Reset(context.Context, *connect.Request[toeicv1.ResetRequest]) (*connect.Response[toeicv1.Empty], error)
}

// NewReviewServiceClient constructs a client for the toeic.v1.ReviewService service.
func NewReviewServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReviewServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &reviewServiceClient{
		createCard: connect.NewClient[toeicv1.CreateCardRequest, toeicv1.Card](httpClient, baseURL+ReviewServiceCreateCardProcedure, opts...),
		review:     connect.NewClient[toeicv1.ReviewRequest, toeicv1.ReviewState](httpClient, baseURL+ReviewServiceReviewProcedure, opts...),
		getState:   connect.NewClient[toeicv1.GetStateRequest, toeicv1.ReviewState](httpClient, baseURL+ReviewServiceGetStateProcedure, opts...),
		listDue:    connect.NewClient[toeicv1.ListDueRequest, toeicv1.ListDueResponse](httpClient, baseURL+ReviewServiceListDueProcedure, opts...),
		reset:      connect.NewClient[toeicv1.ResetRequest, toeicv1.Empty](httpClient, baseURL+ReviewServiceResetProcedure, opts...),
	}
}

type reviewServiceClient struct {
	createCard *connect.Client[toeicv1.CreateCardRequest, toeicv1.Card]
	review     *connect.Client[toeicv1.ReviewRequest, toeicv1.ReviewState]
	getState   *connect.Client[toeicv1.GetStateRequest, toeicv1.ReviewState]
	listDue    *connect.Client[toeicv1.ListDueRequest, toeicv1.ListDueResponse]
	reset      *connect.Client[toeicv1.ResetRequest, toeicv1.Empty]
}

func (c *reviewServiceClient) CreateCard(ctx context.Context, req *connect.Request[toeicv1.CreateCardRequest]) (*connect.Response[toeicv1.Card], error) {
	return c.createCard.CallUnary(ctx, req)
}

func (c *reviewServiceClient) Review(ctx context.Context, req *connect.Request[toeicv1.ReviewRequest]) (*connect.Response[toeicv1.ReviewState], error) {
	return c.review.CallUnary(ctx, req)
}

func (c *reviewServiceClient) GetState(ctx context.Context, req *connect.Request[toeicv1.GetStateRequest]) (*connect.Response[toeicv1.ReviewState], error) {
	return c.getState.CallUnary(ctx, req)
}

func (c *reviewServiceClient) ListDue(ctx context.Context, req *connect.Request[toeicv1.ListDueRequest]) (*connect.Response[toeicv1.ListDueResponse], error) {
	return c.listDue.CallUnary(ctx, req)
}

func (c *reviewServiceClient) Reset(ctx context.Context, req *connect.Request[toeicv1.ResetRequest]) (*connect.Response[toeicv1.Empty], error) {
	return c.reset.CallUnary(ctx, req)
}

// ReviewServiceHandler is an implementation of the toeic.v1.ReviewService service.
type ReviewServiceHandler interface {
	CreateCard(context.Context, *connect.Request[toeicv1.CreateCardRequest]) (*connect.Response[toeicv1.Card], error)
	Review(context.Context, *connect.Request[toeicv1.ReviewRequest]) (*connect.Response[toeicv1.ReviewState], error)
	GetState(context.Context, *connect.Request[toeicv1.GetStateRequest]) (*connect.Response[toeicv1.ReviewState], error)
	ListDue(context.Context, *connect.Request[toeicv1.ListDueRequest]) (*connect.Response[toeicv1.ListDueResponse], error)
	Reset(context.Context, *connect.Request[toeicv1.ResetRequest]) (*connect.Response[toeicv1.Empty], error)
}

// NewReviewServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewReviewServiceHandler(svc ReviewServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	createCard := connect.NewUnaryHandler(ReviewServiceCreateCardProcedure, svc.CreateCard, opts...)
	review := connect.NewUnaryHandler(ReviewServiceReviewProcedure, svc.Review, opts...)
	getState := connect.NewUnaryHandler(ReviewServiceGetStateProcedure, svc.GetState, noSideEffects(opts)...)
	listDue := connect.NewUnaryHandler(ReviewServiceListDueProcedure, svc.ListDue, noSideEffects(opts)...)
	reset := connect.NewUnaryHandler(ReviewServiceResetProcedure, svc.Reset, opts...)
	return "/" + ReviewServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ReviewServiceCreateCardProcedure:
			createCard.ServeHTTP(w, r)
		case ReviewServiceReviewProcedure:
			review.ServeHTTP(w, r)
		case ReviewServiceGetStateProcedure:
			getState.ServeHTTP(w, r)
		case ReviewServiceListDueProcedure:
			listDue.ServeHTTP(w, r)
		case ReviewServiceResetProcedure:
			reset.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedReviewServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedReviewServiceHandler struct{}

func (UnimplementedReviewServiceHandler) CreateCard(context.Context, *connect.Request[toeicv1.CreateCardRequest]) (*connect.Response[toeicv1.Card], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.ReviewService.CreateCard is not implemented"))
}

func (UnimplementedReviewServiceHandler) Review(context.Context, *connect.Request[toeicv1.ReviewRequest]) (*connect.Response[toeicv1.ReviewState], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.ReviewService.Review is not implemented"))
}

func (UnimplementedReviewServiceHandler) GetState(context.Context, *connect.Request[toeicv1.GetStateRequest]) (*connect.Response[toeicv1.ReviewState], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.ReviewService.GetState is not implemented"))
}

func (UnimplementedReviewServiceHandler) ListDue(context.Context, *connect.Request[toeicv1.ListDueRequest]) (*connect.Response[toeicv1.ListDueResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.ReviewService.ListDue is not implemented"))
}

func (UnimplementedReviewServiceHandler) Reset(context.Context, *connect.Request[toeicv1.ResetRequest]) (*connect.Response[toeicv1.Empty], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.ReviewService.Reset is not implemented"))
}
