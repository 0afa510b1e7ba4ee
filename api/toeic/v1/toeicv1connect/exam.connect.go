package toeicv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	toeicv1 "github.com/eslsoft/toeicprep/api/toeic/v1"
)

// ExamServiceName is the fully-qualified name of the ExamService service.
const ExamServiceName = "toeic.v1.ExamService"

const (
	ExamServiceGradeProcedure          = "/toeic.v1.ExamService/Grade"
	ExamServiceGetAttemptProcedure     = "/toeic.v1.ExamService/GetAttempt"
	ExamServiceListAttemptsProcedure   = "/toeic.v1.ExamService/ListAttempts"
	ExamServiceRecordPracticeProcedure = "/toeic.v1.ExamService/RecordPractice"
)

// ExamServiceClient is a client for the toeic.v1.ExamService service.
type ExamServiceClient interface {
	Grade(context.Context, *connect.Request[toeicv1.GradeRequest]) (*connect.Response[toeicv1.Attempt], error)
	GetAttempt(context.Context, *connect.Request[toeicv1.GetAttemptRequest]) (*connect.Response[toeicv1.Attempt], error)
	ListAttempts(context.Context, *connect.Request[toeicv1.ListAttemptsRequest]) (*connect.Response[toeicv1.ListAttemptsResponse], error)
	RecordPractice(context.Context, *connect.Request[toeicv1.RecordPracticeRequest]) (*connect.Response[toeicv1.PracticeSession], error)
}

// NewExamServiceClient constructs a client for the toeic.v1.ExamService service.
func NewExamServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ExamServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &examServiceClient{
		grade:          connect.NewClient[toeicv1.GradeRequest, toeicv1.Attempt](httpClient, baseURL+ExamServiceGradeProcedure, opts...),
		getAttempt:     connect.NewClient[toeicv1.GetAttemptRequest, toeicv1.Attempt](httpClient, baseURL+ExamServiceGetAttemptProcedure, opts...),
		listAttempts:   connect.NewClient[toeicv1.ListAttemptsRequest, toeicv1.ListAttemptsResponse](httpClient, baseURL+ExamServiceListAttemptsProcedure, opts...),
		recordPractice: connect.NewClient[toeicv1.RecordPracticeRequest, toeicv1.PracticeSession](httpClient, baseURL+ExamServiceRecordPracticeProcedure, opts...),
	}
}

type examServiceClient struct {
	grade          *connect.Client[toeicv1.GradeRequest, toeicv1.Attempt]
	getAttempt     *connect.Client[toeicv1.GetAttemptRequest, toeicv1.Attempt]
	listAttempts   *connect.Client[toeicv1.ListAttemptsRequest, toeicv1.ListAttemptsResponse]
	recordPractice *connect.Client[toeicv1.RecordPracticeRequest, toeicv1.PracticeSession]
}

func (c *examServiceClient) Grade(ctx context.Context, req *connect.Request[toeicv1.GradeRequest]) (*connect.Response[toeicv1.Attempt], error) {
	return c.grade.CallUnary(ctx, req)
}

func (c *examServiceClient) GetAttempt(ctx context.Context, req *connect.Request[toeicv1.GetAttemptRequest]) (*connect.Response[toeicv1.Attempt], error) {
	return c.getAttempt.CallUnary(ctx, req)
}

func (c *examServiceClient) ListAttempts(ctx context.Context, req *connect.Request[toeicv1.ListAttemptsRequest]) (*connect.Response[toeicv1.ListAttemptsResponse], error) {
	return c.listAttempts.CallUnary(ctx, req)
}

func (c *examServiceClient) RecordPractice(ctx context.Context, req *connect.Request[toeicv1.RecordPracticeRequest]) (*connect.Response[toeicv1.PracticeSession], error) {
	return c.recordPractice.CallUnary(ctx, req)
}

// ExamServiceHandler is an implementation of the toeic.v1.ExamService service.
type ExamServiceHandler interface {
	Grade(context.Context, *connect.Request[toeicv1.GradeRequest]) (*connect.Response[toeicv1.Attempt], error)
	GetAttempt(context.Context, *connect.Request[toeicv1.GetAttemptRequest]) (*connect.Response[toeicv1.Attempt], error)
	ListAttempts(context.Context, *connect.Request[toeicv1.ListAttemptsRequest]) (*connect.Response[toeicv1.ListAttemptsResponse], error)
	RecordPractice(context.Context, *connect.Request[toeicv1.RecordPracticeRequest]) (*connect.Response[toeicv1.PracticeSession], error)
}

// NewExamServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewExamServiceHandler(svc ExamServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	grade := connect.NewUnaryHandler(ExamServiceGradeProcedure, svc.Grade, opts...)
	getAttempt := connect.NewUnaryHandler(ExamServiceGetAttemptProcedure, svc.GetAttempt, noSideEffects(opts)...)
	listAttempts := connect.NewUnaryHandler(ExamServiceListAttemptsProcedure, svc.ListAttempts, noSideEffects(opts)...)
	recordPractice := connect.NewUnaryHandler(ExamServiceRecordPracticeProcedure, svc.RecordPractice, opts...)
	return "/" + ExamServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ExamServiceGradeProcedure:
			grade.ServeHTTP(w, r)
		case ExamServiceGetAttemptProcedure:
			getAttempt.ServeHTTP(w, r)
		case ExamServiceListAttemptsProcedure:
			listAttempts.ServeHTTP(w, r)
		case ExamServiceRecordPracticeProcedure:
			recordPractice.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedExamServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedExamServiceHandler struct{}

func (UnimplementedExamServiceHandler) Grade(context.Context, *connect.Request[toeicv1.GradeRequest]) (*connect.Response[toeicv1.Attempt], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.ExamService.Grade is not implemented"))
}

func (UnimplementedExamServiceHandler) GetAttempt(context.Context, *connect.Request[toeicv1.GetAttemptRequest]) (*connect.Response[toeicv1.Attempt], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.ExamService.GetAttempt is not implemented"))
}

func (UnimplementedExamServiceHandler) ListAttempts(context.Context, *connect.Request[toeicv1.ListAttemptsRequest]) (*connect.Response[toeicv1.ListAttemptsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.ExamService.ListAttempts is not implemented"))
}

func (UnimplementedExamServiceHandler) RecordPractice(context.Context, *connect.Request[toeicv1.RecordPracticeRequest]) (*connect.Response[toeicv1.PracticeSession], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.ExamService.RecordPractice is not implemented"))
}
