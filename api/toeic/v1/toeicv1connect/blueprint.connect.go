package toeicv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	toeicv1 "github.com/eslsoft/toeicprep/api/toeic/v1"
)

// BlueprintServiceName is the fully-qualified name of the BlueprintService service.
const BlueprintServiceName = "toeic.v1.BlueprintService"

const (
	BlueprintServiceGetBlueprintProcedure        = "/toeic.v1.BlueprintService/GetBlueprint"
	BlueprintServiceInvalidateBlueprintProcedure = "/toeic.v1.BlueprintService/InvalidateBlueprint"
	BlueprintServiceCreateTestProcedure          = "/toeic.v1.BlueprintService/CreateTest"
	BlueprintServiceAddPartProcedure             = "/toeic.v1.BlueprintService/AddPart"
	BlueprintServiceRemovePartProcedure          = "/toeic.v1.BlueprintService/RemovePart"
	BlueprintServiceAddGroupProcedure            = "/toeic.v1.BlueprintService/AddGroup"
	BlueprintServiceAddQuestionProcedure         = "/toeic.v1.BlueprintService/AddQuestion"
	BlueprintServiceReviseQuestionProcedure      = "/toeic.v1.BlueprintService/ReviseQuestion"
	BlueprintServiceReviseAnswerProcedure        = "/toeic.v1.BlueprintService/ReviseAnswer"
)

// BlueprintServiceClient is a client for the toeic.v1.BlueprintService service.
type BlueprintServiceClient interface {
	GetBlueprint(context.Context, *connect.Request[toeicv1.GetBlueprintRequest]) (*connect.Response[toeicv1.Blueprint], error)
	InvalidateBlueprint(context.Context, *connect.Request[toeicv1.InvalidateBlueprintRequest]) (*connect.Response[toeicv1.Empty], error)
	CreateTest(context.Context, *connect.Request[toeicv1.CreateTestRequest]) (*connect.Response[toeicv1.TestHeader], error)
	AddPart(context.Context, *connect.Request[toeicv1.AddPartRequest]) (*connect.Response[toeicv1.Part], error)
	RemovePart(context.Context, *connect.Request[toeicv1.RemovePartRequest]) (*connect.Response[toeicv1.Empty], error)
	AddGroup(context.Context, *connect.Request[toeicv1.AddGroupRequest]) (*connect.Response[toeicv1.Group], error)
	AddQuestion(context.Context, *connect.Request[toeicv1.AddQuestionRequest]) (*connect.Response[toeicv1.Question], error)
	ReviseQuestion(context.Context, *connect.Request[toeicv1.ReviseQuestionRequest]) (*connect.Response[toeicv1.Empty], error)
	ReviseAnswer(context.Context, *connect.Request[toeicv1.ReviseAnswerRequest]) (*connect.Response[toeicv1.Empty], error)
}

// NewBlueprintServiceClient constructs a client for the toeic.v1.BlueprintService service.
func NewBlueprintServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) BlueprintServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &blueprintServiceClient{
		getBlueprint:        connect.NewClient[toeicv1.GetBlueprintRequest, toeicv1.Blueprint](httpClient, baseURL+BlueprintServiceGetBlueprintProcedure, opts...),
		invalidateBlueprint: connect.NewClient[toeicv1.InvalidateBlueprintRequest, toeicv1.Empty](httpClient, baseURL+BlueprintServiceInvalidateBlueprintProcedure, opts...),
		createTest:          connect.NewClient[toeicv1.CreateTestRequest, toeicv1.TestHeader](httpClient, baseURL+BlueprintServiceCreateTestProcedure, opts...),
		addPart:             connect.NewClient[toeicv1.AddPartRequest, toeicv1.Part](httpClient, baseURL+BlueprintServiceAddPartProcedure, opts...),
		removePart:          connect.NewClient[toeicv1.RemovePartRequest, toeicv1.Empty](httpClient, baseURL+BlueprintServiceRemovePartProcedure, opts...),
		addGroup:            connect.NewClient[toeicv1.AddGroupRequest, toeicv1.Group](httpClient, baseURL+BlueprintServiceAddGroupProcedure, opts...),
		addQuestion:         connect.NewClient[toeicv1.AddQuestionRequest, toeicv1.Question](httpClient, baseURL+BlueprintServiceAddQuestionProcedure, opts...),
		reviseQuestion:      connect.NewClient[toeicv1.ReviseQuestionRequest, toeicv1.Empty](httpClient, baseURL+BlueprintServiceReviseQuestionProcedure, opts...),
		reviseAnswer:        connect.NewClient[toeicv1.ReviseAnswerRequest, toeicv1.Empty](httpClient, baseURL+BlueprintServiceReviseAnswerProcedure, opts...),
	}
}

type blueprintServiceClient struct {
	getBlueprint        *connect.Client[toeicv1.GetBlueprintRequest, toeicv1.Blueprint]
	invalidateBlueprint *connect.Client[toeicv1.InvalidateBlueprintRequest, toeicv1.Empty]
	createTest          *connect.Client[toeicv1.CreateTestRequest, toeicv1.TestHeader]
	addPart             *connect.Client[toeicv1.AddPartRequest, toeicv1.Part]
	removePart          *connect.Client[toeicv1.RemovePartRequest, toeicv1.Empty]
	addGroup            *connect.Client[toeicv1.AddGroupRequest, toeicv1.Group]
	addQuestion         *connect.Client[toeicv1.AddQuestionRequest, toeicv1.Question]
	reviseQuestion      *connect.Client[toeicv1.ReviseQuestionRequest, toeicv1.Empty]
	reviseAnswer        *connect.Client[toeicv1.ReviseAnswerRequest, toeicv1.Empty]
}

func (c *blueprintServiceClient) GetBlueprint(ctx context.Context, req *connect.Request[toeicv1.GetBlueprintRequest]) (*connect.Response[toeicv1.Blueprint], error) {
	return c.getBlueprint.CallUnary(ctx, req)
}

func (c *blueprintServiceClient) InvalidateBlueprint(ctx context.Context, req *connect.Request[toeicv1.InvalidateBlueprintRequest]) (*connect.Response[toeicv1.Empty], error) {
	return c.invalidateBlueprint.CallUnary(ctx, req)
}

func (c *blueprintServiceClient) CreateTest(ctx context.Context, req *connect.Request[toeicv1.CreateTestRequest]) (*connect.Response[toeicv1.TestHeader], error) {
	return c.createTest.CallUnary(ctx, req)
}

func (c *blueprintServiceClient) AddPart(ctx context.Context, req *connect.Request[toeicv1.AddPartRequest]) (*connect.Response[toeicv1.Part], error) {
	return c.addPart.CallUnary(ctx, req)
}

func (c *blueprintServiceClient) RemovePart(ctx context.Context, req *connect.Request[toeicv1.RemovePartRequest]) (*connect.Response[toeicv1.Empty], error) {
	return c.removePart.CallUnary(ctx, req)
}

func (c *blueprintServiceClient) AddGroup(ctx context.Context, req *connect.Request[toeicv1.AddGroupRequest]) (*connect.Response[toeicv1.Group], error) {
	return c.addGroup.CallUnary(ctx, req)
}

func (c *blueprintServiceClient) AddQuestion(ctx context.Context, req *connect.Request[toeicv1.AddQuestionRequest]) (*connect.Response[toeicv1.Question], error) {
	return c.addQuestion.CallUnary(ctx, req)
}

func (c *blueprintServiceClient) ReviseQuestion(ctx context.Context, req *connect.Request[toeicv1.ReviseQuestionRequest]) (*connect.Response[toeicv1.Empty], error) {
	return c.reviseQuestion.CallUnary(ctx, req)
}

func (c *blueprintServiceClient) ReviseAnswer(ctx context.Context, req *connect.Request[toeicv1.ReviseAnswerRequest]) (*connect.Response[toeicv1.Empty], error) {
	return c.reviseAnswer.CallUnary(ctx, req)
}

// BlueprintServiceHandler is an implementation of the toeic.v1.BlueprintService service.
type BlueprintServiceHandler interface {
	GetBlueprint(context.Context, *connect.Request[toeicv1.GetBlueprintRequest]) (*connect.Response[toeicv1.Blueprint], error)
	InvalidateBlueprint(context.Context, *connect.Request[toeicv1.InvalidateBlueprintRequest]) (*connect.Response[toeicv1.Empty], error)
	CreateTest(context.Context, *connect.Request[toeicv1.CreateTestRequest]) (*connect.Response[toeicv1.TestHeader], error)
	AddPart(context.Context, *connect.Request[toeicv1.AddPartRequest]) (*connect.Response[toeicv1.Part], error)
	RemovePart(context.Context, *connect.Request[toeicv1.RemovePartRequest]) (*connect.Response[toeicv1.Empty], error)
	AddGroup(context.Context, *connect.Request[toeicv1.AddGroupRequest]) (*connect.Response[toeicv1.Group], error)
	AddQuestion(context.Context, *connect.Request[toeicv1.AddQuestionRequest]) (*connect.Response[toeicv1.Question], error)
	ReviseQuestion(context.Context, *connect.Request[toeicv1.ReviseQuestionRequest]) (*connect.Response[toeicv1.Empty], error)
	ReviseAnswer(context.Context, *connect.Request[toeicv1.ReviseAnswerRequest]) (*connect.Response[toeicv1.Empty], error)
}

// NewBlueprintServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewBlueprintServiceHandler(svc BlueprintServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	getBlueprint := connect.NewUnaryHandler(BlueprintServiceGetBlueprintProcedure, svc.GetBlueprint, noSideEffects(opts)...)
	invalidateBlueprint := connect.NewUnaryHandler(BlueprintServiceInvalidateBlueprintProcedure, svc.InvalidateBlueprint, opts...)
	createTest := connect.NewUnaryHandler(BlueprintServiceCreateTestProcedure, svc.CreateTest, opts...)
	addPart := connect.NewUnaryHandler(BlueprintServiceAddPartProcedure, svc.AddPart, opts...)
	removePart := connect.NewUnaryHandler(BlueprintServiceRemovePartProcedure, svc.RemovePart, opts...)
	addGroup := connect.NewUnaryHandler(BlueprintServiceAddGroupProcedure, svc.AddGroup, opts...)
	addQuestion := connect.NewUnaryHandler(BlueprintServiceAddQuestionProcedure, svc.AddQuestion, opts...)
	reviseQuestion := connect.NewUnaryHandler(BlueprintServiceReviseQuestionProcedure, svc.ReviseQuestion, opts...)
	reviseAnswer := connect.NewUnaryHandler(BlueprintServiceReviseAnswerProcedure, svc.ReviseAnswer, opts...)
	return "/" + BlueprintServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case BlueprintServiceGetBlueprintProcedure:
			getBlueprint.ServeHTTP(w, r)
		case BlueprintServiceInvalidateBlueprintProcedure:
			invalidateBlueprint.ServeHTTP(w, r)
		case BlueprintServiceCreateTestProcedure:
			createTest.ServeHTTP(w, r)
		case BlueprintServiceAddPartProcedure:
			addPart.ServeHTTP(w, r)
		case BlueprintServiceRemovePartProcedure:
			removePart.ServeHTTP(w, r)
		case BlueprintServiceAddGroupProcedure:
			addGroup.ServeHTTP(w, r)
		case BlueprintServiceAddQuestionProcedure:
			addQuestion.ServeHTTP(w, r)
		case BlueprintServiceReviseQuestionProcedure:
			reviseQuestion.ServeHTTP(w, r)
		case BlueprintServiceReviseAnswerProcedure:
			reviseAnswer.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedBlueprintServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedBlueprintServiceHandler struct{}

func (UnimplementedBlueprintServiceHandler) GetBlueprint(context.Context, *connect.Request[toeicv1.GetBlueprintRequest]) (*connect.Response[toeicv1.Blueprint], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.BlueprintService.GetBlueprint is not implemented"))
}

func (UnimplementedBlueprintServiceHandler) InvalidateBlueprint(context.Context, *connect.Request[toeicv1.InvalidateBlueprintRequest]) (*connect.Response[toeicv1.Empty], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.BlueprintService.InvalidateBlueprint is not implemented"))
}

func (UnimplementedBlueprintServiceHandler) CreateTest(context.Context, *connect.Request[toeicv1.CreateTestRequest]) (*connect.Response[toeicv1.TestHeader], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.BlueprintService.CreateTest is not implemented"))
}

func (UnimplementedBlueprintServiceHandler) AddPart(context.Context, *connect.Request[toeicv1.AddPartRequest]) (*connect.Response[toeicv1.Part], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.BlueprintService.AddPart is not implemented"))
}

func (UnimplementedBlueprintServiceHandler) RemovePart(context.Context, *connect.Request[toeicv1.RemovePartRequest]) (*connect.Response[toeicv1.Empty], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.BlueprintService.RemovePart is not implemented"))
}

func (UnimplementedBlueprintServiceHandler) AddGroup(context.Context, *connect.Request[toeicv1.AddGroupRequest]) (*connect.Response[toeicv1.Group], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.BlueprintService.AddGroup is not implemented"))
}

func (UnimplementedBlueprintServiceHandler) AddQuestion(context.Context, *connect.Request[toeicv1.AddQuestionRequest]) (*connect.Response[toeicv1.Question], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.BlueprintService.AddQuestion is not implemented"))
}

func (UnimplementedBlueprintServiceHandler) ReviseQuestion(context.Context, *connect.Request[toeicv1.ReviseQuestionRequest]) (*connect.Response[toeicv1.Empty], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.BlueprintService.ReviseQuestion is not implemented"))
}

func (UnimplementedBlueprintServiceHandler) ReviseAnswer(context.Context, *connect.Request[toeicv1.ReviseAnswerRequest]) (*connect.Response[toeicv1.Empty], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("toeic.v1.BlueprintService.ReviseAnswer is not implemented"))
}
