package connectrpc

import (
	"context"

	"connectrpc.com/connect"

	toeicv1 "github.com/eslsoft/toeicprep/api/toeic/v1"
	"github.com/eslsoft/toeicprep/api/toeic/v1/toeicv1connect"
	"github.com/eslsoft/toeicprep/internal/adapter/mapping"
	"github.com/eslsoft/toeicprep/internal/entity"
	"github.com/eslsoft/toeicprep/internal/usecase"
)

var _ toeicv1connect.BlueprintServiceHandler = (*BlueprintServiceServer)(nil)

type BlueprintServiceServer struct {
	toeicv1connect.UnimplementedBlueprintServiceHandler
	uc usecase.BlueprintUsecase
}

func NewBlueprintServiceServer(uc usecase.BlueprintUsecase) *BlueprintServiceServer {
	return &BlueprintServiceServer{uc: uc}
}

func (s *BlueprintServiceServer) GetBlueprint(ctx context.Context, req *connect.Request[toeicv1.GetBlueprintRequest]) (*connect.Response[toeicv1.Blueprint], error) {
	tree, err := s.uc.GetBlueprint(ctx, req.Msg.TestID)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbBlueprint(tree)), nil
}

func (s *BlueprintServiceServer) InvalidateBlueprint(ctx context.Context, req *connect.Request[toeicv1.InvalidateBlueprintRequest]) (*connect.Response[toeicv1.Empty], error) {
	if err := s.uc.InvalidateBlueprint(ctx, req.Msg.TestID); err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&toeicv1.Empty{}), nil
}

func (s *BlueprintServiceServer) CreateTest(ctx context.Context, req *connect.Request[toeicv1.CreateTestRequest]) (*connect.Response[toeicv1.TestHeader], error) {
	header, err := s.uc.CreateTest(ctx, req.Msg.Title)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbTestHeader(header)), nil
}

func (s *BlueprintServiceServer) AddPart(ctx context.Context, req *connect.Request[toeicv1.AddPartRequest]) (*connect.Response[toeicv1.Part], error) {
	part, err := s.uc.AddPart(ctx, entity.NewPart{TestID: req.Msg.TestID, Number: req.Msg.Number})
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbPart(part)), nil
}

func (s *BlueprintServiceServer) RemovePart(ctx context.Context, req *connect.Request[toeicv1.RemovePartRequest]) (*connect.Response[toeicv1.Empty], error) {
	if err := s.uc.RemovePart(ctx, req.Msg.PartID); err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&toeicv1.Empty{}), nil
}

func (s *BlueprintServiceServer) AddGroup(ctx context.Context, req *connect.Request[toeicv1.AddGroupRequest]) (*connect.Response[toeicv1.Group], error) {
	group, err := s.uc.AddGroup(ctx, entity.NewGroup{PartID: req.Msg.PartID, Content: req.Msg.Content})
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbGroup(group)), nil
}

func (s *BlueprintServiceServer) AddQuestion(ctx context.Context, req *connect.Request[toeicv1.AddQuestionRequest]) (*connect.Response[toeicv1.Question], error) {
	question, err := s.uc.AddQuestion(ctx, mapping.FromPbNewQuestion(req.Msg))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbQuestion(question)), nil
}

func (s *BlueprintServiceServer) ReviseQuestion(ctx context.Context, req *connect.Request[toeicv1.ReviseQuestionRequest]) (*connect.Response[toeicv1.Empty], error) {
	if err := s.uc.ReviseQuestion(ctx, mapping.FromPbQuestionRevision(req.Msg)); err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&toeicv1.Empty{}), nil
}

func (s *BlueprintServiceServer) ReviseAnswer(ctx context.Context, req *connect.Request[toeicv1.ReviseAnswerRequest]) (*connect.Response[toeicv1.Empty], error) {
	msg := req.Msg
	if err := s.uc.ReviseAnswer(ctx, msg.QuestionID, entity.NormalizeOption(msg.Label), msg.Content); err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&toeicv1.Empty{}), nil
}
