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

var _ toeicv1connect.ReviewServiceHandler = (*ReviewServiceServer)(nil)

type ReviewServiceServer struct {
	toeicv1connect.UnimplementedReviewServiceHandler
	uc usecase.ReviewUsecase
}

func NewReviewServiceServer(uc usecase.ReviewUsecase) *ReviewServiceServer {
	return &ReviewServiceServer{uc: uc}
}

func (s *ReviewServiceServer) CreateCard(ctx context.Context, req *connect.Request[toeicv1.CreateCardRequest]) (*connect.Response[toeicv1.Card], error) {
	card, err := s.uc.CreateCard(ctx, &entity.Card{Term: req.Msg.Term, Meaning: req.Msg.Meaning})
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbCard(card)), nil
}

func (s *ReviewServiceServer) Review(ctx context.Context, req *connect.Request[toeicv1.ReviewRequest]) (*connect.Response[toeicv1.ReviewState], error) {
	msg := req.Msg
	state, err := s.uc.Review(ctx, msg.UserID, msg.CardID, msg.Remembered)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbReviewState(state)), nil
}

func (s *ReviewServiceServer) GetState(ctx context.Context, req *connect.Request[toeicv1.GetStateRequest]) (*connect.Response[toeicv1.ReviewState], error) {
	state, err := s.uc.GetState(ctx, req.Msg.UserID, req.Msg.CardID)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbReviewState(state)), nil
}

func (s *ReviewServiceServer) ListDue(ctx context.Context, req *connect.Request[toeicv1.ListDueRequest]) (*connect.Response[toeicv1.ListDueResponse], error) {
	states, err := s.uc.DueCards(ctx, req.Msg.UserID, int(req.Msg.Limit))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&toeicv1.ListDueResponse{States: mapping.ToPbReviewStates(states)}), nil
}

func (s *ReviewServiceServer) Reset(ctx context.Context, req *connect.Request[toeicv1.ResetRequest]) (*connect.Response[toeicv1.Empty], error) {
	if err := s.uc.Reset(ctx, req.Msg.UserID, req.Msg.CardID); err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&toeicv1.Empty{}), nil
}
