package connectrpc

import (
	"context"

	"connectrpc.com/connect"

	toeicv1 "github.com/eslsoft/toeicprep/api/toeic/v1"
	"github.com/eslsoft/toeicprep/api/toeic/v1/toeicv1connect"
	"github.com/eslsoft/toeicprep/internal/adapter/mapping"
	"github.com/eslsoft/toeicprep/internal/usecase"
)

var _ toeicv1connect.ProgressServiceHandler = (*ProgressServiceServer)(nil)

type ProgressServiceServer struct {
	toeicv1connect.UnimplementedProgressServiceHandler
	uc usecase.ProgressUsecase
}

func NewProgressServiceServer(uc usecase.ProgressUsecase) *ProgressServiceServer {
	return &ProgressServiceServer{uc: uc}
}

func (s *ProgressServiceServer) GetStreaks(ctx context.Context, req *connect.Request[toeicv1.GetStreaksRequest]) (*connect.Response[toeicv1.StreakSummary], error) {
	summary, err := s.uc.ComputeStreaks(ctx, req.Msg.UserID)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbStreakSummary(summary)), nil
}
