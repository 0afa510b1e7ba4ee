package connectrpc

import (
	"context"

	"connectrpc.com/connect"

	toeicv1 "github.com/eslsoft/toeicprep/api/toeic/v1"
	"github.com/eslsoft/toeicprep/api/toeic/v1/toeicv1connect"
	"github.com/eslsoft/toeicprep/internal/adapter/mapping"
	"github.com/eslsoft/toeicprep/internal/repository"
	"github.com/eslsoft/toeicprep/internal/usecase"
)

var _ toeicv1connect.ExamServiceHandler = (*ExamServiceServer)(nil)

type ExamServiceServer struct {
	toeicv1connect.UnimplementedExamServiceHandler
	exams    usecase.ExamUsecase
	practice usecase.PracticeUsecase
}

func NewExamServiceServer(exams usecase.ExamUsecase, practice usecase.PracticeUsecase) *ExamServiceServer {
	return &ExamServiceServer{exams: exams, practice: practice}
}

func (s *ExamServiceServer) Grade(ctx context.Context, req *connect.Request[toeicv1.GradeRequest]) (*connect.Response[toeicv1.Attempt], error) {
	msg := req.Msg
	attempt, err := s.exams.Grade(ctx, msg.TestID, msg.UserID, mapping.FromPbSubmissions(msg.Answers))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbAttempt(attempt)), nil
}

func (s *ExamServiceServer) GetAttempt(ctx context.Context, req *connect.Request[toeicv1.GetAttemptRequest]) (*connect.Response[toeicv1.Attempt], error) {
	attempt, err := s.exams.GetAttempt(ctx, req.Msg.UserID, req.Msg.AttemptID)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbAttempt(attempt)), nil
}

func (s *ExamServiceServer) ListAttempts(ctx context.Context, req *connect.Request[toeicv1.ListAttemptsRequest]) (*connect.Response[toeicv1.ListAttemptsResponse], error) {
	msg := req.Msg
	query := &repository.ListAttemptQuery{
		Pagination: convertPagination(msg.GetPagination()),
		FilterOrder: repository.FilterOrder{
			Filter:  msg.GetFilter(),
			OrderBy: msg.GetOrderBy(),
		},
		UserID: msg.UserID,
	}
	items, total, err := s.exams.ListAttempts(ctx, query)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&toeicv1.ListAttemptsResponse{
		Attempts:   mapping.ToPbAttempts(items),
		Pagination: toPbPagination(query.Pagination, total),
	}), nil
}

func (s *ExamServiceServer) RecordPractice(ctx context.Context, req *connect.Request[toeicv1.RecordPracticeRequest]) (*connect.Response[toeicv1.PracticeSession], error) {
	msg := req.Msg
	session, err := s.practice.RecordPractice(ctx, msg.UserID, msg.TestID, msg.PartNumber, mapping.FromPbSubmissions(msg.Answers))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToPbPracticeSession(session)), nil
}
