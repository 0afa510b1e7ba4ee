package connectrpc

import (
	"net/http"

	"connectrpc.com/connect"

	"github.com/eslsoft/toeicprep/api/toeic/v1/toeicv1connect"
)

// Services groups the handlers served by the API.
type Services struct {
	Exam      *ExamServiceServer
	Blueprint *BlueprintServiceServer
	Review    *ReviewServiceServer
	Progress  *ProgressServiceServer
}

// Mount registers every service on mux and returns the mounted service names.
func (s *Services) Mount(mux *http.ServeMux, opts ...connect.HandlerOption) []string {
	mux.Handle(toeicv1connect.NewExamServiceHandler(s.Exam, opts...))
	mux.Handle(toeicv1connect.NewBlueprintServiceHandler(s.Blueprint, opts...))
	mux.Handle(toeicv1connect.NewReviewServiceHandler(s.Review, opts...))
	mux.Handle(toeicv1connect.NewProgressServiceHandler(s.Progress, opts...))
	return []string{
		toeicv1connect.ExamServiceName,
		toeicv1connect.BlueprintServiceName,
		toeicv1connect.ReviewServiceName,
		toeicv1connect.ProgressServiceName,
	}
}
