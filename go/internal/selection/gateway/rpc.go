package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mcdev12/primus/go/internal/selection"
)

const (
	// SelectionServiceName is the fully-qualified name of the snapshot service.
	SelectionServiceName = "primus.selection.v1.SelectionService"

	// GetSnapshotProcedure is the full path of the GetSnapshot RPC.
	GetSnapshotProcedure = "/" + SelectionServiceName + "/GetSnapshot"
)

// NewSnapshotHandler builds the connect handler that serves the current
// frame as a google.protobuf.Struct. It returns the path to mount it on.
func NewSnapshotHandler(snapshots SnapshotProvider, opts ...connect.HandlerOption) (string, http.Handler) {
	getSnapshot := connect.NewUnaryHandler(
		GetSnapshotProcedure,
		func(ctx context.Context, req *connect.Request[emptypb.Empty]) (*connect.Response[structpb.Struct], error) {
			frame, err := FrameStruct(snapshots.Snapshot())
			if err != nil {
				return nil, connect.NewError(connect.CodeInternal, err)
			}
			return connect.NewResponse(frame), nil
		},
		opts...,
	)

	mux := http.NewServeMux()
	mux.Handle(GetSnapshotProcedure, getSnapshot)
	return "/" + SelectionServiceName + "/", mux
}

// FrameStruct converts a frame into a protobuf Struct using its JSON form.
func FrameStruct(frame selection.Frame) (*structpb.Struct, error) {
	data, err := json.Marshal(frame)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frame: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build frame struct: %w", err)
	}
	return s, nil
}
