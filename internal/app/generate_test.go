package app

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"
)

func TestGenerateRejectsIncompleteRequest(t *testing.T) {
	service := NewService()
	tests := []struct {
		name string
		req  GenerateRequest
	}{
		{"missing design", GenerateRequest{SearchRoots: []string{"."}, OutputDir: "out"}},
		{"missing roots", GenerateRequest{DesignPath: "design.xml", OutputDir: "out"}},
		{"missing output", GenerateRequest{DesignPath: "design.xml", SearchRoots: []string{"."}}},
		{"blank design", GenerateRequest{DesignPath: "   ", SearchRoots: []string{"."}, OutputDir: "out"}},
	}
	for _, tt := range tests {
		_, err := service.Generate(context.Background(), tt.req)
		require.Error(t, err, tt.name)
		require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err), tt.name)
	}
}

func TestInspectRejectsEmptyRoots(t *testing.T) {
	service := NewService()
	_, err := service.Inspect(context.Background(), InspectRequest{})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
