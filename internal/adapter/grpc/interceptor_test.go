package grpc

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestAuthInterceptor(t *testing.T) {
	validToken := "test-token-123"
	interceptor := AuthInterceptor(validToken)

	tests := []struct {
		name           string
		ctx            context.Context
		handlerCalled  bool
		expectedCode   codes.Code
		expectedErrMsg string
	}{
		{
			name: "Valid Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", validToken),
			),
			handlerCalled:  true,
			expectedCode:   codes.OK,
			expectedErrMsg: "",
		},
		{
			name: "Bearer Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", "Bearer "+validToken),
			),
			handlerCalled:  true,
			expectedCode:   codes.OK,
			expectedErrMsg: "",
		},
		{
			name: "Invalid Token",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("authorization", "wrong-token"),
			),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "invalid token",
		},
		{
			name:           "Missing Token",
			ctx:            context.Background(),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "missing metadata",
		},
		{
			name: "Missing Authorization Header",
			ctx: metadata.NewIncomingContext(
				context.Background(),
				metadata.Pairs("other-header", "value"),
			),
			handlerCalled:  false,
			expectedCode:   codes.Unauthenticated,
			expectedErrMsg: "missing authorization header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				handlerCalled = true
				return "success", nil
			}

			info := &grpc.UnaryServerInfo{
				FullMethod: FullMethod(MethodOverview),
			}

			resp, err := interceptor(tt.ctx, "test-request", info, handler)

			assert.Equal(t, tt.handlerCalled, handlerCalled, "handler called status mismatch")

			if tt.expectedCode == codes.OK {
				assert.NoError(t, err)
				assert.Equal(t, "success", resp)
			} else {
				assert.Error(t, err)
				st, ok := status.FromError(err)
				assert.True(t, ok, "error should be a gRPC status")
				assert.Equal(t, tt.expectedCode, st.Code())
				assert.Contains(t, st.Message(), tt.expectedErrMsg)
			}
		})
	}
}

func TestLoggingInterceptor(t *testing.T) {
	interceptor := LoggingInterceptor()
	info := &grpc.UnaryServerInfo{
		FullMethod: FullMethod(MethodAnalyzeSector),
	}

	t.Run("Passes Response Through", func(t *testing.T) {
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return "success", nil
		}

		resp, err := interceptor(context.Background(), "test-request", info, handler)

		require.NoError(t, err)
		assert.Equal(t, "success", resp)
	})

	t.Run("Passes Error Through", func(t *testing.T) {
		handlerErr := status.Error(codes.NotFound, "sector \"Nope\" not found")
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return nil, handlerErr
		}

		resp, err := interceptor(context.Background(), "test-request", info, handler)

		assert.Nil(t, resp)
		assert.True(t, errors.Is(err, handlerErr))
	})
}

func TestIncomingRequestID(t *testing.T) {
	t.Run("Reuses Valid Caller ID", func(t *testing.T) {
		id := uuid.NewString()
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, id))

		assert.Equal(t, id, incomingRequestID(ctx))
	})

	t.Run("Replaces Malformed Caller ID", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "not-a-uuid"))

		got := incomingRequestID(ctx)

		assert.NotEqual(t, "not-a-uuid", got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	})

	t.Run("Generates ID Without Metadata", func(t *testing.T) {
		_, err := uuid.Parse(incomingRequestID(context.Background()))
		assert.NoError(t, err)
	})
}

func TestSizeLimitInterceptor(t *testing.T) {
	interceptor := SizeLimitInterceptor(1024)
	info := &grpc.UnaryServerInfo{
		FullMethod: FullMethod(MethodAnalyzeRevenueGrowth),
	}

	respond := func(text string) grpc.UnaryHandler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			return structpb.NewStruct(map[string]any{"message": text})
		}
	}

	t.Run("Small Response Passes", func(t *testing.T) {
		resp, err := interceptor(context.Background(), "test-request", info, respond("ok"))

		require.NoError(t, err)
		assert.NotNil(t, resp)
	})

	t.Run("Oversized Response Is Rejected", func(t *testing.T) {
		resp, err := interceptor(context.Background(), "test-request", info, respond(strings.Repeat("x", 2048)))

		assert.Nil(t, resp)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.ResourceExhausted, st.Code())
		assert.Contains(t, st.Message(), "exceeds the 1024 byte limit")
	})

	t.Run("Handler Error Passes Through", func(t *testing.T) {
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return nil, status.Error(codes.NotFound, "company not found")
		}

		_, err := interceptor(context.Background(), "test-request", info, handler)

		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}
