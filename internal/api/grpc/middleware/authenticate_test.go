package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/marketplace-auth/internal/mocks"
	"github.com/dtroode/marketplace-auth/internal/model"
	"github.com/dtroode/marketplace-auth/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	valid := model.Principal{UserID: uuid.New(), Permissions: []string{"Orders.View"}}

	tests := []struct {
		name         string
		mdAuthHeader string
		parsed       model.Principal
		parseErr     error
		expectParse  bool
		wantErr      bool
	}{
		{
			name:    "missing authorization header",
			wantErr: true,
		},
		{
			name:         "not a bearer credential",
			mdAuthHeader: "Basic dXNlcjpwdw==",
			wantErr:      true,
		},
		{
			name:         "invalid token",
			mdAuthHeader: "Bearer invalid",
			parseErr:     errors.New("token is expired"),
			expectParse:  true,
			wantErr:      true,
		},
		{
			name:         "nil user id from token",
			mdAuthHeader: "Bearer token",
			expectParse:  true,
			wantErr:      true,
		},
		{
			name:         "valid token",
			mdAuthHeader: "Bearer token",
			parsed:       valid,
			expectParse:  true,
		},
		{
			name:         "lowercase scheme",
			mdAuthHeader: "bearer token",
			parsed:       valid,
			expectParse:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := mocks.NewContextManager(t)
			issuer := mocks.NewTokenIssuer(t)

			if tt.expectParse {
				issuer.On("ParseAccessToken", "token").Return(tt.parsed, tt.parseErr).Maybe()
				issuer.On("ParseAccessToken", "invalid").Return(tt.parsed, tt.parseErr).Maybe()
			}
			if !tt.wantErr {
				cm.On("SetPrincipalToContext", mock.Anything, tt.parsed).Return(context.Background())
			}

			m := NewAuthenticate(issuer, cm, testutil.MakeNoopLogger())

			ctx := context.Background()
			if tt.mdAuthHeader != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.mdAuthHeader))
			}

			newCtx, err := m.AuthFunc(ctx)

			if tt.wantErr {
				st, ok := status.FromError(err)
				assert.True(t, ok)
				assert.Equal(t, codes.Unauthenticated, st.Code())
				assert.Equal(t, model.MessageUnauthenticated, st.Message())
				assert.Nil(t, newCtx)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, newCtx)
		})
	}
}
