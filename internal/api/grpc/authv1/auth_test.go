package authv1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestFileDescriptor_MatchesServiceDesc(t *testing.T) {
	svc := File_marketplace_auth_v1_auth_proto.Services().ByName("Auth")
	require.NotNil(t, svc)
	assert.Equal(t, Auth_ServiceDesc.ServiceName, string(svc.FullName()))

	require.Equal(t, len(Auth_ServiceDesc.Methods), svc.Methods().Len())
	for _, m := range Auth_ServiceDesc.Methods {
		assert.NotNil(t, svc.Methods().ByName(protoreflect.Name(m.MethodName)), m.MethodName)
	}
}

func TestTokenPair_WireFormat(t *testing.T) {
	expires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	in := &TokenPair{AccessToken: "a", RefreshToken: "r", AccessExpiresAt: timestamppb.New(expires)}

	b, err := proto.Marshal(in)
	require.NoError(t, err)

	var out TokenPair
	require.NoError(t, proto.Unmarshal(b, &out))
	assert.Equal(t, "r", out.GetRefreshToken())
	assert.True(t, expires.Equal(out.GetAccessExpiresAt().AsTime()))
}
