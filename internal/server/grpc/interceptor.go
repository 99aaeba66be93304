package grpc

import (
	"context"
	"errors"

	"github.com/milavault/milavault/internal/common"
	pb "github.com/milavault/milavault/internal/proto"
	"github.com/milavault/milavault/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// protectedMethods lists the RPCs that require a valid access token. The
// auth RPCs and Ping stay open.
var protectedMethods = map[string]bool{
	pb.MilaVaultService_ListPeople_FullMethodName:        true,
	pb.MilaVaultService_AddPerson_FullMethodName:         true,
	pb.MilaVaultService_UpdatePerson_FullMethodName:      true,
	pb.MilaVaultService_UpdatePersonNotes_FullMethodName: true,
	pb.MilaVaultService_DeletePerson_FullMethodName:      true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protectedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			// The expiry message is load-bearing: clients refresh and
			// retry when they see it.
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
			}
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, userIDKey, userID)

	}

	return handler(ctx, req)
}

// userIDFromContext returns the user id placed into the context by the
// interceptor. Handlers behind protectedMethods can rely on it being set.
func userIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}
