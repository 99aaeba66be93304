package remote

import (
	"context"
	"fmt"

	"github.com/milavault/milavault/internal/client/models"
	"github.com/milavault/milavault/internal/common"
	pb "github.com/milavault/milavault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.MilaVaultServiceClient
	accessToken  string
	refreshToken string
	user         *User
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the access token to every call and, when
// the server answers "token expired", rotates the token pair and retries
// the call once.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if s.refreshToken == "" {
			return err
		}

		refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = refreshTokenResponse.AccessToken
		s.refreshToken = refreshTokenResponse.RefreshToken

		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initConn(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initConn() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewMilaVaultServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) RequestLoginLink(ctx context.Context, email string) (string, error) {

	resp, err := s.client.RequestLoginLink(ctx, &pb.RequestLoginLinkRequest{Email: email})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.LoginToken, nil

}

func (s *GRPCClient) Login(ctx context.Context, loginToken string) error {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{LoginToken: loginToken})
	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	s.user = &User{ID: resp.UserId, Email: resp.Email}

	return nil

}

func (s *GRPCClient) CurrentUser() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) List(ctx context.Context) ([]models.Person, error) {

	resp, err := s.client.ListPeople(ctx, &pb.ListPeopleRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]models.Person, 0, len(resp.People))
	for _, p := range resp.People {
		result = append(result, personFromProto(p))
	}
	return result, nil

}

func (s *GRPCClient) Insert(ctx context.Context, p models.Person) (string, error) {

	resp, err := s.client.AddPerson(ctx, &pb.AddPersonRequest{Person: personToProto(p)})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.Id, nil

}

func (s *GRPCClient) Update(ctx context.Context, p models.Person) error {

	_, err := s.client.UpdatePerson(ctx, &pb.UpdatePersonRequest{Person: personToProto(p)})
	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) UpdateNotes(ctx context.Context, id, notes string) error {

	_, err := s.client.UpdatePersonNotes(ctx, &pb.UpdatePersonNotesRequest{Id: id, Notes: notes})
	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) Delete(ctx context.Context, id string) error {

	_, err := s.client.DeletePerson(ctx, &pb.DeletePersonRequest{Id: id})
	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrValidation, st.Message())
	case codes.NotFound:
		return common.ErrNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func personFromProto(p *pb.Person) models.Person {
	return models.Person{
		ID:              p.Id,
		Name:            p.Name,
		Contact:         p.Contact,
		Email:           p.Email,
		Address:         p.Address,
		SocialFacebook:  p.SocialFacebook,
		SocialInstagram: p.SocialInstagram,
		Notes:           p.Notes,
	}
}

func personToProto(p models.Person) *pb.Person {
	return &pb.Person{
		Id:              p.ID,
		Name:            p.Name,
		Contact:         p.Contact,
		Email:           p.Email,
		Address:         p.Address,
		SocialFacebook:  p.SocialFacebook,
		SocialInstagram: p.SocialInstagram,
		Notes:           p.Notes,
	}
}
