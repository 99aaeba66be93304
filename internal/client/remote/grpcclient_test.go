package remote

import (
	"context"
	"errors"
	"testing"

	"github.com/milavault/milavault/internal/client/models"
	"github.com/milavault/milavault/internal/common"
	pb "github.com/milavault/milavault/internal/proto"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	// inputs captured
	lastLinkReq         *pb.RequestLoginLinkRequest
	lastLoginReq        *pb.LoginRequest
	lastRefreshTokenReq *pb.RefreshTokenRequest
	lastAddReq          *pb.AddPersonRequest
	lastUpdateReq       *pb.UpdatePersonRequest
	lastNotesReq        *pb.UpdatePersonNotesRequest
	lastDeleteReq       *pb.DeletePersonRequest

	// outputs preset
	linkResp *pb.RequestLoginLinkResponse
	linkErr  error

	loginResp *pb.LoginResponse
	loginErr  error

	refreshTokenResp *pb.RefreshTokenResponse
	refreshTokenErr  error

	pingResp *pb.PingResponse
	pingErr  error

	listResp *pb.ListPeopleResponse
	listErr  error

	addResp *pb.AddPersonResponse
	addErr  error

	updateErr error
	notesErr  error
	deleteErr error
}

func (f *fakePB) RequestLoginLink(ctx context.Context, in *pb.RequestLoginLinkRequest, opts ...grpc.CallOption) (*pb.RequestLoginLinkResponse, error) {
	f.lastLinkReq = in
	return f.linkResp, f.linkErr
}
func (f *fakePB) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	f.lastLoginReq = in
	return f.loginResp, f.loginErr
}
func (f *fakePB) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.RefreshTokenResponse, error) {
	f.lastRefreshTokenReq = in
	return f.refreshTokenResp, f.refreshTokenErr
}
func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}
func (f *fakePB) ListPeople(ctx context.Context, in *pb.ListPeopleRequest, opts ...grpc.CallOption) (*pb.ListPeopleResponse, error) {
	return f.listResp, f.listErr
}
func (f *fakePB) AddPerson(ctx context.Context, in *pb.AddPersonRequest, opts ...grpc.CallOption) (*pb.AddPersonResponse, error) {
	f.lastAddReq = in
	return f.addResp, f.addErr
}
func (f *fakePB) UpdatePerson(ctx context.Context, in *pb.UpdatePersonRequest, opts ...grpc.CallOption) (*pb.UpdatePersonResponse, error) {
	f.lastUpdateReq = in
	return &pb.UpdatePersonResponse{}, f.updateErr
}
func (f *fakePB) UpdatePersonNotes(ctx context.Context, in *pb.UpdatePersonNotesRequest, opts ...grpc.CallOption) (*pb.UpdatePersonNotesResponse, error) {
	f.lastNotesReq = in
	return &pb.UpdatePersonNotesResponse{}, f.notesErr
}
func (f *fakePB) DeletePerson(ctx context.Context, in *pb.DeletePersonRequest, opts ...grpc.CallOption) (*pb.DeletePersonResponse, error) {
	f.lastDeleteReq = in
	return &pb.DeletePersonResponse{}, f.deleteErr
}

/*************
 * accessTokenInterceptor tests
 *************/

func TestInterceptor_RefreshesTokenOnExpiredAndRetries(t *testing.T) {
	f := &fakePB{
		refreshTokenResp: &pb.RefreshTokenResponse{AccessToken: "A2", RefreshToken: "R2"},
	}
	c := &GRPCClient{
		client:       f,
		accessToken:  "A1",
		refreshToken: "R1",
	}

	callCount := 0
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		callCount++
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Len(t, toks, 1)

		if callCount == 1 {
			require.Equal(t, "A1", toks[0])
			return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		require.Equal(t, "A2", toks[0])
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Equal(t, 2, callCount)
	require.Equal(t, "A2", c.accessToken)
	require.Equal(t, "R2", c.refreshToken)
	require.Equal(t, "R1", f.lastRefreshTokenReq.RefreshToken)
}

func TestInterceptor_NoRefreshIfNoRefreshToken(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{
		client:      f,
		accessToken: "A1",
	}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
	require.Nil(t, f.lastRefreshTokenReq)
}

func TestInterceptor_UnauthenticatedButDifferentMessage_NoRefresh(t *testing.T) {
	c := &GRPCClient{accessToken: "X", refreshToken: "R"}
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, "some other reason")
	}
	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.Unauthenticated, "x")))
	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.PermissionDenied, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.Unavailable, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.DeadlineExceeded, "x")))
	require.ErrorIs(t, c.mapError(status.Error(codes.InvalidArgument, "name is required")), common.ErrValidation)
	require.ErrorIs(t, c.mapError(status.Error(codes.NotFound, "x")), common.ErrNotFound)
	e := errors.New("plain")
	require.ErrorContains(t, c.mapError(e), "rpc error:")
}

/*************
 * auth flow tests
 *************/

func TestRequestLoginLink(t *testing.T) {
	f := &fakePB{linkResp: &pb.RequestLoginLinkResponse{LoginToken: "id.secret"}}
	c := &GRPCClient{client: f}

	token, err := c.RequestLoginLink(context.Background(), "ann@example.com")
	require.NoError(t, err)
	require.Equal(t, "id.secret", token)
	require.Equal(t, "ann@example.com", f.lastLinkReq.Email)
}

func TestLogin_SetsTokensAndUser(t *testing.T) {
	f := &fakePB{loginResp: &pb.LoginResponse{
		AccessToken: "A", RefreshToken: "R", UserId: "u1", Email: "ann@example.com",
	}}
	c := &GRPCClient{client: f}

	_, ok := c.CurrentUser()
	require.False(t, ok)

	require.NoError(t, c.Login(context.Background(), "id.secret"))
	require.Equal(t, "A", c.accessToken)
	require.Equal(t, "R", c.refreshToken)
	require.Equal(t, "id.secret", f.lastLoginReq.LoginToken)

	user, ok := c.CurrentUser()
	require.True(t, ok)
	require.Equal(t, "u1", user.ID)
	require.Equal(t, "ann@example.com", user.Email)
}

func TestLogin_MapsError(t *testing.T) {
	f := &fakePB{loginErr: status.Error(codes.Unauthenticated, "x")}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Login(context.Background(), "bad"), ErrUnauthorized)

	_, ok := c.CurrentUser()
	require.False(t, ok)
}

/*************
 * Ping tests
 *************/

func TestPing_OK(t *testing.T) {
	f := &fakePB{pingResp: &pb.PingResponse{Status: "OK"}}
	c := &GRPCClient{client: f}
	require.NoError(t, c.Ping(context.Background()))
}

func TestPing_NotOK_ReturnsUnavailable(t *testing.T) {
	f := &fakePB{pingResp: &pb.PingResponse{Status: "NOT_OK"}}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

/*************
 * record CRUD tests
 *************/

func TestList_MapsPeople(t *testing.T) {
	f := &fakePB{listResp: &pb.ListPeopleResponse{People: []*pb.Person{
		{Id: "p1", Name: "Ann", Contact: "555", Notes: "tea"},
		{Id: "p2", Name: "Bob", SocialInstagram: "@bob"},
	}}}
	c := &GRPCClient{client: f}

	people, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, people, 2)
	require.Equal(t, models.Person{ID: "p1", Name: "Ann", Contact: "555", Notes: "tea"}, people[0])
	require.Equal(t, "@bob", people[1].SocialInstagram)
}

func TestInsert(t *testing.T) {
	f := &fakePB{addResp: &pb.AddPersonResponse{Id: "new-id"}}
	c := &GRPCClient{client: f}

	id, err := c.Insert(context.Background(), models.Person{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)
	require.Equal(t, "new-id", id)
	require.Equal(t, "Ann", f.lastAddReq.Person.Name)
	require.Equal(t, "ann@x.com", f.lastAddReq.Person.Email)
}

func TestUpdate_MapsError(t *testing.T) {
	f := &fakePB{updateErr: status.Error(codes.NotFound, "x")}
	c := &GRPCClient{client: f}
	err := c.Update(context.Background(), models.Person{ID: "p1", Name: "Ann"})
	require.ErrorIs(t, err, common.ErrNotFound)
	require.Equal(t, "p1", f.lastUpdateReq.Person.Id)
}

func TestUpdateNotes(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}
	require.NoError(t, c.UpdateNotes(context.Background(), "p1", "remember birthday"))
	require.Equal(t, "p1", f.lastNotesReq.Id)
	require.Equal(t, "remember birthday", f.lastNotesReq.Notes)
}

func TestDelete(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}
	require.NoError(t, c.Delete(context.Background(), "p1"))
	require.Equal(t, "p1", f.lastDeleteReq.Id)
}
