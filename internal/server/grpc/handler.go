package grpc

import (
	"context"
	"errors"

	"github.com/milavault/milavault/internal/common"
	pb "github.com/milavault/milavault/internal/proto"
	"github.com/milavault/milavault/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) RequestLoginLink(ctx context.Context, req *pb.RequestLoginLinkRequest) (*pb.RequestLoginLinkResponse, error) {

	s.logger.Info(ctx, "Login link request")

	token, err := s.users.RequestLoginLink(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return nil, status.Error(codes.InvalidArgument, "a valid email address is required")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Login link issued", "email", req.Email)
	return &pb.RequestLoginLinkResponse{LoginToken: token}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	pair, user, err := s.users.Login(ctx, req.LoginToken)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidToken),
			errors.Is(err, common.ErrLoginTokenExpired),
			errors.Is(err, common.ErrLoginTokenConsumed),
			errors.Is(err, common.ErrUnauthorized):
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Logged in", "user_id", user.ID)
	return &pb.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserId:       user.ID,
		Email:        user.Email,
	}, nil

}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	pair, err := s.users.Refresh(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrRefreshTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.RefreshTokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) ListPeople(ctx context.Context, req *pb.ListPeopleRequest) (*pb.ListPeopleResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	people, err := s.people.List(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := &pb.ListPeopleResponse{}
	for _, p := range people {
		resp.People = append(resp.People, personToProto(p))
	}
	return resp, nil

}

func (s *GRPCServer) AddPerson(ctx context.Context, req *pb.AddPersonRequest) (*pb.AddPersonResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	id, err := s.people.Create(ctx, userID, personFromProto(req.Person))
	if err != nil {
		return nil, s.mapPersonError(ctx, err)
	}

	s.logger.Info(ctx, "Person added", "id", id)
	return &pb.AddPersonResponse{Id: id}, nil

}

func (s *GRPCServer) UpdatePerson(ctx context.Context, req *pb.UpdatePersonRequest) (*pb.UpdatePersonResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.people.Update(ctx, userID, personFromProto(req.Person)); err != nil {
		return nil, s.mapPersonError(ctx, err)
	}

	return &pb.UpdatePersonResponse{}, nil

}

func (s *GRPCServer) UpdatePersonNotes(ctx context.Context, req *pb.UpdatePersonNotesRequest) (*pb.UpdatePersonNotesResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.people.UpdateNotes(ctx, userID, req.Id, req.Notes); err != nil {
		return nil, s.mapPersonError(ctx, err)
	}

	return &pb.UpdatePersonNotesResponse{}, nil

}

func (s *GRPCServer) DeletePerson(ctx context.Context, req *pb.DeletePersonRequest) (*pb.DeletePersonResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.people.Delete(ctx, userID, req.Id); err != nil {
		return nil, s.mapPersonError(ctx, err)
	}

	s.logger.Info(ctx, "Person deleted", "id", req.Id)
	return &pb.DeletePersonResponse{}, nil

}

func (s *GRPCServer) mapPersonError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, "name is required")
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "person not found")
	default:
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}

func personFromProto(p *pb.Person) models.Person {
	if p == nil {
		return models.Person{}
	}
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
