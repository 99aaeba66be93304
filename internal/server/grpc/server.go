// Package grpc exposes the vault services over the wire protocol defined
// in internal/proto.
package grpc

import (
	"context"
	"net"

	"github.com/milavault/milavault/internal/logging"
	pb "github.com/milavault/milavault/internal/proto"
	"github.com/milavault/milavault/internal/server/models"
	"github.com/milavault/milavault/internal/server/services"
	"google.golang.org/grpc"
)

// UserProvider is the slice of the user service the gRPC surface needs.
type UserProvider interface {
	RequestLoginLink(ctx context.Context, email string) (string, error)
	Login(ctx context.Context, linkToken string) (*services.TokenPair, *models.User, error)
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

// PersonProvider is the slice of the person service the gRPC surface needs.
type PersonProvider interface {
	List(ctx context.Context, userID string) ([]models.Person, error)
	Create(ctx context.Context, userID string, p models.Person) (string, error)
	Update(ctx context.Context, userID string, p models.Person) error
	UpdateNotes(ctx context.Context, userID, id, notes string) error
	Delete(ctx context.Context, userID, id string) error
}

type GRPCServer struct {
	pb.UnimplementedMilaVaultServiceServer
	address   string
	users     UserProvider
	people    PersonProvider
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us UserProvider, ps PersonProvider, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		people:    ps,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterMilaVaultServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
