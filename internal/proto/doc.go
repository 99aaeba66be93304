// Package proto contains the gRPC wire contract between the MilaVault
// client and server, plus the committed generated code.
//
//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative ../../internal/proto/milavault.proto
package proto
