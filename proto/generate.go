// Package proto holds the gRPC interface definitions. Generated Go stubs
// land under gen/proto.
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative invoicepipe/v1/invoicepipe.proto
