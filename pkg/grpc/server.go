package grpc

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Server 是帶有 health 與 reflection 服務的 gRPC server
type Server struct {
	*grpc.Server
	health *health.Server
}

// NewServer 建立 gRPC server，預設串接 recovery 與 logging 攔截器
// 並註冊標準 health service 與 server reflection (方便 grpcurl 測試)
func NewServer(log *zap.Logger, opts ...grpc.ServerOption) *Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			RecoveryUnaryInterceptor(log),
			LoggingUnaryInterceptor(log),
		),
	}, opts...)

	s := &Server{
		Server: grpc.NewServer(opts...),
		health: health.NewServer(),
	}
	healthpb.RegisterHealthServer(s.Server, s.health)
	reflection.Register(s.Server)
	return s
}

// SetServing 將服務標記為 SERVING，service 為空字串代表整個 server
func (s *Server) SetServing(service string) {
	s.health.SetServingStatus(service, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown 先讓 health 回報 NOT_SERVING，再等待進行中的請求結束
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.GracefulStop()
}
