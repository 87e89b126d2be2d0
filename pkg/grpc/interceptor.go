package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingUnaryInterceptor 記錄每一次 unary 呼叫的方法、耗時與狀態碼
// 伺服器端錯誤 (Internal / Unknown) 以 Error 記錄，其餘失敗以 Info 記錄
func LoggingUnaryInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Duration("duration", time.Since(start)),
			zap.String("grpc_code", code.String()),
		}
		switch code {
		case codes.OK:
			log.Info("gRPC unary call completed", fields...)
		case codes.Internal, codes.Unknown:
			log.Error("gRPC unary call failed", append(fields, zap.Error(err))...)
		default:
			log.Info("gRPC unary call rejected", append(fields, zap.Error(err))...)
		}
		return resp, err
	}
}

// RecoveryUnaryInterceptor 把 handler 的 panic 轉成 codes.Internal
func RecoveryUnaryInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("gRPC unary call panic recovered",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
				)
				err = status.Error(codes.Internal, "internal server error")
			}
		}()
		return handler(ctx, req)
	}
}

// ClientLoggingInterceptor 客戶端記錄呼叫耗時，搭配 Pool 的 WithInterceptor 使用
func ClientLoggingInterceptor(log *zap.Logger) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		log.Debug("gRPC call",
			zap.String("method", method),
			zap.String("target", cc.Target()),
			zap.Duration("duration", time.Since(start)),
			zap.String("grpc_code", status.Code(err).String()),
		)
		return err
	}
}
