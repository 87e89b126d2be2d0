package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	grpc_adapter "github.com/JoeShih716/go-bank-records/internal/app/core/adapter/in/grpc"
	memory_adapter "github.com/JoeShih716/go-bank-records/internal/app/core/adapter/out/memory"
	mysql_adapter "github.com/JoeShih716/go-bank-records/internal/app/core/adapter/out/mysql"
	"github.com/JoeShih716/go-bank-records/internal/app/core/usecase"
	"github.com/JoeShih716/go-bank-records/internal/config"
	pkggrpc "github.com/JoeShih716/go-bank-records/pkg/grpc"
	"github.com/JoeShih716/go-bank-records/pkg/logger"
	"github.com/JoeShih716/go-bank-records/pkg/mysql"
	"github.com/JoeShih716/go-bank-records/pkg/wal"
	pb "github.com/JoeShih716/go-bank-records/proto/bankrecords/v1"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default $BANK_CONFIG or config/config.yaml)")
	flag.Parse()

	// 1. 載入設定
	cfg, err := config.Load(config.ResolvePath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		logFailure(log, err)
		os.Exit(1)
	}
}

// logFailure 記錄結束原因並 Sync，os.Exit 不會執行 defer
func logFailure(log *zap.Logger, err error) {
	log.Error("bankd stopped", zap.Error(err))
	_ = log.Sync()
}

func run(cfg *config.Config, log *zap.Logger) error {
	// 2. 初始化 Store (Driven Adapter)
	clients, accounts, closeStore, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	// 3. 初始化 UseCase
	registry := usecase.NewClientRegistry(clients, logger.Component(log, "client_registry"))
	ledger := usecase.NewAccountLedger(accounts, logger.Component(log, "account_ledger"))

	// 4. 初始化 gRPC Adapter (Driving Adapter)
	srv := pkggrpc.NewServer(logger.Component(log, "grpc"))
	pb.RegisterBankServiceServer(srv, grpc_adapter.NewGrpcServer(registry, ledger, logger.Component(log, "bank_service")))
	srv.SetServing("")
	srv.SetServing(pb.BankService_ServiceDesc.ServiceName)

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPC.Addr, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting gRPC server",
			zap.String("addr", lis.Addr().String()),
			zap.String("store", string(cfg.Store.Driver)),
		)
		serveErr <- srv.Serve(lis)
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		log.Info("shutting down server", zap.String("signal", sig.String()))
		srv.Shutdown()
		log.Info("server exited")
		return nil
	case err := <-serveErr:
		return fmt.Errorf("failed to serve: %w", err)
	}
}

// openStore 依設定選擇 MySQL 或記憶體實作
func openStore(cfg *config.Config, log *zap.Logger) (usecase.ClientRepository, usecase.AccountRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreMySQL:
		dbClient, err := mysql.NewClient(cfg.MySQL, logger.Component(log, "mysql"))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to MySQL: %w", err)
		}
		if err := mysql_adapter.Migrate(dbClient.DB()); err != nil {
			_ = dbClient.Close()
			return nil, nil, nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		log.Info("connected to MySQL", zap.String("host", cfg.MySQL.Host), zap.String("db", cfg.MySQL.DBName))
		closeFn := func() {
			if err := dbClient.Close(); err != nil {
				log.Warn("failed to close MySQL", zap.Error(err))
			}
		}
		return mysql_adapter.NewClientRepository(dbClient), mysql_adapter.NewAccountRepository(dbClient), closeFn, nil

	case config.StoreMemory, config.StoreSequenced:
		var w *wal.WAL
		if cfg.WAL.Path != "" {
			var err error
			if w, err = wal.Open(cfg.WAL.Path); err != nil {
				return nil, nil, nil, fmt.Errorf("failed to init WAL: %w", err)
			}
		} else {
			log.Warn("wal.path is empty, memory store will not survive a restart")
		}
		closeWAL := func() {
			if w == nil {
				return
			}
			if err := w.Close(); err != nil {
				log.Warn("failed to close WAL", zap.Error(err))
			}
		}
		store, err := memory_adapter.NewMutexStore(w)
		if err != nil {
			closeWAL()
			return nil, nil, nil, fmt.Errorf("failed to init memory store: %w", err)
		}
		if cfg.Store.Driver == config.StoreMemory {
			return store, store, closeWAL, nil
		}

		// 單一寫入者: 關閉時先把排隊中的寫入處理完，再關 WAL
		ctx, cancel := context.WithCancel(context.Background())
		sequenced := memory_adapter.NewSequencedStore(store, 1000)
		sequenced.Start(ctx)
		closeFn := func() {
			cancel()
			<-sequenced.Done()
			closeWAL()
		}
		return sequenced, sequenced, closeFn, nil
	}
	return nil, nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
