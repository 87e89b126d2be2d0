package grpc

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-records/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-bank-records/proto/bankrecords/v1"
)

// GrpcServer 把 BankService 的呼叫轉給 ClientRegistry 與 AccountLedger
type GrpcServer struct {
	pb.UnimplementedBankServiceServer

	registry *usecase.ClientRegistry
	ledger   *usecase.AccountLedger
	logger   *zap.Logger
}

func NewGrpcServer(registry *usecase.ClientRegistry, ledger *usecase.AccountLedger, logger *zap.Logger) *GrpcServer {
	return &GrpcServer{
		registry: registry,
		ledger:   ledger,
		logger:   logger,
	}
}

func (s *GrpcServer) CreateClient(ctx context.Context, req *pb.CreateClientRequest) (*pb.ClientReply, error) {
	profile, err := toProfile(req.GetClient())
	if err != nil {
		return nil, s.toStatus(err)
	}
	client, err := domain.NewClient(req.GetClient().GetNationalId(), profile)
	if err != nil {
		return nil, s.toStatus(err)
	}
	created, err := s.registry.Create(ctx, client)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.ClientReply{Client: toClientMessage(created)}, nil
}

func (s *GrpcServer) GetClient(ctx context.Context, req *pb.GetClientRequest) (*pb.ClientReply, error) {
	var (
		client *domain.Client
		ok     bool
		err    error
	)
	switch {
	case req.GetId() > 0:
		client, ok, err = s.registry.FindByID(ctx, req.GetId())
	case req.GetNationalId() != "":
		client, ok, err = s.registry.FindByNationalID(ctx, req.GetNationalId())
	default:
		return nil, status.Error(codes.InvalidArgument, "id or national_id is required")
	}
	if err != nil {
		return nil, s.toStatus(err)
	}
	if !ok {
		return nil, s.toStatus(domain.ErrClientNotFound)
	}
	return &pb.ClientReply{Client: toClientMessage(client)}, nil
}

func (s *GrpcServer) ListClients(ctx context.Context, _ *pb.ListClientsRequest) (*pb.ListClientsReply, error) {
	clients, err := s.registry.ListAll(ctx)
	if err != nil {
		return nil, s.toStatus(err)
	}
	reply := &pb.ListClientsReply{Clients: make([]*pb.Client, 0, len(clients))}
	for _, c := range clients {
		reply.Clients = append(reply.Clients, toClientMessage(c))
	}
	return reply, nil
}

func (s *GrpcServer) UpdateClient(ctx context.Context, req *pb.UpdateClientRequest) (*pb.ClientReply, error) {
	profile, err := toProfile(req.GetClient())
	if err != nil {
		return nil, s.toStatus(err)
	}
	// 身分證號不會被寫入，這裡只用來組出物件
	client := domain.RestoreClient(req.GetClient().GetId(), req.GetClient().GetNationalId(), profile)
	stored, err := s.registry.Update(ctx, client)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.ClientReply{Client: toClientMessage(stored)}, nil
}

func (s *GrpcServer) DeleteClient(ctx context.Context, req *pb.DeleteClientRequest) (*pb.DeleteClientReply, error) {
	removed, err := s.registry.Delete(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.DeleteClientReply{Deleted: removed}, nil
}

func (s *GrpcServer) OpenAccount(ctx context.Context, req *pb.OpenAccountRequest) (*pb.AccountReply, error) {
	balance, err := parseDecimal("balance", req.GetBalance())
	if err != nil {
		return nil, s.toStatus(err)
	}
	limit, err := parseDecimal("overdraft_limit", req.GetOverdraftLimit())
	if err != nil {
		return nil, s.toStatus(err)
	}
	created, err := parseDate("creation_date", req.GetCreationDate())
	if err != nil {
		return nil, s.toStatus(err)
	}
	account, err := s.ledger.OpenAccount(ctx, usecase.OpenAccountRequest{
		ClientID:       req.GetClientId(),
		AccountType:    domain.AccountType(req.GetAccountType()),
		Currency:       domain.Currency(req.GetCurrency()),
		Balance:        balance,
		OverdraftLimit: limit,
		CreationDate:   created,
	})
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.AccountReply{Account: toAccountMessage(account)}, nil
}

func (s *GrpcServer) GetAccount(ctx context.Context, req *pb.GetAccountRequest) (*pb.AccountReply, error) {
	account, ok, err := s.ledger.FindByAccountNumber(ctx, req.GetAccountNumber())
	if err != nil {
		return nil, s.toStatus(err)
	}
	if !ok {
		return nil, s.toStatus(domain.ErrAccountNotFound)
	}
	return &pb.AccountReply{Account: toAccountMessage(account)}, nil
}

func (s *GrpcServer) ListAccounts(ctx context.Context, req *pb.ListAccountsRequest) (*pb.ListAccountsReply, error) {
	accounts, err := s.ledger.FindByClient(ctx, req.GetClientId())
	if err != nil {
		return nil, s.toStatus(err)
	}
	reply := &pb.ListAccountsReply{Accounts: make([]*pb.Account, 0, len(accounts))}
	for _, a := range accounts {
		reply.Accounts = append(reply.Accounts, toAccountMessage(a))
	}
	return reply, nil
}

func (s *GrpcServer) Deposit(ctx context.Context, req *pb.MovementRequest) (*pb.AccountReply, error) {
	amount, err := parseAmount(req.GetAmount())
	if err != nil {
		return nil, s.toStatus(err)
	}
	account, err := s.ledger.Deposit(ctx, req.GetAccountNumber(), amount)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.AccountReply{Account: toAccountMessage(account)}, nil
}

func (s *GrpcServer) Withdraw(ctx context.Context, req *pb.MovementRequest) (*pb.AccountReply, error) {
	amount, err := parseAmount(req.GetAmount())
	if err != nil {
		return nil, s.toStatus(err)
	}
	account, err := s.ledger.Withdraw(ctx, req.GetAccountNumber(), amount)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.AccountReply{Account: toAccountMessage(account)}, nil
}

func (s *GrpcServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.BalanceReply, error) {
	balance, err := s.ledger.GetBalance(ctx, req.GetAccountNumber())
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.BalanceReply{
		AccountNumber: req.GetAccountNumber(),
		Balance:       balance.StringFixed(2),
	}, nil
}

// toStatus 把 domain 錯誤種類對應到 gRPC 狀態碼
// 儲存層的錯誤細節只寫進 log，不回傳給客戶端
func (s *GrpcServer) toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrBusinessRuleViolation):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrConstraintViolation):
		return status.Error(codes.AlreadyExists, domain.ErrConstraintViolation.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		s.logger.Error("request failed", zap.Error(err))
		return status.Error(codes.Internal, fmt.Sprintf("internal error: %s", errorKind(err)))
	}
}

func errorKind(err error) string {
	if errors.Is(err, domain.ErrPersistence) {
		return domain.ErrPersistence.Error()
	}
	return "unexpected"
}

var _ pb.BankServiceServer = (*GrpcServer)(nil)
