package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pkggrpc "github.com/JoeShih716/go-bank-records/pkg/grpc"
	"github.com/JoeShih716/go-bank-records/pkg/logger"
	pb "github.com/JoeShih716/go-bank-records/proto/bankrecords/v1"
)

func main() {
	addr := flag.String("addr", "localhost:50051", "bankd address")
	nationalID := flag.String("national-id", "11223344", "national id of the demo client")
	load := flag.Int("load", 0, "number of concurrent 1.00 deposits to fire at the savings account after the walkthrough")
	concurrency := flag.Int("concurrency", 100, "max in-flight requests for -load")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	log := logger.New(*logLevel)
	defer func() { _ = log.Sync() }()

	pool := pkggrpc.NewPool(pkggrpc.WithInterceptor(pkggrpc.ClientLoggingInterceptor(log)))
	defer pool.Close()

	conn, err := pool.GetConnection(*addr)
	if err != nil {
		log.Error("did not connect", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	c := pb.NewBankServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	savings, err := walkthrough(ctx, c, *nationalID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo failed: %v\n", err)
		os.Exit(1)
	}
	if *load > 0 {
		fireDeposits(ctx, c, savings, *load, *concurrency)
	}
}

// walkthrough 依序呼叫客戶與帳戶的操作並印出結果，回傳儲蓄帳戶的帳號
func walkthrough(ctx context.Context, c pb.BankServiceClient, nationalID string) (string, error) {
	// 客戶: 依身分證號取得，不存在就建立
	client, err := findOrCreateClient(ctx, c, nationalID)
	if err != nil {
		return "", err
	}
	fmt.Println("client ready:", client)

	client.Email = "rosa.actualizado@mail.com"
	client.PhoneNumber = "999888777"
	client.Address = "Jr. Los Tulipanes 456"
	updated, err := c.UpdateClient(ctx, &pb.UpdateClientRequest{Client: client})
	if err != nil {
		return "", fmt.Errorf("update client: %w", err)
	}
	fmt.Println("client updated:", updated.GetClient())

	list, err := c.ListClients(ctx, &pb.ListClientsRequest{})
	if err != nil {
		return "", fmt.Errorf("list clients: %w", err)
	}
	fmt.Println("----- clients -----")
	for _, cl := range list.GetClients() {
		fmt.Printf("%d | %s | %s %s | %s\n", cl.GetId(), cl.GetNationalId(), cl.GetFirstName(), cl.GetLastName(), cl.GetEmail())
	}

	// 帳戶: 一個 SAVINGS/PEN 與一個 CHECKING/USD
	savings, err := c.OpenAccount(ctx, &pb.OpenAccountRequest{
		ClientId:       client.GetId(),
		AccountType:    "SAVINGS",
		Currency:       "PEN",
		Balance:        "0.00",
		OverdraftLimit: "0.00",
	})
	if err != nil {
		return "", fmt.Errorf("open savings: %w", err)
	}
	checking, err := c.OpenAccount(ctx, &pb.OpenAccountRequest{
		ClientId:       client.GetId(),
		AccountType:    "CHECKING",
		Currency:       "USD",
		Balance:        "200.00",
		OverdraftLimit: "500.00",
	})
	if err != nil {
		return "", fmt.Errorf("open checking: %w", err)
	}
	pen := savings.GetAccount().GetAccountNumber()
	usd := checking.GetAccount().GetAccountNumber()
	fmt.Println("PEN savings account:", pen)
	fmt.Println("USD checking account:", usd)

	moves := []struct {
		deposit bool
		account string
		amount  string
	}{
		{true, pen, "300.00"},
		{false, pen, "50.00"},
		{true, usd, "100.00"},
		{false, usd, "700.00"}, // 300 - 700 = -400，在透支額度 500 之內
	}
	for _, m := range moves {
		req := &pb.MovementRequest{AccountNumber: m.account, Amount: m.amount}
		if m.deposit {
			_, err = c.Deposit(ctx, req)
		} else {
			_, err = c.Withdraw(ctx, req)
		}
		if err != nil {
			return "", fmt.Errorf("movement on %s: %w", m.account, err)
		}
	}

	for _, n := range []string{pen, usd} {
		b, err := c.GetBalance(ctx, &pb.GetBalanceRequest{AccountNumber: n})
		if err != nil {
			return "", fmt.Errorf("balance of %s: %w", n, err)
		}
		fmt.Printf("balance %s: %s\n", n, b.GetBalance())
	}

	// 刻意失敗的提款: 儲蓄帳戶不能變成負數
	_, err = c.Withdraw(ctx, &pb.MovementRequest{AccountNumber: pen, Amount: "300.00"})
	switch status.Code(err) {
	case codes.FailedPrecondition, codes.Internal:
		fmt.Println("rejected withdrawal on PEN savings:", status.Convert(err).Message())
	case codes.OK:
		return "", fmt.Errorf("withdrawal of 300.00 on %s unexpectedly succeeded", pen)
	default:
		return "", fmt.Errorf("withdraw: %w", err)
	}

	accounts, err := c.ListAccounts(ctx, &pb.ListAccountsRequest{ClientId: client.GetId()})
	if err != nil {
		return "", fmt.Errorf("list accounts: %w", err)
	}
	fmt.Println("----- client accounts -----")
	for _, a := range accounts.GetAccounts() {
		fmt.Printf("%s | %s | %s | %s\n", a.GetAccountNumber(), a.GetCurrency(), a.GetAccountType(), a.GetBalance())
	}
	return pen, nil
}

func findOrCreateClient(ctx context.Context, c pb.BankServiceClient, nationalID string) (*pb.Client, error) {
	got, err := c.GetClient(ctx, &pb.GetClientRequest{NationalId: nationalID})
	if err == nil {
		return got.GetClient(), nil
	}
	if status.Code(err) != codes.NotFound {
		return nil, fmt.Errorf("get client: %w", err)
	}
	created, err := c.CreateClient(ctx, &pb.CreateClientRequest{Client: &pb.Client{
		NationalId:  nationalID,
		FirstName:   "Rosa",
		LastName:    "Santos",
		Email:       "rosa@mail.com",
		PhoneNumber: "987654321",
		BirthDate:   "1998-03-21",
		Address:     "Av. Primavera 123",
	}})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return created.GetClient(), nil
}

// fireDeposits 以固定併發數送出 total 筆 1.00 存款，最後比對餘額
func fireDeposits(ctx context.Context, c pb.BankServiceClient, accountNumber string, total, concurrency int) {
	before, err := c.GetBalance(ctx, &pb.GetBalanceRequest{AccountNumber: accountNumber})
	if err != nil {
		fmt.Fprintf(os.Stderr, "balance before load: %v\n", err)
		return
	}

	var (
		wg     sync.WaitGroup
		failed atomic.Int64
	)
	sem := make(chan struct{}, concurrency)
	start := time.Now()

	for i := 0; i < total; i++ {
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			if _, err := c.Deposit(ctx, &pb.MovementRequest{AccountNumber: accountNumber, Amount: "1.00"}); err != nil {
				failed.Add(1)
			}
		}()
	}
	wg.Wait()

	elapsed := time.Since(start)
	after, err := c.GetBalance(ctx, &pb.GetBalanceRequest{AccountNumber: accountNumber})
	if err != nil {
		fmt.Fprintf(os.Stderr, "balance after load: %v\n", err)
		return
	}
	fmt.Printf("completed %d deposits (%d failed) in %v, TPS %.2f\n", total, failed.Load(), elapsed, float64(total)/elapsed.Seconds())
	fmt.Printf("balance %s -> %s\n", before.GetBalance(), after.GetBalance())
}
