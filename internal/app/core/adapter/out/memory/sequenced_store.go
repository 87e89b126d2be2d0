package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/JoeShih716/go-bank-records/internal/app/core/domain"
	"github.com/JoeShih716/go-bank-records/internal/app/core/usecase"
)

// ErrStoreStopped 單一寫入者已停止，不再接受異動
var ErrStoreStopped = fmt.Errorf("%w: sequenced store stopped", domain.ErrPersistence)

// command 包裝一筆寫入，讓呼叫端可以等待結果
type command struct {
	apply  func() error
	result chan error
}

// SequencedStore 讓所有寫入經由同一個 goroutine 依序執行 (single writer)
// 讀取直接走底層 MutexStore
//
// 呼叫端(等待) -> Channel -> Run Loop -> MutexStore (WAL -> Map) -> Result Channel -> 呼叫端(收到結果)
type SequencedStore struct {
	*MutexStore

	commands chan *command
	// Pool 減少 GC 壓力
	pool sync.Pool
	done chan struct{}
}

// NewSequencedStore 建立 SequencedStore，必須呼叫 Start 之後才能寫入
//
// 參數:
//
//	store: 底層資料
//	buffer: 輸送帶的容量
func NewSequencedStore(store *MutexStore, buffer int) *SequencedStore {
	return &SequencedStore{
		MutexStore: store,
		commands:   make(chan *command, buffer),
		pool: sync.Pool{
			New: func() any {
				return &command{result: make(chan error, 1)}
			},
		},
		done: make(chan struct{}),
	}
}

// Start 啟動寫入迴圈，ctx 結束時把已排隊的寫入處理完再停止
func (s *SequencedStore) Start(ctx context.Context) {
	go s.run(ctx)
}

// Done 在寫入迴圈結束後關閉
func (s *SequencedStore) Done() <-chan struct{} {
	return s.done
}

func (s *SequencedStore) run(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			s.drain()
			return
		case cmd := <-s.commands:
			cmd.result <- cmd.apply()
		}
	}
}

func (s *SequencedStore) drain() {
	for {
		select {
		case cmd := <-s.commands:
			cmd.result <- cmd.apply()
		default:
			return
		}
	}
}

// submit 把寫入放上輸送帶並等待結果
func (s *SequencedStore) submit(ctx context.Context, apply func() error) error {
	cmd := s.pool.Get().(*command)
	cmd.apply = apply

	select {
	case s.commands <- cmd:
	case <-ctx.Done():
		cmd.apply = nil
		s.pool.Put(cmd)
		return fmt.Errorf("%w: %w", domain.ErrPersistence, ctx.Err())
	case <-s.done:
		return ErrStoreStopped
	}

	select {
	case err := <-cmd.result:
		cmd.apply = nil
		s.pool.Put(cmd)
		return err
	case <-s.done:
		// 迴圈結束前可能剛好處理完這筆
		select {
		case err := <-cmd.result:
			return err
		default:
			return ErrStoreStopped
		}
	}
}

func (s *SequencedStore) CreateClient(ctx context.Context, client *domain.Client) error {
	return s.submit(ctx, func() error {
		return s.MutexStore.CreateClient(ctx, client)
	})
}

func (s *SequencedStore) UpdateClient(ctx context.Context, client *domain.Client) error {
	return s.submit(ctx, func() error {
		return s.MutexStore.UpdateClient(ctx, client)
	})
}

func (s *SequencedStore) DeleteClient(ctx context.Context, id int64) (bool, error) {
	var removed bool
	err := s.submit(ctx, func() error {
		var err error
		removed, err = s.MutexStore.DeleteClient(ctx, id)
		return err
	})
	return removed, err
}

func (s *SequencedStore) InsertAccount(ctx context.Context, account *domain.BankAccount) error {
	return s.submit(ctx, func() error {
		return s.MutexStore.InsertAccount(ctx, account)
	})
}

func (s *SequencedStore) UpdateBalance(ctx context.Context, accountNumber string, mutate usecase.BalanceMutation) (*domain.BankAccount, error) {
	var updated *domain.BankAccount
	err := s.submit(ctx, func() error {
		var err error
		updated, err = s.MutexStore.UpdateBalance(ctx, accountNumber, mutate)
		return err
	})
	return updated, err
}

var (
	_ usecase.ClientRepository  = (*SequencedStore)(nil)
	_ usecase.AccountRepository = (*SequencedStore)(nil)
)
