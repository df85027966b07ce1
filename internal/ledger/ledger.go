package ledger

import (
	"sync"
	"time"

	interfaces "github.com/sheikh-saqib/concurrent-bank-ledger/internal/interfaces"
	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/models"
)

// DefaultWorkers is the worker-pool size used when the config leaves it zero.
const DefaultWorkers = 4

// DefaultQueueCapacity is the buffered portion of the submission queue.
// Submissions beyond it are handed off asynchronously, so the queue is
// effectively unbounded and Submit never blocks the caller.
const DefaultQueueCapacity = 1024

// Config carries the executor knobs.
type Config struct {
	// Workers is the fixed size of the worker pool.
	Workers int

	// QueueCapacity is the buffered size of the submission channel.
	QueueCapacity int

	// SubmitDelay is an injected pause before each transaction is processed,
	// simulating upstream latency. Zero (the default) means none; tests run
	// without it.
	SubmitDelay time.Duration
}

// Service is the transaction-processing core. It owns the account store, the
// worker pool draining the submission queue, and the observer registry.
// Construct one per process and share it by reference; there is no global
// instance.
type Service struct {
	store interfaces.AccountStore
	delay time.Duration

	queue    chan models.Transaction
	submitWg sync.WaitGroup
	workerWg sync.WaitGroup
	closed   sync.Once

	obsMu     sync.RWMutex
	observers []interfaces.TransactionObserver
}

// NewService creates the core and starts its worker pool.
func NewService(store interfaces.AccountStore, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.QueueCapacity <= 0 {
		cfg.QueueCapacity = DefaultQueueCapacity
	}

	s := &Service{
		store: store,
		delay: cfg.SubmitDelay,
		queue: make(chan models.Transaction, cfg.QueueCapacity),
	}

	s.workerWg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go s.worker()
	}
	return s
}

// CreateUser registers a new user with the given nickname.
func (s *Service) CreateUser(nickname string) *models.User {
	user := models.NewUser(nickname)
	s.store.SaveUser(user)
	return user
}

// CreateAccount opens a zero-balance account owned by the given user.
func (s *Service) CreateAccount(userID string) (*models.Account, error) {
	if _, ok := s.store.GetUser(userID); !ok {
		return nil, ErrUserNotFound
	}
	account := models.NewAccount(userID)
	s.store.SaveAccount(account)
	if !s.store.LinkAccount(userID, account.ID) {
		return nil, ErrUserNotFound
	}
	return account, nil
}

// GetAccount resolves an account by id.
func (s *Service) GetAccount(id string) (*models.Account, error) {
	account, ok := s.store.GetAccount(id)
	if !ok {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// GetUser resolves a user by id.
func (s *Service) GetUser(id string) (*models.User, error) {
	user, ok := s.store.GetUser(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Users lists all registered users.
func (s *Service) Users() []*models.User {
	return s.store.Users()
}

// Accounts lists all registered accounts.
func (s *Service) Accounts() []*models.Account {
	return s.store.Accounts()
}

// Subscribe registers an observer. For each completed transaction observers
// are invoked in subscription order, after the transaction's locks have been
// released.
func (s *Service) Subscribe(observer interfaces.TransactionObserver) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.observers = append(s.observers, observer)
}

func (s *Service) notify(tx models.Transaction, success bool, reason string) {
	s.obsMu.RLock()
	observers := make([]interfaces.TransactionObserver, len(s.observers))
	copy(observers, s.observers)
	s.obsMu.RUnlock()

	for _, observer := range observers {
		observer.TransactionCompleted(tx, success, reason)
	}
}
