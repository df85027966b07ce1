package ledger

import (
	"fmt"
	"time"

	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/models"
)

// Submit enqueues a transaction for asynchronous processing and returns
// immediately; the outcome arrives later through the subscribed observers.
// When the buffered queue is full the send is handed off to a goroutine, so
// the caller still never blocks and no transaction is dropped. Submitting
// after Close is a programming error.
func (s *Service) Submit(tx models.Transaction) {
	s.submitWg.Add(1)
	select {
	case s.queue <- tx:
		s.submitWg.Done()
	default:
		go func() {
			s.queue <- tx
			s.submitWg.Done()
		}()
	}
}

// Close stops intake, lets the workers drain everything already submitted,
// and waits for them to exit. The spec's process needs no teardown beyond
// exit; tests do.
func (s *Service) Close() {
	s.closed.Do(func() {
		s.submitWg.Wait()
		close(s.queue)
	})
	s.workerWg.Wait()
}

// worker drains the submission queue, one transaction at a time to
// completion. Failures become notifications, never a dead worker.
func (s *Service) worker() {
	defer s.workerWg.Done()
	for tx := range s.queue {
		if s.delay > 0 {
			time.Sleep(s.delay)
		}
		if err := s.process(tx); err != nil {
			s.notify(tx, false, err.Error())
		} else {
			s.notify(tx, true, "success")
		}
	}
}

// process runs one transaction and releases every lock it took before
// returning, so notify never runs under an account lock. A panic while
// processing is fatal to this transaction only.
func (s *Service) process(tx models.Transaction) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal fault: %v", r)
		}
	}()

	if tx.Action == models.ActionTransfer {
		return s.transfer(tx)
	}
	return s.applySingle(tx)
}

// applySingle resolves the source account and runs the action's strategy
// under that account's lock.
func (s *Service) applySingle(tx models.Transaction) error {
	st, err := strategyFor(tx.Action)
	if err != nil {
		return err
	}

	account, ok := s.store.GetAccount(tx.SourceAccountID)
	if !ok {
		return ErrAccountNotFound
	}

	locked := account.Lock()
	defer locked.Unlock()
	return st.apply(locked, tx.Amount)
}
