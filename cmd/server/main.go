package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/config"
	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/events"
	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/events/kafka"
	interfaces "github.com/sheikh-saqib/concurrent-bank-ledger/internal/interfaces"
	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/ledger"
	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/models"
	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/storage/memory"
	"github.com/sheikh-saqib/concurrent-bank-ledger/internal/storage/postgres"
)

// logObserver prints every transaction outcome to the process log.
type logObserver struct{}

func (logObserver) TransactionCompleted(tx models.Transaction, success bool, reason string) {
	log.Printf("transaction %s (%s): success=%v reason=%q", tx.ID, tx.Action, success, reason)
}

// accountView is the JSON shape of an account; balance and frozen are
// display-time snapshots.
type accountView struct {
	ID      string          `json:"id"`
	UserID  string          `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
	Frozen  bool            `json:"frozen"`
}

func viewOf(account *models.Account) accountView {
	return accountView{
		ID:      account.ID,
		UserID:  account.UserID,
		Balance: account.Balance(),
		Frozen:  account.Frozen(),
	}
}

func main() {

	cfg := config.Load()

	var store interfaces.AccountStore = memory.NewStore()
	service := ledger.NewService(store, ledger.Config{
		Workers:       cfg.Workers,
		QueueCapacity: cfg.QueueCapacity,
		SubmitDelay:   cfg.SubmitDelay,
	})

	service.Subscribe(logObserver{})

	// Audit trail: Postgres when configured, in-memory otherwise.
	var auditStore interfaces.AuditStore = memory.NewAuditStore()
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		auditStore = postgres.NewAuditStore(db)
	}
	service.Subscribe(ledger.NewAuditObserver(auditStore))

	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(cfg.KafkaBrokers)
		defer publisher.Close()
		service.Subscribe(events.NewPublishingObserver(publisher, cfg.KafkaTopic))
	}

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	http.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req struct {
				Nickname string `json:"nickname"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}
			user := service.CreateUser(req.Nickname)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(user)

		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(service.Users())

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/accounts", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req struct {
				UserID string `json:"user_id"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}
			account, err := service.CreateAccount(req.UserID)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(viewOf(account))

		case http.MethodGet:
			accounts := service.Accounts()
			views := make([]accountView, 0, len(accounts))
			for _, account := range accounts {
				views = append(views, viewOf(account))
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(views)

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	http.HandleFunc("/accounts/balance", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		accountID := r.URL.Query().Get("account_id")
		if accountID == "" {
			http.Error(w, "account_id is a mandatory field", http.StatusBadRequest)
			return
		}

		account, err := service.GetAccount(accountID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(viewOf(account))
	})

	http.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var req struct {
			Action        string          `json:"action"`
			Amount        decimal.Decimal `json:"amount"`
			SourceAccount string          `json:"source_account"`
			TargetAccount string          `json:"target_account"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		action := models.ActionType(req.Action)
		switch action {
		case models.ActionDeposit, models.ActionWithdraw, models.ActionFreeze, models.ActionTransfer:
		default:
			http.Error(w, "unknown action", http.StatusBadRequest)
			return
		}

		tx := models.NewTransaction(action, req.Amount, req.SourceAccount, req.TargetAccount)

		// Fire-and-forget: the outcome reaches the observers, not this
		// response.
		service.Submit(tx)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(struct {
			Status        string `json:"status"`
			TransactionID string `json:"transaction_id"`
		}{
			Status:        "accepted",
			TransactionID: tx.ID,
		})
	})

	http.HandleFunc("/audit", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		entries, err := auditStore.Entries()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	})

	log.Printf("Starting server on %s (%d workers)", cfg.HTTPAddr, cfg.Workers)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, nil))
}
