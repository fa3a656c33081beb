/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package ledger implements the in-memory registry of users and accounts
// and mediates every balance mutation. All state lives for the process
// lifetime only and is rebuilt by an explicit reset or seed.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"demobank-go/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service is the ledger: the sole owner of all User and Account state and
// the single "currently authenticated user" pointer. One mutex serializes
// every operation, so cross-account moves (transfers) are atomic with
// respect to other callers.
//
// Reads return clones; callers can never reach internal state through a
// returned value.
type Service struct {
	mu            sync.Mutex
	cfg           models.LedgerConfig
	users         map[string]*User
	accounts      map[string]*Account
	userOrder     []string
	currentUserId string
}

func NewService(cfg models.LedgerConfig) *Service {
	return &Service{
		cfg:      cfg,
		users:    make(map[string]*User),
		accounts: make(map[string]*Account),
	}
}

// RegisterUser creates a new user. Email uniqueness is enforced here and
// only here. Registering does not authenticate the new user.
func (s *Service) RegisterUser(firstName, lastName, email, password string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.registerUserLocked(firstName, lastName, email, password)
	if err != nil {
		return nil, err
	}

	zap.L().Info("User registered",
		zap.String("user_id", user.Id),
		zap.String("email", user.Email))
	return user.clone(), nil
}

func (s *Service) registerUserLocked(firstName, lastName, email, password string) (*User, error) {
	for _, id := range s.userOrder {
		if s.users[id].Email == email {
			return nil, fmt.Errorf("%w: %s", ErrEmailTaken, email)
		}
	}

	user := newUser(firstName, lastName, email, password)
	s.users[user.Id] = user
	s.userOrder = append(s.userOrder, user.Id)
	return user, nil
}

// CreateGuestUser creates a pre-authenticated demo identity with a
// time-based synthetic email and seeds it with one savings and one current
// account. Guest email collisions are not checked.
func (s *Service) CreateGuestUser() (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guestEmail := fmt.Sprintf("guest-%d", time.Now().UnixMilli())
	user := newUser("Guest", "User", guestEmail, "")
	s.users[user.Id] = user
	s.userOrder = append(s.userOrder, user.Id)
	s.currentUserId = user.Id

	if _, err := s.createAccountLocked(Savings, user.Id, s.cfg.GuestSavingsBalance, "Guest Savings"); err != nil {
		return nil, err
	}
	if _, err := s.createAccountLocked(Current, user.Id, s.cfg.GuestCurrentBalance, "Guest Checking"); err != nil {
		return nil, err
	}

	zap.L().Info("Guest user created",
		zap.String("user_id", user.Id),
		zap.String("email", guestEmail))
	return user.clone(), nil
}

// LoginUser authenticates by email and credential and marks the matching
// user as the authenticated one.
func (s *Service) LoginUser(email, password string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.userOrder {
		user := s.users[id]
		if user.Email == email && user.Authenticate(password) {
			s.currentUserId = user.Id
			zap.L().Info("User logged in", zap.String("user_id", user.Id))
			return user.clone(), nil
		}
	}

	zap.L().Warn("Login rejected", zap.String("email", email))
	return nil, ErrInvalidCredentials
}

// LogoutUser clears the authenticated-user pointer. No user or account
// state is touched.
func (s *Service) LogoutUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUserId = ""
}

// CurrentUser returns the authenticated user, if any.
func (s *Service) CurrentUser() (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUserId == "" {
		return nil, false
	}
	user, ok := s.users[s.currentUserId]
	if !ok {
		return nil, false
	}
	return user.clone(), true
}

// UserById looks up a single user.
func (s *Service) UserById(userId string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userId]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userId)
	}
	return user.clone(), nil
}

// Users returns all users in registration order.
func (s *Service) Users() []*User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, s.users[id].clone())
	}
	return users
}

// CreateSavingsAccount opens a savings account for the user and registers
// the account id on the owning user.
func (s *Service) CreateSavingsAccount(userId string, initialBalance decimal.Decimal, name string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createAccountForUser(Savings, userId, initialBalance, name)
}

// CreateCurrentAccount opens a current account for the user and registers
// the account id on the owning user.
func (s *Service) CreateCurrentAccount(userId string, initialBalance decimal.Decimal, name string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createAccountForUser(Current, userId, initialBalance, name)
}

func (s *Service) createAccountForUser(accountType AccountType, userId string, initialBalance decimal.Decimal, name string) (*Account, error) {
	account, err := s.createAccountLocked(accountType, userId, initialBalance, name)
	if err != nil {
		return nil, err
	}

	zap.L().Info("Account created",
		zap.String("account_id", account.Id),
		zap.String("user_id", userId),
		zap.String("type", string(account.Type)),
		zap.String("balance", account.Balance.String()))
	return account.clone(), nil
}

func (s *Service) createAccountLocked(accountType AccountType, userId string, initialBalance decimal.Decimal, name string) (*Account, error) {
	user, ok := s.users[userId]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userId)
	}

	account, err := newAccount(accountType, userId, initialBalance, name)
	if err != nil {
		return nil, err
	}

	switch accountType {
	case Savings:
		account.InterestRate = s.cfg.SavingsInterestRate
		account.MinimumBalance = s.cfg.SavingsMinimumBalance
	case Current:
		account.OverdraftLimit = s.cfg.CurrentOverdraftLimit
	}

	s.accounts[account.Id] = account
	user.addAccount(account.Id)
	return account, nil
}

// AccountById looks up a single account.
func (s *Service) AccountById(accountId string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountId]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountId)
	}
	return account.clone(), nil
}

// AccountsByUserId returns the user's accounts in the order they were
// opened.
func (s *Service) AccountsByUserId(userId string) ([]*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userId]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userId)
	}

	accounts := make([]*Account, 0, len(user.AccountIds))
	for _, id := range user.AccountIds {
		if account, ok := s.accounts[id]; ok {
			accounts = append(accounts, account.clone())
		}
	}
	return accounts, nil
}

// Transactions returns the account's history, oldest first.
func (s *Service) Transactions(accountId string) ([]Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountId]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountId)
	}

	history := make([]Transaction, len(account.Transactions))
	copy(history, account.Transactions)
	return history, nil
}

// Deposit credits an account. An unknown account id yields false; an
// invalid amount is raised as an error by the account itself.
func (s *Service) Deposit(accountId string, amount decimal.Decimal, description string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountId]
	if !ok {
		return false, nil
	}
	if err := account.Deposit(amount, description); err != nil {
		return false, err
	}

	zap.L().Info("Deposit applied",
		zap.String("account_id", accountId),
		zap.String("amount", amount.String()),
		zap.String("balance", account.Balance.String()))
	return true, nil
}

// Withdraw debits an account. An unknown account id and a policy decline
// both yield false; callers that need to tell them apart resolve the
// account first.
func (s *Service) Withdraw(accountId string, amount decimal.Decimal, description string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountId]
	if !ok {
		return false, nil
	}

	ok, err := account.Withdraw(amount, description)
	if err != nil {
		return false, err
	}
	if !ok {
		zap.L().Warn("Withdrawal declined by account policy",
			zap.String("account_id", accountId),
			zap.String("amount", amount.String()),
			zap.String("balance", account.Balance.String()))
		return false, nil
	}

	zap.L().Info("Withdrawal applied",
		zap.String("account_id", accountId),
		zap.String("amount", amount.String()),
		zap.String("balance", account.Balance.String()))
	return true, nil
}

// Transfer moves amount between two accounts under the single ledger
// mutex. The credit is only applied after the debit succeeded, so a failed
// transfer leaves no partial leg.
func (s *Service) Transfer(sourceId, targetId string, amount decimal.Decimal, description string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	source, ok := s.accounts[sourceId]
	if !ok {
		return false, nil
	}
	target, ok := s.accounts[targetId]
	if !ok {
		return false, nil
	}

	ok, err := source.TransferTo(target, amount, description)
	if err != nil {
		return false, err
	}
	if !ok {
		zap.L().Warn("Transfer declined by source account policy",
			zap.String("source_id", sourceId),
			zap.String("target_id", targetId),
			zap.String("amount", amount.String()))
		return false, nil
	}

	zap.L().Info("Transfer applied",
		zap.String("source_id", sourceId),
		zap.String("target_id", targetId),
		zap.String("amount", amount.String()))
	return true, nil
}

// ApplySavingsInterest credits interest on a savings account. Returns
// false when the account is unknown or not a savings account.
func (s *Service) ApplySavingsInterest(accountId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountId]
	if !ok || account.Type != Savings {
		return false
	}

	tx := account.ApplyInterest()
	zap.L().Info("Interest applied",
		zap.String("account_id", accountId),
		zap.String("interest", tx.Amount.String()),
		zap.String("balance", account.Balance.String()))
	return true
}

// SetCurrentAccountOverdraftLimit replaces the overdraft limit on a
// current account. Returns false when the account is unknown or not a
// current account.
func (s *Service) SetCurrentAccountOverdraftLimit(accountId string, limit decimal.Decimal) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountId]
	if !ok || account.Type != Current {
		return false
	}

	account.SetOverdraftLimit(limit)
	zap.L().Info("Overdraft limit updated",
		zap.String("account_id", accountId),
		zap.String("limit", limit.String()))
	return true
}

// ResetData wipes all users, accounts and the authenticated-user pointer.
func (s *Service) ResetData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[string]*User)
	s.accounts = make(map[string]*Account)
	s.userOrder = nil
	s.currentUserId = ""
	zap.L().Info("Ledger state reset")
}

// Stats reports entity counts, used for metrics and the report CLI.
func (s *Service) Stats() (users, accounts int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), len(s.accounts)
}
