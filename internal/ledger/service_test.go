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

package ledger

import (
	"errors"
	"testing"

	"demobank-go/internal/models"

	"github.com/shopspring/decimal"
)

func newTestService() *Service {
	return NewService(models.DefaultLedgerConfig())
}

func registerTestUser(t *testing.T, svc *Service, email string) *User {
	t.Helper()
	user, err := svc.RegisterUser("Test", "User", email, "secret")
	if err != nil {
		t.Fatalf("Failed to register user: %v", err)
	}
	return user
}

func TestRegisterUser(t *testing.T) {
	svc := newTestService()

	user := registerTestUser(t, svc, "alice@example.com")
	if user.Id == "" {
		t.Errorf("Expected a generated user id")
	}
	if user.FullName() != "Test User" {
		t.Errorf("Expected full name 'Test User', got %q", user.FullName())
	}

	// Registering does not authenticate
	if _, ok := svc.CurrentUser(); ok {
		t.Errorf("Expected no authenticated user after registration")
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	svc := newTestService()
	registerTestUser(t, svc, "alice@example.com")

	_, err := svc.RegisterUser("Other", "Person", "alice@example.com", "secret")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Expected email taken error, got: %v", err)
	}
	if len(svc.Users()) != 1 {
		t.Errorf("Duplicate registration created a user")
	}
}

func TestLoginUser(t *testing.T) {
	svc := newTestService()
	registered := registerTestUser(t, svc, "alice@example.com")

	user, err := svc.LoginUser("alice@example.com", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.Id != registered.Id {
		t.Errorf("Login returned the wrong user")
	}

	current, ok := svc.CurrentUser()
	if !ok || current.Id != registered.Id {
		t.Errorf("Expected the logged-in user to be current")
	}
}

func TestLoginUser_BadCredentials(t *testing.T) {
	svc := newTestService()
	registerTestUser(t, svc, "alice@example.com")

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "alice@example.com", "nope"},
		{"unknown email", "bob@example.com", "secret"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.LoginUser(tc.email, tc.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Expected invalid credentials error, got: %v", err)
			}
			if _, ok := svc.CurrentUser(); ok {
				t.Errorf("Failed login authenticated a user")
			}
		})
	}
}

func TestLogoutUser(t *testing.T) {
	svc := newTestService()
	registerTestUser(t, svc, "alice@example.com")
	if _, err := svc.LoginUser("alice@example.com", "secret"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	svc.LogoutUser()

	if _, ok := svc.CurrentUser(); ok {
		t.Errorf("Expected no authenticated user after logout")
	}
	if len(svc.Users()) != 1 {
		t.Errorf("Logout removed user state")
	}
}

func TestCreateGuestUser(t *testing.T) {
	svc := newTestService()

	guest, err := svc.CreateGuestUser()
	if err != nil {
		t.Fatalf("Guest creation failed: %v", err)
	}

	current, ok := svc.CurrentUser()
	if !ok || current.Id != guest.Id {
		t.Errorf("Expected the guest to be authenticated immediately")
	}

	accounts, err := svc.AccountsByUserId(guest.Id)
	if err != nil {
		t.Fatalf("Failed to list guest accounts: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("Expected 2 guest accounts, got %d", len(accounts))
	}

	savings, current2 := accounts[0], accounts[1]
	if savings.Type != Savings || savings.Name != "Guest Savings" {
		t.Errorf("Unexpected first guest account: %s %q", savings.Type, savings.Name)
	}
	if !savings.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected guest savings balance 1000, got %s", savings.Balance.String())
	}
	if current2.Type != Current || current2.Name != "Guest Checking" {
		t.Errorf("Unexpected second guest account: %s %q", current2.Type, current2.Name)
	}
	if !current2.Balance.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("Expected guest checking balance 2500, got %s", current2.Balance.String())
	}
}

func TestCreateAccount_AppliesPolicyDefaults(t *testing.T) {
	svc := newTestService()
	user := registerTestUser(t, svc, "alice@example.com")

	savings, err := svc.CreateSavingsAccount(user.Id, decimal.NewFromInt(500), "Rainy Day")
	if err != nil {
		t.Fatalf("Failed to create savings account: %v", err)
	}
	if !savings.InterestRate.Equal(decimal.NewFromFloat(0.01)) {
		t.Errorf("Expected interest rate 0.01, got %s", savings.InterestRate.String())
	}
	if !savings.MinimumBalance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected minimum balance 100, got %s", savings.MinimumBalance.String())
	}

	current, err := svc.CreateCurrentAccount(user.Id, decimal.Zero, "Spending")
	if err != nil {
		t.Fatalf("Failed to create current account: %v", err)
	}
	if !current.OverdraftLimit.Equal(decimal.NewFromInt(500)) {
		t.Errorf("Expected overdraft limit 500, got %s", current.OverdraftLimit.String())
	}
}

func TestCreateAccount_UnknownUser(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateSavingsAccount("missing", decimal.NewFromInt(100), "Nope")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected user not found error, got: %v", err)
	}
}

func TestAccountsByUserId_PreservesOpenOrder(t *testing.T) {
	svc := newTestService()
	user := registerTestUser(t, svc, "alice@example.com")

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		if _, err := svc.CreateSavingsAccount(user.Id, decimal.NewFromInt(200), name); err != nil {
			t.Fatalf("Failed to create account %q: %v", name, err)
		}
	}

	accounts, err := svc.AccountsByUserId(user.Id)
	if err != nil {
		t.Fatalf("Failed to list accounts: %v", err)
	}
	for i, account := range accounts {
		if account.Name != names[i] {
			t.Errorf("Expected account %d to be %q, got %q", i, names[i], account.Name)
		}
	}
}

func TestDeposit_UnknownAccountYieldsFalse(t *testing.T) {
	svc := newTestService()

	ok, err := svc.Deposit("missing", decimal.NewFromInt(10), "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ok {
		t.Errorf("Expected deposit to an unknown account to yield false")
	}
}

func TestDeposit_InvalidAmountIsRaised(t *testing.T) {
	svc := newTestService()
	user := registerTestUser(t, svc, "alice@example.com")
	account, err := svc.CreateSavingsAccount(user.Id, decimal.NewFromInt(500), "Fund")
	if err != nil {
		t.Fatalf("Failed to create account: %v", err)
	}

	_, err = svc.Deposit(account.Id, decimal.NewFromInt(-5), "")
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Expected invalid amount error, got: %v", err)
	}
}

func TestWithdraw_UnknownAccountYieldsFalse(t *testing.T) {
	svc := newTestService()

	ok, err := svc.Withdraw("missing", decimal.NewFromInt(10), "")
	if err != nil || ok {
		t.Errorf("Expected (false, nil), got (%v, %v)", ok, err)
	}
}

func TestTransfer_ConservesCombinedBalance(t *testing.T) {
	svc := newTestService()
	user := registerTestUser(t, svc, "alice@example.com")
	source, err := svc.CreateSavingsAccount(user.Id, decimal.NewFromInt(1000), "Source")
	if err != nil {
		t.Fatalf("Failed to create source account: %v", err)
	}
	target, err := svc.CreateCurrentAccount(user.Id, decimal.NewFromInt(500), "Target")
	if err != nil {
		t.Fatalf("Failed to create target account: %v", err)
	}

	ok, err := svc.Transfer(source.Id, target.Id, decimal.NewFromInt(300), "Rent")
	if err != nil || !ok {
		t.Fatalf("Expected transfer to succeed, ok=%v err=%v", ok, err)
	}

	sourceAfter, _ := svc.AccountById(source.Id)
	targetAfter, _ := svc.AccountById(target.Id)
	if !sourceAfter.Balance.Equal(decimal.NewFromInt(700)) {
		t.Errorf("Expected source balance 700, got %s", sourceAfter.Balance.String())
	}
	if !targetAfter.Balance.Equal(decimal.NewFromInt(800)) {
		t.Errorf("Expected target balance 800, got %s", targetAfter.Balance.String())
	}
}

func TestTransfer_UnknownAccountYieldsFalse(t *testing.T) {
	svc := newTestService()
	user := registerTestUser(t, svc, "alice@example.com")
	account, err := svc.CreateSavingsAccount(user.Id, decimal.NewFromInt(1000), "Fund")
	if err != nil {
		t.Fatalf("Failed to create account: %v", err)
	}

	if ok, err := svc.Transfer("missing", account.Id, decimal.NewFromInt(10), ""); ok || err != nil {
		t.Errorf("Expected (false, nil) for unknown source, got (%v, %v)", ok, err)
	}
	if ok, err := svc.Transfer(account.Id, "missing", decimal.NewFromInt(10), ""); ok || err != nil {
		t.Errorf("Expected (false, nil) for unknown target, got (%v, %v)", ok, err)
	}

	after, _ := svc.AccountById(account.Id)
	if !after.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Failed transfer changed the balance: %s", after.Balance.String())
	}
}

func TestApplySavingsInterest_TypeGate(t *testing.T) {
	svc := newTestService()
	user := registerTestUser(t, svc, "alice@example.com")
	savings, err := svc.CreateSavingsAccount(user.Id, decimal.NewFromInt(1000), "Fund")
	if err != nil {
		t.Fatalf("Failed to create savings account: %v", err)
	}
	current, err := svc.CreateCurrentAccount(user.Id, decimal.NewFromInt(1000), "Spending")
	if err != nil {
		t.Fatalf("Failed to create current account: %v", err)
	}

	if !svc.ApplySavingsInterest(savings.Id) {
		t.Errorf("Expected interest on a savings account to succeed")
	}
	after, _ := svc.AccountById(savings.Id)
	if !after.Balance.Equal(decimal.NewFromFloat(1010.00)) {
		t.Errorf("Expected balance 1010.00, got %s", after.Balance.String())
	}

	if svc.ApplySavingsInterest(current.Id) {
		t.Errorf("Expected interest on a current account to be refused")
	}
	if svc.ApplySavingsInterest("missing") {
		t.Errorf("Expected interest on an unknown account to be refused")
	}
}

func TestSetCurrentAccountOverdraftLimit_TypeGate(t *testing.T) {
	svc := newTestService()
	user := registerTestUser(t, svc, "alice@example.com")
	savings, err := svc.CreateSavingsAccount(user.Id, decimal.NewFromInt(1000), "Fund")
	if err != nil {
		t.Fatalf("Failed to create savings account: %v", err)
	}
	current, err := svc.CreateCurrentAccount(user.Id, decimal.Zero, "Spending")
	if err != nil {
		t.Fatalf("Failed to create current account: %v", err)
	}

	if !svc.SetCurrentAccountOverdraftLimit(current.Id, decimal.NewFromInt(1000)) {
		t.Errorf("Expected setting the limit on a current account to succeed")
	}
	after, _ := svc.AccountById(current.Id)
	if !after.OverdraftLimit.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected overdraft limit 1000, got %s", after.OverdraftLimit.String())
	}

	if svc.SetCurrentAccountOverdraftLimit(savings.Id, decimal.NewFromInt(1000)) {
		t.Errorf("Expected setting the limit on a savings account to be refused")
	}
	if svc.SetCurrentAccountOverdraftLimit("missing", decimal.NewFromInt(1000)) {
		t.Errorf("Expected setting the limit on an unknown account to be refused")
	}
}

func TestReadsReturnClones(t *testing.T) {
	svc := newTestService()
	user := registerTestUser(t, svc, "alice@example.com")
	account, err := svc.CreateSavingsAccount(user.Id, decimal.NewFromInt(1000), "Fund")
	if err != nil {
		t.Fatalf("Failed to create account: %v", err)
	}

	// Mutating a returned clone must not reach ledger state.
	account.Balance = decimal.NewFromInt(999999)
	account.Transactions = append(account.Transactions, Transaction{})

	fresh, _ := svc.AccountById(account.Id)
	if !fresh.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Clone mutation reached internal balance")
	}
	if len(fresh.Transactions) != 1 {
		t.Errorf("Clone mutation reached internal history")
	}
}

func TestResetData(t *testing.T) {
	svc := newTestService()
	if _, err := svc.CreateGuestUser(); err != nil {
		t.Fatalf("Guest creation failed: %v", err)
	}

	svc.ResetData()

	users, accounts := svc.Stats()
	if users != 0 || accounts != 0 {
		t.Errorf("Expected empty ledger after reset, got %d users and %d accounts", users, accounts)
	}
	if _, ok := svc.CurrentUser(); ok {
		t.Errorf("Expected no authenticated user after reset")
	}
}

func TestAddDemoData(t *testing.T) {
	svc := newTestService()

	if err := svc.AddDemoData(); err != nil {
		t.Fatalf("Demo seed failed: %v", err)
	}

	users, accounts := svc.Stats()
	if users != 2 || accounts != 4 {
		t.Fatalf("Expected 2 users and 4 accounts, got %d and %d", users, accounts)
	}

	expected := map[string]decimal.Decimal{
		"Vacation Fund":      decimal.NewFromInt(1300),
		"Everyday Spending":  decimal.NewFromInt(2550),
		"House Down Payment": decimal.NewFromInt(6060),
		"Monthly Bills":      decimal.NewFromFloat(1424.50),
	}
	for _, user := range svc.Users() {
		userAccounts, err := svc.AccountsByUserId(user.Id)
		if err != nil {
			t.Fatalf("Failed to list accounts: %v", err)
		}
		for _, account := range userAccounts {
			want, ok := expected[account.Name]
			if !ok {
				t.Errorf("Unexpected demo account %q", account.Name)
				continue
			}
			if !account.Balance.Equal(want) {
				t.Errorf("Expected %q balance %s, got %s",
					account.Name, want.String(), account.Balance.String())
			}
			assertBalanceMatchesHistory(t, account)
		}
	}

	// Seeding is idempotent: it resets before loading.
	if err := svc.AddDemoData(); err != nil {
		t.Fatalf("Repeated demo seed failed: %v", err)
	}
	users, accounts = svc.Stats()
	if users != 2 || accounts != 4 {
		t.Errorf("Expected repeat seed to leave 2 users and 4 accounts, got %d and %d", users, accounts)
	}

	if _, err := svc.LoginUser("john@example.com", "password"); err != nil {
		t.Errorf("Expected demo credentials to authenticate: %v", err)
	}
}
