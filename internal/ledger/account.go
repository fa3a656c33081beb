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
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType tags the account variant. The set is closed: the withdrawal
// floor policy and variant-only operations dispatch on it.
type AccountType string

const (
	Savings AccountType = "Savings"
	Current AccountType = "Current"
)

// Account holds a balance and its append-only transaction history. The
// balance always equals the sum of the recorded transaction amounts; an
// initial positive balance is materialized as a synthetic deposit at
// construction so the invariant holds from the first read.
//
// Variant payload: InterestRate and MinimumBalance apply to Savings
// accounts, OverdraftLimit to Current accounts.
type Account struct {
	Id           string
	UserId       string
	Name         string
	Type         AccountType
	Balance      decimal.Decimal
	CreatedAt    time.Time
	Transactions []Transaction

	InterestRate   decimal.Decimal
	MinimumBalance decimal.Decimal

	OverdraftLimit decimal.Decimal
}

func newAccount(accountType AccountType, userId string, initialBalance decimal.Decimal, name string) (*Account, error) {
	if initialBalance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	a := &Account{
		Id:        uuid.New().String(),
		UserId:    userId,
		Name:      name,
		Type:      accountType,
		Balance:   decimal.Zero,
		CreatedAt: time.Now(),
	}
	if initialBalance.IsPositive() {
		a.apply(TypeDeposit, initialBalance, "Initial deposit", "")
	}
	return a, nil
}

// withdrawalFloor returns the lowest balance the variant may reach.
func withdrawalFloor(a *Account) decimal.Decimal {
	switch a.Type {
	case Savings:
		return a.MinimumBalance
	case Current:
		return a.OverdraftLimit.Neg()
	default:
		return decimal.Zero
	}
}

// apply appends a transaction and moves the balance in one step, keeping
// history and balance consistent. It is the only mutation path.
func (a *Account) apply(txType TransactionType, amount decimal.Decimal, description, targetAccountId string) Transaction {
	a.Balance = a.Balance.Add(amount)
	tx := newTransaction(txType, amount, description, targetAccountId, a.Balance)
	a.Transactions = append(a.Transactions, tx)
	return tx
}

// Deposit credits the account. Amounts must be positive; there is no upper
// bound.
func (a *Account) Deposit(amount decimal.Decimal, description string) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if description == "" {
		description = "Deposit"
	}
	a.apply(TypeDeposit, amount, description, "")
	return nil
}

// Withdraw debits the account if the variant floor allows it. A floor
// violation is a declined operation, not an error: it returns false and
// leaves the account untouched.
func (a *Account) Withdraw(amount decimal.Decimal, description string) (bool, error) {
	if !amount.IsPositive() {
		return false, ErrInvalidAmount
	}
	if a.Balance.Sub(amount).LessThan(withdrawalFloor(a)) {
		return false, nil
	}
	if description == "" {
		description = "Withdrawal"
	}
	a.apply(TypeWithdrawal, amount.Neg(), description, "")
	return true, nil
}

// TransferTo moves amount from a to target. The debit is evaluated against
// a's floor first; the credit is only applied once the debit succeeded, so
// a declined transfer leaves both accounts unchanged.
func (a *Account) TransferTo(target *Account, amount decimal.Decimal, description string) (bool, error) {
	if !amount.IsPositive() {
		return false, ErrInvalidAmount
	}
	if a.Balance.Sub(amount).LessThan(withdrawalFloor(a)) {
		return false, nil
	}

	outDescription := description
	if outDescription == "" {
		outDescription = "Transfer to " + target.Name
	}
	inDescription := description
	if inDescription == "" {
		inDescription = "Transfer from " + a.Name
	}

	a.apply(TypeTransfer, amount.Neg(), outDescription, target.Id)
	target.apply(TypeTransfer, amount, inDescription, a.Id)
	return true, nil
}

// ApplyInterest credits balance * rate, rounded to 2 decimal places. Valid
// for Savings accounts; it never fails and carries no schedule of its own.
func (a *Account) ApplyInterest() Transaction {
	interest := a.Balance.Mul(a.InterestRate).Round(2)
	ratePercent := a.InterestRate.Mul(decimal.NewFromInt(100))
	description := fmt.Sprintf("Interest applied at %s%%", ratePercent.String())
	return a.apply(TypeInterest, interest, description, "")
}

// SetOverdraftLimit replaces the overdraft ceiling. An existing overdraft
// beyond the new limit is tolerated; only future withdrawals see the new
// floor.
func (a *Account) SetOverdraftLimit(limit decimal.Decimal) {
	a.OverdraftLimit = limit
}

// AvailableBalance is balance plus overdraft headroom for Current
// accounts; for other variants it is just the balance.
func (a *Account) AvailableBalance() decimal.Decimal {
	if a.Type == Current {
		return a.Balance.Add(a.OverdraftLimit)
	}
	return a.Balance
}

// SetName renames the account. Blank names are rejected.
func (a *Account) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	a.Name = name
	return nil
}

func (a *Account) clone() *Account {
	cp := *a
	cp.Transactions = make([]Transaction, len(a.Transactions))
	copy(cp.Transactions, a.Transactions)
	return &cp
}
