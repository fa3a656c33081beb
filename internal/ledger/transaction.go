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
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a balance-affecting event.
type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeTransfer   TransactionType = "transfer"
	TypeInterest   TransactionType = "interest"
	TypeFee        TransactionType = "fee"
)

// Transaction is an immutable record of a single balance-affecting event.
// Amount is signed: credits positive, debits negative. BalanceAfter is the
// account balance once the transaction was applied, so the full history
// reads as a running statement.
type Transaction struct {
	Id              string
	Type            TransactionType
	Amount          decimal.Decimal
	Description     string
	TargetAccountId string
	BalanceAfter    decimal.Decimal
	CreatedAt       time.Time
}

func newTransaction(txType TransactionType, amount decimal.Decimal, description, targetAccountId string, balanceAfter decimal.Decimal) Transaction {
	return Transaction{
		Id:              uuid.New().String(),
		Type:            txType,
		Amount:          amount,
		Description:     description,
		TargetAccountId: targetAccountId,
		BalanceAfter:    balanceAfter,
		CreatedAt:       time.Now(),
	}
}
