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

package models

import "time"

// UserView is the plain-data snapshot of a user handed to the
// presentation layer. The credential is never exposed.
type UserView struct {
	Id        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Accounts  []string  `json:"accounts"`
	CreatedAt time.Time `json:"createdTimestamp"`
}

// AccountView is the plain-data snapshot of an account. AccountType is the
// variant discriminant; the pointer fields are populated only for the
// variant they belong to.
type AccountView struct {
	Id          string    `json:"id"`
	UserId      string    `json:"userId"`
	Name        string    `json:"name"`
	AccountType string    `json:"accountType"`
	Balance     float64   `json:"balance"`
	CreatedAt   time.Time `json:"createdTimestamp"`

	InterestRate     *float64 `json:"interestRate,omitempty"`
	MinimumBalance   *float64 `json:"minimumBalance,omitempty"`
	OverdraftLimit   *float64 `json:"overdraftLimit,omitempty"`
	AvailableBalance *float64 `json:"availableBalance,omitempty"`
}

// TransactionView is the plain-data snapshot of a transaction. The display
// layer sorts newest-first; the ledger hands them over oldest-first.
type TransactionView struct {
	Id              string    `json:"id"`
	Type            string    `json:"type"`
	Amount          float64   `json:"amount"`
	Description     string    `json:"description"`
	TargetAccountId string    `json:"targetAccountId,omitempty"`
	BalanceAfter    float64   `json:"balanceAfter"`
	CreatedAt       time.Time `json:"createdTimestamp"`
}
