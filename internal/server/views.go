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

package server

import (
	"demobank-go/internal/ledger"
	"demobank-go/internal/models"
)

func userView(u *ledger.User) models.UserView {
	return models.UserView{
		Id:        u.Id,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Email:     u.Email,
		Accounts:  u.AccountIds,
		CreatedAt: u.CreatedAt,
	}
}

func accountView(a *ledger.Account) models.AccountView {
	view := models.AccountView{
		Id:          a.Id,
		UserId:      a.UserId,
		Name:        a.Name,
		AccountType: string(a.Type),
		Balance:     a.Balance.InexactFloat64(),
		CreatedAt:   a.CreatedAt,
	}

	switch a.Type {
	case ledger.Savings:
		view.InterestRate = floatPtr(a.InterestRate.InexactFloat64())
		view.MinimumBalance = floatPtr(a.MinimumBalance.InexactFloat64())
	case ledger.Current:
		view.OverdraftLimit = floatPtr(a.OverdraftLimit.InexactFloat64())
		view.AvailableBalance = floatPtr(a.AvailableBalance().InexactFloat64())
	}
	return view
}

func accountViews(accounts []*ledger.Account) []models.AccountView {
	views := make([]models.AccountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, accountView(a))
	}
	return views
}

func transactionViews(history []ledger.Transaction) []models.TransactionView {
	views := make([]models.TransactionView, 0, len(history))
	for _, tx := range history {
		views = append(views, models.TransactionView{
			Id:              tx.Id,
			Type:            string(tx.Type),
			Amount:          tx.Amount.InexactFloat64(),
			Description:     tx.Description,
			TargetAccountId: tx.TargetAccountId,
			BalanceAfter:    tx.BalanceAfter.InexactFloat64(),
			CreatedAt:       tx.CreatedAt,
		})
	}
	return views
}

func floatPtr(f float64) *float64 {
	return &f
}
