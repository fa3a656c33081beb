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

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AddDemoData resets the ledger and seeds two demo users with two accounts
// each plus a handful of representative transactions, so the UI has
// something to show. The demo credential lives here and in the sample seed
// file only; no API path depends on it.
func (s *Service) AddDemoData() error {
	s.ResetData()

	john, err := s.RegisterUser("John", "Doe", "john@example.com", "password")
	if err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}
	jane, err := s.RegisterUser("Jane", "Smith", "jane@example.com", "password")
	if err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	johnSavings, err := s.CreateSavingsAccount(john.Id, decimal.NewFromInt(1000), "Vacation Fund")
	if err != nil {
		return fmt.Errorf("failed to seed demo account: %w", err)
	}
	johnCurrent, err := s.CreateCurrentAccount(john.Id, decimal.NewFromInt(2500), "Everyday Spending")
	if err != nil {
		return fmt.Errorf("failed to seed demo account: %w", err)
	}
	janeSavings, err := s.CreateSavingsAccount(jane.Id, decimal.NewFromInt(5000), "House Down Payment")
	if err != nil {
		return fmt.Errorf("failed to seed demo account: %w", err)
	}
	janeCurrent, err := s.CreateCurrentAccount(jane.Id, decimal.NewFromInt(1500), "Monthly Bills")
	if err != nil {
		return fmt.Errorf("failed to seed demo account: %w", err)
	}

	if _, err := s.Deposit(johnSavings.Id, decimal.NewFromInt(500), "Bonus"); err != nil {
		return err
	}
	if _, err := s.Withdraw(johnCurrent.Id, decimal.NewFromInt(150), "Groceries"); err != nil {
		return err
	}
	if _, err := s.Transfer(johnSavings.Id, johnCurrent.Id, decimal.NewFromInt(200), "Moving funds"); err != nil {
		return err
	}
	if _, err := s.Deposit(janeSavings.Id, decimal.NewFromInt(1000), "Birthday gift"); err != nil {
		return err
	}
	if _, err := s.Withdraw(janeCurrent.Id, decimal.NewFromFloat(75.50), "Electricity bill"); err != nil {
		return err
	}
	s.ApplySavingsInterest(janeSavings.Id)

	zap.L().Info("Demo data loaded",
		zap.Int("users", 2),
		zap.Int("accounts", 4))
	return nil
}
