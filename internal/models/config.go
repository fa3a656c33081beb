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

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string
	Mode            string
	ShutdownTimeout time.Duration
}

// LedgerConfig holds the account policy defaults applied when accounts are
// created, plus the balances seeded onto guest accounts.
type LedgerConfig struct {
	SavingsInterestRate   decimal.Decimal
	SavingsMinimumBalance decimal.Decimal
	CurrentOverdraftLimit decimal.Decimal
	GuestSavingsBalance   decimal.Decimal
	GuestCurrentBalance   decimal.Decimal
}

// SeedConfig controls how the ledger is populated at startup. The ledger
// has no persistence: state exists only for the process lifetime and is
// reconstructed by an explicit reset or seed.
type SeedConfig struct {
	LoadDemoData bool
	SeedFile     string
}

// Config represents the application configuration.
type Config struct {
	Server ServerConfig
	Ledger LedgerConfig
	Seed   SeedConfig
}

// DefaultLedgerConfig returns the documented policy defaults: 1% savings
// interest, a 100 minimum savings balance, a 500 overdraft limit, and the
// 1000/2500 guest account balances.
func DefaultLedgerConfig() LedgerConfig {
	return LedgerConfig{
		SavingsInterestRate:   decimal.NewFromFloat(0.01),
		SavingsMinimumBalance: decimal.NewFromInt(100),
		CurrentOverdraftLimit: decimal.NewFromInt(500),
		GuestSavingsBalance:   decimal.NewFromInt(1000),
		GuestCurrentBalance:   decimal.NewFromInt(2500),
	}
}
