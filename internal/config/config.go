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

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"demobank-go/internal/models"

	"github.com/shopspring/decimal"
)

func Load() (*models.Config, error) {
	shutdownTimeout, err := getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	interestRate, err := getEnvDecimal("SAVINGS_INTEREST_RATE", "0.01")
	if err != nil {
		return nil, err
	}

	minimumBalance, err := getEnvDecimal("SAVINGS_MINIMUM_BALANCE", "100")
	if err != nil {
		return nil, err
	}

	overdraftLimit, err := getEnvDecimal("CURRENT_OVERDRAFT_LIMIT", "500")
	if err != nil {
		return nil, err
	}

	guestSavings, err := getEnvDecimal("GUEST_SAVINGS_BALANCE", "1000")
	if err != nil {
		return nil, err
	}

	guestCurrent, err := getEnvDecimal("GUEST_CURRENT_BALANCE", "2500")
	if err != nil {
		return nil, err
	}

	return &models.Config{
		Server: models.ServerConfig{
			Addr:            getEnvString("SERVER_ADDR", ":8080"),
			Mode:            getEnvString("SERVER_MODE", "release"),
			ShutdownTimeout: shutdownTimeout,
		},
		Ledger: models.LedgerConfig{
			SavingsInterestRate:   interestRate,
			SavingsMinimumBalance: minimumBalance,
			CurrentOverdraftLimit: overdraftLimit,
			GuestSavingsBalance:   guestSavings,
			GuestCurrentBalance:   guestCurrent,
		},
		Seed: models.SeedConfig{
			LoadDemoData: getEnvBool("LOAD_DEMO_DATA", false),
			SeedFile:     getEnvString("SEED_FILE", ""),
		},
	}, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %q (%w)", key, value, err)
		}
		return duration, nil
	}
	return defaultValue, nil
}

func getEnvDecimal(key, defaultValue string) (decimal.Decimal, error) {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal for %s: %q (%w)", key, value, err)
	}
	return d, nil
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
