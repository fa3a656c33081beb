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
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Expected default addr :8080, got %q", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected default shutdown timeout 10s, got %s", cfg.Server.ShutdownTimeout)
	}
	if !cfg.Ledger.SavingsInterestRate.Equal(decimal.NewFromFloat(0.01)) {
		t.Errorf("Expected default interest rate 0.01, got %s", cfg.Ledger.SavingsInterestRate.String())
	}
	if !cfg.Ledger.CurrentOverdraftLimit.Equal(decimal.NewFromInt(500)) {
		t.Errorf("Expected default overdraft limit 500, got %s", cfg.Ledger.CurrentOverdraftLimit.String())
	}
	if cfg.Seed.LoadDemoData {
		t.Errorf("Expected demo data off by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9999")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("SAVINGS_MINIMUM_BALANCE", "250")
	t.Setenv("LOAD_DEMO_DATA", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Addr != ":9999" {
		t.Errorf("Expected addr :9999, got %q", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("Expected shutdown timeout 30s, got %s", cfg.Server.ShutdownTimeout)
	}
	if !cfg.Ledger.SavingsMinimumBalance.Equal(decimal.NewFromInt(250)) {
		t.Errorf("Expected minimum balance 250, got %s", cfg.Ledger.SavingsMinimumBalance.String())
	}
	if !cfg.Seed.LoadDemoData {
		t.Errorf("Expected demo data enabled")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Errorf("Expected an error for an invalid duration")
	}
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "")

	t.Setenv("SAVINGS_INTEREST_RATE", "one percent")
	if _, err := Load(); err == nil {
		t.Errorf("Expected an error for an invalid decimal")
	}
}
