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

package main

import (
	"flag"
	"fmt"

	"demobank-go/internal/common"
	"demobank-go/internal/config"
	"demobank-go/internal/ledger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type reportStats struct {
	totalUsers    int
	totalAccounts int
	totalBalance  decimal.Decimal
}

func printUserHeader(user *ledger.User, accountCount int) {
	fmt.Printf("\n┌─ User: %s (%s)\n", user.FullName(), user.Email)
	fmt.Printf("│  ID: %s\n", user.Id)
	fmt.Printf("│  Accounts: %d\n", accountCount)
	common.PrintBoxSeparator(78)
}

func printAccount(account *ledger.Account, isLast bool) {
	symbol := common.BoxPrefix(isLast)
	fmt.Printf("%s %-22s [%s] balance: %12s (opened: %s)\n",
		symbol,
		account.Name,
		account.Type,
		common.FormatAmount(account.Balance),
		account.CreatedAt.Format("2006-01-02 15:04:05"))
}

func printTransactions(history []ledger.Transaction, isLastAccount bool) {
	prefix := "│"
	if isLastAccount {
		prefix = " "
	}
	for _, tx := range history {
		fmt.Printf("%s      %-10s %12s -> %12s  %s\n",
			prefix,
			tx.Type,
			common.FormatAmount(tx.Amount),
			common.FormatAmount(tx.BalanceAfter),
			tx.Description)
	}
}

func processUser(user *ledger.User, svc *ledger.Service, showTransactions bool) (reportStats, error) {
	accounts, err := svc.AccountsByUserId(user.Id)
	if err != nil {
		return reportStats{}, fmt.Errorf("failed to get accounts: %w", err)
	}

	stats := reportStats{totalUsers: 1, totalAccounts: len(accounts)}
	if len(accounts) == 0 {
		return stats, nil
	}

	printUserHeader(user, len(accounts))
	for i, account := range accounts {
		isLast := i == len(accounts)-1
		printAccount(account, isLast)
		stats.totalBalance = stats.totalBalance.Add(account.Balance)

		if showTransactions {
			history, err := svc.Transactions(account.Id)
			if err != nil {
				return stats, err
			}
			printTransactions(history, isLast)
		}
	}
	return stats, nil
}

func selectUsers(svc *ledger.Service, emailFilter string) []*ledger.User {
	users := svc.Users()
	if emailFilter == "" {
		return users
	}
	for _, user := range users {
		if user.Email == emailFilter {
			return []*ledger.User{user}
		}
	}
	return nil
}

func main() {
	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	emailFlag := flag.String("email", "", "Filter by specific user email (optional)")
	demoFlag := flag.Bool("demo", true, "Seed the built-in demo data before reporting")
	seedFlag := flag.String("seed", "", "YAML seed file to load before reporting")
	txFlag := flag.Bool("transactions", true, "Include per-account transaction history")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	cfg.Seed.LoadDemoData = *demoFlag
	if *seedFlag != "" {
		cfg.Seed.SeedFile = *seedFlag
	}

	services, err := common.InitializeServices(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	svc := services.Ledger

	users := selectUsers(svc, *emailFlag)
	if len(users) == 0 {
		logger.Fatal("No users matched", zap.String("email", *emailFlag))
	}

	common.PrintHeader("ACCOUNT BALANCE REPORT", common.DefaultWidth)

	total := reportStats{}
	for _, user := range users {
		stats, err := processUser(user, svc, *txFlag)
		if err != nil {
			logger.Error("Failed to process user",
				zap.String("user_id", user.Id),
				zap.Error(err))
			continue
		}
		total.totalUsers += stats.totalUsers
		total.totalAccounts += stats.totalAccounts
		total.totalBalance = total.totalBalance.Add(stats.totalBalance)
	}

	summary := fmt.Sprintf("SUMMARY: %d users, %d accounts, combined balance %s",
		total.totalUsers, total.totalAccounts, common.FormatAmount(total.totalBalance))
	common.PrintFooter(summary, common.DefaultWidth)

	logger.Info("Report completed",
		zap.Int("users", total.totalUsers),
		zap.Int("accounts", total.totalAccounts))
}
