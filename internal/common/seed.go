package common

import (
	"fmt"
	"os"
	"path/filepath"

	"demobank-go/internal/ledger"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

// Account kinds accepted in seed files.
const (
	SeedKindSavings = "savings"
	SeedKindCurrent = "current"
)

type SeedAccount struct {
	Kind    string  `yaml:"kind"`
	Name    string  `yaml:"name"`
	Balance float64 `yaml:"balance"`
}

type SeedUser struct {
	FirstName string        `yaml:"firstName"`
	LastName  string        `yaml:"lastName"`
	Email     string        `yaml:"email"`
	Password  string        `yaml:"password"`
	Accounts  []SeedAccount `yaml:"accounts"`
}

type SeedConfig struct {
	Users []SeedUser `yaml:"users"`
}

func LoadSeedConfig(seedFile string) (*SeedConfig, error) {
	var seedPath string
	if filepath.IsAbs(seedFile) {
		seedPath = seedFile
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		seedPath = filepath.Join(wd, seedFile)
	}

	data, err := os.ReadFile(seedPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", seedFile, err)
	}

	var config SeedConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", seedFile, err)
	}

	for i, user := range config.Users {
		if user.Email == "" {
			return nil, fmt.Errorf("user at index %d missing email", i)
		}
		for j, account := range user.Accounts {
			if account.Kind != SeedKindSavings && account.Kind != SeedKindCurrent {
				return nil, fmt.Errorf("account %d of user %s has unknown kind %q", j, user.Email, account.Kind)
			}
			if account.Balance < 0 {
				return nil, fmt.Errorf("account %d of user %s has negative balance", j, user.Email)
			}
		}
	}

	return &config, nil
}

// ApplySeed registers every seed user and opens their accounts. It does
// not reset the ledger first, so seeds stack on top of demo data when both
// are configured.
func ApplySeed(svc *ledger.Service, seed *SeedConfig) error {
	for _, seedUser := range seed.Users {
		user, err := svc.RegisterUser(seedUser.FirstName, seedUser.LastName, seedUser.Email, seedUser.Password)
		if err != nil {
			return fmt.Errorf("unable to seed user %s: %w", seedUser.Email, err)
		}

		for _, seedAccount := range seed.AccountsFor(seedUser) {
			balance := decimal.NewFromFloat(seedAccount.Balance)
			switch seedAccount.Kind {
			case SeedKindSavings:
				_, err = svc.CreateSavingsAccount(user.Id, balance, seedAccount.Name)
			case SeedKindCurrent:
				_, err = svc.CreateCurrentAccount(user.Id, balance, seedAccount.Name)
			}
			if err != nil {
				return fmt.Errorf("unable to seed account %q for %s: %w", seedAccount.Name, seedUser.Email, err)
			}
		}
	}
	return nil
}

// AccountsFor returns the account list for a seed user, defaulting blank
// names to the account kind.
func (c *SeedConfig) AccountsFor(user SeedUser) []SeedAccount {
	accounts := make([]SeedAccount, len(user.Accounts))
	copy(accounts, user.Accounts)
	for i := range accounts {
		if accounts[i].Name == "" {
			if accounts[i].Kind == SeedKindSavings {
				accounts[i].Name = "Savings Account"
			} else {
				accounts[i].Name = "Current Account"
			}
		}
	}
	return accounts
}
