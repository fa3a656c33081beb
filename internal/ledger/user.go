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
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User holds profile data and the ordered list of account ids it owns.
// The credential stays unexported: callers authenticate through
// Authenticate and never read it back.
type User struct {
	Id         string
	FirstName  string
	LastName   string
	Email      string
	AccountIds []string
	CreatedAt  time.Time

	password string
}

func newUser(firstName, lastName, email, password string) *User {
	return &User{
		Id:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		CreatedAt: time.Now(),
		password:  password,
	}
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Authenticate compares the supplied credential with the stored one.
func (u *User) Authenticate(password string) bool {
	return u.password == password
}

// SetFirstName rejects blank names.
func (u *User) SetFirstName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	u.FirstName = name
	return nil
}

// SetLastName rejects blank names.
func (u *User) SetLastName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	u.LastName = name
	return nil
}

// SetEmail validates the address format. Uniqueness is only enforced at
// registration time, not here.
func (u *User) SetEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	u.Email = email
	return nil
}

func (u *User) addAccount(accountId string) {
	u.AccountIds = append(u.AccountIds, accountId)
}

func (u *User) removeAccount(accountId string) {
	kept := u.AccountIds[:0]
	for _, id := range u.AccountIds {
		if id != accountId {
			kept = append(kept, id)
		}
	}
	u.AccountIds = kept
}

func (u *User) clone() *User {
	cp := *u
	cp.AccountIds = make([]string, len(u.AccountIds))
	copy(cp.AccountIds, u.AccountIds)
	return &cp
}
