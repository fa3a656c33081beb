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

import "errors"

// Sentinel errors for ledger operations. These cover validation failures
// that are raised at the point of violation; operations declined by account
// policy (floor checks) are reported through boolean returns instead.
var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrNegativeBalance    = errors.New("initial balance cannot be negative")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrInvalidEmail       = errors.New("invalid email format")
)
