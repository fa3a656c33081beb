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
	"errors"
	"net/http"

	"demobank-go/internal/ledger"
	"demobank-go/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	Kind           string  `json:"kind" validate:"required,oneof=savings current"`
	OwnerId        string  `json:"ownerId"`
	Name           string  `json:"name" validate:"required"`
	InitialBalance float64 `json:"initialBalance" validate:"gte=0"`
}

type OverdraftLimitRequest struct {
	Limit float64 `json:"limit" validate:"gte=0"`
}

// resolveOwner returns the explicit owner id or falls back to the
// authenticated user.
func (s *Server) resolveOwner(c *gin.Context, explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	user, ok := s.ledger.CurrentUser()
	if !ok {
		respondWithError(c, http.StatusUnauthorized, "Not logged in")
		return "", false
	}
	return user.Id, true
}

func (s *Server) createAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := validateRequest(req); validationErrors != nil {
		respondWithValidationError(c, validationErrors)
		return
	}

	ownerId, ok := s.resolveOwner(c, req.OwnerId)
	if !ok {
		return
	}

	initialBalance := decimal.NewFromFloat(req.InitialBalance)
	var account *ledger.Account
	var err error
	switch req.Kind {
	case "savings":
		account, err = s.ledger.CreateSavingsAccount(ownerId, initialBalance, req.Name)
	case "current":
		account, err = s.ledger.CreateCurrentAccount(ownerId, initialBalance, req.Name)
	}
	if err != nil {
		s.collector.RecordOperation("create_account", metrics.OutcomeError)
		if errors.Is(err, ledger.ErrUserNotFound) {
			respondWithError(c, http.StatusNotFound, "User not found")
			return
		}
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	s.collector.RecordOperation("create_account", metrics.OutcomeOK)
	s.recordEntityCounts()
	c.JSON(http.StatusCreated, accountView(account))
}

func (s *Server) listAccounts(c *gin.Context) {
	ownerId, ok := s.resolveOwner(c, c.Query("ownerId"))
	if !ok {
		return
	}

	accounts, err := s.ledger.AccountsByUserId(ownerId)
	if err != nil {
		respondWithError(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, accountViews(accounts))
}

func (s *Server) getAccount(c *gin.Context) {
	account, err := s.ledger.AccountById(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusNotFound, "Account not found")
		return
	}
	c.JSON(http.StatusOK, accountView(account))
}

func (s *Server) applyInterest(c *gin.Context) {
	accountId := c.Param("id")
	if _, err := s.ledger.AccountById(accountId); err != nil {
		respondWithError(c, http.StatusNotFound, "Account not found")
		return
	}

	if !s.ledger.ApplySavingsInterest(accountId) {
		s.collector.RecordOperation("apply_interest", metrics.OutcomeDeclined)
		respondWithError(c, http.StatusConflict, "Not a savings account")
		return
	}

	s.collector.RecordOperation("apply_interest", metrics.OutcomeOK)
	account, _ := s.ledger.AccountById(accountId)
	c.JSON(http.StatusOK, accountView(account))
}

func (s *Server) setOverdraftLimit(c *gin.Context) {
	var req OverdraftLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := validateRequest(req); validationErrors != nil {
		respondWithValidationError(c, validationErrors)
		return
	}

	accountId := c.Param("id")
	if _, err := s.ledger.AccountById(accountId); err != nil {
		respondWithError(c, http.StatusNotFound, "Account not found")
		return
	}

	if !s.ledger.SetCurrentAccountOverdraftLimit(accountId, decimal.NewFromFloat(req.Limit)) {
		s.collector.RecordOperation("set_overdraft_limit", metrics.OutcomeDeclined)
		respondWithError(c, http.StatusConflict, "Not a current account")
		return
	}

	s.collector.RecordOperation("set_overdraft_limit", metrics.OutcomeOK)
	account, _ := s.ledger.AccountById(accountId)
	c.JSON(http.StatusOK, accountView(account))
}
