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
	"net/http"

	"demobank-go/internal/metrics"
	"demobank-go/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AmountRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

type TransferRequest struct {
	SourceId    string  `json:"sourceId" validate:"required"`
	TargetId    string  `json:"targetId" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

type OperationResponse struct {
	Ok      bool                `json:"ok"`
	Account *models.AccountView `json:"account,omitempty"`
}

type TransferResponse struct {
	Ok     bool                `json:"ok"`
	Source *models.AccountView `json:"source,omitempty"`
	Target *models.AccountView `json:"target,omitempty"`
}

func (s *Server) listTransactions(c *gin.Context) {
	history, err := s.ledger.Transactions(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusNotFound, "Account not found")
		return
	}
	c.JSON(http.StatusOK, transactionViews(history))
}

func (s *Server) deposit(c *gin.Context) {
	var req AmountRequest
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

	ok, err := s.ledger.Deposit(accountId, decimal.NewFromFloat(req.Amount), req.Description)
	if err != nil {
		s.collector.RecordOperation("deposit", metrics.OutcomeError)
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	s.collector.RecordOperation("deposit", metrics.OutcomeOK)
	account, _ := s.ledger.AccountById(accountId)
	view := accountView(account)
	c.JSON(http.StatusOK, OperationResponse{Ok: ok, Account: &view})
}

func (s *Server) withdraw(c *gin.Context) {
	var req AmountRequest
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

	ok, err := s.ledger.Withdraw(accountId, decimal.NewFromFloat(req.Amount), req.Description)
	if err != nil {
		s.collector.RecordOperation("withdraw", metrics.OutcomeError)
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !ok {
		s.collector.RecordOperation("withdraw", metrics.OutcomeDeclined)
		c.JSON(http.StatusConflict, gin.H{
			"ok":      false,
			"message": "Withdrawal declined by account policy",
		})
		return
	}

	s.collector.RecordOperation("withdraw", metrics.OutcomeOK)
	account, _ := s.ledger.AccountById(accountId)
	view := accountView(account)
	c.JSON(http.StatusOK, OperationResponse{Ok: true, Account: &view})
}

func (s *Server) transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := validateRequest(req); validationErrors != nil {
		respondWithValidationError(c, validationErrors)
		return
	}

	if _, err := s.ledger.AccountById(req.SourceId); err != nil {
		respondWithError(c, http.StatusNotFound, "Source account not found")
		return
	}
	if _, err := s.ledger.AccountById(req.TargetId); err != nil {
		respondWithError(c, http.StatusNotFound, "Target account not found")
		return
	}

	ok, err := s.ledger.Transfer(req.SourceId, req.TargetId, decimal.NewFromFloat(req.Amount), req.Description)
	if err != nil {
		s.collector.RecordOperation("transfer", metrics.OutcomeError)
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !ok {
		s.collector.RecordOperation("transfer", metrics.OutcomeDeclined)
		c.JSON(http.StatusConflict, gin.H{
			"ok":      false,
			"message": "Transfer declined by source account policy",
		})
		return
	}

	s.collector.RecordOperation("transfer", metrics.OutcomeOK)
	source, _ := s.ledger.AccountById(req.SourceId)
	target, _ := s.ledger.AccountById(req.TargetId)
	sourceView := accountView(source)
	targetView := accountView(target)
	c.JSON(http.StatusOK, TransferResponse{Ok: true, Source: &sourceView, Target: &targetView})
}
