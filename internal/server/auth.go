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
	"go.uber.org/zap"
)

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := validateRequest(req); validationErrors != nil {
		respondWithValidationError(c, validationErrors)
		return
	}

	user, err := s.ledger.RegisterUser(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		s.collector.RecordOperation("register", metrics.OutcomeError)
		if errors.Is(err, ledger.ErrEmailTaken) {
			respondWithError(c, http.StatusConflict, "Email already registered")
			return
		}
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	s.collector.RecordOperation("register", metrics.OutcomeOK)
	s.recordEntityCounts()
	c.JSON(http.StatusCreated, userView(user))
}

func (s *Server) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := validateRequest(req); validationErrors != nil {
		respondWithValidationError(c, validationErrors)
		return
	}

	user, err := s.ledger.LoginUser(req.Email, req.Password)
	if err != nil {
		s.collector.RecordOperation("login", metrics.OutcomeError)
		respondWithError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	s.collector.RecordOperation("login", metrics.OutcomeOK)
	c.JSON(http.StatusOK, userView(user))
}

func (s *Server) guestLogin(c *gin.Context) {
	user, err := s.ledger.CreateGuestUser()
	if err != nil {
		zap.L().Error("Failed to create guest user", zap.Error(err))
		s.collector.RecordOperation("guest_login", metrics.OutcomeError)
		respondWithError(c, http.StatusInternalServerError, "Unable to create guest user")
		return
	}

	s.collector.RecordOperation("guest_login", metrics.OutcomeOK)
	s.recordEntityCounts()
	c.JSON(http.StatusCreated, userView(user))
}

func (s *Server) logout(c *gin.Context) {
	s.ledger.LogoutUser()
	c.Status(http.StatusNoContent)
}

func (s *Server) currentUser(c *gin.Context) {
	user, ok := s.ledger.CurrentUser()
	if !ok {
		respondWithError(c, http.StatusUnauthorized, "Not logged in")
		return
	}
	c.JSON(http.StatusOK, userView(user))
}
