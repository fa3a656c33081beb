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

// Package server exposes the ledger's operation set over HTTP for the
// presentation layer. Authentication state is the ledger's single
// process-wide pointer, not a per-client session.
package server

import (
	"net/http"

	"demobank-go/internal/ledger"
	"demobank-go/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Server struct {
	ledger    *ledger.Service
	collector *metrics.Collector
	engine    *gin.Engine
}

func New(svc *ledger.Service, collector *metrics.Collector, mode string) *Server {
	if mode != "" {
		gin.SetMode(mode)
	}

	s := &Server{
		ledger:    svc,
		collector: collector,
		engine:    gin.New(),
	}
	s.engine.Use(gin.Recovery())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.collector != nil {
		s.engine.GET("/metrics", gin.WrapH(s.collector.Handler()))
	}

	v1 := s.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", s.register)
	auth.POST("/login", s.login)
	auth.POST("/guest", s.guestLogin)
	auth.POST("/logout", s.logout)
	auth.GET("/me", s.currentUser)

	v1.POST("/accounts", s.createAccount)
	v1.GET("/accounts", s.listAccounts)
	v1.GET("/accounts/:id", s.getAccount)
	v1.GET("/accounts/:id/transactions", s.listTransactions)
	v1.POST("/accounts/:id/deposit", s.deposit)
	v1.POST("/accounts/:id/withdraw", s.withdraw)
	v1.POST("/accounts/:id/interest", s.applyInterest)
	v1.PUT("/accounts/:id/overdraft-limit", s.setOverdraftLimit)

	v1.POST("/transfers", s.transfer)

	system := v1.Group("/system")
	system.POST("/reset", s.reset)
	system.POST("/demo", s.loadDemoData)
}

// Handler returns the HTTP handler for mounting on an http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) recordEntityCounts() {
	users, accounts := s.ledger.Stats()
	s.collector.SetEntityCounts(users, accounts)
}
