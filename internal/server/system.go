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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) reset(c *gin.Context) {
	s.ledger.ResetData()
	s.recordEntityCounts()
	c.Status(http.StatusNoContent)
}

func (s *Server) loadDemoData(c *gin.Context) {
	if err := s.ledger.AddDemoData(); err != nil {
		zap.L().Error("Failed to load demo data", zap.Error(err))
		respondWithError(c, http.StatusInternalServerError, "Unable to load demo data")
		return
	}
	s.recordEntityCounts()
	c.JSON(http.StatusOK, gin.H{"message": "Demo data loaded"})
}
