package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lennykioko/School-Mngmt-Backend/internal/graph"
)

// GraphQLHandler serves the single graph endpoint.
type GraphQLHandler struct {
	schema *graph.Schema
}

// NewGraphQLHandler creates the endpoint handler.
func NewGraphQLHandler(schema *graph.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

// graphQLRequest is the standard POST body of a GraphQL request.
type graphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Handle executes one query or mutation. Resolution errors are reported in
// the response body per GraphQL convention; only malformed requests get a
// non-200 status.
func (h *GraphQLHandler) Handle(c *gin.Context) {
	var req graphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	result := h.schema.Exec(c.Request.Context(), req.Query, req.Variables, req.OperationName)
	c.JSON(http.StatusOK, result)
}
