package graphql

import (
	"encoding/json"
	"net/http"

	"go-hris-graphql/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

type Request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

type Handler struct {
	schema graphql.Schema
	logger *zap.Logger
}

func NewHandler(schema graphql.Schema, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("graphql.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("graphql.handler")
	}
	return &Handler{schema: schema, logger: l}
}

func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.POST("/graphql", h.Serve)
	r.GET("/graphql", h.Serve)
}

// Serve executes one operation. Operations that reach the executor always
// answer 200, domain and resolver errors travel in the body.
func (h *Handler) Serve(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})

	if result.HasErrors() {
		contextutil.GetLogger(ctx, h.logger).Debug("graphql operation returned errors",
			zap.String("operation_name", req.OperationName),
			zap.Any("errors", result.Errors),
		)
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) bind(c *gin.Context) (Request, bool) {
	var req Request

	if c.Request.Method == http.MethodGet {
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
		if raw := c.Query("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				badRequest(c, "variables must be a JSON object")
				return req, false
			}
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("invalid graphql request body", zap.Error(err))
		badRequest(c, "request body must be a JSON object with a query field")
		return req, false
	}

	if req.Query == "" {
		badRequest(c, "query is required")
		return req, false
	}
	return req, true
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"errors": []gin.H{{"message": message}},
	})
}
