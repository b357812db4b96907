package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"taskboard-api/taskboard/middleware"
)

type graphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// RegisterGraphQLRoutes serves the schema at /graphql and at the group root.
// metrics may be nil.
func RegisterGraphQLRoutes(group *gin.RouterGroup, schema *graphql.Schema, metrics *middleware.Metrics) {
	handler := func(c *gin.Context) { ExecuteGraphQL(c, schema, metrics) }
	group.POST("/graphql", handler)
	group.POST("/", handler)
}

func ExecuteGraphQL(c *gin.Context, schema *graphql.Schema, metrics *middleware.Metrics) {
	var req graphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if req.Query == "" {
		c.JSON(http.StatusBadRequest, errorBody("Must provide query string."))
		return
	}

	response := schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)
	metrics.ObserveGraphQL(req.OperationName, response.Errors)

	c.JSON(http.StatusOK, response)
}

func errorBody(message string) gin.H {
	return gin.H{"errors": []gin.H{{"message": message}}}
}
