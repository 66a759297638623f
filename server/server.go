// server/server.go
package server

import (
	"net/http"

	"wx-yz/bfc/compiler"
	"wx-yz/bfc/debug"

	"github.com/gin-gonic/gin"
)

// CompileRequest is the playground request body.
type CompileRequest struct {
	Source string `json:"source"`
	AST    bool   `json:"ast"` // include the tree debug view in the response
}

// CompileResponse is returned on success.
type CompileResponse struct {
	Module string `json:"module"`
	AST    string `json:"ast,omitempty"`
}

// NewRouter builds the playground router: a health check and a compile
// endpoint that runs the full pipeline on posted source text.
func NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	router.POST("/compile", handleCompile)

	return router
}

func handleCompile(c *gin.Context) {
	var req CompileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comp := compiler.NewCompiler()

	resp := CompileResponse{}
	if req.AST {
		prog, err := comp.ParseAST(req.Source)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		resp.AST = prog.String()
	}

	out, err := comp.Compile(req.Source)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	resp.Module = out

	c.JSON(http.StatusOK, resp)
}

// Run starts the playground server on addr.
func Run(addr string) error {
	debug.PrintInfo("playground listening on %s", addr)
	return NewRouter().Run(addr)
}
