package server

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/treeforest/basex/codec"
	"github.com/treeforest/basex/internal/coder"
	"github.com/treeforest/basex/pkg/idgen"
	"github.com/treeforest/basex/pkg/utils"
	"github.com/treeforest/basex/walletmgr"
	log "github.com/treeforest/logger"
)

type HttpServer struct {
	port int
	mgr  *walletmgr.WalletManager
	srv  *http.Server
}

// NewHttpServer mgr 可以为 nil，此时 /address 只做格式校验
func NewHttpServer(port int, mgr *walletmgr.WalletManager) *HttpServer {
	s := &HttpServer{port: port, mgr: mgr}
	s.srv = &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: s.Engine()}
	return s
}

func (s *HttpServer) Engine() *gin.Engine {
	r := gin.Default()

	r.POST("/encode/:codec", s.handleEncode)
	r.POST("/decode/:codec", s.handleDecode)
	r.GET("/id", s.handleGetID)
	r.GET("/address/:address", s.handleGetAddress)

	return r
}

func (s *HttpServer) Run() {
	log.Infof("http server listen on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("http server run failed:", err)
	}
}

func (s *HttpServer) Stop() {
	if err := s.srv.Close(); err != nil {
		log.Warn("http server close failed:", err)
	}
}

func (s *HttpServer) handleEncode(c *gin.Context) {
	cd, ok := s.getCoder(c)
	if !ok {
		return
	}

	type Request struct {
		Data string `json:"data"` // 文本
		Hex  string `json:"hex"`  // 二进制数据，优先于 data
	}
	req := Request{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request obj error"})
		return
	}

	src := []byte(req.Data)
	if req.Hex != "" {
		b, err := hex.DecodeString(req.Hex)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hex: " + err.Error()})
			return
		}
		src = b
	}

	type Response struct {
		Encoded string `json:"encoded"`
	}
	c.JSON(http.StatusOK, Response{Encoded: cd.Encode(src)})
}

func (s *HttpServer) handleDecode(c *gin.Context) {
	cd, ok := s.getCoder(c)
	if !ok {
		return
	}

	type Request struct {
		Encoded string `json:"encoded"`
		Text    bool   `json:"text"` // 以 UTF-8 文本返回
	}
	req := Request{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request obj error"})
		return
	}

	type Response struct {
		Hex  string `json:"hex,omitempty"`
		Text string `json:"text,omitempty"`
	}

	if req.Text {
		text, err := cd.DecodeToString(req.Encoded)
		if err != nil {
			s.decodeError(c, err)
			return
		}
		c.JSON(http.StatusOK, Response{Text: text})
		return
	}

	b, err := cd.Decode(req.Encoded)
	if err != nil {
		s.decodeError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Hex: hex.EncodeToString(b)})
}

func (s *HttpServer) handleGetID(c *gin.Context) {
	type Response struct {
		ID string `json:"id"`
	}
	c.JSON(http.StatusOK, Response{ID: idgen.NewID()})
}

func (s *HttpServer) handleGetAddress(c *gin.Context) {
	type Response struct {
		Valid bool `json:"valid"`
		Owned bool `json:"owned"`
	}
	address := c.Param("address")
	resp := Response{Valid: utils.IsValidAddress(address)}
	if resp.Valid && s.mgr != nil {
		resp.Owned = s.mgr.Has(address)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *HttpServer) getCoder(c *gin.Context) (coder.Coder, bool) {
	name := c.Param("codec")
	cd, ok := coder.Get(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown codec " + name})
	}
	return cd, ok
}

func (s *HttpServer) decodeError(c *gin.Context, err error) {
	var ice *codec.InvalidCharacterError
	switch {
	case errors.As(err, &ice):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "offset": ice.Offset})
	case errors.Is(err, codec.ErrInvalidUTF8):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Errorf("decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
