package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/treeforest/basex/pkg/idgen"
	"github.com/treeforest/basex/walletmgr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) (int, map[string]interface{}) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w.Code, out
}

func TestEncode(t *testing.T) {
	h := NewHttpServer(0, nil).Engine()

	code, out := do(t, h, http.MethodPost, "/encode/base32", gin.H{"data": "Hello"})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "JBSWY3DP", out["encoded"])

	code, out = do(t, h, http.MethodPost, "/encode/base58", gin.H{"hex": "000048656c6c6f"})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "119Ajdvzr", out["encoded"])

	code, _ = do(t, h, http.MethodPost, "/encode/base58", gin.H{"hex": "zz"})
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, h, http.MethodPost, "/encode/base64", gin.H{"data": "Hello"})
	require.Equal(t, http.StatusNotFound, code)
}

func TestDecode(t *testing.T) {
	h := NewHttpServer(0, nil).Engine()

	code, out := do(t, h, http.MethodPost, "/decode/base32", gin.H{"encoded": "JBSWY3DP", "text": true})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "Hello", out["text"])

	code, out = do(t, h, http.MethodPost, "/decode/base58", gin.H{"encoded": "119Ajdvzr"})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "000048656c6c6f", out["hex"])

	code, out = do(t, h, http.MethodPost, "/decode/base32", gin.H{"encoded": "JBSWY3D@", "text": true})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, float64(7), out["offset"])

	code, _ = do(t, h, http.MethodPost, "/decode/base58", gin.H{"encoded": "9AjdvzO"})
	require.Equal(t, http.StatusBadRequest, code)

	// 0xff 不是合法的 UTF-8
	code, _ = do(t, h, http.MethodPost, "/decode/base58", gin.H{"encoded": "5Q", "text": true})
	require.Equal(t, http.StatusBadRequest, code)
}

func TestGetID(t *testing.T) {
	h := NewHttpServer(0, nil).Engine()
	code, out := do(t, h, http.MethodGet, "/id", nil)
	require.Equal(t, http.StatusOK, code)

	_, err := idgen.ParseID(out["id"].(string))
	require.NoError(t, err)
}

func TestGetAddress(t *testing.T) {
	mgr, err := walletmgr.Open(t.TempDir())
	require.NoError(t, err)
	defer mgr.Close()
	w, err := mgr.CreateWallet()
	require.NoError(t, err)

	h := NewHttpServer(0, mgr).Engine()

	code, out := do(t, h, http.MethodGet, "/address/"+w.Address(), nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, out["valid"])
	require.Equal(t, true, out["owned"])

	_, out = do(t, h, http.MethodGet, "/address/1111111111111111111114oLvT2", nil)
	require.Equal(t, true, out["valid"])
	require.Equal(t, false, out["owned"])

	_, out = do(t, h, http.MethodGet, "/address/0OIl", nil)
	require.Equal(t, false, out["valid"])
}
