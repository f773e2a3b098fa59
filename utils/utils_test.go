package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	t.Parallel()

	a, b := GenerateID(), GenerateID()
	require.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

func TestSetLevel(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	require.NoError(t, SetLevel("debug"))
	require.Equal(t, log.DebugLevel, log.GetLevel())

	require.Error(t, SetLevel("chatty"))
	require.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestJSONResponseAndError(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	JSONResponse(c, http.StatusOK, []int{1, 2}, "ok")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, float64(http.StatusOK), resp["status"])
	require.Equal(t, "ok", resp["message"])
	require.Len(t, resp["data"], 2)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	JSONError(c, http.StatusConflict, errors.New("boom"), "conflict")

	resp = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "conflict", resp["message"])
	require.Equal(t, "boom", resp["error"])
}
