package handlers

import (
	"net/http"
	"testing"

	"space-missions-api/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestHome(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/", Home)

	recorder := httpSuite.MakeRequest("GET", "/", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}
