package handlers

import (
	"net/http"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/player-profile-service/internal/testutil"
)

func testBundle() fstest.MapFS {
	return fstest.MapFS{
		"index.html":     {Data: []byte("<html>app</html>")},
		"assets/app.js":  {Data: []byte("console.log('hi')")},
		"assets/app.css": {Data: []byte("body{}")},
	}
}

func TestSPAServesExistingFile(t *testing.T) {
	rr := testutil.Serve(SPAHandler(testBundle(), nil), http.MethodGet, "/assets/app.js", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	require.Equal(t, "console.log('hi')", rr.Body.String())
}

func TestSPAFallsBackToIndex(t *testing.T) {
	for _, path := range []string{"/", "/admin", "/players/42/stats", "/assets"} {
		t.Run(path, func(t *testing.T) {
			rr := testutil.Serve(SPAHandler(testBundle(), nil), http.MethodGet, path, nil)

			testutil.AssertStatus(t, rr, http.StatusOK)
			require.Equal(t, "<html>app</html>", rr.Body.String())
			require.Contains(t, rr.Header().Get("Content-Type"), "text/html")
		})
	}
}

func TestSPAReturnsJSON404ForAPIPaths(t *testing.T) {
	rr := testutil.Serve(SPAHandler(testBundle(), nil), http.MethodGet, "/api/unknown", nil)

	testutil.AssertStatus(t, rr, http.StatusNotFound)
	require.Contains(t, rr.Header().Get("Content-Type"), "application/json")
}

func TestSPAIgnoresNonGetMethods(t *testing.T) {
	rr := testutil.Serve(SPAHandler(testBundle(), nil), http.MethodPost, "/admin", nil)

	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestSPAWithoutIndexReturns404(t *testing.T) {
	rr := testutil.Serve(SPAHandler(fstest.MapFS{}, nil), http.MethodGet, "/anything", nil)

	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
