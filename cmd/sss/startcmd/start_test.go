/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/edge-sss/pkg/log"
)

type mockServer struct {
	host   string
	router http.Handler
}

func (s *mockServer) ListenAndServe(host string, router http.Handler) error {
	s.host = host
	s.router = router

	return nil
}

func run(t *testing.T, args ...string) (*mockServer, error) {
	t.Helper()

	srv := &mockServer{}

	startCmd := GetStartCmd(srv)
	startCmd.SetOut(&bytes.Buffer{})
	startCmd.SetErr(&bytes.Buffer{})

	if args == nil {
		args = []string{}
	}

	startCmd.SetArgs(args)

	return srv, startCmd.Execute()
}

func serve(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	return rr
}

func TestStartCmdContents(t *testing.T) {
	startCmd := GetStartCmd(&mockServer{})

	require.Equal(t, "start", startCmd.Use)
	require.Equal(t, "Start sss", startCmd.Short)
	require.Equal(t, "Start the sss REST server", startCmd.Long)

	for _, flag := range []string{
		hostURLFlagName, databaseTypeFlagName, databaseURLFlagName, databasePrefixFlagName, logLevelFlagName,
	} {
		require.NotNil(t, startCmd.Flags().Lookup(flag), flag)
	}
}

func TestStartCmdWithBlankArg(t *testing.T) {
	t.Run("missing host url", func(t *testing.T) {
		_, err := run(t)
		require.Error(t, err)
		require.Equal(t, "neither host-url (command line flag) nor SSS_HOST_URL (environment variable) have been set.",
			err.Error())
	})

	t.Run("blank host url", func(t *testing.T) {
		_, err := run(t, "--"+hostURLFlagName, "")
		require.Error(t, err)
		require.Equal(t, "host-url value is empty", err.Error())
	})
}

func TestStartCmdValidArgs(t *testing.T) {
	srv, err := run(t, "--"+hostURLFlagName, "localhost:8080")
	require.NoError(t, err)
	require.Equal(t, "localhost:8080", srv.host)

	t.Run("split and combine", func(t *testing.T) {
		rr := serve(t, srv.router, http.MethodPost, "/sss/split", `{"text":"hello","threshold":2,"shares":3}`)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var split struct {
			Shares []string `json:"shares"`
		}

		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &split))
		require.Len(t, split.Shares, 3)

		body, err := json.Marshal(map[string]interface{}{"shares": split.Shares[1:]})
		require.NoError(t, err)

		rr = serve(t, srv.router, http.MethodPost, "/sss/combine", string(body))
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var secret struct {
			Secret []byte `json:"secret"`
		}

		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &secret))
		require.Equal(t, "hello", string(secret.Secret))
	})

	t.Run("log spec", func(t *testing.T) {
		rr := serve(t, srv.router, http.MethodGet, "/logspec", "")
		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		rr := serve(t, srv.router, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, rr.Code)
		require.Contains(t, rr.Body.String(), "sss_http_requests_total")
	})
}

func TestStartCmdFromEnv(t *testing.T) {
	defer func() {
		log.SetLevel("edge-sss/shamir", log.INFO)
		log.SetLevel("", log.INFO)
	}()

	t.Setenv(hostURLEnvKey, "localhost:8081")
	t.Setenv(databaseTypeEnvKey, "SQLite")
	t.Setenv(databaseURLEnvKey, filepath.Join(t.TempDir(), "sss.db"))
	t.Setenv(databasePrefixEnvKey, "test_")
	t.Setenv(logLevelEnvKey, "edge-sss/shamir=debug:warning")

	srv, err := run(t)
	require.NoError(t, err)
	require.Equal(t, "localhost:8081", srv.host)
	require.NotNil(t, srv.router)

	require.Equal(t, log.DEBUG, log.GetLevel("edge-sss/shamir"))
	require.Equal(t, log.WARNING, log.GetLevel("edge-sss/other"))
}

func TestStartCmdInvalidArgs(t *testing.T) {
	t.Run("unsupported database", func(t *testing.T) {
		_, err := run(t, "--"+hostURLFlagName, "localhost:8080", "--"+databaseTypeFlagName, "leveldb")
		require.ErrorIs(t, err, errUnsupportedDatabase)
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, err := run(t, "--"+hostURLFlagName, "localhost:8080", "--"+logLevelFlagName, "loud")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("sqlite without path", func(t *testing.T) {
		_, err := run(t, "--"+hostURLFlagName, "localhost:8080", "--"+databaseTypeFlagName, databaseTypeSQLite)
		require.Error(t, err)
	})

	t.Run("mysql without url", func(t *testing.T) {
		_, err := run(t, "--"+hostURLFlagName, "localhost:8080", "--"+databaseTypeFlagName, databaseTypeMySQL)
		require.Error(t, err)
	})

	t.Run("couchdb without url", func(t *testing.T) {
		_, err := run(t, "--"+hostURLFlagName, "localhost:8080", "--"+databaseTypeFlagName, databaseTypeCouchDB)
		require.Error(t, err)
	})
}

func TestHTTPServer(t *testing.T) {
	srv := &HTTPServer{}

	require.Error(t, srv.ListenAndServe("not a host", http.NotFoundHandler()))
}
