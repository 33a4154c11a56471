/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package startcmd runs the REST server.
package startcmd

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/trustbloc/edge-sss/pkg/log"
	"github.com/trustbloc/edge-sss/pkg/metrics"
	"github.com/trustbloc/edge-sss/pkg/restapi/logspec"
	"github.com/trustbloc/edge-sss/pkg/restapi/sss"
	"github.com/trustbloc/edge-sss/pkg/storage"
	couchdbstore "github.com/trustbloc/edge-sss/pkg/storage/couchdb"
	"github.com/trustbloc/edge-sss/pkg/storage/memstore"
	mysqlstore "github.com/trustbloc/edge-sss/pkg/storage/mysql"
	sqlitestore "github.com/trustbloc/edge-sss/pkg/storage/sqlite"
	cmdutils "github.com/trustbloc/edge-sss/pkg/utils/cmd"
)

const (
	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLEnvKey        = "SSS_HOST_URL"
	hostURLFlagUsage     = "URL to run the sss instance on. Format: HostName:Port." +
		" Alternatively, this can be set with the following environment variable: " + hostURLEnvKey

	databaseTypeFlagName  = "database-type"
	databaseTypeEnvKey    = "SSS_DATABASE_TYPE"
	databaseTypeFlagUsage = "The type of database to use for storing share sets." +
		" Supported options: mem, mysql, couchdb, sqlite. Defaults to mem." +
		" Alternatively, this can be set with the following environment variable: " + databaseTypeEnvKey

	databaseURLFlagName  = "database-url"
	databaseURLEnvKey    = "SSS_DATABASE_URL"
	databaseURLFlagUsage = "The URL (or file path for sqlite) of the database. Not needed for mem." +
		" Alternatively, this can be set with the following environment variable: " + databaseURLEnvKey

	databasePrefixFlagName  = "database-prefix"
	databasePrefixEnvKey    = "SSS_DATABASE_PREFIX"
	databasePrefixFlagUsage = "An optional prefix to be used when creating and retrieving underlying databases." +
		" Alternatively, this can be set with the following environment variable: " + databasePrefixEnvKey

	logLevelFlagName  = "log-level"
	logLevelEnvKey    = "SSS_LOGLEVEL"
	logLevelFlagUsage = "Logging level spec, for example edge-sss/shamir=DEBUG:INFO." +
		" Defaults to INFO." +
		" Alternatively, this can be set with the following environment variable: " + logLevelEnvKey

	databaseTypeMem     = "mem"
	databaseTypeMySQL   = "mysql"
	databaseTypeCouchDB = "couchdb"
	databaseTypeSQLite  = "sqlite"

	databaseRetries        = 10
	databaseInitialBackoff = 500 * time.Millisecond

	metricsPath = "/metrics"
)

var logger = log.New("edge-sss/startcmd")

var errUnsupportedDatabase = errors.New("unsupported database type")

type server interface {
	ListenAndServe(host string, router http.Handler) error
}

// HTTPServer represents an actual HTTP server implementation.
type HTTPServer struct{}

// ListenAndServe starts the server using the standard Go HTTP server implementation.
func (s *HTTPServer) ListenAndServe(host string, router http.Handler) error {
	srv := &http.Server{
		Addr:              host,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return srv.ListenAndServe()
}

type parameters struct {
	srv            server
	hostURL        string
	databaseType   string
	databaseURL    string
	databasePrefix string
	logSpec        string
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(srv server) *cobra.Command {
	startCmd := createStartCmd(srv)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(srv server) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start sss",
		Long:  "Start the sss REST server",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getParameters(cmd, srv)
			if err != nil {
				return err
			}

			return startService(params)
		},
	}
}

func getParameters(cmd *cobra.Command, srv server) (*parameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	databaseType, err := cmdutils.GetUserSetVarFromString(cmd, databaseTypeFlagName, databaseTypeEnvKey, true)
	if err != nil {
		return nil, err
	}

	if databaseType == "" {
		databaseType = databaseTypeMem
	}

	databaseURL, err := cmdutils.GetUserSetVarFromString(cmd, databaseURLFlagName, databaseURLEnvKey, true)
	if err != nil {
		return nil, err
	}

	databasePrefix, err := cmdutils.GetUserSetVarFromString(cmd, databasePrefixFlagName, databasePrefixEnvKey, true)
	if err != nil {
		return nil, err
	}

	logSpec, err := cmdutils.GetUserSetVarFromString(cmd, logLevelFlagName, logLevelEnvKey, true)
	if err != nil {
		return nil, err
	}

	return &parameters{
		srv:            srv,
		hostURL:        hostURL,
		databaseType:   strings.ToLower(databaseType),
		databaseURL:    databaseURL,
		databasePrefix: databasePrefix,
		logSpec:        logSpec,
	}, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(databaseTypeFlagName, "", "", databaseTypeFlagUsage)
	startCmd.Flags().StringP(databaseURLFlagName, "", "", databaseURLFlagUsage)
	startCmd.Flags().StringP(databasePrefixFlagName, "", "", databasePrefixFlagUsage)
	startCmd.Flags().StringP(logLevelFlagName, "", "", logLevelFlagUsage)
}

func startService(params *parameters) error {
	if params.logSpec != "" {
		if err := log.SetSpec(params.logSpec); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}

	provider, err := createProvider(params)
	if err != nil {
		return err
	}

	router, err := newRouter(provider)
	if err != nil {
		return err
	}

	logger.Infof("Starting sss on host %s with %s storage", params.hostURL, params.databaseType)

	return params.srv.ListenAndServe(params.hostURL, router)
}

func newRouter(provider storage.Provider) (http.Handler, error) {
	sssController, err := sss.New(provider)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(metrics.HTTPMiddleware)

	for _, handler := range sssController.GetOperations() {
		router.MethodFunc(handler.Method(), handler.Path(), handler.Handle())
	}

	for _, handler := range logspec.New().GetOperations() {
		router.MethodFunc(handler.Method(), handler.Path(), handler.Handle())
	}

	router.Method(http.MethodGet, metricsPath, promhttp.Handler())

	return router, nil
}

func createProvider(params *parameters) (storage.Provider, error) {
	switch params.databaseType {
	case databaseTypeMem:
		return memstore.NewProvider(), nil
	case databaseTypeMySQL:
		return mysqlstore.NewProvider(params.databaseURL,
			mysqlstore.WithDBPrefix(params.databasePrefix),
			mysqlstore.WithPingRetries(databaseRetries, databaseInitialBackoff))
	case databaseTypeCouchDB:
		return couchdbstore.NewProvider(params.databaseURL,
			couchdbstore.WithDBPrefix(params.databasePrefix),
			couchdbstore.WithReadyRetries(databaseRetries, databaseInitialBackoff))
	case databaseTypeSQLite:
		return sqlitestore.NewProvider(params.databaseURL, sqlitestore.WithDBPrefix(params.databasePrefix))
	default:
		return nil, fmt.Errorf("%w: %s", errUnsupportedDatabase, params.databaseType)
	}
}
