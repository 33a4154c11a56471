/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package operation

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/trustbloc/edge-sss/pkg/internal/support"
	"github.com/trustbloc/edge-sss/pkg/log"
	"github.com/trustbloc/edge-sss/pkg/metrics"
	commhttp "github.com/trustbloc/edge-sss/pkg/restapi/internal/common/http"
	"github.com/trustbloc/edge-sss/pkg/sharestore"
	"github.com/trustbloc/edge-sss/pkg/sss/shamir"
)

const (
	sssBasePath       = "/sss"
	splitEndpoint     = sssBasePath + "/split"
	combineEndpoint   = sssBasePath + "/combine"
	shareSetsEndpoint = sssBasePath + "/sharesets"
	shareSetEndpoint  = shareSetsEndpoint + "/{id}"
	shareEndpoint     = shareSetEndpoint + "/shares/{x}"
	recoverEndpoint   = shareSetEndpoint + "/recover"

	// maxBodySize bounds request bodies: 255 shares of a 4 KiB secret, hex encoded, fit easily.
	maxBodySize = 4 << 20

	invalidRequestErrMsg = "invalid request"
	noCombinationErrMsg  = "no combination of shares produced the expected secret"
)

var logger = log.New("edge-sss/restapi/sss")

// nolint:gochecknoglobals // request validation failures
var badRequestErrs = []error{
	shamir.ErrInvalidThreshold,
	shamir.ErrInsufficientShares,
	shamir.ErrTooManyShares,
	shamir.ErrInvalidByte,
	shamir.ErrNoShares,
	shamir.ErrUnequalKeyLengths,
	shamir.ErrDuplicateXCoordinate,
	shamir.ErrInvalidShare,
}

// Handler represents an HTTP handler for each controller API endpoint.
type Handler interface {
	Path() string
	Method() string
	Handle() http.HandlerFunc
}

// Operation serves split, combine and share set requests.
type Operation struct {
	store   *sharestore.Store
	entropy io.Reader
}

// Option configures an Operation.
type Option func(o *Operation)

// WithEntropy replaces crypto/rand as the coefficient source of splits.
func WithEntropy(r io.Reader) Option {
	return func(o *Operation) {
		o.entropy = r
	}
}

// New returns a new Operation backed by store.
func New(store *sharestore.Store, opts ...Option) *Operation {
	o := &Operation{store: store}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// GetRESTHandlers gets all controller API handlers available for this service.
func (o *Operation) GetRESTHandlers() []Handler {
	return []Handler{
		support.NewHTTPHandler(splitEndpoint, http.MethodPost, o.split),
		support.NewHTTPHandler(combineEndpoint, http.MethodPost, o.combine),
		support.NewHTTPHandler(shareSetsEndpoint, http.MethodPost, o.createShareSet),
		support.NewHTTPHandler(shareSetEndpoint, http.MethodGet, o.getShareSet),
		support.NewHTTPHandler(shareEndpoint, http.MethodDelete, o.deleteShare),
		support.NewHTTPHandler(recoverEndpoint, http.MethodPost, o.recover),
	}
}

// Split Secret swagger:route POST /sss/split splitReq
//
// Splits a secret into shares.
//
// Responses:
//
//	default: genericError
//	    200: splitRes
func (o *Operation) split(rw http.ResponseWriter, req *http.Request) {
	var (
		request SplitRequest
		err     error
	)

	defer metrics.ObserveOperation(metrics.OpSplit, time.Now(), &err)

	if err = decode(req, &request); err != nil {
		writeError(rw, err)

		return
	}

	shares, err := o.splitShares(&request)
	if err != nil {
		writeError(rw, err)

		return
	}

	commhttp.WriteResponse(rw, SplitResponse{Shares: encodeShares(shares)})
}

// Combine Shares swagger:route POST /sss/combine combineReq
//
// Recovers a secret from shares. With a threshold below the number of shares and a digest,
// subsets are searched for one that reproduces the digest.
//
// Responses:
//
//	default: genericError
//	    200: secretRes
func (o *Operation) combine(rw http.ResponseWriter, req *http.Request) {
	var (
		request CombineRequest
		err     error
	)

	defer metrics.ObserveOperation(metrics.OpCombine, time.Now(), &err)

	if err = decode(req, &request); err != nil {
		writeError(rw, err)

		return
	}

	shares, err := decodeShares(request.Shares)
	if err != nil {
		writeError(rw, err)

		return
	}

	predicate, err := parseDigest(request.SHA256)
	if err != nil {
		writeError(rw, err)

		return
	}

	opts := []shamir.Option{shamir.WithPredicate(predicate)}

	if request.Threshold != 0 {
		opts = append(opts, shamir.WithThreshold(request.Threshold))
	}

	secret, found, err := shamir.Combine(shares, opts...)
	writeSecret(rw, secret, found, err)
}

// Create Share Set swagger:route POST /sss/sharesets splitReq
//
// Splits a secret and stores the shares as a share set.
//
// Responses:
//
//	default: genericError
//	    200: splitRes
func (o *Operation) createShareSet(rw http.ResponseWriter, req *http.Request) {
	var (
		request SplitRequest
		err     error
	)

	defer metrics.ObserveOperation(metrics.OpSave, time.Now(), &err)

	if err = decode(req, &request); err != nil {
		writeError(rw, err)

		return
	}

	shares, err := o.splitShares(&request)
	if err != nil {
		writeError(rw, err)

		return
	}

	id, err := o.store.Save(shares, request.Threshold)
	if err != nil {
		writeError(rw, err)

		return
	}

	commhttp.WriteResponse(rw, SplitResponse{ID: id, Shares: encodeShares(shares)})
}

// Get Share Set swagger:route GET /sss/sharesets/{id} shareSetReq
//
// Describes a share set and the shares still present.
//
// Responses:
//
//	default: genericError
//	    200: shareSetRes
func (o *Operation) getShareSet(rw http.ResponseWriter, req *http.Request) {
	var err error

	defer metrics.ObserveOperation(metrics.OpLoad, time.Now(), &err)

	set, err := o.store.Load(chi.URLParam(req, "id"))
	if err != nil {
		writeError(rw, err)

		return
	}

	commhttp.WriteResponse(rw, ShareSetResponse{
		ID:        set.ID,
		Threshold: set.Threshold,
		Total:     set.Total,
		SecretLen: set.SecretLen,
		Created:   set.Created,
		Present:   set.Present(),
	})
}

// Delete Share swagger:route DELETE /sss/sharesets/{id}/shares/{x} deleteShareReq
//
// Deletes one share of a share set.
//
// Responses:
//
//	default: genericError
//	    200: emptyRes
func (o *Operation) deleteShare(rw http.ResponseWriter, req *http.Request) {
	var err error

	defer metrics.ObserveOperation(metrics.OpDeleteShare, time.Now(), &err)

	x, err := strconv.ParseUint(chi.URLParam(req, "x"), 10, 8)
	if err != nil || x == 0 {
		err = fmt.Errorf("%w: x must be between 1 and 255", shamir.ErrInvalidShare)
		writeError(rw, err)

		return
	}

	if err = o.store.DeleteShare(chi.URLParam(req, "id"), byte(x)); err != nil {
		writeError(rw, err)
	}
}

// Recover Secret swagger:route POST /sss/sharesets/{id}/recover recoverReq
//
// Recovers the secret of a share set from the shares still present.
//
// Responses:
//
//	default: genericError
//	    200: secretRes
func (o *Operation) recover(rw http.ResponseWriter, req *http.Request) {
	var (
		request RecoverRequest
		err     error
	)

	defer metrics.ObserveOperation(metrics.OpRecover, time.Now(), &err)

	if err = decode(req, &request); err != nil && !errors.Is(err, io.EOF) {
		writeError(rw, err)

		return
	}

	predicate, err := parseDigest(request.SHA256)
	if err != nil {
		writeError(rw, err)

		return
	}

	secret, found, err := o.store.Recover(chi.URLParam(req, "id"), predicate)
	writeSecret(rw, secret, found, err)
}

func (o *Operation) splitShares(request *SplitRequest) ([]shamir.Share, error) {
	var in shamir.Input = shamir.RawBytes(request.Secret)
	if request.Text != "" {
		in = shamir.Text(request.Text)
	}

	opts := []shamir.Option{shamir.WithEntropy(o.entropy)}

	// zero shares means one share per threshold
	if request.Shares != 0 {
		opts = append(opts, shamir.WithTotalShares(request.Shares))
	}

	shares, err := shamir.SplitInput(in, request.Threshold, opts...)
	if err != nil {
		return nil, err
	}

	metrics.RecordSharesProduced(len(shares))

	return shares, nil
}

func decode(req *http.Request, v interface{}) error {
	err := json.NewDecoder(io.LimitReader(req.Body, maxBodySize)).Decode(v)
	if errors.Is(err, io.EOF) {
		return err
	}

	if err != nil {
		return &requestError{err: err}
	}

	return nil
}

// parseDigest returns a predicate matching the hex encoded SHA-256 digest, or nil when it is empty.
func parseDigest(sha256Hex string) (shamir.Predicate, error) {
	if sha256Hex == "" {
		return nil, nil
	}

	digest, err := hex.DecodeString(sha256Hex)
	if err != nil {
		return nil, &requestError{err: fmt.Errorf("sha256: %w", err)}
	}

	return shamir.SHA256Predicate(digest), nil
}

func decodeShares(encoded []string) ([]shamir.Share, error) {
	shares := make([]shamir.Share, len(encoded))

	for i, e := range encoded {
		s, err := shamir.ParseShare(e)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", i, err)
		}

		shares[i] = s
	}

	return shares, nil
}

func encodeShares(shares []shamir.Share) []string {
	encoded := make([]string, len(shares))
	for i, s := range shares {
		encoded[i] = s.String()
	}

	return encoded
}

func writeSecret(rw http.ResponseWriter, secret []byte, found bool, err error) {
	if err != nil {
		writeError(rw, err)

		return
	}

	if !found {
		commhttp.WriteErrorResponse(rw, http.StatusNotFound, noCombinationErrMsg)

		return
	}

	commhttp.WriteResponse(rw, SecretResponse{Secret: secret})
}

type requestError struct {
	err error
}

func (e *requestError) Error() string {
	return invalidRequestErrMsg + ": " + e.err.Error()
}

func (e *requestError) Unwrap() error {
	return e.err
}

func writeError(rw http.ResponseWriter, err error) {
	commhttp.WriteErrorResponse(rw, statusFor(err), err.Error())
}

func statusFor(err error) int {
	var reqErr *requestError
	if errors.As(err, &reqErr) || errors.Is(err, io.EOF) {
		return http.StatusBadRequest
	}

	for _, target := range badRequestErrs {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}

	switch {
	case errors.Is(err, sharestore.ErrShareSetNotFound), errors.Is(err, sharestore.ErrShareNotFound):
		return http.StatusNotFound
	case errors.Is(err, sharestore.ErrBelowThreshold):
		return http.StatusConflict
	}

	logger.Errorf("request failed: %s", err)

	return http.StatusInternalServerError
}
