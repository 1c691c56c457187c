package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"ledgerload/internal/core"
	"ledgerload/internal/http/handler/middleware"
	"ledgerload/internal/http/payload"

	"go.uber.org/zap"
)

// Every lookup accepts its keys either as repeated query parameters on GET or
// as a JSON body {"keys": [...]} on POST.
var (
	GetTransactions         = "GET /lookup/transactions"
	PostTransactions        = "POST /lookup/transactions"
	GetTransactionsRLP      = "GET /lookup/transactions/rlp/{rlpHash}"
	GetTraces               = "GET /lookup/traces"
	PostTraces              = "POST /lookup/traces"
	GetAddressTransactions  = "GET /lookup/addresses/transactions"
	PostAddressTransactions = "POST /lookup/addresses/transactions"
	GetAddressTraces        = "GET /lookup/addresses/traces"
	PostAddressTraces       = "POST /lookup/addresses/traces"
	GetContractCreations    = "GET /lookup/contracts/creations"
	PostContractCreations   = "POST /lookup/contracts/creations"
	GetContractCode         = "GET /lookup/contracts/code"
	PostContractCode        = "POST /lookup/contracts/code"
)

const (
	hashParam    = "hash"
	addressParam = "address"
)

type lookupFunc func(ctx context.Context, keys []string) (any, error)

type LookupHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	lookup           LookupService
}

func NewLookupHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, lookupService LookupService) *LookupHandler {
	return &LookupHandler{
		logs:             logger,
		requestValidator: requestValidator,
		lookup:           lookupService,
	}
}

// Register binds every lookup route on mux.
func (h *LookupHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(GetTransactions, h.HandleTransactions)
	mux.HandleFunc(PostTransactions, h.HandleTransactions)
	mux.HandleFunc(GetTransactionsRLP, h.HandleTransactionsRLP)
	mux.HandleFunc(GetTraces, h.HandleTraces)
	mux.HandleFunc(PostTraces, h.HandleTraces)
	mux.HandleFunc(GetAddressTransactions, h.HandleAddressTransactions)
	mux.HandleFunc(PostAddressTransactions, h.HandleAddressTransactions)
	mux.HandleFunc(GetAddressTraces, h.HandleAddressTraces)
	mux.HandleFunc(PostAddressTraces, h.HandleAddressTraces)
	mux.HandleFunc(GetContractCreations, h.HandleContractCreations)
	mux.HandleFunc(PostContractCreations, h.HandleContractCreations)
	mux.HandleFunc(GetContractCode, h.HandleContractCode)
	mux.HandleFunc(PostContractCode, h.HandleContractCode)
}

func (h *LookupHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	h.serveLookup(w, r, "transactions", hashParam, func(ctx context.Context, keys []string) (any, error) {
		return h.lookup.TransactionsByHash(ctx, keys)
	})
}

func (h *LookupHandler) HandleTraces(w http.ResponseWriter, r *http.Request) {
	h.serveLookup(w, r, "traces", hashParam, func(ctx context.Context, keys []string) (any, error) {
		return h.lookup.TracesByTransactionHash(ctx, keys)
	})
}

func (h *LookupHandler) HandleAddressTransactions(w http.ResponseWriter, r *http.Request) {
	h.serveLookup(w, r, "transactions", addressParam, func(ctx context.Context, keys []string) (any, error) {
		return h.lookup.TransactionsByAddress(ctx, keys)
	})
}

func (h *LookupHandler) HandleAddressTraces(w http.ResponseWriter, r *http.Request) {
	h.serveLookup(w, r, "traces", addressParam, func(ctx context.Context, keys []string) (any, error) {
		return h.lookup.TracesByAddress(ctx, keys)
	})
}

func (h *LookupHandler) HandleContractCreations(w http.ResponseWriter, r *http.Request) {
	h.serveLookup(w, r, "creations", addressParam, func(ctx context.Context, keys []string) (any, error) {
		return h.lookup.ContractCreations(ctx, keys)
	})
}

func (h *LookupHandler) HandleContractCode(w http.ResponseWriter, r *http.Request) {
	h.serveLookup(w, r, "code", addressParam, func(ctx context.Context, keys []string) (any, error) {
		return h.lookup.ContractCode(ctx, keys)
	})
}

func (h *LookupHandler) HandleTransactionsRLP(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	rlphex := r.PathValue("rlpHash")
	if rlphex == "" {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "rlp hash parameter is required",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing rlpHash parameter",
			"handler", GetTransactionsRLP,
			"request_id", requestId)
		return
	}

	transactionHashes, err := core.ParseRLP(rlphex)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("parse RLP parameter: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse RLP parameter",
			"error", err,
			"handler", GetTransactionsRLP,
			"request_id", requestId)
		return
	}

	h.runLookup(w, r, GetTransactionsRLP, "transactions", payload.KeysRequest{Keys: transactionHashes},
		func(ctx context.Context, keys []string) (any, error) {
			return h.lookup.TransactionsByHash(ctx, keys)
		})
}

func (h *LookupHandler) serveLookup(w http.ResponseWriter, r *http.Request, resultKey, param string, fn lookupFunc) {
	route := r.Pattern
	requestId := middleware.RequestIDFrom(r.Context())

	request, err := h.keysRequest(r, param)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("invalid request: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	h.runLookup(w, r, route, resultKey, request, fn)
}

func (h *LookupHandler) runLookup(w http.ResponseWriter, r *http.Request, route, resultKey string, request payload.KeysRequest, fn lookupFunc) {
	requestId := middleware.RequestIDFrom(r.Context())

	if err := request.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	h.logs.Infow("lookup request received",
		"keys", len(request.Keys),
		"handler", route,
		"request_id", requestId)

	result, err := fn(r.Context(), request.Keys)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			code = http.StatusServiceUnavailable
		}
		h.respond(w, Response{
			Message: "Lookup failed",
			Error:   oopsErr,
		}, code,
			requestId)
		h.logs.Errorw("lookup failed",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]any{resultKey: result}, http.StatusOK, requestId)
}

func (h *LookupHandler) keysRequest(r *http.Request, param string) (payload.KeysRequest, error) {
	var request payload.KeysRequest

	if r.Method == http.MethodPost {
		if err := h.requestValidator.DecodeJSONPayload(r, &request); err != nil {
			return payload.KeysRequest{}, err
		}
		return request, nil
	}

	request.Keys = r.URL.Query()[param]
	return request, nil
}

func (h *LookupHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
