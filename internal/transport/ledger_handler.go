package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/index"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/patricia"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type handlerError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *handlerError) Error() string {
	return e.Message
}

func newHandlerError(code int, err error) *handlerError {
	return &handlerError{Code: code, Message: err.Error()}
}

type (
	rootView struct {
		ID     uint64 `json:"id"`
		Digest string `json:"digest"`
		Size   uint64 `json:"size"`
	}
	blockInfoView struct {
		Hash         string   `json:"hash"`
		Parent       string   `json:"parent"`
		Height       uint32   `json:"height"`
		Work         string   `json:"work"`
		TxIDRoot     rootView `json:"txid_root"`
		ContractRoot rootView `json:"contract_root"`
	}
	blockView struct {
		blockInfoView
		Timestamp  time.Time `json:"timestamp"`
		Bits       uint32    `json:"bits"`
		MerkleRoot string    `json:"merkle_root"`
		TxIDs      []string  `json:"txids"`
	}
	proofStepView struct {
		Prefix        string `json:"prefix"`
		SiblingPrefix string `json:"sibling_prefix,omitempty"`
		SiblingHash   string `json:"sibling_hash,omitempty"`
		SiblingSize   uint64 `json:"sibling_size,omitempty"`
		SiblingLength uint32 `json:"sibling_length,omitempty"`
	}
	membershipView struct {
		Block    string          `json:"block"`
		TxID     string          `json:"txid"`
		Included bool            `json:"included"`
		Root     string          `json:"root"`
		Proof    []proofStepView `json:"proof,omitempty"`
	}
)

// LedgerHandler serves read-only ledger queries as JSON.
type LedgerHandler struct {
	view   ChainView
	store  BlockStore
	txids  *index.TxIDIndex
	logger *zap.Logger
}

func NewLedgerHandler(view ChainView, store BlockStore, logger *zap.Logger) (*LedgerHandler, error) {
	if view == nil {
		return nil, errors.New("ledger handler chain view is required")
	}
	if store == nil {
		return nil, errors.New("ledger handler block store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerHandler{
		view:   view,
		store:  store,
		txids:  index.NewTxIDIndex(),
		logger: logger.Named("ledgerHandler"),
	}, nil
}

// Router returns the /v1 routes.
func (h *LedgerHandler) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(h.loggingMiddleware)
	v1 := router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/best", h.makeHandler(h.best)).Methods(http.MethodGet)
	v1.HandleFunc("/tips", h.makeHandler(h.tips)).Methods(http.MethodGet)
	v1.HandleFunc("/blocks/{hash}", h.makeHandler(h.block)).Methods(http.MethodGet)
	v1.HandleFunc("/blocks/{hash}/txids/{txid}", h.makeHandler(h.membership)).Methods(http.MethodGet)
	return router
}

func (h *LedgerHandler) makeHandler(handler func(r *http.Request, vars map[string]string) (any, *handlerError)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response, hErr := handler(r, mux.Vars(r))
		if hErr != nil {
			if hErr.Code >= http.StatusInternalServerError {
				h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(hErr))
			}
			h.sendJSON(w, hErr.Code, hErr)
			return
		}
		h.sendJSON(w, http.StatusOK, response)
	}
}

func (h *LedgerHandler) sendJSON(w http.ResponseWriter, code int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

func (h *LedgerHandler) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		next.ServeHTTP(w, r)
		h.logger.Debug("request served",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(started)),
		)
	})
}

func (h *LedgerHandler) best(_ *http.Request, _ map[string]string) (any, *handlerError) {
	best, ok := h.view.Best()
	if !ok {
		return nil, newHandlerError(http.StatusNotFound, fmt.Errorf("%w: no connected blocks", model.ErrNotFound))
	}
	return newBlockInfoView(best), nil
}

func (h *LedgerHandler) tips(_ *http.Request, _ map[string]string) (any, *handlerError) {
	tips := h.view.Tips()
	out := make([]blockInfoView, 0, len(tips))
	for _, tip := range tips {
		out = append(out, newBlockInfoView(tip))
	}
	return out, nil
}

func (h *LedgerHandler) block(r *http.Request, vars map[string]string) (any, *handlerError) {
	info, hErr := h.connected(vars["hash"])
	if hErr != nil {
		return nil, hErr
	}
	b, err := h.store.Block(r.Context(), info.Hash)
	if err != nil {
		return nil, storeError(fmt.Errorf("load block %s: %w", info.Hash, err))
	}

	view := blockView{
		blockInfoView: newBlockInfoView(info),
		Timestamp:     b.Timestamp().UTC(),
		Bits:          b.Bits(),
		MerkleRoot:    b.MerkleRoot().String(),
		TxIDs:         make([]string, 0, b.TransactionCount()),
	}
	for _, bt := range b.Transactions() {
		view.TxIDs = append(view.TxIDs, bt.Tx.Hash().String())
	}
	return view, nil
}

// membership answers whether txid is confirmed as of the block and, when it
// is, returns the path that proves it against the block's txid root.
func (h *LedgerHandler) membership(_ *http.Request, vars map[string]string) (any, *handlerError) {
	info, hErr := h.connected(vars["hash"])
	if hErr != nil {
		return nil, hErr
	}
	txid, err := chainhash.NewHashFromStr(vars["txid"])
	if err != nil {
		return nil, newHandlerError(http.StatusBadRequest, fmt.Errorf("parse txid: %w", err))
	}

	view := membershipView{
		Block: info.Hash.String(),
		TxID:  txid.String(),
		Root:  info.TxIDRoot.Digest.String(),
	}
	proof, err := h.txids.Prove(h.store, patricia.NodeID(info.TxIDRoot.ID), index.TxIDEntry{TxID: *txid})
	switch {
	case errors.Is(err, model.ErrNotFound):
		return view, nil
	case err != nil:
		return nil, storeError(fmt.Errorf("prove %s: %w", txid, err))
	}
	if err := proof.Verify(info.TxIDRoot.Digest); err != nil {
		return nil, newHandlerError(http.StatusInternalServerError, err)
	}

	view.Included = true
	view.Proof = make([]proofStepView, 0, len(proof.Steps))
	for _, st := range proof.Steps {
		step := proofStepView{Prefix: st.Prefix.String()}
		if st.Sibling != nil {
			step.SiblingPrefix = st.Sibling.Prefix.String()
			step.SiblingHash = st.Sibling.Hash.String()
			step.SiblingSize = st.SiblingSize
			step.SiblingLength = st.SiblingLength
		}
		view.Proof = append(view.Proof, step)
	}
	return view, nil
}

func (h *LedgerHandler) connected(raw string) (model.ConnectedBlockInfo, *handlerError) {
	hash, err := chainhash.NewHashFromStr(raw)
	if err != nil {
		return model.ConnectedBlockInfo{}, newHandlerError(http.StatusBadRequest, fmt.Errorf("parse block hash: %w", err))
	}
	info, ok := h.view.Info(*hash)
	if !ok {
		return model.ConnectedBlockInfo{}, newHandlerError(http.StatusNotFound, fmt.Errorf("%w: block %s is not connected", model.ErrNotFound, hash))
	}
	return info, nil
}

func storeError(err error) *handlerError {
	if errors.Is(err, model.ErrNotFound) {
		return newHandlerError(http.StatusNotFound, err)
	}
	return newHandlerError(http.StatusInternalServerError, err)
}

func newBlockInfoView(info model.ConnectedBlockInfo) blockInfoView {
	work := "0"
	if info.Work != nil {
		work = info.Work.String()
	}
	return blockInfoView{
		Hash:         info.Hash.String(),
		Parent:       info.Parent.String(),
		Height:       info.Height,
		Work:         work,
		TxIDRoot:     newRootView(info.TxIDRoot),
		ContractRoot: newRootView(info.ContractRoot),
	}
}

func newRootView(r model.Root) rootView {
	return rootView{ID: r.ID, Digest: r.Digest.String(), Size: r.Size}
}
