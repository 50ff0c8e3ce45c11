package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"crowdfunder/internal/core"
	"crowdfunder/internal/ethereum"
	"crowdfunder/internal/http/handler/middleware"
	"crowdfunder/internal/http/payload"
	"crowdfunder/internal/view"

	"github.com/ethereum/go-ethereum/common"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

var (
	Authenticate   = "POST /crowdfunding/authenticate"
	ListCategories = "GET /crowdfunding/categories"
	ListCampaigns  = "GET /crowdfunding/campaigns"
	GetCampaign    = "GET /crowdfunding/campaigns/{pair}"
	GetDonationQR  = "GET /crowdfunding/campaigns/{pair}/qrcode"
	CreateCampaign = "POST /crowdfunding/campaigns"
	Donate         = "POST /crowdfunding/campaigns/{pair}/donations"
	WithdrawUser   = "POST /crowdfunding/campaigns/{pair}/withdrawals"
	WithdrawOwner  = "POST /crowdfunding/campaigns/{pair}/owner-withdrawals"
	CreateVoting   = "POST /crowdfunding/campaigns/{pair}/votings"
	Vote           = "POST /crowdfunding/campaigns/{pair}/votings/{voting}/votes"
	Live           = "GET /crowdfunding/live"
)

const (
	authHeader = "AUTH_TOKEN"
	qrSize     = 256
)

// TimeNow is the clock used for countdowns.
var TimeNow = time.Now

type writeCall func(ctx context.Context, token string) (ethereum.TxReceipt, error)

type CrowdfundingHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	crowdfunding     CrowdfundingService
	gateway          string
}

func NewCrowdfundingHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	crowdfunding CrowdfundingService,
	gateway string,
) *CrowdfundingHandler {
	return &CrowdfundingHandler{
		logs:             logger,
		requestValidator: requestValidator,
		crowdfunding:     crowdfunding,
		gateway:          gateway,
	}
}

func (h *CrowdfundingHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.crowdfunding.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		var httpCode int
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			httpCode = http.StatusInternalServerError
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *CrowdfundingHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	state := view.Ready(core.Categories())
	h.respond(w, stateResponse(state, ""), http.StatusOK, requestID(r))
}

func (h *CrowdfundingHandler) HandleListCampaigns(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	catalogRequest, err := payload.ParseCatalogRequest(r.URL.Query())
	if err == nil {
		err = catalogRequest.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve campaigns",
			Error:   fmt.Errorf("validate query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate query parameters",
			"error", err,
			"handler", ListCampaigns,
			"request_id", requestId)
		return
	}

	state := view.Must(view.Idle[view.CatalogPage]().Load())

	catalog, err := h.crowdfunding.ListCampaigns(r.Context(), catalogRequest.ToQuery())
	if err != nil {
		state = view.Must(state.Fail(oopsErr))
		h.respond(w, stateResponse(state, "Could not retrieve campaigns"), http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list campaigns",
			"error", err,
			"handler", ListCampaigns,
			"request_id", requestId)
		return
	}

	h.logs.Infow("campaigns retrieved",
		"total", catalog.Total,
		"page", catalog.Page,
		"handler", ListCampaigns,
		"request_id", requestId)

	state = view.Must(state.Loaded(view.Catalog(catalog, catalogRequest.Categorie, h.gateway)))
	h.respond(w, stateResponse(state, ""), http.StatusOK, requestId)
}

func (h *CrowdfundingHandler) HandleGetCampaign(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	pair, ok := h.pathAddress(w, r, "pair", GetCampaign, requestId)
	if !ok {
		return
	}

	state := view.Must(view.Idle[view.CampaignPage]().Load())

	detail, err := h.crowdfunding.GetCampaign(r.Context(), pair)
	if err != nil {
		httpCode := http.StatusInternalServerError
		reason := oopsErr
		if errors.Is(err, core.ErrCampaignNotFound) {
			httpCode = http.StatusNotFound
			reason = err.Error()
		}
		state = view.Must(state.Fail(reason))
		h.respond(w, stateResponse(state, "Could not retrieve campaign"), httpCode, requestId)
		h.logs.Errorw("failed to get campaign",
			"error", err,
			"pair", pair.Hex(),
			"handler", GetCampaign,
			"request_id", requestId)
		return
	}

	state = view.Must(state.Loaded(view.Detail(detail, h.gateway, TimeNow())))
	h.respond(w, stateResponse(state, ""), http.StatusOK, requestId)
}

// HandleDonationQRCode renders the donation payment uri of a campaign as a PNG.
func (h *CrowdfundingHandler) HandleDonationQRCode(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	pair, ok := h.pathAddress(w, r, "pair", GetDonationQR, requestId)
	if !ok {
		return
	}

	qrRequest := payload.ParseDonationQRRequest(r.URL.Query())
	if err := qrRequest.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not create QR code",
			Error:   fmt.Errorf("invalid query: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate donation query",
			"error", err,
			"handler", GetDonationQR,
			"request_id", requestId)
		return
	}

	uri := h.crowdfunding.DonationURI(pair, qrRequest.Message, qrRequest.AmountWei())
	png, err := qrcode.Encode(uri, qrcode.Medium, qrSize)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not create QR code",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to encode qr code",
			"error", err,
			"uri", uri,
			"handler", GetDonationQR,
			"request_id", requestId)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logs.Errorw("failed to write qr code",
			"error", err,
			"handler", GetDonationQR,
			"request_id", requestId)
	}
}

func (h *CrowdfundingHandler) HandleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := h.authToken(w, r, CreateCampaign, requestId)
	if !ok {
		return
	}

	var req payload.CreateCampaignRequest
	if !h.decode(w, r, &req, CreateCampaign, requestId) {
		return
	}

	h.submit(w, r, CreateCampaign, token, requestId, func(ctx context.Context, token string) (ethereum.TxReceipt, error) {
		return h.crowdfunding.CreateCampaign(ctx, token, req.ToCall())
	})
}

func (h *CrowdfundingHandler) HandleDonate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := h.authToken(w, r, Donate, requestId)
	if !ok {
		return
	}
	pair, ok := h.pathAddress(w, r, "pair", Donate, requestId)
	if !ok {
		return
	}

	var req payload.DonateRequest
	if !h.decode(w, r, &req, Donate, requestId) {
		return
	}

	h.submit(w, r, Donate, token, requestId, func(ctx context.Context, token string) (ethereum.TxReceipt, error) {
		return h.crowdfunding.Donate(ctx, token, pair, req.Message, req.AmountWei())
	})
}

func (h *CrowdfundingHandler) HandleWithdrawUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := h.authToken(w, r, WithdrawUser, requestId)
	if !ok {
		return
	}
	pair, ok := h.pathAddress(w, r, "pair", WithdrawUser, requestId)
	if !ok {
		return
	}

	h.submit(w, r, WithdrawUser, token, requestId, func(ctx context.Context, token string) (ethereum.TxReceipt, error) {
		return h.crowdfunding.WithdrawUser(ctx, token, pair)
	})
}

func (h *CrowdfundingHandler) HandleWithdrawOwner(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := h.authToken(w, r, WithdrawOwner, requestId)
	if !ok {
		return
	}
	pair, ok := h.pathAddress(w, r, "pair", WithdrawOwner, requestId)
	if !ok {
		return
	}

	h.submit(w, r, WithdrawOwner, token, requestId, func(ctx context.Context, token string) (ethereum.TxReceipt, error) {
		return h.crowdfunding.WithdrawOwner(ctx, token, pair)
	})
}

func (h *CrowdfundingHandler) HandleCreateVoting(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := h.authToken(w, r, CreateVoting, requestId)
	if !ok {
		return
	}
	pair, ok := h.pathAddress(w, r, "pair", CreateVoting, requestId)
	if !ok {
		return
	}

	var req payload.VotingRequest
	if !h.decode(w, r, &req, CreateVoting, requestId) {
		return
	}

	h.submit(w, r, CreateVoting, token, requestId, func(ctx context.Context, token string) (ethereum.TxReceipt, error) {
		return h.crowdfunding.CreateVoting(ctx, token, pair, req.Message)
	})
}

func (h *CrowdfundingHandler) HandleVote(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	token, ok := h.authToken(w, r, Vote, requestId)
	if !ok {
		return
	}
	pair, ok := h.pathAddress(w, r, "pair", Vote, requestId)
	if !ok {
		return
	}
	voting, ok := h.pathAddress(w, r, "voting", Vote, requestId)
	if !ok {
		return
	}

	var req payload.VoteRequest
	if !h.decode(w, r, &req, Vote, requestId) {
		return
	}

	h.submit(w, r, Vote, token, requestId, func(ctx context.Context, token string) (ethereum.TxReceipt, error) {
		return h.crowdfunding.Vote(ctx, token, pair, voting, req.Yes())
	})
}

// submit runs a contract write and reports the receipt. A failed write keeps
// the receipt when a transaction was mined.
func (h *CrowdfundingHandler) submit(w http.ResponseWriter, r *http.Request, route, token, requestId string, call writeCall) {
	state := view.Must(view.Ready(ethereum.TxReceipt{}).Submit())

	receipt, err := call(r.Context(), token)
	if err != nil {
		message := "Transaction failed"
		httpCode := http.StatusBadGateway
		if errors.Is(err, core.ErrUnauthorized) {
			message = "Authentication failed"
			httpCode = http.StatusUnauthorized
		}

		state = view.Must(state.Fail(err.Error()))
		resp := stateResponse(state, message)
		if receipt.TransactionHash != "" {
			resp.Data = receipt
		}
		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("contract write failed",
			"error", err,
			"transaction", receipt.TransactionHash,
			"handler", route,
			"request_id", requestId)
		return
	}

	h.logs.Infow("contract write confirmed",
		"transaction", receipt.TransactionHash,
		"block", receipt.BlockNumber,
		"handler", route,
		"request_id", requestId)

	state = view.Must(state.Submitted(receipt))
	h.respond(w, stateResponse(state, "Transaction confirmed"), http.StatusOK, requestId)
}

func (h *CrowdfundingHandler) authToken(w http.ResponseWriter, r *http.Request, route, requestId string) (string, bool) {
	authToken := r.Header.Get(authHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   authHeader + " header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", route, "request_id", requestId)
		return "", false
	}
	return authToken, true
}

func (h *CrowdfundingHandler) pathAddress(w http.ResponseWriter, r *http.Request, name, route, requestId string) (common.Address, bool) {
	address, err := payload.ParseAddress(r.PathValue(name))
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("invalid %s: %w", name, err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse path address",
			"error", err,
			"param", name,
			"handler", route,
			"request_id", requestId)
		return common.Address{}, false
	}
	return address, true
}

func (h *CrowdfundingHandler) decode(w http.ResponseWriter, r *http.Request, object any, route, requestId string) bool {
	if err := h.requestValidator.DecodeJSONPayload(r, object); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return false
	}
	return true
}

func (h *CrowdfundingHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}
