package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/hyblock/hyblock-backend/internal/clients/xrplclient"
	"github.com/hyblock/hyblock-backend/internal/types"
)

const noNftsMessage = "No NFTs found in the wallet."

type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// nftEntry renders a missing enrichment as a literal {} instead of null, so
// the array keeps one entry per owned token.
type nftEntry struct {
	Nft *types.EnrichedNft
}

func (e nftEntry) MarshalJSON() ([]byte, error) {
	if e.Nft == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(e.Nft)
}

type nftsResponse struct {
	Nfts []nftEntry `json:"nfts"`
}

type resolveBetRequest struct {
	UserWalletSeed string `json:"user_wallet_seed" validate:"required"`
	BetAmount      int64  `json:"bet_amount" validate:"gt=0"`
	UserWon        *bool  `json:"user_won" validate:"required"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, statusCode int, err error) {
	writeJSON(w, statusCode, errorResponse{Detail: err.Error()})
}

func (s *Server) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}

func (s *Server) handleGetNftsList(w http.ResponseWriter, r *http.Request) {
	walletAddress := chi.URLParam(r, "wallet_address")

	records, err := s.xrpl.GetAccountNfts(r.Context(), walletAddress)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to retrieve NFTs")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if records == nil {
		records = []xrplclient.NftRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleGetNftData(w http.ResponseWriter, r *http.Request) {
	tokenID := chi.URLParam(r, "nft_token")

	nft, err := s.service.FetchFullNftData(r.Context(), tokenID)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to fetch NFT data")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if nft == nil {
		writeJSON(w, http.StatusOK, struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, nft)
}

func (s *Server) handleGetNfts(w http.ResponseWriter, r *http.Request) {
	walletAddress := chi.URLParam(r, "wallet_address")

	nfts, err := s.service.GetEnrichedNfts(r.Context(), walletAddress)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to enrich wallet NFTs")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	// Empty wallet and populated wallet have distinct response shapes.
	if len(nfts) == 0 {
		writeJSON(w, http.StatusOK, messageResponse{Message: noNftsMessage})
		return
	}

	entries := make([]nftEntry, len(nfts))
	for i, nft := range nfts {
		entries[i] = nftEntry{Nft: nft}
	}
	writeJSON(w, http.StatusOK, nftsResponse{Nfts: entries})
}

func (s *Server) handleResolveBet(w http.ResponseWriter, r *http.Request) {
	var req resolveBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.service.ResolveBet(r.Context(), req.UserWalletSeed, req.BetAmount, *req.UserWon)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to resolve bet")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
