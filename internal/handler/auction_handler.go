package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"auction-admin/internal/models"
	"auction-admin/internal/repository"
	"auction-admin/internal/session"
	"auction-admin/pkg/logger"
)

const dateLayout = "2006-01-02"

type AuctionHandler struct {
	auctionRepo  *repository.AuctionRepository
	categoryRepo *repository.CategoryRepository
	sessions     *session.Manager
}

func NewAuctionHandler(auctionRepo *repository.AuctionRepository, categoryRepo *repository.CategoryRepository, sessions *session.Manager) *AuctionHandler {
	return &AuctionHandler{
		auctionRepo:  auctionRepo,
		categoryRepo: categoryRepo,
		sessions:     sessions,
	}
}

func (h *AuctionHandler) List(c *gin.Context) {
	auctions, err := h.auctionRepo.GetAll()
	if err != nil {
		logger.Log.Error("Failed to list auctions", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load auctions")
		return
	}
	render(c, h.sessions, "auctions.html", gin.H{"Auctions": auctions})
}

func (h *AuctionHandler) CreateForm(c *gin.Context) {
	categories, err := h.categoryRepo.GetAll()
	if err != nil {
		logger.Log.Error("Failed to list categories", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load form")
		return
	}
	render(c, h.sessions, "auction_form.html", gin.H{"Categories": categories})
}

func (h *AuctionHandler) Create(c *gin.Context) {
	auction := &models.Auction{}
	if !h.applyForm(c, auction) {
		redirect(c, "/create_auction")
		return
	}

	if err := h.auctionRepo.Create(auction); err != nil {
		logger.Log.Error("Failed to create auction", zap.Error(err))
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not create auction")
	}

	redirect(c, "/auctions")
}

func (h *AuctionHandler) EditForm(c *gin.Context) {
	auction := h.fetch(c)
	if auction == nil {
		return
	}

	categories, err := h.categoryRepo.GetAll()
	if err != nil {
		logger.Log.Error("Failed to list categories", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load form")
		return
	}

	render(c, h.sessions, "auction_form.html", gin.H{
		"Auction":    auction,
		"Categories": categories,
	})
}

// Edit overwrites every editable field unconditionally.
func (h *AuctionHandler) Edit(c *gin.Context) {
	auction := h.fetch(c)
	if auction == nil {
		return
	}

	if !h.applyForm(c, auction) {
		redirect(c, "/edit_auction/"+c.Param("id"))
		return
	}

	if err := h.auctionRepo.Update(auction); err != nil {
		logger.Log.Error("Failed to update auction",
			zap.Uint("auction_id", auction.ID),
			zap.Error(err),
		)
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not update auction")
	}

	redirect(c, "/auctions")
}

func (h *AuctionHandler) Delete(c *gin.Context) {
	auction := h.fetch(c)
	if auction == nil {
		return
	}

	if err := h.auctionRepo.Delete(auction.ID); err != nil {
		logger.Log.Error("Failed to delete auction",
			zap.Uint("auction_id", auction.ID),
			zap.Error(err),
		)
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not delete auction")
	}

	redirect(c, "/auctions")
}

func (h *AuctionHandler) UpdateStatus(c *gin.Context) {
	auction := h.fetch(c)
	if auction == nil {
		return
	}

	if err := h.auctionRepo.UpdateStatus(auction.ID, c.PostForm("status")); err != nil {
		logger.Log.Error("Failed to update auction status",
			zap.Uint("auction_id", auction.ID),
			zap.Error(err),
		)
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not update auction status")
	}

	redirect(c, "/auctions")
}

// applyForm copies the submitted fields onto the auction. A bad date or
// category id flashes and reports false; nothing is persisted.
func (h *AuctionHandler) applyForm(c *gin.Context, auction *models.Auction) bool {
	startDate, err := time.Parse(dateLayout, c.PostForm("start_date"))
	if err != nil {
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Invalid start date")
		return false
	}
	endDate, err := time.Parse(dateLayout, c.PostForm("end_date"))
	if err != nil {
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Invalid end date")
		return false
	}
	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Invalid category")
		return false
	}

	auction.Title = c.PostForm("title")
	auction.Description = c.PostForm("description")
	auction.StartDate = startDate
	auction.EndDate = endDate
	auction.CategoryID = uint(categoryID)
	return true
}

func (h *AuctionHandler) fetch(c *gin.Context) *models.Auction {
	id, err := parseID(c)
	if err != nil {
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Auction not found")
		redirect(c, "/auctions")
		return nil
	}

	auction, err := h.auctionRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch auction", zap.Uint("auction_id", id), zap.Error(err))
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not load auction")
		redirect(c, "/auctions")
		return nil
	}
	if auction == nil {
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Auction not found")
		redirect(c, "/auctions")
		return nil
	}

	return auction
}
