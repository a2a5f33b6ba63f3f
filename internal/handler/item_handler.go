package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"auction-admin/internal/models"
	"auction-admin/internal/repository"
	"auction-admin/internal/session"
	"auction-admin/pkg/logger"
)

type ItemHandler struct {
	itemRepo    *repository.ItemRepository
	auctionRepo *repository.AuctionRepository
	sessions    *session.Manager
}

func NewItemHandler(itemRepo *repository.ItemRepository, auctionRepo *repository.AuctionRepository, sessions *session.Manager) *ItemHandler {
	return &ItemHandler{
		itemRepo:    itemRepo,
		auctionRepo: auctionRepo,
		sessions:    sessions,
	}
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.itemRepo.GetAll()
	if err != nil {
		logger.Log.Error("Failed to list items", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load items")
		return
	}
	render(c, h.sessions, "items.html", gin.H{"Items": items})
}

func (h *ItemHandler) AddForm(c *gin.Context) {
	auctions, err := h.auctionRepo.GetAll()
	if err != nil {
		logger.Log.Error("Failed to list auctions", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load form")
		return
	}
	render(c, h.sessions, "item_form.html", gin.H{"Auctions": auctions})
}

func (h *ItemHandler) Add(c *gin.Context) {
	item := &models.AuctionItem{}
	if !h.applyForm(c, item) {
		redirect(c, "/add_item")
		return
	}

	if err := h.itemRepo.Create(item); err != nil {
		logger.Log.Error("Failed to create item", zap.Error(err))
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not create item")
	}

	redirect(c, "/items")
}

func (h *ItemHandler) EditForm(c *gin.Context) {
	item := h.fetch(c)
	if item == nil {
		return
	}

	auctions, err := h.auctionRepo.GetAll()
	if err != nil {
		logger.Log.Error("Failed to list auctions", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to load form")
		return
	}

	render(c, h.sessions, "item_form.html", gin.H{
		"Item":     item,
		"Auctions": auctions,
	})
}

// Edit overwrites every editable field unconditionally.
func (h *ItemHandler) Edit(c *gin.Context) {
	item := h.fetch(c)
	if item == nil {
		return
	}

	if !h.applyForm(c, item) {
		redirect(c, "/edit_item/"+c.Param("id"))
		return
	}

	if err := h.itemRepo.Update(item); err != nil {
		logger.Log.Error("Failed to update item",
			zap.Uint("item_id", item.ID),
			zap.Error(err),
		)
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not update item")
	}

	redirect(c, "/items")
}

func (h *ItemHandler) Delete(c *gin.Context) {
	item := h.fetch(c)
	if item == nil {
		return
	}

	if err := h.itemRepo.Delete(item.ID); err != nil {
		logger.Log.Error("Failed to delete item",
			zap.Uint("item_id", item.ID),
			zap.Error(err),
		)
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not delete item")
	}

	redirect(c, "/items")
}

func (h *ItemHandler) applyForm(c *gin.Context, item *models.AuctionItem) bool {
	basePrice, err := strconv.ParseFloat(c.PostForm("base_price"), 64)
	if err != nil {
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Invalid base price")
		return false
	}
	auctionID, err := strconv.ParseUint(c.PostForm("auction_id"), 10, 32)
	if err != nil {
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Invalid auction")
		return false
	}

	item.Name = c.PostForm("name")
	item.Description = c.PostForm("description")
	item.BasePrice = basePrice
	item.ImageURL = c.PostForm("image_url")
	item.AuctionID = uint(auctionID)
	item.Status = models.ItemStatus(c.PostForm("status"))
	return true
}

func (h *ItemHandler) fetch(c *gin.Context) *models.AuctionItem {
	id, err := parseID(c)
	if err != nil {
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Item not found")
		redirect(c, "/items")
		return nil
	}

	item, err := h.itemRepo.GetByID(id)
	if err != nil {
		logger.Log.Error("Failed to fetch item", zap.Uint("item_id", id), zap.Error(err))
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Could not load item")
		redirect(c, "/items")
		return nil
	}
	if item == nil {
		h.sessions.AddFlash(c.Writer, c.Request, "danger", "Item not found")
		redirect(c, "/items")
		return nil
	}

	return item
}
