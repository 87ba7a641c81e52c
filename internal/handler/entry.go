package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/michellecaii/Mood-tracker/internal/insight"
	"github.com/michellecaii/Mood-tracker/internal/models"
	"github.com/michellecaii/Mood-tracker/internal/store"
	"github.com/michellecaii/Mood-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EntryHandler serves the journal entry endpoints.
type EntryHandler struct {
	Store     *store.Store
	Generator insight.Generator
}

func NewEntryHandler(s *store.Store, g insight.Generator) *EntryHandler {
	return &EntryHandler{
		Store:     s,
		Generator: g,
	}
}

// ---------- request structures ----------

type createEntryReq struct {
	Emotion    string `json:"emotion" binding:"max=32"`
	Reflection string `json:"reflection"`
}

// ---------- create ----------

// CreateEntry saves a check-in and synchronously attaches its insight.
// Insight generation never fails (the generator falls back internally),
// so the response always carries a non-null insights object.
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req createEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	if err := util.ValidateReflection(req.Reflection); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "reflection text is required")
		return
	}
	req.Reflection = strings.TrimSpace(req.Reflection)

	entry, err := h.Store.CreateEntry(req.Emotion, req.Reflection)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create journal entry")
		return
	}

	generated := h.Generator.Generate(c.Request.Context(), entry.Reflection, entry.Emotion)
	if _, err := h.Store.CreateInsight(entry.ID, generated.Summary, generated.Themes); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create journal entry")
		return
	}

	items, err := h.Store.AttachInsights([]models.JournalEntry{*entry})
	if err != nil || len(items) == 0 {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create journal entry")
		return
	}

	util.Success(c, util.Response{
		"entry": items[0],
	})
}

// ---------- read ----------

// ListEntries returns all entries, or a filtered set via ?days=N or ?date=D.
// Each entry embeds its insights (null when absent).
func (h *EntryHandler) ListEntries(c *gin.Context) {
	daysStr := c.Query("days")
	dateStr := c.Query("date")

	var (
		entries []models.JournalEntry
		err     error
	)

	switch {
	case dateStr != "":
		if vErr := util.ValidateDate(dateStr); vErr != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date must be YYYY-MM-DD")
			return
		}
		entries, err = h.Store.GetEntriesByDate(dateStr)
	case daysStr != "":
		days, aErr := strconv.Atoi(daysStr)
		if aErr != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "days must be an integer")
			return
		}
		if vErr := util.ValidateDays(days); vErr != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "days out of range")
			return
		}
		entries, err = h.Store.GetRecentEntries(days)
	default:
		entries, err = h.Store.GetAllEntries()
	}

	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to fetch journal entries")
		return
	}

	items, err := h.Store.AttachInsights(entries)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to fetch journal entries")
		return
	}

	util.Success(c, util.Response{
		"entries": items,
	})
}

// GetEntry returns one entry with its embedded insight.
func (h *EntryHandler) GetEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entry, err := h.Store.GetEntryByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "entry not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to fetch journal entry")
		}
		return
	}

	items, err := h.Store.AttachInsights([]models.JournalEntry{*entry})
	if err != nil || len(items) == 0 {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to fetch journal entry")
		return
	}

	util.Success(c, util.Response{
		"entry": items[0],
	})
}

// ---------- delete ----------

// DeleteEntry removes an entry; its insight cascades away with it.
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Store.DeleteEntry(id); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete journal entry")
		return
	}

	util.Success(c, util.Response{
		"message": "entry deleted",
	})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid entry id")
		return 0, false
	}
	return uint(id), true
}
