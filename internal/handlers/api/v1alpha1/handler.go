// Package v1alpha1 exposes the adventure service over HTTP using gin.
// Handlers translate JSON requests into service inputs and map service
// errors onto HTTP status codes.
package v1alpha1

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	entities "github.com/questforge/adventure-api/internal/entities/adventure"
	"github.com/questforge/adventure-api/internal/errors"
	adventuresvc "github.com/questforge/adventure-api/internal/services/adventure"
)

// HandlerConfig holds the handler's dependencies
type HandlerConfig struct {
	AdventureService adventuresvc.Service
}

// Validate ensures all required dependencies are provided
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.AdventureService == nil {
		return errors.InvalidArgument("adventure service is required")
	}
	return nil
}

// Handler serves the v1alpha1 adventure API
type Handler struct {
	service adventuresvc.Service
}

// NewHandler creates a new v1alpha1 handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Handler{service: cfg.AdventureService}, nil
}

// RegisterRoutes mounts the v1alpha1 routes on the router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/classes", h.listClasses)
	rg.POST("/party-members", h.createPartyMember)

	rg.POST("/games", h.startAdventure)
	rg.GET("/games/:id", h.getGameState)
	rg.DELETE("/games/:id", h.deleteGameState)
	rg.GET("/sessions/:sessionId/games", h.listGameStatesBySession)
	rg.GET("/sessions/:sessionId/stories/:storyId/game", h.resumeAdventure)

	rg.POST("/games/:id/choices", h.recordChoice)
	rg.POST("/games/:id/visits", h.visitScenario)
	rg.POST("/games/:id/inventory", h.addInventoryItem)
	rg.DELETE("/games/:id/inventory/:itemId", h.removeInventoryItem)
	rg.PUT("/games/:id/stats/:name", h.updatePlayerStat)

	rg.PUT("/games/:id/party", h.setParty)
	rg.GET("/games/:id/party", h.getParty)
}

// writeError maps a service error onto an HTTP response body
func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	if status == 0 {
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"code", string(code),
			"error", err,
		)
	}

	body := gin.H{
		"code":    string(code),
		"message": errors.GetMessage(err),
	}
	var appErr *errors.Error
	if errors.As(err, &appErr) && len(appErr.Meta) > 0 {
		body["details"] = appErr.Meta
	}

	c.JSON(status, body)
}

type startAdventureRequest struct {
	SessionID   string `json:"sessionId" binding:"required"`
	StoryID     string `json:"storyId" binding:"required"`
	StartNodeID string `json:"startNodeId"`
}

func (h *Handler) startAdventure(c *gin.Context) {
	var req startAdventureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	out, err := h.service.StartAdventure(c.Request.Context(), &adventuresvc.StartAdventureInput{
		SessionID:   req.SessionID,
		StoryID:     req.StoryID,
		StartNodeID: req.StartNodeID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"gameState": out.Record})
}

func (h *Handler) resumeAdventure(c *gin.Context) {
	out, err := h.service.ResumeAdventure(c.Request.Context(), &adventuresvc.ResumeAdventureInput{
		SessionID: c.Param("sessionId"),
		StoryID:   c.Param("storyId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gameState": out.Record})
}

func (h *Handler) getGameState(c *gin.Context) {
	out, err := h.service.GetGameState(c.Request.Context(), &adventuresvc.GetGameStateInput{
		GameStateID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gameState": out.Record})
}

func (h *Handler) deleteGameState(c *gin.Context) {
	out, err := h.service.DeleteGameState(c.Request.Context(), &adventuresvc.DeleteGameStateInput{
		GameStateID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedId": out.GameStateID})
}

func (h *Handler) listGameStatesBySession(c *gin.Context) {
	out, err := h.service.ListGameStatesBySession(c.Request.Context(), &adventuresvc.ListGameStatesBySessionInput{
		SessionID: c.Param("sessionId"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	records := out.Records
	if records == nil {
		records = []*entities.GameStateRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"gameStates": records})
}

type recordChoiceRequest struct {
	NodeID     string `json:"nodeId" binding:"required"`
	ChoiceID   string `json:"choiceId" binding:"required"`
	ChoiceText string `json:"choiceText"`
	NextNodeID string `json:"nextNodeId" binding:"required"`
}

func (h *Handler) recordChoice(c *gin.Context) {
	var req recordChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	out, err := h.service.RecordChoice(c.Request.Context(), &adventuresvc.RecordChoiceInput{
		GameStateID: c.Param("id"),
		NodeID:      req.NodeID,
		ChoiceID:    req.ChoiceID,
		ChoiceText:  req.ChoiceText,
		NextNodeID:  req.NextNodeID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gameState": out.Record})
}

type visitScenarioRequest struct {
	ScenarioID string `json:"scenarioId" binding:"required"`
}

func (h *Handler) visitScenario(c *gin.Context) {
	var req visitScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	out, err := h.service.VisitScenario(c.Request.Context(), &adventuresvc.VisitScenarioInput{
		GameStateID: c.Param("id"),
		ScenarioID:  req.ScenarioID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gameState": out.Record})
}

type addInventoryItemRequest struct {
	ItemID      string `json:"itemId" binding:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity" binding:"required"`
}

func (h *Handler) addInventoryItem(c *gin.Context) {
	var req addInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	out, err := h.service.AddInventoryItem(c.Request.Context(), &adventuresvc.AddInventoryItemInput{
		GameStateID: c.Param("id"),
		ItemID:      req.ItemID,
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gameState": out.Record})
}

func (h *Handler) removeInventoryItem(c *gin.Context) {
	quantity := 1
	if q := c.Query("quantity"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil || parsed <= 0 {
			writeError(c, errors.InvalidArgument("quantity must be a positive integer"))
			return
		}
		quantity = parsed
	}

	out, err := h.service.RemoveInventoryItem(c.Request.Context(), &adventuresvc.RemoveInventoryItemInput{
		GameStateID: c.Param("id"),
		ItemID:      c.Param("itemId"),
		Quantity:    quantity,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gameState": out.Record})
}

type updatePlayerStatRequest struct {
	Value any `json:"value"`
}

func (h *Handler) updatePlayerStat(c *gin.Context) {
	var req updatePlayerStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	out, err := h.service.UpdatePlayerStat(c.Request.Context(), &adventuresvc.UpdatePlayerStatInput{
		GameStateID: c.Param("id"),
		Name:        c.Param("name"),
		Value:       req.Value,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"gameState": out.Record})
}

func (h *Handler) listClasses(c *gin.Context) {
	out, err := h.service.ListClasses(c.Request.Context(), &adventuresvc.ListClassesInput{})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"classes": out.Classes})
}

type createPartyMemberRequest struct {
	ClassID string `json:"classId" binding:"required"`
	Name    string `json:"name" binding:"required"`
}

func (h *Handler) createPartyMember(c *gin.Context) {
	var req createPartyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	out, err := h.service.CreatePartyMember(c.Request.Context(), &adventuresvc.CreatePartyMemberInput{
		ClassID: req.ClassID,
		Name:    req.Name,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": out.Member})
}

func (h *Handler) setParty(c *gin.Context) {
	var req entities.PartyConfiguration
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidArgumentf("invalid request body: %v", err))
		return
	}

	out, err := h.service.SetParty(c.Request.Context(), &adventuresvc.SetPartyInput{
		GameStateID: c.Param("id"),
		Party:       &req,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"gameState":  out.Record,
		"validation": out.Validation,
	})
}

func (h *Handler) getParty(c *gin.Context) {
	out, err := h.service.GetParty(c.Request.Context(), &adventuresvc.GetPartyInput{
		GameStateID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"party": out.Party})
}
