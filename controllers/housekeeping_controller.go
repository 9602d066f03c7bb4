package controllers

import (
	"net/http"
	"strconv"

	"hotel-pms-backend/models"
	"hotel-pms-backend/services"
	"hotel-pms-backend/utils"

	"github.com/gin-gonic/gin"
)

type HousekeepingController struct {
	TaskSvc *services.HousekeepingService
}

func NewHousekeepingController(svc *services.HousekeepingService) *HousekeepingController {
	return &HousekeepingController{TaskSvc: svc}
}

// GET /api/housekeeping?room_id=3&status=pending
func (hc *HousekeepingController) GetTasks(c *gin.Context) {
	var roomID uint
	if raw := c.Query("room_id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid room_id")
			return
		}
		roomID = uint(n)
	}

	tasks, err := hc.TaskSvc.GetAll(roomID, models.TaskStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GET /api/housekeeping/:id
func (hc *HousekeepingController) GetTaskByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	task, err := hc.TaskSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// POST /api/housekeeping
func (hc *HousekeepingController) CreateTask(c *gin.Context) {
	var task models.HousekeepingTask
	if err := c.ShouldBindJSON(&task); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if err := hc.TaskSvc.Create(&task); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

type advanceTaskPayload struct {
	Status models.TaskStatus `json:"status" binding:"required"`
}

// POST /api/housekeeping/:id/advance
func (hc *HousekeepingController) AdvanceTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload advanceTaskPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	task, err := hc.TaskSvc.Advance(id, payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// PUT /api/housekeeping/:id
func (hc *HousekeepingController) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var patch models.HousekeepingTask
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	task, err := hc.TaskSvc.Update(id, &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DELETE /api/housekeeping/:id
func (hc *HousekeepingController) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := hc.TaskSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
