package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dental-clinic-server/internal/models"
	"dental-clinic-server/internal/schedule"
	"dental-clinic-server/internal/utils"
)

// StatsHandler serves dashboard aggregates.
type StatsHandler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(db *gorm.DB, log *zap.Logger) *StatsHandler {
	return &StatsHandler{DB: db, Log: log}
}

type statusCount struct {
	Status models.AppointmentStatus `json:"status"`
	Count  int64                    `json:"count"`
}

// GetDashboard returns the clinic dashboard aggregates: patient volume,
// today's schedule, upcoming load and appointment status breakdown.
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	today := schedule.DateOf(timeNow()).String()

	var totalPatients int64
	if err := h.DB.Model(&models.Patient{}).Count(&totalPatients).Error; err != nil {
		utils.InternalServerError(c, "Failed to count patients: "+err.Error())
		return
	}

	var totalAppointments int64
	if err := h.DB.Model(&models.Appointment{}).Count(&totalAppointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to count appointments: "+err.Error())
		return
	}

	var todayCount int64
	err := h.DB.Model(&models.Appointment{}).
		Where("date = ? AND status NOT IN ?", today,
			[]models.AppointmentStatus{models.StatusCancelled, models.StatusNoShow}).
		Count(&todayCount).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to count today's appointments: "+err.Error())
		return
	}

	var upcomingCount int64
	err = h.DB.Model(&models.Appointment{}).
		Where("date > ? AND status NOT IN ?", today,
			[]models.AppointmentStatus{models.StatusCancelled, models.StatusNoShow, models.StatusCompleted}).
		Count(&upcomingCount).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to count upcoming appointments: "+err.Error())
		return
	}

	var pendingRequests int64
	err = h.DB.Model(&models.Appointment{}).
		Where("status = ?", models.StatusRequested).
		Count(&pendingRequests).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to count pending requests: "+err.Error())
		return
	}

	var byStatus []statusCount
	err = h.DB.Model(&models.Appointment{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&byStatus).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to aggregate appointment statuses: "+err.Error())
		return
	}

	h.Log.Debug("dashboard computed",
		zap.Int64("patients", totalPatients),
		zap.Int64("appointments", totalAppointments))

	utils.Success(c, "Dashboard fetched successfully", gin.H{
		"totalPatients":        totalPatients,
		"totalAppointments":    totalAppointments,
		"appointmentsToday":    todayCount,
		"upcomingAppointments": upcomingCount,
		"pendingRequests":      pendingRequests,
		"appointmentsByStatus": byStatus,
	})
}
