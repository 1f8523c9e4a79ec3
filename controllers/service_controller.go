package controllers

import (
	"github.com/gin-gonic/gin"
	"motolog-api/services"
	"motolog-api/utils"
)

type ServiceController struct {
	services *services.ServiceRecordService
}

func NewServiceController(serviceRecords *services.ServiceRecordService) *ServiceController {
	return &ServiceController{services: serviceRecords}
}

func (sc *ServiceController) GetServices(c *gin.Context) {
	list, err := sc.services.List(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err, "Service not found", "Failed to fetch services")
		return
	}

	utils.SendOK(c, list)
}

func (sc *ServiceController) GetService(c *gin.Context) {
	service, err := sc.services.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Service not found", "Failed to fetch service")
		return
	}

	utils.SendOK(c, service)
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	body, ok := bindPayload(c)
	if !ok {
		return
	}

	service, err := sc.services.Create(c.Request.Context(), ownerID(c), body)
	if err != nil {
		respondError(c, err, "Service not found", "Failed to create service")
		return
	}

	utils.SendCreated(c, service)
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	body, ok := bindPayload(c)
	if !ok {
		return
	}

	service, err := sc.services.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		respondError(c, err, "Service not found", "Failed to update service")
		return
	}

	utils.SendOK(c, service)
}

func (sc *ServiceController) DeleteService(c *gin.Context) {
	if err := sc.services.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Service not found", "Failed to delete service")
		return
	}

	utils.SendMessage(c, "Service deleted successfully")
}
