// File: /controllers/motorcycle_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"motolog-api/services"
	"motolog-api/utils"
)

type MotorcycleController struct {
	garage *services.GarageService
}

func NewMotorcycleController(garage *services.GarageService) *MotorcycleController {
	return &MotorcycleController{garage: garage}
}

func (mc *MotorcycleController) GetMotorcycle(c *gin.Context) {
	motorcycle, err := mc.garage.GetMotorcycle(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err, "Motorcycle not found", "Failed to fetch motorcycle")
		return
	}

	utils.SendOK(c, motorcycle)
}

// UpdateMotorcycle only touches licensePlate and currentKilometers.
func (mc *MotorcycleController) UpdateMotorcycle(c *gin.Context) {
	body, ok := bindPayload(c)
	if !ok {
		return
	}

	motorcycle, err := mc.garage.UpdateMotorcycle(c.Request.Context(), ownerID(c), body)
	if err != nil {
		respondError(c, err, "Motorcycle not found", "Failed to update motorcycle")
		return
	}

	utils.SendOK(c, motorcycle)
}
