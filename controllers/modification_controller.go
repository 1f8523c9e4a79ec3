package controllers

import (
	"github.com/gin-gonic/gin"
	"motolog-api/services"
	"motolog-api/utils"
)

type ModificationController struct {
	modifications *services.ModificationService
}

func NewModificationController(modifications *services.ModificationService) *ModificationController {
	return &ModificationController{modifications: modifications}
}

func (mc *ModificationController) GetModifications(c *gin.Context) {
	list, err := mc.modifications.List(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err, "Modification not found", "Failed to fetch modifications")
		return
	}

	utils.SendOK(c, list)
}

func (mc *ModificationController) GetModification(c *gin.Context) {
	modification, err := mc.modifications.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Modification not found", "Failed to fetch modification")
		return
	}

	utils.SendOK(c, modification)
}

func (mc *ModificationController) CreateModification(c *gin.Context) {
	body, ok := bindPayload(c)
	if !ok {
		return
	}

	modification, err := mc.modifications.Create(c.Request.Context(), ownerID(c), body)
	if err != nil {
		respondError(c, err, "Modification not found", "Failed to create modification")
		return
	}

	utils.SendCreated(c, modification)
}

func (mc *ModificationController) UpdateModification(c *gin.Context) {
	body, ok := bindPayload(c)
	if !ok {
		return
	}

	modification, err := mc.modifications.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		respondError(c, err, "Modification not found", "Failed to update modification")
		return
	}

	utils.SendOK(c, modification)
}

func (mc *ModificationController) DeleteModification(c *gin.Context) {
	if err := mc.modifications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Modification not found", "Failed to delete modification")
		return
	}

	utils.SendMessage(c, "Modification deleted successfully")
}
