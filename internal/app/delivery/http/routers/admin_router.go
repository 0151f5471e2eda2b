package routers

import (
	"booking-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// attachAdminRoutes needs only a session. The booking API decides whether
// the caller may use them.
func attachAdminRoutes(router chi.Router, adminController *controllers.AdminController) {
	router.Get("/calendar", adminController.GetCalendar)
	router.Get("/users", adminController.ListUsers)
	router.Post("/slots", adminController.CreateSlot)
	router.Patch(slotPath, adminController.UpdateSlot)
	router.Delete(slotPath, adminController.DeleteSlot)
	router.Post(slotPath+"/assign", adminController.AssignSlot)
	router.Post(slotPath+"/unassign", adminController.UnassignSlot)
}
