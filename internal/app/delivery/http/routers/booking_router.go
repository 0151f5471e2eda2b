package routers

import (
	"fmt"

	"booking-service/internal/app/delivery/http/controllers"
	"booking-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

var slotPath = fmt.Sprintf("/slots/{%s}", constvars.URLParamSlotID)

func attachBookingRoutes(router chi.Router, bookingController *controllers.BookingController) {
	router.Get("/categories", bookingController.ListCategories)
	router.Get("/calendar", bookingController.GetCalendar)
	router.Get("/calendar.ics", bookingController.ExportCalendar)
	router.Get("/preferences", bookingController.GetPreferences)
	router.Put("/preferences", bookingController.UpdatePreferences)
	router.Post(slotPath+"/book", bookingController.BookSlot)
	router.Post(slotPath+"/unsubscribe", bookingController.UnsubscribeSlot)
}
