package routes

import (
	"clinic-connect/authentication"
	"clinic-connect/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes() *gin.Engine {
	r := gin.Default()

	//user routers
	r.POST("/users/login", controllers.PatientLogin)
	r.POST("/users/signup", controllers.PatientSignup)
	r.POST("/users/verify", controllers.UserOtpVerify)
	r.GET("/pay/invoice/online", controllers.MakePaymentOnline)
	r.GET("/payment/success", controllers.SuccessPage)

	user := r.Group("/user")
	user.Use(authentication.PatientAuthMiddleware())
	{
		user.GET("/doctors/:doctor_id/available-slots", controllers.GetAvailableTimeSlots)
		user.GET("/doctors/:doctor_id/calendar", controllers.GetDoctorCalendar)
		user.GET("/logout", controllers.PatientLogout)
		user.GET("/doctor/:specialization", controllers.GetDoctorBySpeciality)
		user.POST("/book/appointment", controllers.BookAppointment)
		user.POST("/pay/invoice/offline", controllers.PayInvoiceOffline)
		user.GET("/wallet/:userid", controllers.Wallet)
		user.POST("/cancel/appointment/:id", controllers.CancelAppointment)
		user.GET("/appointment/history/:id", controllers.GetAppointmentHistory)
		user.POST("/pay/invoice/wallet", controllers.PayFromWallet)
		user.GET("/reports/:id", controllers.GetPatientReports)
	}

	//Admin routes
	r.POST("/admin/login", controllers.AdminLogin)

	admin := r.Group("/admin")
	admin.Use(authentication.AdminAuthMiddleware())
	{
		admin.POST("/logout", controllers.AdminLogout)
		admin.GET("/view/clinics", controllers.ViewClinics)
		admin.POST("/add/clinic", controllers.AddClinic)
		admin.GET("/search/clinic/:id", controllers.SearchClinic)
		admin.PATCH("/update/clinic/:id", controllers.UpdateClinic)
		admin.POST("/remove/clinic/:id", controllers.RemoveClinic)
		admin.GET("/view/deleted/clinics", controllers.ViewDeletedClinics)
		admin.GET("/view/active/clinics", controllers.ViewActiveClinics)
		admin.POST("/verify/doctor/:id", controllers.UpdateDoctor)
		admin.GET("/view/doctors", controllers.ViewDoctors)
		admin.GET("/view/verified/doctors", controllers.ViewVerifiedDoctors)
		admin.GET("/view/doctor/:id", controllers.GetDoctorByID)
		admin.GET("/search/doctor", controllers.GetDoctorByName)
		admin.GET("/view/doctors/:specialization", controllers.GetDoctorBySpeciality)
		admin.GET("/view/notVerified/doctors", controllers.ViewNotVerifiedDoctors)
		admin.GET("/view/verified/approved/doctors", controllers.ViewVerifiedApprovedDoctors)
		admin.GET("/view/verified/notApproved/doctors", controllers.ViewVerifiedNotApprovedDoctors)
		admin.POST("/update/availability", controllers.SaveAvailability)
		admin.GET("/doctor/:doctor_id/calendar", controllers.GetDoctorCalendar)
		admin.GET("/view/invoice", controllers.GetInvoice)
		admin.GET("/total/appointments", controllers.GetBookingStatusCounts)
		admin.GET("/doctor-wise/bookings", controllers.GetDoctorWiseBookings)
		admin.GET("/department-wise/bookings", controllers.GetDepartmentWiseBookings)
		admin.GET("/mode-wise/bookings", controllers.GetModeWiseBookings)
		admin.GET("/total/revenue", controllers.GetTotalRevenue)
		admin.GET("/revenue/startdate", controllers.GetSpecificRevenue)
		admin.GET("/export/appointments", controllers.ExportAppointmentsCSV)
		admin.POST("/approve/withdrawal/:id", controllers.ApproveWithdrawal)
		admin.DELETE("/remove/report/:id", controllers.DeleteReport)
	}

	//Doctor routes
	r.POST("doctor/signup", controllers.Signup)
	r.POST("doctor/verify", controllers.VerifyOTP)
	r.GET("view/clinics", controllers.ViewClinic)
	r.POST("/doctor/login", controllers.DoctorLogin)

	doctors := r.Group("/doctor")
	doctors.Use(authentication.DoctorAuthMiddleware())
	{
		doctors.POST("/update/availability", controllers.SaveAvailability)
		doctors.GET("/calendar/:doctor_id", controllers.GetDoctorCalendar)
		doctors.GET("/logout", controllers.DoctorLogout)
		doctors.POST("/add/prescription", controllers.AddPrescription)
		doctors.POST("/cancel/appointment/:id", controllers.CancelAppointment)
		doctors.GET("/appointment/history/:id", controllers.GetAppHistory)
		doctors.GET("/appointment/:doctor_id/date", controllers.GetDoctorAppointmentsByDate)
		doctors.POST("/add/report", controllers.AddReport)
		doctors.GET("/reports", controllers.GetDoctorReports)
		doctors.PATCH("/update/report/:id", controllers.UpdateReport)
		doctors.POST("/request/withdrawal", controllers.RequestWithdrawal)
		doctors.GET("/withdrawals", controllers.WithdrawalHistory)
	}

	return r
}
