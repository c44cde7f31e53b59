package constants

// Static route constants
const (
	PublicRoute  = "/"
	LoginRoute   = "/login"
	LogoutRoute  = "/logout"
	AdminRoute   = "/admin"
	UploadsRoute = "/uploads"
)
