package model

// Page names one screen of the frontend. Access is decided once at the
// routing boundary with Accessible, not inside each view.
type Page string

const (
	PageLogin    Page = "login"
	PageHome     Page = "home"
	PageStatus   Page = "status"
	PageAdmin    Page = "admin"
	PageVisiMisi Page = "visi-misi"
)

// Accessible reports whether an actor with the given role may open the
// page. An empty role is a guest.
func Accessible(p Page, role UserRole) bool {
	switch p {
	case PageLogin, PageHome, PageVisiMisi:
		return true
	case PageStatus:
		return role == RoleUser
	case PageAdmin:
		return role == RoleAdmin
	default:
		return false
	}
}
