package session

import "github.com/RIDSdiseno/beck-crm/models"

// Route identifies a feature view of the CRM.
type Route string

const (
	RouteLogin        Route = "/login"
	RouteDashboard    Route = "/dashboard"
	RouteSealRegistry Route = "/registro"
	RouteFoamJoints   Route = "/junta-espuma"
	RouteReports      Route = "/reportes"
	RouteQuotations   Route = "/cotizaciones"
	RouteSettings     Route = "/configuracion"
)

// routesByRole maps each role to the views it may open. Administrators see
// everything; field workers everything except settings; viewers only the
// read-only views.
var routesByRole = map[models.Role][]Route{
	models.RoleAdministrator: {
		RouteDashboard, RouteSealRegistry, RouteFoamJoints,
		RouteReports, RouteQuotations, RouteSettings,
	},
	models.RoleFieldWorker: {
		RouteDashboard, RouteSealRegistry, RouteFoamJoints,
		RouteReports, RouteQuotations,
	},
	models.RoleViewer: {
		RouteDashboard, RouteReports, RouteQuotations,
	},
}

// homeByRole is where an out-of-role access lands.
var homeByRole = map[models.Role]Route{
	models.RoleAdministrator: RouteDashboard,
	models.RoleFieldWorker:   RouteDashboard,
	models.RoleViewer:        RouteReports,
}

// RoutesFor lists the views a role may open, in sidebar order.
func RoutesFor(role models.Role) []Route {
	return routesByRole[role]
}

// HomeRoute is the role's designated landing view.
func HomeRoute(role models.Role) Route {
	if home, ok := homeByRole[role]; ok {
		return home
	}
	return RouteLogin
}

// CanAccess reports whether the role may open the route. Login is always
// reachable.
func CanAccess(role models.Role, route Route) bool {
	if route == RouteLogin {
		return true
	}
	for _, r := range routesByRole[role] {
		if r == route {
			return true
		}
	}
	return false
}

// Resolve decides where a navigation attempt lands: unauthenticated access
// to any gated route redirects to login; authenticated access outside the
// caller's role redirects to the role's home route.
func Resolve(user *AuthUser, route Route) Route {
	if user == nil {
		return RouteLogin
	}
	if CanAccess(user.Role, route) {
		return route
	}
	return HomeRoute(user.Role)
}
