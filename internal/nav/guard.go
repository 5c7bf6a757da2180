package nav

import "github.com/lapiogga/clothing-opencode/internal/core/domain"

// Session is the slice of session state the guard consults.
type Session interface {
	IsLoggedIn() bool
	Role() domain.Role
}

// Decision is the guard's verdict for one navigation attempt. When Allowed
// is false, RedirectTo names the path the router should go to instead.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

var (
	proceed           = Decision{Allowed: true}
	redirectToLogin   = Decision{RedirectTo: LoginPath}
	redirectToLanding = Decision{RedirectTo: DashboardPath}
)

// Guard evaluates navigation attempts against the route table and the
// current session. Role checks are exact set membership.
type Guard struct {
	session Session
	routes  map[string]Route
	allowed map[string]map[domain.Role]struct{}
}

// NewGuard builds a Guard over the given route table.
func NewGuard(session Session, routes []Route) *Guard {
	g := &Guard{
		session: session,
		routes:  make(map[string]Route, len(routes)),
		allowed: make(map[string]map[domain.Role]struct{}),
	}
	for _, r := range routes {
		g.routes[r.Path] = r
		if len(r.Roles) > 0 {
			set := make(map[domain.Role]struct{}, len(r.Roles))
			for _, role := range r.Roles {
				set[role] = struct{}{}
			}
			g.allowed[r.Path] = set
		}
	}
	return g
}

// Decide evaluates a navigation to path. Checks run in order:
//
//  1. target requires auth and the session is anonymous → login
//  2. target is the login route and the session is authenticated → landing
//  3. target declares roles and the current role is not a member → landing
//  4. otherwise → proceed
//
// An unknown path falls through to the landing redirect, matching the
// router's catch-all.
func (g *Guard) Decide(path string) Decision {
	route, known := g.routes[path]
	if !known {
		return redirectToLanding
	}

	loggedIn := g.session.IsLoggedIn()

	if route.RequiresAuth && !loggedIn {
		return redirectToLogin
	}
	if route.Path == LoginPath && loggedIn {
		return redirectToLanding
	}
	if set, ok := g.allowed[route.Path]; ok {
		if _, member := set[g.session.Role()]; !member {
			return redirectToLanding
		}
	}
	return proceed
}

// Lookup returns the route registered at path.
func (g *Guard) Lookup(path string) (Route, bool) {
	r, ok := g.routes[path]
	return r, ok
}
