package router

import "strings"

const (
	PathLogin     = "/login"
	PathRegister  = "/register"
	PathDashboard = "/dashboard"
)

// RouteMeta - правила входа на маршрут.
type RouteMeta struct {
	Path          string
	Name          string
	RequiresAuth  bool
	RequiresAdmin bool
}

// Routes - таблица маршрутов клиента, сегмент :id подставляется.
var Routes = []RouteMeta{
	{Path: PathLogin, Name: "Login"},
	{Path: PathRegister, Name: "Register"},
	{Path: PathDashboard, Name: "Dashboard", RequiresAuth: true},
	{Path: "/admin/users", Name: "UserManagement", RequiresAuth: true, RequiresAdmin: true},
	{Path: "/bagu", Name: "BaguHome"},
	{Path: "/bagu/bank/:id", Name: "BankDetail", RequiresAuth: true},
	{Path: "/bagu/question/:id", Name: "QuestionDetail"},
	{Path: "/bagu/search", Name: "QuestionSearch"},
	{Path: "/bagu/favourites", Name: "FavoriteList", RequiresAuth: true},
	{Path: "/admin/bagu", Name: "BaguManage", RequiresAuth: true, RequiresAdmin: true},
}

// Session - срез состояния сессии, достаточный для охраны маршрутов.
type Session interface {
	Token() string
	IsAdmin() bool
}

// FindRoute ищет маршрут по конкретному пути.
func FindRoute(path string) (RouteMeta, bool) {
	for _, route := range Routes {
		if matchPath(route.Path, path) {
			return route, true
		}
	}
	return RouteMeta{}, false
}

func matchPath(pattern, path string) bool {
	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")
	if len(patternParts) != len(pathParts) {
		return false
	}
	for i := range patternParts {
		if strings.HasPrefix(patternParts[i], ":") {
			continue
		}
		if patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}

// Guard - чистая функция от (маршрут, сессия). Возвращает путь
// перенаправления или пустую строку, если вход разрешён.
func Guard(to RouteMeta, session Session) string {
	loggedIn := session.Token() != ""

	if to.RequiresAuth && !loggedIn {
		return PathLogin
	}
	if to.RequiresAdmin && !session.IsAdmin() {
		return PathDashboard
	}
	if (to.Path == PathLogin || to.Path == PathRegister) && loggedIn {
		return PathDashboard
	}
	return ""
}
