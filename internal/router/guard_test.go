package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	token string
	admin bool
}

func (s fakeSession) Token() string { return s.token }
func (s fakeSession) IsAdmin() bool { return s.admin }

func TestGuard(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		session  fakeSession
		redirect string
	}{
		{
			name:     "аноним на публичный маршрут",
			path:     "/bagu",
			session:  fakeSession{},
			redirect: "",
		},
		{
			name:     "аноним на защищённый маршрут",
			path:     "/dashboard",
			session:  fakeSession{},
			redirect: PathLogin,
		},
		{
			name:     "аноним на детали банка",
			path:     "/bagu/bank/17",
			session:  fakeSession{},
			redirect: PathLogin,
		},
		{
			name:     "аноним на детали вопроса",
			path:     "/bagu/question/17",
			session:  fakeSession{},
			redirect: "",
		},
		{
			name:     "обычный пользователь в админку",
			path:     "/admin/users",
			session:  fakeSession{token: "t"},
			redirect: PathDashboard,
		},
		{
			name:     "администратор в админку",
			path:     "/admin/bagu",
			session:  fakeSession{token: "t", admin: true},
			redirect: "",
		},
		{
			name:     "вошедший пользователь на страницу входа",
			path:     PathLogin,
			session:  fakeSession{token: "t"},
			redirect: PathDashboard,
		},
		{
			name:     "вошедший пользователь на регистрацию",
			path:     PathRegister,
			session:  fakeSession{token: "t"},
			redirect: PathDashboard,
		},
		{
			name:     "вошедший пользователь в избранное",
			path:     "/bagu/favourites",
			session:  fakeSession{token: "t"},
			redirect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, ok := FindRoute(tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.redirect, Guard(route, tt.session))
		})
	}
}

func TestFindRoute(t *testing.T) {
	route, ok := FindRoute("/bagu/bank/123")
	require.True(t, ok)
	assert.Equal(t, "BankDetail", route.Name)

	route, ok = FindRoute("/bagu/question/9")
	require.True(t, ok)
	assert.Equal(t, "QuestionDetail", route.Name)

	_, ok = FindRoute("/bagu/bank/1/extra")
	assert.False(t, ok)

	_, ok = FindRoute("/nope")
	assert.False(t, ok)
}

func TestMatchPath(t *testing.T) {
	assert.True(t, matchPath("/bagu/bank/:id", "/bagu/bank/42"))
	assert.True(t, matchPath("/bagu", "/bagu/"))
	assert.False(t, matchPath("/bagu/bank/:id", "/bagu/bank"))
	assert.False(t, matchPath("/bagu/bank/:id", "/bagu/question/42"))
}
