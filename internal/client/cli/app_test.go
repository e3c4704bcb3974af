package cli

import (
	"bufio"
	"context"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskboard/internal/client/api"
	"taskboard/internal/client/session"
	"taskboard/internal/core/auth"
	"taskboard/internal/core/config"
	"taskboard/internal/repo"
	"taskboard/internal/service"
	"taskboard/internal/transport/http/handler"
	"taskboard/internal/transport/http/router"
)

// startServer runs the real API engine over in-memory repos.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "taskboard-test", TTL: time.Hour}
	users := repo.NewMemUserRepo()
	tasks := repo.NewMemTaskRepo()
	e := router.NewAPIEngine(zap.NewNop(),
		config.HTTP{RateRPS: 1000, RateBurst: 1000, MaxConcurrent: 100, MaxBodyBytes: 1 << 20, RequestTimeout: 5},
		jwter,
		handler.NewAuthHandler(service.NewAuthService(users, jwter)),
		handler.NewTaskHandler(service.NewTaskService(tasks)),
		handler.NewUserHandler(service.NewUserService(users)),
	)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

// scriptInput feeds canned answers through the prompt seams.
func scriptInput(t *testing.T, answers []string, password string) {
	t.Helper()
	i := 0
	origText, origPw := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		ans := answers[i]
		i++
		return ans, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })
}

func newTestApp(t *testing.T, srv *httptest.Server, sessionPath string) *App {
	t.Helper()
	app, err := NewApp(api.New(srv.URL), session.NewStore(sessionPath))
	require.NoError(t, err)
	return app
}

func TestRegisterAddDoneFlow(t *testing.T) {
	srv := startServer(t)
	sessionPath := filepath.Join(t.TempDir(), "session.json")
	out := capturePrintln(t)
	ctx := context.Background()

	app := newTestApp(t, srv, sessionPath)
	require.False(t, app.isLoggedIn())

	// register: name, email answers + password seam
	scriptInput(t, []string{"Ann", "ann@x.com"}, "secret1")
	require.NoError(t, app.Register(ctx))
	require.True(t, app.isLoggedIn())
	assert.Equal(t, "ann@x.com", app.status())

	// add a task: title, description answers
	scriptInput(t, []string{"Buy milk", "two liters"}, "")
	require.NoError(t, app.Add(ctx))

	require.NoError(t, app.List(ctx, nil))
	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Buy milk")
	assert.Contains(t, joined, "[ ]")

	// pull the id out of the created task via the client
	tasks, err := app.client.Tasks(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	require.NoError(t, app.Done(ctx, []string{tasks[0].ID}))
	tasks, err = app.client.Tasks(ctx, "", "completed")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
}

func TestSessionSurvivesRestart(t *testing.T) {
	srv := startServer(t)
	sessionPath := filepath.Join(t.TempDir(), "session.json")
	capturePrintln(t)
	ctx := context.Background()

	app := newTestApp(t, srv, sessionPath)
	scriptInput(t, []string{"Ann", "ann@x.com"}, "secret1")
	require.NoError(t, app.Register(ctx))

	// a fresh App against the same session file is already logged in
	app2 := newTestApp(t, srv, sessionPath)
	require.True(t, app2.isLoggedIn())
	require.NoError(t, app2.Whoami(ctx))

	require.NoError(t, app2.Logout(ctx))
	app3 := newTestApp(t, srv, sessionPath)
	assert.False(t, app3.isLoggedIn())
}

func TestLoginFailureKeepsLoggedOut(t *testing.T) {
	srv := startServer(t)
	sessionPath := filepath.Join(t.TempDir(), "session.json")
	out := capturePrintln(t)
	ctx := context.Background()

	app := newTestApp(t, srv, sessionPath)
	scriptInput(t, []string{"ghost@x.com"}, "whatever")
	require.Error(t, app.Login(ctx))
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, strings.Join(*out, "\n"), "Invalid email or password")
}

func TestRegisterRejectsBadEmailBeforeRoundTrip(t *testing.T) {
	srv := startServer(t)
	sessionPath := filepath.Join(t.TempDir(), "session.json")
	out := capturePrintln(t)

	app := newTestApp(t, srv, sessionPath)
	scriptInput(t, []string{"Ann", "not-an-email"}, "secret1")
	require.NoError(t, app.Register(context.Background())) // handled locally, not an error
	assert.False(t, app.isLoggedIn())
	assert.Contains(t, strings.Join(*out, "\n"), "Please enter a valid email address")
}

func TestRenameSyncsCachedSession(t *testing.T) {
	srv := startServer(t)
	sessionPath := filepath.Join(t.TempDir(), "session.json")
	capturePrintln(t)
	ctx := context.Background()

	app := newTestApp(t, srv, sessionPath)
	scriptInput(t, []string{"Ann", "ann@x.com"}, "secret1")
	require.NoError(t, app.Register(ctx))

	scriptInput(t, []string{"Ann Smith"}, "")
	require.NoError(t, app.Rename(ctx))
	assert.Equal(t, "Ann Smith", app.session.User.Name)

	sess, err := session.NewStore(sessionPath).Load()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "Ann Smith", sess.User.Name)
}
