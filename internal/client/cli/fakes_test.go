package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/recipekeeper/internal/client/client"
	"github.com/dmitrijs2005/recipekeeper/internal/client/config"
	"github.com/dmitrijs2005/recipekeeper/internal/client/models"
	"github.com/dmitrijs2005/recipekeeper/internal/logging"
)

type fakeClient struct {
	mu sync.Mutex

	token string

	regUser string
	regPass []byte
	regErr  error

	loginUser string
	loginPass []byte
	loginErr  error

	added  []models.Recipe
	addErr error

	items     []models.Recipe
	listErr   error
	searchMax int

	pingErr   error
	pingCalls int
	closed    bool
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Register(_ context.Context, user string, pass []byte) error {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regErr
}

func (f *fakeClient) Login(_ context.Context, user string, pass []byte) error {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.token = "token-" + user
	return nil
}

func (f *fakeClient) Logout()          { f.token = "" }
func (f *fakeClient) IsLoggedIn() bool { return f.token != "" }

func (f *fakeClient) AddRecipe(_ context.Context, name string, calories int) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, models.Recipe{Name: name, Calories: calories})
	return nil
}

func (f *fakeClient) ListRecipes(context.Context) ([]models.Recipe, error) {
	return f.items, f.listErr
}

func (f *fakeClient) SearchRecipes(_ context.Context, maxCalories int) ([]models.Recipe, error) {
	f.searchMax = maxCalories
	var out []models.Recipe
	for _, r := range f.items {
		if r.Calories <= maxCalories {
			out = append(out, r)
		}
	}
	return out, f.listErr
}

func (f *fakeClient) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingCalls++
	return f.pingErr
}

func (f *fakeClient) setPingErr(err error) {
	f.mu.Lock()
	f.pingErr = err
	f.mu.Unlock()
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func newTestApp(t *testing.T, fc *fakeClient, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a := NewApp(&config.Config{OnlineCheckInterval: time.Hour}, fc, logging.Nop{})
	a.reader = bufio.NewReader(strings.NewReader(input))
	a.out = &out
	return a, &out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}
