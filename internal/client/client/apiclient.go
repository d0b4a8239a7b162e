package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/recipekeeper/internal/client/models"
	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type APIClient struct {
	baseURL     string
	http        *http.Client
	conn        *grpc.ClientConn
	health      healthpb.HealthClient
	accessToken string
}

// NewAPIClient prepares a client for the API at baseURL and the gRPC health
// endpoint at healthAddr. No connection is made until the first call.
func NewAPIClient(baseURL, healthAddr string, timeout time.Duration) (*APIClient, error) {
	conn, err := grpc.NewClient(healthAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		conn:    conn,
		health:  healthpb.NewHealthClient(conn),
	}, nil
}

type credentials struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type recipeRequest struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *APIClient) do(ctx context.Context, method, path string, body any, auth bool, out any) error {
	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+c.accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return fmt.Errorf("%w: %v", ErrUnavailable, uerr.Err)
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		if out == nil {
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	}

	var e errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&e)
	if e.Error == "" {
		e.Error = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrUnauthorized, e.Error)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
}

func (c *APIClient) Register(ctx context.Context, userName string, password []byte) error {
	return c.do(ctx, http.MethodPost, "/register", credentials{UserName: userName, Password: string(password)}, false, nil)
}

// Login stores the returned access token for later authenticated calls.
func (c *APIClient) Login(ctx context.Context, userName string, password []byte) error {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/login", credentials{UserName: userName, Password: string(password)}, false, &resp); err != nil {
		return err
	}
	c.accessToken = resp.Token
	return nil
}

func (c *APIClient) Logout() {
	c.accessToken = ""
}

func (c *APIClient) IsLoggedIn() bool {
	return c.accessToken != ""
}

// AddRecipe submits a recipe. An expired token clears the session.
func (c *APIClient) AddRecipe(ctx context.Context, name string, calories int) error {
	if !c.IsLoggedIn() {
		return ErrNotLoggedIn
	}

	err := c.do(ctx, http.MethodPost, "/api/recipes", recipeRequest{Name: name, Calories: calories}, true, nil)
	if errors.Is(err, ErrUnauthorized) {
		c.Logout()
	}
	return err
}

func (c *APIClient) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var items []models.Recipe
	if err := c.do(ctx, http.MethodGet, "/api/recipes", nil, false, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *APIClient) SearchRecipes(ctx context.Context, maxCalories int) ([]models.Recipe, error) {
	q := url.Values{"maxCalorie": []string{strconv.Itoa(maxCalories)}}

	var items []models.Recipe
	if err := c.do(ctx, http.MethodGet, "/api/recipes/search?"+q.Encode(), nil, false, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Ping asks the gRPC health service whether the server is serving.
func (c *APIClient) Ping(ctx context.Context) error {
	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: status %s", ErrUnavailable, resp.GetStatus())
	}
	return nil
}

func (c *APIClient) Close() error {
	return c.conn.Close()
}
