package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/dmitrijs2005/recipekeeper/internal/logging"
	"github.com/dmitrijs2005/recipekeeper/internal/server/models"
)

const maxBodyBytes = 1 << 20

type UserService interface {
	Register(ctx context.Context, userName, password string) (*models.User, error)
	Login(ctx context.Context, userName, password string) (string, error)
}

type RecipeService interface {
	Add(ctx context.Context, author, name string, calories int) (*models.Recipe, error)
	List(ctx context.Context) ([]*models.Recipe, error)
	Search(ctx context.Context, maxCalories int) ([]*models.Recipe, error)
}

type credentialsRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type addRecipeRequest struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}

// Handler serves the JSON API.
type Handler struct {
	users   UserService
	recipes RecipeService
	logger  logging.Logger
}

func NewHandler(us UserService, rs RecipeService, l logging.Logger) *Handler {
	return &Handler{users: us, recipes: rs, logger: l.With("module", "http")}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// fail writes the mapped error response. 500s are logged with the cause,
// which never reaches the caller.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if writeServiceError(w, err) == http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.users.Register(r.Context(), req.UserName, req.Password); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "User registered successfully!"})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.users.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	items, err := h.recipes.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) searchRecipes(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("maxCalorie")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "maxCalorie is required")
		return
	}

	maxCalories, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "maxCalorie must be an integer")
		return
	}

	items, err := h.recipes.Search(r.Context(), maxCalories)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) addRecipe(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req addRecipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.recipes.Add(r.Context(), claims.Subject, req.Name, req.Calories); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Successfully added!"})
}
