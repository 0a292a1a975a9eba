package handler

import (
	"fmt"
	"net/http"

	"gamevault/backend/internal/models"
	"gamevault/backend/internal/store"
	"gamevault/backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// GameInput is the payload accepted on create and update. isFavorite is
// absent on purpose: it is server-managed and only changes through the
// favorite toggle, so any isFavorite sent by a client is dropped. Rating is
// a pointer so that an explicit 0 passes the required check.
type GameInput struct {
	Title       string   `json:"title" validate:"required" example:"Celeste"`
	Description string   `json:"description" validate:"required" example:"Precision platformer about climbing a mountain."`
	Genre       string   `json:"genre" validate:"required" example:"Platformer"`
	Platform    string   `json:"platform" validate:"required" example:"PC"`
	Rating      *float64 `json:"rating" validate:"required,min=0,max=10" example:"9.0"`
	ReleaseDate string   `json:"releaseDate" validate:"required,releasedate" example:"2018-01-25"`
	ImageURL    string   `json:"imageUrl" validate:"required" example:"https://images.gamevault.example/celeste.jpg"`
}

func (in GameInput) toModel() models.Game {
	return models.Game{
		Title:       in.Title,
		Description: in.Description,
		Genre:       in.Genre,
		Platform:    in.Platform,
		Rating:      *in.Rating,
		ReleaseDate: in.ReleaseDate,
		ImageURL:    in.ImageURL,
	}
}

// ValidationErrorResponse is the body returned for every 400.
type ValidationErrorResponse struct {
	Error   string                  `json:"error" example:"VALIDATION_ERROR"`
	Message string                  `json:"message" example:"Game validation failed"`
	Details []validation.FieldError `json:"details"`
	Code    int                     `json:"code" example:"400"`
}

// MessageResponse is the body for confirmation and not-found messages.
type MessageResponse struct {
	Message string `json:"message" example:"Game with id 2 deleted"`
}

func newValidationError(message string, details []validation.FieldError) ValidationErrorResponse {
	if details == nil {
		details = []validation.FieldError{}
	}
	return ValidationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
		Code:    http.StatusBadRequest,
	}
}

func gameNotFound(c *gin.Context, id string) {
	c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Game with id %s not found", id)})
}

// endregion

// region --- Handlers ---

// GetGames godoc
// @Summary      List all games
// @Description  Returns every game in the catalog, in insertion order.
// @Tags         games
// @Produce      json
// @Success      200  {array}  models.Game
// @Router       /games [get]
func GetGames(c *gin.Context) {
	c.JSON(http.StatusOK, store.Games.List())
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Returns the game matching the given id.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200  {object}  models.Game
// @Failure      404  {object}  MessageResponse "Game not found"
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	id := c.Param("id")

	game, err := store.Games.Get(id)
	if err != nil {
		gameNotFound(c, id)
		return
	}

	c.JSON(http.StatusOK, game)
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Validates the payload and appends a new game to the catalog.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  models.Game
// @Failure      400  {object}  ValidationErrorResponse
// @Router       /games [post]
func CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, newValidationError("Request body is not valid JSON", nil))
		return
	}

	if violations := validation.Validate(input); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, newValidationError("Game validation failed", violations))
		return
	}

	game := store.Games.Create(input.toModel())
	c.JSON(http.StatusCreated, game)
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Validates the payload and replaces every field except id and isFavorite.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path      string    true  "Game ID"
// @Param        input body      GameInput true  "New Game Info"
// @Success      200  {object}  models.Game
// @Failure      400  {object}  ValidationErrorResponse
// @Failure      404  {object}  MessageResponse "Game not found"
// @Router       /games/{id} [put]
func UpdateGame(c *gin.Context) {
	id := c.Param("id")

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, newValidationError("Request body is not valid JSON", nil))
		return
	}

	if violations := validation.Validate(input); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, newValidationError("Game validation failed", violations))
		return
	}

	game, err := store.Games.Update(id, input.toModel())
	if err != nil {
		gameNotFound(c, id)
		return
	}

	c.JSON(http.StatusOK, game)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Removes the game from the catalog permanently; its id is never reused.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse "Game not found"
// @Router       /games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id := c.Param("id")

	if err := store.Games.Delete(id); err != nil {
		gameNotFound(c, id)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Game with id %s deleted", id)})
}

// ToggleFavoriteGame godoc
// @Summary      Toggle a game's favorite flag
// @Description  Flips isFavorite on the matching game and returns the updated record.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200  {object}  models.Game
// @Failure      404  {object}  MessageResponse "Game not found"
// @Router       /games/{id}/favorite [patch]
func ToggleFavoriteGame(c *gin.Context) {
	id := c.Param("id")

	game, err := store.Games.ToggleFavorite(id)
	if err != nil {
		gameNotFound(c, id)
		return
	}

	c.JSON(http.StatusOK, game)
}

// endregion
