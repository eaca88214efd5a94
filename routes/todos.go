package routes

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"tickoff-app/tickoff/database"
	"tickoff-app/tickoff/models"
	"tickoff-app/tickoff/services"
	"tickoff-app/tickoff/utils/request"

	"github.com/gin-gonic/gin"
)

func RegisterTodoRoutes(group *gin.RouterGroup, db *database.Database, todoService services.TodoServiceInterface, durationService services.DurationServiceInterface) {
	group.GET("", func(c *gin.Context) { GetTodos(c, db, todoService) })
	group.POST("", func(c *gin.Context) { CreateTodo(c, db, todoService) })
	group.GET("/completed", func(c *gin.Context) { GetCompletedTodos(c, db, todoService) })
	group.GET("/uncompleted", func(c *gin.Context) { GetUncompletedTodos(c, db, todoService) })
	group.GET("/average-todo-duration", func(c *gin.Context) { GetMonthlyAverageDuration(c, db, durationService) })
	group.GET("/:id", func(c *gin.Context) { GetTodoById(c, db, todoService) })
	group.PUT("/:id", func(c *gin.Context) { UpdateTodo(c, db, todoService) })
	group.DELETE("/:id", func(c *gin.Context) { DeleteTodo(c, db, todoService) })
	group.GET("/:id/average-duration", func(c *gin.Context) { GetTodoAverageDuration(c, db, durationService) })
}

// authenticatedUserID pulls the caller's id set by the auth middleware.
// It writes the 401 itself so handlers can just bail out.
func authenticatedUserID(c *gin.Context) (uint, bool) {
	userIDInterface, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}
	userID, ok := userIDInterface.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}
	return userID, true
}

func todoIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo id"})
		return 0, false
	}
	return uint(id), true
}

func GetTodos(c *gin.Context, db *database.Database, todoService services.TodoServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	params := request.ParseListParams(c)

	todos, err := todoService.GetTodos(db, userID, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ToResponseList(todos))
}

func CreateTodo(c *gin.Context, db *database.Database, todoService services.TodoServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	var input models.CreateTodoRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdTodo, err := todoService.CreateTodo(db, userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, createdTodo.ToResponse())
}

func GetCompletedTodos(c *gin.Context, db *database.Database, todoService services.TodoServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	todos, err := todoService.GetCompletedTodos(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ToResponseList(todos))
}

func GetUncompletedTodos(c *gin.Context, db *database.Database, todoService services.TodoServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	todos, err := todoService.GetUncompletedTodos(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ToResponseList(todos))
}

func GetTodoById(c *gin.Context, db *database.Database, todoService services.TodoServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	id, ok := todoIDParam(c)
	if !ok {
		return
	}

	todo, err := todoService.GetTodoById(db, id, userID)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, todo.ToResponse())
}

func UpdateTodo(c *gin.Context, db *database.Database, todoService services.TodoServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	id, ok := todoIDParam(c)
	if !ok {
		return
	}

	var input models.UpdateTodoRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedTodo, err := todoService.UpdateTodo(db, id, userID, input)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updatedTodo.ToResponse())
}

func DeleteTodo(c *gin.Context, db *database.Database, todoService services.TodoServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	id, ok := todoIDParam(c)
	if !ok {
		return
	}

	if err := todoService.DeleteTodo(db, id, userID); err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func GetTodoAverageDuration(c *gin.Context, db *database.Database, durationService services.DurationServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	id, ok := todoIDParam(c)
	if !ok {
		return
	}

	stats, err := durationService.TodoAverageDuration(db, id, userID)
	if err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func GetMonthlyAverageDuration(c *gin.Context, db *database.Database, durationService services.DurationServiceInterface) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	stats, err := durationService.MonthlyAverageDuration(db, userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
