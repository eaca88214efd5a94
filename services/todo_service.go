package services

import (
	"errors"

	"tickoff-app/tickoff/database"
	"tickoff-app/tickoff/models"
	"tickoff-app/tickoff/utils/request"

	"gorm.io/gorm"
)

type TodoServiceInterface interface {
	GetTodos(db *database.Database, userID uint, params request.ListParams) ([]models.Todo, error)
	CreateTodo(db *database.Database, userID uint, input models.CreateTodoRequest) (models.Todo, error)
	GetCompletedTodos(db *database.Database, userID uint) ([]models.Todo, error)
	GetUncompletedTodos(db *database.Database, userID uint) ([]models.Todo, error)
	GetTodoById(db *database.Database, id uint, userID uint) (models.Todo, error)
	UpdateTodo(db *database.Database, id uint, userID uint, input models.UpdateTodoRequest) (models.Todo, error)
	DeleteTodo(db *database.Database, id uint, userID uint) error
}

type TodoService struct{}

func (s *TodoService) GetTodos(db *database.Database, userID uint, params request.ListParams) ([]models.Todo, error) {
	var todos []models.Todo
	result := db.DB.
		Where("user_id = ?", userID).
		Offset(params.Skip).
		Limit(params.Limit).
		Order(params.Order()).
		Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

func (s *TodoService) CreateTodo(db *database.Database, userID uint, input models.CreateTodoRequest) (models.Todo, error) {
	// The owner always comes from the authenticated caller, never from
	// the payload.
	todo := models.Todo{
		UserID:    userID,
		Todo:      input.Todo,
		Noted:     input.Noted,
		Completed: input.Completed,
	}

	if err := db.DB.Create(&todo).Error; err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

func (s *TodoService) GetCompletedTodos(db *database.Database, userID uint) ([]models.Todo, error) {
	var todos []models.Todo
	result := db.DB.Where("user_id = ? AND completed = ?", userID, true).Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

func (s *TodoService) GetUncompletedTodos(db *database.Database, userID uint) ([]models.Todo, error) {
	// Matches rows explicitly marked not completed; rows where the flag
	// was never set stay out of both listings.
	var todos []models.Todo
	result := db.DB.Where("user_id = ? AND completed = ?", userID, false).Find(&todos)
	if result.Error != nil {
		return nil, result.Error
	}
	return todos, nil
}

// GetTodoById returns ErrTodoNotFound both for ids that do not exist and
// for ids owned by another user; callers cannot tell the two apart.
func (s *TodoService) GetTodoById(db *database.Database, id uint, userID uint) (models.Todo, error) {
	var todo models.Todo
	if err := db.DB.First(&todo, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Todo{}, ErrTodoNotFound
		}
		return models.Todo{}, err
	}
	return todo, nil
}

func (s *TodoService) UpdateTodo(db *database.Database, id uint, userID uint, input models.UpdateTodoRequest) (models.Todo, error) {
	var todo models.Todo
	if err := db.DB.First(&todo, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Todo{}, ErrTodoNotFound
		}
		return models.Todo{}, err
	}

	applyTodoUpdate(&todo, input)

	if err := db.DB.Save(&todo).Error; err != nil {
		return models.Todo{}, err
	}

	return todo, nil
}

// applyTodoUpdate merges only the fields present in the request into the
// stored record. The updatable set is enumerated here; id, owner and
// timestamps are never client-writable.
func applyTodoUpdate(todo *models.Todo, input models.UpdateTodoRequest) {
	if input.Todo != nil {
		todo.Todo = *input.Todo
	}
	if input.Noted != nil {
		todo.Noted = input.Noted
	}
	if input.Completed != nil {
		todo.Completed = input.Completed
	}
}

func (s *TodoService) DeleteTodo(db *database.Database, id uint, userID uint) error {
	result := db.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Todo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

var TodoServiceInstance TodoServiceInterface = &TodoService{}
