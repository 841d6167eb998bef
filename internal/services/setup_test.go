package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-list/internal/models"
	"github.com/yukikurage/todo-list/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db          *gorm.DB
	authService *AuthService
	dashboard   *DashboardService
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.TodoList{}, &models.ListItem{}))

	return testEnv{
		db:          db,
		authService: NewAuthService(repository.NewUserRepository(db)),
		dashboard: NewDashboardService(
			repository.NewTodoListRepository(db),
			repository.NewListItemRepository(db),
		),
	}
}

func (env testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env testEnv) createList(t *testing.T, userID uint64, name string) *models.TodoList {
	t.Helper()
	list := &models.TodoList{UserID: userID, Name: name}
	require.NoError(t, env.db.Create(list).Error)
	return list
}

func (env testEnv) createItem(t *testing.T, listID uint64, text string) *models.ListItem {
	t.Helper()
	item := &models.ListItem{ListID: listID, Text: text}
	require.NoError(t, env.db.Create(item).Error)
	return item
}

func (env testEnv) countItems(t *testing.T, listID uint64) int64 {
	t.Helper()
	var count int64
	require.NoError(t, env.db.Model(&models.ListItem{}).Where("list_id = ?", listID).Count(&count).Error)
	return count
}

func ptr(v uint64) *uint64 {
	return &v
}
