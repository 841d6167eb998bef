package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-list/internal/models"
	"github.com/yukikurage/todo-list/internal/repository"
	"github.com/yukikurage/todo-list/internal/services"
)

func TestToDashboardDTO_NilState(t *testing.T) {
	out := ToDashboardDTO(models.User{ID: 1, Username: "alice"}, nil)

	assert.Equal(t, UserDTO{ID: 1, Username: "alice"}, out.User)
	assert.Empty(t, out.Lists)
	assert.NotNil(t, out.Lists)
	assert.Nil(t, out.SelectedList)
	assert.Nil(t, out.SelectedItem)
}

func TestToDashboardDTO_Selection(t *testing.T) {
	list := &models.TodoList{ID: 7, UserID: 1, Name: "Groceries"}
	milk := models.ListItem{ID: 3, ListID: 7, Text: "Milk"}
	eggs := models.ListItem{ID: 4, ListID: 7, Text: "Eggs", IsCompleted: true}

	state := &services.DashboardState{
		Lists: []repository.ListSummary{
			{ID: 5, UserID: 1, Name: "Work", ItemCount: 0},
			{ID: 7, UserID: 1, Name: "Groceries", ItemCount: 2},
		},
		SelectedList: list,
		Items:        []models.ListItem{milk, eggs},
		SelectedItem: &eggs,
	}

	out := ToDashboardDTO(models.User{ID: 1, Username: "alice"}, state)

	require.Len(t, out.Lists, 2)
	assert.False(t, out.Lists[0].Selected)
	assert.Equal(t, "/dashboard/5", out.Lists[0].URL)
	assert.True(t, out.Lists[1].Selected)
	assert.EqualValues(t, 2, out.Lists[1].ItemCount)

	require.NotNil(t, out.SelectedList)
	assert.Equal(t, "Groceries", out.SelectedList.Name)

	require.Len(t, out.Items, 2)
	assert.Equal(t, "/dashboard/7/3", out.Items[0].URL)
	assert.False(t, out.Items[0].Selected)
	assert.True(t, out.Items[1].Selected)
	assert.True(t, out.Items[1].IsCompleted)

	require.NotNil(t, out.SelectedItem)
	assert.Equal(t, "Eggs", out.SelectedItem.Text)
}

func TestToDashboardDTO_ItemsNeedSelectedList(t *testing.T) {
	state := &services.DashboardState{
		Lists: []repository.ListSummary{{ID: 5, UserID: 1, Name: "Work"}},
		Items: []models.ListItem{{ID: 1, ListID: 5, Text: "stray"}},
	}

	out := ToDashboardDTO(models.User{ID: 1}, state)

	assert.Empty(t, out.Items)
	assert.Nil(t, out.SelectedList)
	assert.False(t, out.Lists[0].Selected)
}
