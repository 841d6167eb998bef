package dto

import (
	"github.com/yukikurage/todo-list/internal/models"
	"github.com/yukikurage/todo-list/internal/repository"
	"github.com/yukikurage/todo-list/internal/services"
)

// UserDTO represents the signed-in user on a page
type UserDTO struct {
	ID       uint64
	Username string
}

// ListDTO represents a todo list in the sidebar
type ListDTO struct {
	ID        uint64
	Name      string
	ItemCount int64
	URL       string
	Selected  bool
}

// ItemDTO represents a task of the selected list
type ItemDTO struct {
	ID          uint64
	Text        string
	IsCompleted bool
	URL         string
	Selected    bool
}

// DashboardDTO is the template context of the dashboard page
type DashboardDTO struct {
	User         UserDTO
	Lists        []ListDTO
	SelectedList *ListDTO
	Items        []ItemDTO
	SelectedItem *ItemDTO
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// ToDashboardDTO converts the dashboard read context to its template form
func ToDashboardDTO(user models.User, state *services.DashboardState) DashboardDTO {
	out := DashboardDTO{
		User:  ToUserDTO(user),
		Lists: make([]ListDTO, 0),
		Items: make([]ItemDTO, 0),
	}
	if state == nil {
		return out
	}

	var selectedListID uint64
	if state.SelectedList != nil {
		selectedListID = state.SelectedList.ID
	}

	for _, summary := range state.Lists {
		list := toListDTO(summary)
		list.Selected = summary.ID == selectedListID
		out.Lists = append(out.Lists, list)
		if list.Selected {
			selected := list
			out.SelectedList = &selected
		}
	}

	if state.SelectedList == nil {
		return out
	}
	for _, item := range state.Items {
		itemDTO := toItemDTO(item)
		itemDTO.Selected = state.SelectedItem != nil && state.SelectedItem.ID == item.ID
		out.Items = append(out.Items, itemDTO)
	}

	if state.SelectedItem != nil {
		selected := toItemDTO(*state.SelectedItem)
		selected.Selected = true
		out.SelectedItem = &selected
	}

	return out
}

func toListDTO(summary repository.ListSummary) ListDTO {
	return ListDTO{
		ID:        summary.ID,
		Name:      summary.Name,
		ItemCount: summary.ItemCount,
		URL:       services.ListPath(summary.ID),
	}
}

func toItemDTO(item models.ListItem) ItemDTO {
	return ItemDTO{
		ID:          item.ID,
		Text:        item.Text,
		IsCompleted: item.IsCompleted,
		URL:         services.ItemPath(item.ListID, item.ID),
	}
}
