package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/todo-list/internal/constants"
	"github.com/yukikurage/todo-list/internal/models"
	"github.com/yukikurage/todo-list/internal/repository"
	"gorm.io/gorm"
)

var (
	// ErrListNotFound covers both missing lists and lists of other users.
	ErrListNotFound = errors.New("list not found")
	// ErrItemNotFound covers missing items and items outside the owned list.
	ErrItemNotFound = errors.New("task not found")
)

// DashboardService applies dashboard actions and loads the dashboard read
// context. Every call takes the acting user explicitly.
type DashboardService struct {
	listRepo repository.TodoListRepository
	itemRepo repository.ListItemRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(listRepo repository.TodoListRepository, itemRepo repository.ListItemRepository) *DashboardService {
	return &DashboardService{
		listRepo: listRepo,
		itemRepo: itemRepo,
	}
}

// Outcome describes a successful mutation.
type Outcome struct {
	// Redirect is where the client goes after the mutation.
	Redirect string
	List     *models.TodoList
	Item     *models.ListItem
}

// Selection is the optional list/task picked by the request path.
type Selection struct {
	ListID *uint64
	TaskID *uint64
}

// DashboardState is the read context of a dashboard page.
type DashboardState struct {
	Lists        []repository.ListSummary
	SelectedList *models.TodoList
	Items        []models.ListItem
	SelectedItem *models.ListItem
}

// ListPath returns the item view of a list.
func ListPath(listID uint64) string {
	return fmt.Sprintf("%s/%d", constants.DashboardPath, listID)
}

// ItemPath returns the view of a single task.
func ItemPath(listID, taskID uint64) string {
	return fmt.Sprintf("%s/%d/%d", constants.DashboardPath, listID, taskID)
}

// Apply performs action on behalf of userID.
func (s *DashboardService) Apply(userID uint64, action Action) (*Outcome, error) {
	switch a := action.(type) {
	case AddList:
		list := &models.TodoList{
			UserID: userID,
			Name:   a.Name,
		}
		if err := s.listRepo.Create(list); err != nil {
			return nil, fmt.Errorf("failed to create list: %w", err)
		}
		return &Outcome{Redirect: constants.DashboardPath, List: list}, nil

	case DeleteList:
		if err := s.listRepo.DeleteOwned(userID, a.ListID); err != nil {
			return nil, listError(err, "failed to delete list")
		}
		return &Outcome{Redirect: constants.DashboardPath}, nil

	case AddListItem:
		item := &models.ListItem{Text: a.Text}
		if err := s.itemRepo.CreateInOwnedList(userID, a.ListID, item); err != nil {
			return nil, listError(err, "failed to create task")
		}
		return &Outcome{Redirect: ListPath(a.ListID), Item: item}, nil

	case ToggleTask:
		item, err := s.itemRepo.ToggleInOwnedList(userID, a.ListID, a.TaskID)
		if err != nil {
			return nil, itemError(err, "failed to toggle task")
		}
		return &Outcome{Redirect: ListPath(a.ListID), Item: item}, nil

	case DeleteTask:
		if err := s.itemRepo.DeleteInOwnedList(userID, a.ListID, a.TaskID); err != nil {
			return nil, itemError(err, "failed to delete task")
		}
		return &Outcome{Redirect: ListPath(a.ListID)}, nil

	default:
		return nil, fmt.Errorf("unsupported dashboard action %T", action)
	}
}

// Load builds the dashboard read context for userID. A selected list or
// task outside the user's ownership chain is reported as not found.
func (s *DashboardService) Load(userID uint64, sel Selection) (*DashboardState, error) {
	lists, err := s.listRepo.ListOwnedWithCounts(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}

	state := &DashboardState{Lists: lists}
	if sel.ListID == nil {
		return state, nil
	}

	list, err := s.listRepo.FindOwned(userID, *sel.ListID)
	if err != nil {
		return nil, listError(err, "failed to find list")
	}
	state.SelectedList = list

	items, err := s.itemRepo.ListByOwnedList(userID, list.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	state.Items = items

	if sel.TaskID == nil {
		return state, nil
	}

	item, err := s.itemRepo.FindInOwnedList(userID, list.ID, *sel.TaskID)
	if err != nil {
		return nil, itemError(err, "failed to find task")
	}
	state.SelectedItem = item

	return state, nil
}

// IsNotFound reports whether err is an ownership-chain miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrListNotFound) || errors.Is(err, ErrItemNotFound)
}

func listError(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrListNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// itemError cannot tell a missing list from a missing item, since both
// come back as gorm.ErrRecordNotFound; callers treat them alike.
func itemError(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrItemNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
