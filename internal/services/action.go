package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	apierrors "github.com/yukikurage/todo-list/internal/errors"
	"github.com/yukikurage/todo-list/internal/models"
)

// Form type discriminators accepted by the dashboard.
const (
	FormTypeAddList     = "add_list"
	FormTypeDeleteList  = "delete_list"
	FormTypeAddListItem = "add_list_item"
	FormTypeToggleTask  = "toggle_task"
	FormTypeDeleteTask  = "delete_task"
)

// Action is one of AddList, DeleteList, AddListItem, ToggleTask or
// DeleteTask. The set is closed: only this package can implement it.
type Action interface {
	// FormType returns the discriminator the action was submitted with.
	FormType() string
	isAction()
}

// AddList creates a list owned by the acting user.
type AddList struct {
	Name string
}

// DeleteList deletes a list and all of its items.
type DeleteList struct {
	ListID uint64
}

// AddListItem creates an item in a list.
type AddListItem struct {
	ListID uint64
	Text   string
}

// ToggleTask flips an item's completion flag.
type ToggleTask struct {
	ListID uint64
	TaskID uint64
}

// DeleteTask deletes an item.
type DeleteTask struct {
	ListID uint64
	TaskID uint64
}

func (AddList) FormType() string     { return FormTypeAddList }
func (DeleteList) FormType() string  { return FormTypeDeleteList }
func (AddListItem) FormType() string { return FormTypeAddListItem }
func (ToggleTask) FormType() string  { return FormTypeToggleTask }
func (DeleteTask) FormType() string  { return FormTypeDeleteTask }

func (AddList) isAction()     {}
func (DeleteList) isAction()  {}
func (AddListItem) isAction() {}
func (ToggleTask) isAction()  {}
func (DeleteTask) isAction()  {}

// FormValues is the submitted payload, keyed by form field.
type FormValues interface {
	Get(key string) string
}

// ParseAction builds the action selected by formType. The path ids only
// scope the action; they never select it. An empty or unknown formType
// yields (nil, nil). Missing or malformed fields yield *apierrors.FormErrors.
func ParseAction(formType string, listID, taskID *uint64, values FormValues) (Action, error) {
	formErrors := apierrors.NewFormErrors()

	switch formType {
	case FormTypeAddList:
		name := requiredText(formErrors, "list_name", values.Get("list_name"), models.MaxListNameLength)
		if err := formErrors.Err(); err != nil {
			return nil, err
		}
		return AddList{Name: name}, nil

	case FormTypeDeleteList:
		requireID(formErrors, "list_id", listID)
		if err := formErrors.Err(); err != nil {
			return nil, err
		}
		return DeleteList{ListID: *listID}, nil

	case FormTypeAddListItem:
		requireID(formErrors, "list_id", listID)
		text := requiredText(formErrors, "list_item_text", values.Get("list_item_text"), models.MaxItemTextLength)
		if err := formErrors.Err(); err != nil {
			return nil, err
		}
		return AddListItem{ListID: *listID, Text: text}, nil

	case FormTypeToggleTask, FormTypeDeleteTask:
		requireID(formErrors, "list_id", listID)
		requireID(formErrors, "task_id", taskID)
		if err := formErrors.Err(); err != nil {
			return nil, err
		}
		if formType == FormTypeToggleTask {
			return ToggleTask{ListID: *listID, TaskID: *taskID}, nil
		}
		return DeleteTask{ListID: *listID, TaskID: *taskID}, nil

	default:
		return nil, nil
	}
}

func requiredText(formErrors *apierrors.FormErrors, field, value string, maxLen int) string {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		formErrors.Add(field, "This field is required.")
	case utf8.RuneCountInString(value) > maxLen:
		formErrors.Add(field, fmt.Sprintf("Ensure this value has at most %d characters.", maxLen))
	}
	return value
}

func requireID(formErrors *apierrors.FormErrors, field string, id *uint64) {
	if id == nil {
		formErrors.Add(field, "No "+strings.TrimSuffix(field, "_id")+" selected.")
	}
}
