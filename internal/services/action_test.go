package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name     string
		formType string
		listID   *uint64
		taskID   *uint64
		values   url.Values
		want     Action
	}{
		{
			name:     "add list trims name",
			formType: FormTypeAddList,
			values:   url.Values{"list_name": {"  Groceries "}},
			want:     AddList{Name: "Groceries"},
		},
		{
			name:     "delete list takes path id",
			formType: FormTypeDeleteList,
			listID:   ptr(3),
			want:     DeleteList{ListID: 3},
		},
		{
			name:     "add item",
			formType: FormTypeAddListItem,
			listID:   ptr(3),
			values:   url.Values{"list_item_text": {"milk"}},
			want:     AddListItem{ListID: 3, Text: "milk"},
		},
		{
			name:     "toggle",
			formType: FormTypeToggleTask,
			listID:   ptr(3),
			taskID:   ptr(9),
			want:     ToggleTask{ListID: 3, TaskID: 9},
		},
		{
			name:     "delete task",
			formType: FormTypeDeleteTask,
			listID:   ptr(3),
			taskID:   ptr(9),
			want:     DeleteTask{ListID: 3, TaskID: 9},
		},
		{
			name:     "path shape does not select the action",
			formType: FormTypeAddList,
			listID:   ptr(3),
			taskID:   ptr(9),
			values:   url.Values{"list_name": {"Work"}},
			want:     AddList{Name: "Work"},
		},
		{
			name:     "missing form type",
			formType: "",
			listID:   ptr(3),
		},
		{
			name:     "unknown form type",
			formType: "drop_table",
			listID:   ptr(3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := tt.values
			if values == nil {
				values = url.Values{}
			}
			got, err := ParseAction(tt.formType, tt.listID, tt.taskID, values)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			if tt.want != nil {
				require.Equal(t, tt.formType, got.FormType())
			}
		})
	}
}

func TestParseAction_ValidationErrors(t *testing.T) {
	_, err := ParseAction(FormTypeAddList, nil, nil, url.Values{"list_name": {"   "}})
	require.True(t, formErrorsOf(t, err).Has("list_name"))

	_, err = ParseAction(FormTypeAddList, nil, nil, url.Values{"list_name": {strings.Repeat("a", 101)}})
	require.Equal(t, []string{"Ensure this value has at most 100 characters."}, formErrorsOf(t, err).Get("list_name"))

	_, err = ParseAction(FormTypeAddList, nil, nil, url.Values{"list_name": {strings.Repeat("a", 100)}})
	require.NoError(t, err)

	_, err = ParseAction(FormTypeAddListItem, ptr(1), nil, url.Values{})
	require.True(t, formErrorsOf(t, err).Has("list_item_text"))

	_, err = ParseAction(FormTypeDeleteList, nil, nil, url.Values{})
	require.True(t, formErrorsOf(t, err).Has("list_id"))

	_, err = ParseAction(FormTypeToggleTask, ptr(1), nil, url.Values{})
	require.True(t, formErrorsOf(t, err).Has("task_id"))
}
