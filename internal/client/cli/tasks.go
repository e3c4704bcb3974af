package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"taskboard/internal/client/api"
	"taskboard/internal/domain"
	"taskboard/pkg/validate"
)

// List prints the caller's tasks, newest first. args may carry a free-text
// query and/or a status word in any order, e.g. "list milk pending".
func (a *App) List(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return errors.New("not logged in")
	}

	var query, status string
	for _, arg := range args {
		if domain.ValidStatus(arg) && status == "" {
			status = arg
			continue
		}
		if query != "" {
			query += " "
		}
		query += arg
	}

	tasks, err := a.client.Tasks(ctx, query, status)
	if err != nil {
		printlnFn("Failed to load tasks:", err.Error())
		return err
	}
	if len(tasks) == 0 {
		printlnFn("No tasks found")
		return nil
	}
	printlnFn(fmt.Sprintf("%d task(s):", len(tasks)))
	for _, t := range tasks {
		mark := " "
		if t.Status == domain.StatusCompleted {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] %s  %s", mark, t.ID, t.Title)
		if t.Description != "" {
			line += " - " + t.Description
		}
		printlnFn(line)
	}
	return nil
}

// Add prompts for title/description and creates a pending task.
func (a *App) Add(ctx context.Context) error {
	if !a.requireLogin() {
		return errors.New("not logged in")
	}

	title, err := getSimpleText(a.reader, "Task title", os.Stdout)
	if err != nil {
		return err
	}
	if _, ok := validate.Title(title); !ok {
		printlnFn("Title is required and must be at most", validate.TitleMaxLen, "characters")
		return nil
	}
	desc, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	t, err := a.client.CreateTask(ctx, title, desc, "")
	if err != nil {
		printlnFn("Failed to create task:", err.Error())
		return err
	}
	printlnFn("Created", t.ID, "-", t.Title)
	return nil
}

// Done marks a task completed.
func (a *App) Done(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return errors.New("not logged in")
	}
	if len(args) != 1 {
		printlnFn("Usage: done <task-id>")
		return nil
	}
	status := domain.StatusCompleted
	t, err := a.client.UpdateTask(ctx, args[0], api.TaskPatch{Status: &status})
	if err != nil {
		printlnFn("Failed to update task:", err.Error())
		return err
	}
	printlnFn("Completed", t.ID, "-", t.Title)
	return nil
}

// Edit re-prompts for title/description/status; blank answers keep the
// current value (they are simply not sent).
func (a *App) Edit(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return errors.New("not logged in")
	}
	if len(args) != 1 {
		printlnFn("Usage: edit <task-id>")
		return nil
	}

	var patch api.TaskPatch
	title, err := getSimpleText(a.reader, "New title (blank keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if title != "" {
		patch.Title = &title
	}
	desc, err := getSimpleText(a.reader, "New description (blank keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if desc != "" {
		patch.Description = &desc
	}
	status, err := getSimpleText(a.reader, "New status: pending or completed (blank keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if status != "" {
		if !domain.ValidStatus(status) {
			printlnFn("Status must be either pending or completed")
			return nil
		}
		patch.Status = &status
	}
	if patch.Title == nil && patch.Description == nil && patch.Status == nil {
		printlnFn("Nothing to change")
		return nil
	}

	t, err := a.client.UpdateTask(ctx, args[0], patch)
	if err != nil {
		printlnFn("Failed to update task:", err.Error())
		return err
	}
	printlnFn("Updated", t.ID, "-", t.Title)
	return nil
}

// Remove deletes a task after an explicit confirmation.
func (a *App) Remove(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return errors.New("not logged in")
	}
	if len(args) != 1 {
		printlnFn("Usage: rm <task-id>")
		return nil
	}
	ok, err := Confirm(a.reader, "Delete task "+args[0]+"? This cannot be undone.", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled")
		return nil
	}
	id, err := a.client.DeleteTask(ctx, args[0])
	if err != nil {
		printlnFn("Failed to delete task:", err.Error())
		return err
	}
	printlnFn("Deleted", id)
	return nil
}
