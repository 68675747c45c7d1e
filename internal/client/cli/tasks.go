package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/foundrmate/internal/client/models"
	"github.com/dmitrijs2005/foundrmate/internal/common"
)

var errBadID = errors.New("task id must be a number")

func (a *App) Tasks(ctx context.Context) error {
	list, progress, err := a.taskService.List(ctx)
	if err != nil {
		return a.report(err)
	}

	printlnFn(fmt.Sprintf("Progress: %d of %d tasks (%d%%)", progress.Completed, progress.Total, progress.Percent()))
	if len(list) == 0 {
		printlnFn("No tasks yet. Use 'addtask' or submit an idea.")
		return nil
	}

	category := ""
	for _, t := range list {
		if t.Category != category {
			category = t.Category
			printlnFn(strings.ToUpper(category))
		}
		mark := " "
		if t.Completed {
			mark = "x"
		}
		line := fmt.Sprintf("  [%s] %d. %s", mark, t.ID, t.Title)
		if t.Description != "" {
			line += " - " + t.Description
		}
		printlnFn(line)
	}
	return nil
}

func (a *App) AddTask(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Category ("+strings.Join(models.Categories, ", ")+")", a.out)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	t, err := a.taskService.Add(ctx, category, title, description)
	if err != nil {
		return a.report(err)
	}
	printlnFn(fmt.Sprintf("Added task %d", t.ID))
	return nil
}

func (a *App) SetDone(ctx context.Context, arg string, done bool) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if err := a.taskService.SetCompleted(ctx, id, done); err != nil {
		return a.taskError(id, err)
	}
	if done {
		printlnFn(fmt.Sprintf("Task %d completed", id))
	} else {
		printlnFn(fmt.Sprintf("Task %d reopened", id))
	}
	return nil
}

func (a *App) RemoveTask(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if err := a.taskService.Remove(ctx, id); err != nil {
		return a.taskError(id, err)
	}
	printlnFn(fmt.Sprintf("Task %d removed", id))
	return nil
}

func (a *App) taskError(id int64, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		printlnFn(fmt.Sprintf("Task %d not found", id))
		return err
	}
	return a.report(err)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		printlnFn(errBadID.Error())
		return 0, errBadID
	}
	return id, nil
}
