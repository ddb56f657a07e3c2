package api

import (
	"net/http"

	"fabshop-api/models"
	"fabshop-api/service"

	"go.uber.org/zap"
)

// Task handlers are closed over a category; the router registers one set
// per category slug, so the category can never come from request input.

func handleTaskCreate(cat models.Category, tasks service.TaskService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input service.TaskCreateInput
		if err := decodeJSON(r, &input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		task, err := tasks.Create(cat, input)
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}

		logger.Info("task created",
			zap.String("category", string(cat)),
			zap.Uint("task_id", task.ID),
			zap.String("project_no", task.ProjectNo),
		)
		writeJSON(w, http.StatusCreated, task)
	}
}

func handleTaskList(cat models.Category, tasks service.TaskService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := tasks.ListByProject(cat, r.URL.Query().Get("project_no"))
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

func handleTaskGet(cat models.Category, tasks service.TaskService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid task id")
			return
		}

		task, err := tasks.Get(cat, id)
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, task)
	}
}

func handleTaskUpdate(cat models.Category, tasks service.TaskService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid task id")
			return
		}

		var input service.TaskUpdateInput
		if err := decodeJSON(r, &input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		task, err := tasks.Update(cat, id, input)
		if err != nil {
			respondServiceError(w, logger, err)
			return
		}

		logger.Info("task updated",
			zap.String("category", string(cat)),
			zap.Uint("task_id", task.ID),
		)
		writeJSON(w, http.StatusOK, task)
	}
}

func handleTaskDelete(cat models.Category, tasks service.TaskService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid task id")
			return
		}

		if err := tasks.Delete(cat, id); err != nil {
			respondServiceError(w, logger, err)
			return
		}

		logger.Info("task deleted",
			zap.String("category", string(cat)),
			zap.Uint("task_id", id),
		)
		writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
	}
}
